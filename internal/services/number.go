package services

import (
	"fmt"

	"gorm.io/gorm"
)

// nextInvoiceNumber derives the next sequential invoice number from existing
// rows: 1 + the highest numeric suffix ever issued, so numbers are never
// reused after a delete (gaps allowed). It must run on the same transaction
// handle as the subsequent insert; two concurrent creates can still compute
// the same number and one of them loses to the unique constraint.
func nextInvoiceNumber(tx *gorm.DB) (string, error) {
	var maxNum int64
	err := tx.Raw(
		"SELECT COALESCE(MAX(CAST(SUBSTR(invoice_no, 5) AS INTEGER)), 0) FROM invoices",
	).Scan(&maxNum).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%03d", maxNum+1), nil
}

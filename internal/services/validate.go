package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/diewo77/invoicing-api/internal/models"
)

// validateCreate runs every business check against the request before any
// write. It only reads, so callers may retry it freely. Checks run in a fixed
// order and the first failure wins.
//
// Date handling is deliberately weak: shape only (three '-'-separated parts,
// no calendar validity) and ordering by plain string comparison, which is
// correct only for zero-padded ISO dates.
func validateCreate(tx *gorm.DB, req InvoiceCreateRequest) error {
	if len(strings.Split(req.IssueDate, "-")) != 3 || len(strings.Split(req.DueDate, "-")) != 3 {
		return validationErrorf("dates must be in format YYYY-MM-DD")
	}
	if req.DueDate < req.IssueDate {
		return validationErrorf("due date must be after or equal to issue date")
	}
	exists, err := rowExists(tx, &models.Client{}, req.ClientID)
	if err != nil {
		return err
	}
	if !exists {
		return validationErrorf("client %d not found", req.ClientID)
	}
	if len(req.Items) == 0 {
		return validationErrorf("invoice must have at least one item")
	}
	if req.Tax < 0 {
		return validationErrorf("tax cannot be negative")
	}
	for idx, item := range req.Items {
		if item.Quantity <= 0 {
			return validationErrorf("item %d: quantity must be greater than 0", idx+1)
		}
		exists, err := rowExists(tx, &models.Product{}, item.ProductID)
		if err != nil {
			return err
		}
		if !exists {
			return validationErrorf("product %d not found", item.ProductID)
		}
	}
	return nil
}

func rowExists(tx *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

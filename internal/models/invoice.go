package models

import "time"

// Invoicing models. Issue and due dates are stored as YYYY-MM-DD strings so
// their ordering is plain string comparison, matching the validation rules.
type Invoice struct {
	ID        uint          `gorm:"primaryKey"`
	InvoiceNo string        `gorm:"not null;unique"`
	IssueDate string        `gorm:"not null"`
	DueDate   string        `gorm:"not null"`
	ClientID  uint          `gorm:"not null"`
	Client    Client        `gorm:"foreignKey:ClientID"`
	Address   string        `gorm:"not null"` // client address snapshot at creation
	Tax       float64       `gorm:"not null;default:0"`
	Total     float64       `gorm:"not null"`
	Items     []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

type InvoiceItem struct {
	ID        uint    `gorm:"primaryKey"`
	InvoiceID uint    `gorm:"not null;index"`
	ProductID uint    `gorm:"not null"`
	Product   Product `gorm:"foreignKey:ProductID"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"` // product price snapshot at creation
	Subtotal  float64 `gorm:"not null"`
}

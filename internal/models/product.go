package models

// Product is a sellable service or good. Price is the current catalog price;
// invoices copy it into their items at creation time, so later price changes
// never touch existing invoices.
type Product struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
}

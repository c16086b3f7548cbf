package models

// Client entity
type Client struct {
	ID                    uint   `gorm:"primaryKey" json:"id"`
	Name                  string `gorm:"not null" json:"name"`
	Address               string `gorm:"not null" json:"address"`
	CompanyRegistrationNo string `gorm:"not null" json:"company_registration_no"`
}

package models

import "time"

// SchemaMigration is one row of the `_migrations` ledger. A row's presence
// means the unit with that name has been applied.
type SchemaMigration struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;unique"`
	AppliedAt time.Time
}

func (SchemaMigration) TableName() string { return "_migrations" }

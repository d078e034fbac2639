package models

import "time"

// Client is a named customer. Name is the dedup target: comparisons are
// case-insensitive everywhere (ledger.NormalizeName).
type Client struct {
	ID            uint                `gorm:"primaryKey" json:"id"`
	Name          string              `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Phone         *string             `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Document      *string             `gorm:"type:varchar(30)" json:"document,omitempty"`
	CreatedAt     time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time           `gorm:"not null" json:"updated_at"`
	CreditEntries []ClientCreditEntry `gorm:"foreignKey:ClientID" json:"credit_entries,omitempty"`
}

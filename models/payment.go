package models

import (
	"time"
)

// Payment is a (possibly partial) payment recorded against a tab.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TabID     uint      `gorm:"not null;index" json:"tab_id"`
	Tab       Tab       `gorm:"foreignKey:TabID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method    string    `gorm:"type:varchar(30);not null;default:'dinheiro'" json:"method"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

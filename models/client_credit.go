package models

import "time"

// ClientCreditEntry is a manual adjustment on a client's balance: positive
// adds credit, negative records a debit (including debt carried over from a
// closed tab).
type ClientCreditEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  uint      `gorm:"not null;index" json:"client_id"`
	Client    Client    `gorm:"foreignKey:ClientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method    string    `gorm:"type:varchar(30);not null" json:"method"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

package models

import (
	"time"

	"github.com/lucasvieira/comanda-app/ledger"
)

// Tab is one comanda: tied to a table number or to a customer name.
// Kind is "table" or "name"; Identifier holds the table number or the name.
type Tab struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Kind        string     `gorm:"type:varchar(10);not null" json:"kind"`
	Identifier  string     `gorm:"type:varchar(100);not null" json:"identifier"`
	ClientName  *string    `gorm:"type:varchar(100)" json:"client_name,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	Observation string     `gorm:"type:text" json:"observation"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
	Items       []TabItem  `gorm:"foreignKey:TabID" json:"items"`
	Payments    []Payment  `gorm:"foreignKey:TabID" json:"payments"`
}

// Snapshot converts the row (with Items.MenuItem and Payments preloaded)
// into the engine's read-only view.
func (t Tab) Snapshot() ledger.TabSnapshot {
	snap := ledger.TabSnapshot{
		ID:         t.ID,
		Kind:       t.Kind,
		Identifier: t.Identifier,
		Status:     t.Status,
	}
	for _, item := range t.Items {
		snap.Lines = append(snap.Lines, item.Line())
	}
	for _, p := range t.Payments {
		snap.Payments = append(snap.Payments, ledger.PaymentInfo{Amount: p.Amount, Method: p.Method})
	}
	return snap
}

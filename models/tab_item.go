package models

import (
	"time"

	"github.com/lucasvieira/comanda-app/ledger"
)

type TabItem struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	TabID      uint `gorm:"not null;index" json:"tab_id"`
	// Omitting Tab from JSON to avoid recursive nesting
	Tab        Tab       `gorm:"foreignKey:TabID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint      `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// Line maps the row into an engine line. A zero MenuItem ID means the
// reference did not resolve; the engine skips those.
func (i TabItem) Line() ledger.Line {
	var item *ledger.Item
	if i.MenuItem.ID != 0 {
		item = &ledger.Item{ID: i.MenuItem.ID, Name: i.MenuItem.Name, Price: i.MenuItem.Price}
	}
	return ledger.Line{Item: item, Quantity: i.Quantity, Comment: i.Comment}
}

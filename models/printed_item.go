package models

import "time"

// PrintedItem is the kitchen-print baseline: how many units of a given
// (menu item, comment) pair were already sent to the kitchen for a tab.
// The next ticket only carries quantities above this baseline.
type PrintedItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TabID      uint      `gorm:"not null;index" json:"tab_id"`
	Tab        Tab       `gorm:"foreignKey:TabID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint      `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item"`
	Comment    string    `gorm:"type:text" json:"comment"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

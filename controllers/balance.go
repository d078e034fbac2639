package controllers

import (
	"github.com/lucasvieira/comanda-app/ledger"
	"github.com/lucasvieira/comanda-app/models"
	"gorm.io/gorm"
)

// carriedBalanceFor assembles the snapshot the engine needs (clients, credit
// entries, every by-name tab) and asks it for the balance the named client
// carries. excludeTabID keeps the tab under reconciliation out of the sum.
func carriedBalanceFor(db *gorm.DB, clientName string, excludeTabID uint) (float64, error) {
	var clients []models.Client
	if err := db.Find(&clients).Error; err != nil {
		return 0, err
	}
	names := make([]string, 0, len(clients))
	for _, cl := range clients {
		names = append(names, cl.Name)
	}

	var entries []models.ClientCreditEntry
	if err := db.Preload("Client").Find(&entries).Error; err != nil {
		return 0, err
	}
	credits := make([]ledger.CreditEntry, 0, len(entries))
	for _, e := range entries {
		credits = append(credits, ledger.CreditEntry{ClientName: e.Client.Name, Amount: e.Amount})
	}

	var tabs []models.Tab
	if err := db.Where("kind = ?", ledger.KindName).
		Preload("Items.MenuItem").
		Preload("Payments").
		Find(&tabs).Error; err != nil {
		return 0, err
	}
	snaps := make([]ledger.TabSnapshot, 0, len(tabs))
	for _, t := range tabs {
		snaps = append(snaps, t.Snapshot())
	}

	return ledger.CarriedBalance(clientName, names, credits, snaps, excludeTabID), nil
}

// displayLine is the JSON shape of one grouped line.
type displayLine struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Comment    string  `json:"comment,omitempty"`
	UnitPrice  float64 `json:"unit_price"`
	LineTotal  float64 `json:"line_total"`
}

func displayLines(grouped []ledger.Line) []displayLine {
	out := make([]displayLine, 0, len(grouped))
	for _, l := range grouped {
		if l.Item == nil {
			continue
		}
		out = append(out, displayLine{
			MenuItemID: l.Item.ID,
			Name:       l.Item.Name,
			Quantity:   l.Quantity,
			Comment:    l.Comment,
			UnitPrice:  l.Item.Price,
			LineTotal:  l.Item.Price * float64(l.Quantity),
		})
	}
	return out
}

// paymentMethods lists the distinct methods used on a tab, in payment order.
func paymentMethods(payments []models.Payment) []string {
	var methods []string
	seen := make(map[string]bool)
	for _, p := range payments {
		if !seen[p.Method] {
			seen[p.Method] = true
			methods = append(methods, p.Method)
		}
	}
	return methods
}

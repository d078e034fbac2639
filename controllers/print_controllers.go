package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasvieira/comanda-app/ledger"
	"github.com/lucasvieira/comanda-app/live"
	"github.com/lucasvieira/comanda-app/models"
	"github.com/lucasvieira/comanda-app/utils"
)

type PrintController struct {
	DB *gorm.DB
}

func NewPrintController(db *gorm.DB) *PrintController {
	return &PrintController{DB: db}
}

// PrintKitchenTicket -> render the items added since the last kitchen print
// and advance the printed baseline. Nothing new is a normal outcome, not an
// error.
func (pc *PrintController) PrintKitchenTicket(c *gin.Context) {
	idStr := c.Param("tab_id")
	id, _ := strconv.Atoi(idStr)

	var tab models.Tab
	if err := pc.DB.Preload("Items.MenuItem").First(&tab, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	grouped := ledger.Group(tab.Snapshot().Lines)

	baseline, err := pc.printedBaseline(tab.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pending := ledger.NewItemsToPrint(grouped, baseline)
	ticket := ledger.KitchenTicket(tab.Identifier, tab.Kind, pending)
	if ticket == "" {
		utils.RespondJSON(c, http.StatusOK, "No new items to print", nil)
		return
	}

	// New baseline = everything currently on the tab.
	if err := pc.recordBaseline(tab.ID, grouped); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventPrintQueued, gin.H{"tab_id": tab.ID, "items": displayLines(pending)})

	utils.RespondJSON(c, http.StatusOK, "Kitchen ticket", gin.H{
		"ticket": ticket,
		"items":  displayLines(pending),
	})
}

// GetReceipt -> customer copy of the whole tab.
func (pc *PrintController) GetReceipt(c *gin.Context) {
	idStr := c.Param("tab_id")
	id, _ := strconv.Atoi(idStr)

	var tab models.Tab
	if err := pc.DB.Preload("Items.MenuItem").Preload("Payments").First(&tab, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	snap := tab.Snapshot()
	grouped := ledger.Group(snap.Lines)
	totals := ledger.Totals(snap)
	receipt := ledger.CustomerReceipt(snap, grouped, totals, paymentMethods(tab.Payments))

	utils.RespondJSON(c, http.StatusOK, "Customer receipt", gin.H{
		"receipt": receipt,
		"totals":  totals,
	})
}

// GetShareMessage -> the plain-text tab summary for messaging apps.
func (pc *PrintController) GetShareMessage(c *gin.Context) {
	idStr := c.Param("tab_id")
	id, _ := strconv.Atoi(idStr)

	var tab models.Tab
	if err := pc.DB.Preload("Items.MenuItem").Preload("Payments").First(&tab, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	snap := tab.Snapshot()
	grouped := ledger.Group(snap.Lines)
	totals := ledger.Totals(snap)

	var previousBalance float64
	if tab.Kind == ledger.KindName {
		previousBalance, _ = carriedBalanceFor(pc.DB, tab.Identifier, tab.ID)
	}
	rec := ledger.Reconcile(previousBalance, totals.Subtotal, totals.Paid)

	utils.RespondJSON(c, http.StatusOK, "Share message", gin.H{
		"message": ledger.ShareMessage(snap, grouped, totals, rec),
	})
}

func (pc *PrintController) printedBaseline(tabID uint) ([]ledger.Line, error) {
	var rows []models.PrintedItem
	if err := pc.DB.Preload("MenuItem").Where("tab_id = ?", tabID).Find(&rows).Error; err != nil {
		return nil, err
	}

	lines := make([]ledger.Line, 0, len(rows))
	for _, r := range rows {
		var item *ledger.Item
		if r.MenuItem.ID != 0 {
			item = &ledger.Item{ID: r.MenuItem.ID, Name: r.MenuItem.Name, Price: r.MenuItem.Price}
		}
		lines = append(lines, ledger.Line{Item: item, Quantity: r.Quantity, Comment: r.Comment})
	}
	return lines, nil
}

// recordBaseline upserts one PrintedItem row per grouped (item, comment)
// key with the tab's current quantity.
func (pc *PrintController) recordBaseline(tabID uint, grouped []ledger.Line) error {
	for _, l := range grouped {
		if l.Item == nil {
			continue
		}

		var row models.PrintedItem
		err := pc.DB.Where("tab_id = ? AND menu_item_id = ? AND comment = ?",
			tabID, l.Item.ID, l.Comment).First(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = models.PrintedItem{
				TabID:      tabID,
				MenuItemID: l.Item.ID,
				Comment:    l.Comment,
				Quantity:   l.Quantity,
			}
			if err := pc.DB.Create(&row).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			row.Quantity = l.Quantity
			if err := pc.DB.Save(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasvieira/comanda-app/ledger"
	"github.com/lucasvieira/comanda-app/live"
	"github.com/lucasvieira/comanda-app/models"
	"github.com/lucasvieira/comanda-app/utils"
)

type TabController struct {
	DB *gorm.DB
}

func NewTabController(db *gorm.DB) *TabController {
	return &TabController{DB: db}
}

// GetAllTabs -> list tabs, optionally filtered by ?status= and ?kind=.
func (tc *TabController) GetAllTabs(c *gin.Context) {
	query := tc.DB.Preload("Items.MenuItem").Preload("Payments")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var tabs []models.Tab
	if err := query.Find(&tabs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of tabs", tabs)
}

// CreateTab -> open a comanda for a table number or a customer name.
func (tc *TabController) CreateTab(c *gin.Context) {
	type reqBody struct {
		Kind        string  `json:"kind" binding:"required,oneof=table name"`
		Identifier  string  `json:"identifier" binding:"required"`
		ClientName  *string `json:"client_name"`
		Observation string  `json:"observation"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tab := models.Tab{
		Kind:        req.Kind,
		Identifier:  req.Identifier,
		ClientName:  req.ClientName,
		Observation: req.Observation,
		Status:      ledger.StatusOpen,
	}

	if err := tc.DB.Create(&tab).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Tab opened (ID=%d, kind=%s, identifier=%s)", tab.ID, tab.Kind, tab.Identifier)
	live.Broadcast(live.EventTabUpdate, tab)

	utils.RespondJSON(c, http.StatusCreated, "Tab created", tab)
}

// GetTabByID -> tab detail plus everything the screen shows: grouped lines,
// totals, carried balance and the reconciled total to pay.
func (tc *TabController) GetTabByID(c *gin.Context) {
	idStr := c.Param("tab_id")
	id, _ := strconv.Atoi(idStr)

	var tab models.Tab
	if err := tc.DB.Preload("Items.MenuItem").Preload("Payments").First(&tab, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	snap := tab.Snapshot()
	grouped := ledger.Group(snap.Lines)
	totals := ledger.Totals(snap)

	var previousBalance float64
	if tab.Kind == ledger.KindName {
		var err error
		previousBalance, err = carriedBalanceFor(tc.DB, tab.Identifier, tab.ID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	rec := ledger.Reconcile(previousBalance, totals.Subtotal, totals.Paid)

	utils.RespondJSON(c, http.StatusOK, "Tab detail", gin.H{
		"tab":              tab,
		"lines":            displayLines(grouped),
		"totals":           totals,
		"previous_balance": previousBalance,
		"reconciliation":   rec,
		"partially_paid":   ledger.PartiallyPaid(totals),
		"total_display":    ledger.FormatBRL(rec.TotalToPay),
	})
}

// UpdateTab -> observation / linked client name.
func (tc *TabController) UpdateTab(c *gin.Context) {
	idStr := c.Param("tab_id")
	id, _ := strconv.Atoi(idStr)

	type reqBody struct {
		Observation *string `json:"observation"`
		ClientName  *string `json:"client_name"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var tab models.Tab
	if err := tc.DB.First(&tab, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if tab.Status == ledger.StatusPaid {
		utils.RespondError(c, http.StatusConflict, ErrTabPaid)
		return
	}

	if req.Observation != nil {
		tab.Observation = *req.Observation
	}
	if req.ClientName != nil {
		tab.ClientName = req.ClientName
	}

	if err := tc.DB.Save(&tab).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventTabUpdate, tab)
	utils.RespondJSON(c, http.StatusOK, "Tab updated", tab)
}

// AddItems -> append lines to an open tab. Unknown menu items are skipped,
// matching how the screen tolerates stale catalogs.
func (tc *TabController) AddItems(c *gin.Context) {
	idStr := c.Param("tab_id")
	id, _ := strconv.Atoi(idStr)

	var tab models.Tab
	if err := tc.DB.First(&tab, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if tab.Status == ledger.StatusPaid {
		utils.RespondError(c, http.StatusConflict, ErrTabPaid)
		return
	}

	type ItemReq struct {
		MenuItemID uint   `json:"menu_item_id" binding:"required"`
		Quantity   int    `json:"quantity" binding:"required,min=1"`
		Comment    string `json:"comment"`
	}
	type ReqBody struct {
		Items []ItemReq `json:"items" binding:"required,dive"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var created []models.TabItem
	for _, item := range body.Items {
		var menuItem models.MenuItem
		if err := tc.DB.First(&menuItem, item.MenuItemID).Error; err != nil {
			continue
		}

		tabItem := models.TabItem{
			TabID:      tab.ID,
			MenuItemID: menuItem.ID,
			Quantity:   item.Quantity,
			Comment:    item.Comment,
		}
		if err := tc.DB.Create(&tabItem).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}

		// Basic inventory: consume stock, floored at zero.
		stock := menuItem.Stock - item.Quantity
		if stock < 0 {
			stock = 0
		}
		tc.DB.Model(&menuItem).Update("stock", stock)

		tabItem.MenuItem = menuItem
		created = append(created, tabItem)
	}

	live.Broadcast(live.EventTabUpdate, gin.H{"tab_id": tab.ID})
	utils.RespondJSON(c, http.StatusCreated, "Items added", created)
}

// UpdateItem -> quantity/comment of one line.
func (tc *TabController) UpdateItem(c *gin.Context) {
	tabID, _ := strconv.Atoi(c.Param("tab_id"))
	itemID, _ := strconv.Atoi(c.Param("item_id"))

	type reqBody struct {
		Quantity *int    `json:"quantity" binding:"omitempty,min=1"`
		Comment  *string `json:"comment"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var tab models.Tab
	if err := tc.DB.First(&tab, tabID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if tab.Status == ledger.StatusPaid {
		utils.RespondError(c, http.StatusConflict, ErrTabPaid)
		return
	}

	var item models.TabItem
	if err := tc.DB.Where("tab_id = ?", tabID).First(&item, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Comment != nil {
		item.Comment = *req.Comment
	}

	if err := tc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventTabUpdate, gin.H{"tab_id": tab.ID})
	utils.RespondJSON(c, http.StatusOK, "Item updated", item)
}

// DeleteItem -> remove one line from an open tab.
func (tc *TabController) DeleteItem(c *gin.Context) {
	tabID, _ := strconv.Atoi(c.Param("tab_id"))
	itemID, _ := strconv.Atoi(c.Param("item_id"))

	var tab models.Tab
	if err := tc.DB.First(&tab, tabID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if tab.Status == ledger.StatusPaid {
		utils.RespondError(c, http.StatusConflict, ErrTabPaid)
		return
	}

	if err := tc.DB.Where("tab_id = ?", tabID).Delete(&models.TabItem{}, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventTabUpdate, gin.H{"tab_id": tab.ID})
	utils.RespondJSON(c, http.StatusOK, "Item removed", gin.H{"item_id": itemID})
}

// CloseTab -> mark the tab paid. On a by-name tab an unpaid remainder is
// written back to the client's ledger as a debit so the debt carries into
// the next comanda.
func (tc *TabController) CloseTab(c *gin.Context) {
	idStr := c.Param("tab_id")
	id, _ := strconv.Atoi(idStr)

	var tab models.Tab
	if err := tc.DB.Preload("Items.MenuItem").Preload("Payments").First(&tab, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if tab.Status == ledger.StatusPaid {
		utils.RespondJSON(c, http.StatusOK, "Tab already closed", tab)
		return
	}

	totals := ledger.Totals(tab.Snapshot())

	if tab.Kind == ledger.KindName && totals.Remaining > ledger.PaymentEpsilon {
		var client models.Client
		err := tc.DB.Where("UPPER(TRIM(name)) = ?", ledger.NormalizeName(tab.Identifier)).First(&client).Error
		if err == nil {
			entry := models.ClientCreditEntry{
				ClientID: client.ID,
				Amount:   -totals.Remaining,
				Method:   "saldo",
			}
			if err := tc.DB.Create(&entry).Error; err != nil {
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			}
			utils.InfoLogger.Printf("Tab %d closed with %s outstanding, carried to client %s",
				tab.ID, ledger.FormatBRL(totals.Remaining), client.Name)
		} else {
			utils.InfoLogger.Printf("Tab %d closed with outstanding balance but no registered client %q", tab.ID, tab.Identifier)
		}
	}

	now := time.Now()
	tab.Status = ledger.StatusPaid
	tab.PaidAt = &now
	if err := tc.DB.Save(&tab).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventTabUpdate, tab)
	utils.RespondJSON(c, http.StatusOK, "Tab closed", gin.H{
		"tab":    tab,
		"totals": totals,
	})
}

// DeleteTab -> only an open tab without items can go away.
func (tc *TabController) DeleteTab(c *gin.Context) {
	idStr := c.Param("tab_id")
	id, _ := strconv.Atoi(idStr)

	var tab models.Tab
	if err := tc.DB.Preload("Items").First(&tab, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if tab.Status != ledger.StatusOpen {
		utils.RespondError(c, http.StatusConflict, fmt.Errorf("only open tabs can be deleted"))
		return
	}
	if len(tab.Items) > 0 {
		utils.RespondError(c, http.StatusConflict, ErrTabNotEmpty)
		return
	}

	if err := tc.DB.Delete(&models.Tab{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventTabDelete, gin.H{"tab_id": id})
	utils.RespondJSON(c, http.StatusOK, "Tab deleted", gin.H{"tab_id": id})
}

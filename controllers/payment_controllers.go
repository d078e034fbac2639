package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasvieira/comanda-app/ledger"
	"github.com/lucasvieira/comanda-app/live"
	"github.com/lucasvieira/comanda-app/models"
	"github.com/lucasvieira/comanda-app/utils"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// AddPayment -> record a (possibly partial) payment on a tab and advance the
// tab status: paying while a remainder stays open, paid once settled within
// the epsilon.
func (pc *PaymentController) AddPayment(c *gin.Context) {
	idStr := c.Param("tab_id")
	id, _ := strconv.Atoi(idStr)

	type reqBody struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
		Method string  `json:"method"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Method == "" {
		req.Method = "dinheiro"
	}

	var tab models.Tab
	if err := pc.DB.Preload("Items.MenuItem").Preload("Payments").First(&tab, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if tab.Status == ledger.StatusPaid {
		utils.RespondError(c, http.StatusConflict, ErrTabPaid)
		return
	}

	payment := models.Payment{
		TabID:  tab.ID,
		Amount: req.Amount,
		Method: req.Method,
	}
	if err := pc.DB.Create(&payment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	tab.Payments = append(tab.Payments, payment)
	totals := ledger.Totals(tab.Snapshot())

	if ledger.SettledInFull(totals) {
		tab.Status = ledger.StatusPaid
		now := payment.CreatedAt
		tab.PaidAt = &now
	} else {
		tab.Status = ledger.StatusPaying
	}
	if err := pc.DB.Save(&tab).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Payment of %s (%s) on tab %d, status now %s",
		ledger.FormatBRL(payment.Amount), payment.Method, tab.ID, tab.Status)
	live.Broadcast(live.EventPaymentUpdate, gin.H{"tab_id": tab.ID, "status": tab.Status})

	utils.RespondJSON(c, http.StatusCreated, "Payment recorded", gin.H{
		"payment":        payment,
		"totals":         totals,
		"partially_paid": ledger.PartiallyPaid(totals),
		"tab_status":     tab.Status,
	})
}

// GetPayments -> payments of one tab.
func (pc *PaymentController) GetPayments(c *gin.Context) {
	idStr := c.Param("tab_id")
	id, _ := strconv.Atoi(idStr)

	var payments []models.Payment
	if err := pc.DB.Where("tab_id = ?", id).Order("created_at").Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of payments", payments)
}

// DeletePayment -> undo a mistyped payment while the tab is still open.
func (pc *PaymentController) DeletePayment(c *gin.Context) {
	tabID, _ := strconv.Atoi(c.Param("tab_id"))
	paymentID, _ := strconv.Atoi(c.Param("payment_id"))

	var tab models.Tab
	if err := pc.DB.First(&tab, tabID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if tab.Status == ledger.StatusPaid {
		utils.RespondError(c, http.StatusConflict, ErrTabPaid)
		return
	}

	if err := pc.DB.Where("tab_id = ?", tabID).Delete(&models.Payment{}, paymentID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventPaymentUpdate, gin.H{"tab_id": tabID})
	utils.RespondJSON(c, http.StatusOK, "Payment deleted", gin.H{"payment_id": paymentID})
}

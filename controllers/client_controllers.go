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

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

// GetAllClients -> full client list.
func (cc *ClientController) GetAllClients(c *gin.Context) {
	var clients []models.Client
	if err := cc.DB.Find(&clients).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of clients", clients)
}

// CreateClient -> register a named client. An exact (case-insensitive)
// duplicate is always rejected; a similar name answers 409 with the
// candidates so the operator confirms with force=true.
func (cc *ClientController) CreateClient(c *gin.Context) {
	type reqBody struct {
		Name     string  `json:"name" binding:"required"`
		Phone    *string `json:"phone"`
		Document *string `json:"document"`
		Force    bool    `json:"force"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing []models.Client
	if err := cc.DB.Find(&existing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var similar []string
	for _, cl := range existing {
		if ledger.NormalizeName(cl.Name) == ledger.NormalizeName(req.Name) {
			utils.RespondError(c, http.StatusConflict, ErrClientExists)
			return
		}
		if utils.SimilarNames(cl.Name, req.Name) {
			similar = append(similar, cl.Name)
		}
	}

	if len(similar) > 0 && !req.Force {
		c.JSON(http.StatusConflict, utils.JSONResponse{
			Status:  false,
			Message: ErrSimilarClient.Error(),
			Data:    gin.H{"candidates": similar},
		})
		return
	}

	client := models.Client{
		Name:     req.Name,
		Phone:    req.Phone,
		Document: req.Document,
	}
	if err := cc.DB.Create(&client).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New client registered: %s (ID=%d)", client.Name, client.ID)
	live.Broadcast(live.EventClientUpdate, client)

	utils.RespondJSON(c, http.StatusCreated, "Client created", client)
}

// GetClientByID -> detail with credit entries.
func (cc *ClientController) GetClientByID(c *gin.Context) {
	idStr := c.Param("client_id")
	id, _ := strconv.Atoi(idStr)

	var client models.Client
	if err := cc.DB.Preload("CreditEntries").First(&client, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client detail", client)
}

// GetClientBalance -> the net balance the client would carry into a fresh
// tab right now (negative = owes).
func (cc *ClientController) GetClientBalance(c *gin.Context) {
	idStr := c.Param("client_id")
	id, _ := strconv.Atoi(idStr)

	var client models.Client
	if err := cc.DB.First(&client, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	balance, err := carriedBalanceFor(cc.DB, client.Name, 0)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client balance", gin.H{
		"client_id":       client.ID,
		"name":            client.Name,
		"balance":         balance,
		"balance_display": ledger.FormatBRL(balance),
	})
}

// UpdateClient -> rename / contact data.
func (cc *ClientController) UpdateClient(c *gin.Context) {
	idStr := c.Param("client_id")
	id, _ := strconv.Atoi(idStr)

	type reqBody struct {
		Name     *string `json:"name"`
		Phone    *string `json:"phone"`
		Document *string `json:"document"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var client models.Client
	if err := cc.DB.First(&client, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = req.Phone
	}
	if req.Document != nil {
		client.Document = req.Document
	}

	if err := cc.DB.Save(&client).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventClientUpdate, client)
	utils.RespondJSON(c, http.StatusOK, "Client updated", client)
}

// DeleteClient
func (cc *ClientController) DeleteClient(c *gin.Context) {
	idStr := c.Param("client_id")
	id, _ := strconv.Atoi(idStr)

	if err := cc.DB.Delete(&models.Client{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client deleted", gin.H{"client_id": id})
}

// GetCreditEntries -> a client's manual ledger, newest first.
func (cc *ClientController) GetCreditEntries(c *gin.Context) {
	idStr := c.Param("client_id")
	id, _ := strconv.Atoi(idStr)

	var entries []models.ClientCreditEntry
	if err := cc.DB.Where("client_id = ?", id).Order("created_at desc").Find(&entries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of credit entries", entries)
}

// CreateCreditEntry -> manual credit (positive) or debit (negative).
func (cc *ClientController) CreateCreditEntry(c *gin.Context) {
	idStr := c.Param("client_id")
	id, _ := strconv.Atoi(idStr)

	type reqBody struct {
		Amount float64 `json:"amount" binding:"required"`
		Method string  `json:"method" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var client models.Client
	if err := cc.DB.First(&client, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	entry := models.ClientCreditEntry{
		ClientID: client.ID,
		Amount:   req.Amount,
		Method:   req.Method,
	}
	if err := cc.DB.Create(&entry).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Credit entry of %s (%s) for client %s",
		ledger.FormatBRL(entry.Amount), entry.Method, client.Name)
	live.Broadcast(live.EventClientUpdate, gin.H{"client_id": client.ID})

	utils.RespondJSON(c, http.StatusCreated, "Credit entry created", entry)
}

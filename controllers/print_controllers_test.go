package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/lucasvieira/comanda-app/models"
	"github.com/lucasvieira/comanda-app/utils"
)

func setupPrintRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tabCtrl := NewTabController(db)
	printCtrl := NewPrintController(db)
	r.POST("/tabs", tabCtrl.CreateTab)
	r.POST("/tabs/:tab_id/items", tabCtrl.AddItems)
	r.POST("/tabs/:tab_id/print/kitchen", printCtrl.PrintKitchenTicket)
	r.GET("/tabs/:tab_id/receipt", printCtrl.GetReceipt)
	r.GET("/tabs/:tab_id/share", printCtrl.GetShareMessage)
	return r
}

func TestKitchenTicketPrintsOnlyNewItems(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTabs(t, "print_kitchen")
	r := setupPrintRouter(db)

	doJSON(t, r, "POST", "/tabs", map[string]interface{}{"kind": "table", "identifier": "4"})
	doJSON(t, r, "POST", "/tabs/1/items", map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": 1, "quantity": 2, "comment": "sem cebola"},
		},
	})

	w := doJSON(t, r, "POST", "/tabs/1/print/kitchen", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := respData(t, w)
	ticket := data["ticket"].(string)
	assert.Contains(t, ticket, "*** COZINHA ***")
	assert.Contains(t, ticket, "MESA 4")
	assert.Contains(t, ticket, "2x Burger")
	assert.Contains(t, ticket, "Obs: sem cebola")

	// Nothing changed, so an immediate reprint is a no-op.
	w = doJSON(t, r, "POST", "/tabs/1/print/kitchen", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No new items to print", resp["message"])
	assert.Nil(t, resp["data"])

	// More of the same line: only the remainder goes out.
	doJSON(t, r, "POST", "/tabs/1/items", map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": 1, "quantity": 1, "comment": "sem cebola"},
		},
	})
	w = doJSON(t, r, "POST", "/tabs/1/print/kitchen", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	ticket = respData(t, w)["ticket"].(string)
	assert.Contains(t, ticket, "1x Burger")
	assert.NotContains(t, ticket, "2x Burger")
}

func TestCustomerReceiptLayout(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTabs(t, "print_receipt")
	r := setupPrintRouter(db)

	doJSON(t, r, "POST", "/tabs", map[string]interface{}{"kind": "table", "identifier": "7"})
	doJSON(t, r, "POST", "/tabs/1/items", map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": 1, "quantity": 1},
			{"menu_item_id": 2, "quantity": 2},
		},
	})

	w := doJSON(t, r, "GET", "/tabs/1/receipt", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := respData(t, w)

	receipt := data["receipt"].(string)
	assert.Contains(t, receipt, "COMANDA")
	assert.Contains(t, receipt, "MESA 7")
	assert.Contains(t, receipt, "R$ 41,50")
	// No payment yet, so the PAGO line is absent.
	assert.NotContains(t, receipt, "PAGO")

	for _, line := range strings.Split(receipt, "\n") {
		assert.LessOrEqual(t, len(line), 40)
	}
}

func TestShareMessageIncludesCarriedDebt(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTabs(t, "print_share")
	r := setupPrintRouter(db)

	db.Create(&models.Client{Name: "Bruno"})
	db.Create(&models.ClientCreditEntry{ClientID: 1, Amount: -20.0, Method: "saldo"})

	doJSON(t, r, "POST", "/tabs", map[string]interface{}{"kind": "name", "identifier": "Bruno"})
	doJSON(t, r, "POST", "/tabs/1/items", map[string]interface{}{
		"items": []map[string]interface{}{{"menu_item_id": 2, "quantity": 1}},
	})

	w := doJSON(t, r, "GET", "/tabs/1/share", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	msg := respData(t, w)["message"].(string)

	assert.Contains(t, msg, "Comanda BRUNO")
	assert.Contains(t, msg, "1x Soda")
	assert.Contains(t, msg, "Saldo anterior: R$ -20,00")
	// 20 owed + 8 consumed, nothing paid.
	assert.Contains(t, msg, "Total a pagar: R$ 28,00")
}

package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucasvieira/comanda-app/ledger"
	"github.com/lucasvieira/comanda-app/models"
	"github.com/lucasvieira/comanda-app/utils"
)

// Each test gets its own named in-memory database; cache=shared keeps it
// visible across the pool's connections.
func setupTestDBForTabs(t *testing.T, name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.MenuItem{}, &models.Tab{}, &models.TabItem{},
		&models.Payment{}, &models.Client{}, &models.ClientCreditEntry{}, &models.PrintedItem{})
	if err != nil {
		t.Fatal(err)
	}

	db.Create(&models.MenuItem{Name: "Burger", Price: 25.50, Category: "lanches", Stock: 10, Active: true})
	db.Create(&models.MenuItem{Name: "Soda", Price: 8.00, Category: "bebidas", Stock: 10, Active: true})
	return db
}

func setupTabRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tabCtrl := NewTabController(db)
	paymentCtrl := NewPaymentController(db)
	r.POST("/tabs", tabCtrl.CreateTab)
	r.GET("/tabs/:tab_id", tabCtrl.GetTabByID)
	r.POST("/tabs/:tab_id/items", tabCtrl.AddItems)
	r.POST("/tabs/:tab_id/payments", paymentCtrl.AddPayment)
	r.POST("/tabs/:tab_id/close", tabCtrl.CloseTab)
	r.DELETE("/tabs/:tab_id", tabCtrl.DeleteTab)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func respData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	if resp["data"] == nil {
		return nil
	}
	return resp["data"].(map[string]interface{})
}

func TestCreateTabAndDetail(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTabs(t, "tabs_detail")
	r := setupTabRouter(db)

	w := doJSON(t, r, "POST", "/tabs", map[string]interface{}{
		"kind":       "table",
		"identifier": "5",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	tabID := int(respData(t, w)["id"].(float64))

	// One burger plus two sodas, the second soda on its own line.
	w = doJSON(t, r, "POST", "/tabs/1/items", map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": 1, "quantity": 1},
			{"menu_item_id": 2, "quantity": 1},
			{"menu_item_id": 2, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "GET", "/tabs/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := respData(t, w)

	totals := data["totals"].(map[string]interface{})
	assert.InDelta(t, 41.50, totals["subtotal"].(float64), 1e-9)
	assert.InDelta(t, 41.50, totals["remaining"].(float64), 1e-9)

	// Duplicate soda lines collapse into one display line.
	lines := data["lines"].([]interface{})
	assert.Len(t, lines, 2)
	soda := lines[1].(map[string]interface{})
	assert.Equal(t, float64(2), soda["quantity"])

	rec := data["reconciliation"].(map[string]interface{})
	assert.InDelta(t, 41.50, rec["total_to_pay"].(float64), 1e-9)
	assert.Equal(t, "R$ 41,50", data["total_display"])
	assert.Equal(t, 1, tabID)
}

func TestPartialThenFullPayment(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTabs(t, "tabs_payment")
	r := setupTabRouter(db)

	doJSON(t, r, "POST", "/tabs", map[string]interface{}{"kind": "table", "identifier": "2"})
	doJSON(t, r, "POST", "/tabs/1/items", map[string]interface{}{
		"items": []map[string]interface{}{{"menu_item_id": 2, "quantity": 2}},
	})

	w := doJSON(t, r, "POST", "/tabs/1/payments", map[string]interface{}{
		"amount": 10.0, "method": "pix",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := respData(t, w)
	assert.Equal(t, "paying", data["tab_status"])
	assert.Equal(t, true, data["partially_paid"])

	w = doJSON(t, r, "POST", "/tabs/1/payments", map[string]interface{}{
		"amount": 6.0, "method": "dinheiro",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data = respData(t, w)
	assert.Equal(t, "paid", data["tab_status"])

	// A paid tab rejects further payments.
	w = doJSON(t, r, "POST", "/tabs/1/payments", map[string]interface{}{"amount": 1.0})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCloseTabCarriesDebtToClientLedger(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTabs(t, "tabs_close")
	r := setupTabRouter(db)

	db.Create(&models.Client{Name: "Ana"})

	doJSON(t, r, "POST", "/tabs", map[string]interface{}{"kind": "name", "identifier": "ANA"})
	doJSON(t, r, "POST", "/tabs/1/items", map[string]interface{}{
		"items": []map[string]interface{}{{"menu_item_id": 1, "quantity": 1}},
	})
	doJSON(t, r, "POST", "/tabs/1/payments", map[string]interface{}{"amount": 10.0})

	w := doJSON(t, r, "POST", "/tabs/1/close", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var tab models.Tab
	db.First(&tab, 1)
	assert.Equal(t, ledger.StatusPaid, tab.Status)
	assert.NotNil(t, tab.PaidAt)

	// 25.50 - 10 = 15.50 outstanding, written as a debit.
	var entry models.ClientCreditEntry
	assert.NoError(t, db.First(&entry).Error)
	assert.InDelta(t, -15.50, entry.Amount, 1e-9)
	assert.Equal(t, "saldo", entry.Method)
}

func TestDeleteTabOnlyWhenEmpty(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTabs(t, "tabs_delete")
	r := setupTabRouter(db)

	doJSON(t, r, "POST", "/tabs", map[string]interface{}{"kind": "table", "identifier": "9"})
	doJSON(t, r, "POST", "/tabs/1/items", map[string]interface{}{
		"items": []map[string]interface{}{{"menu_item_id": 1, "quantity": 1}},
	})

	w := doJSON(t, r, "DELETE", "/tabs/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	doJSON(t, r, "POST", "/tabs", map[string]interface{}{"kind": "table", "identifier": "10"})
	w = doJSON(t, r, "DELETE", "/tabs/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddItemsConsumesStock(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTabs(t, "tabs_stock")
	r := setupTabRouter(db)

	doJSON(t, r, "POST", "/tabs", map[string]interface{}{"kind": "table", "identifier": "3"})
	doJSON(t, r, "POST", "/tabs/1/items", map[string]interface{}{
		"items": []map[string]interface{}{{"menu_item_id": 2, "quantity": 4}},
	})

	var item models.MenuItem
	db.First(&item, 2)
	assert.Equal(t, 6, item.Stock)
}

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucasvieira/comanda-app/utils"
)

func TestGlobalRateLimitCoversRoutes(t *testing.T) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:router_rate?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	r := SetupRouter(db)

	// 50 requests per second per IP; the 51st inside the window gets cut off.
	last := 0
	for i := 0; i < 60; i++ {
		w := httptest.NewRecorder()
		req, reqErr := http.NewRequest("GET", "/ping", nil)
		assert.NoError(t, reqErr)
		r.ServeHTTP(w, req)
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasvieira/comanda-app/utils"
)

// PrintLoggerMiddleware traces kitchen/receipt printing requests per tab.
func PrintLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.InfoLogger.Printf("Rendering print output for tab ID: %s", c.Param("tab_id"))

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			utils.InfoLogger.Printf("Print output rendered for tab ID: %s", c.Param("tab_id"))
		} else {
			utils.ErrorLogger.Printf("Failed to render print output for tab ID: %s (status %d)", c.Param("tab_id"), c.Writer.Status())
		}
	}
}

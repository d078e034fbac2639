package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasvieira/comanda-app/controllers"
	"github.com/lucasvieira/comanda-app/live"
	"github.com/lucasvieira/comanda-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	userCtrl := controllers.NewUserController(db)
	tabCtrl := controllers.NewTabController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	clientCtrl := controllers.NewClientController(db)
	menuCtrl := controllers.NewMenuController(db)
	printCtrl := controllers.NewPrintController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Operator board (cashier/waiter screens), token via query string.
	ws := r.Group("/ws")
	ws.Use(middlewares.WebSocketAuthMiddleware())
	{
		ws.GET("/board", live.BoardHandler)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())

	api.GET("/profile", userCtrl.GetProfile)
	api.POST("/logout", userCtrl.Logout)
	api.GET("/users", userCtrl.GetAllUsers)

	// TABS (comandas)
	api.GET("/tabs", tabCtrl.GetAllTabs)
	api.POST("/tabs", tabCtrl.CreateTab)
	api.GET("/tabs/:tab_id", tabCtrl.GetTabByID)
	api.PATCH("/tabs/:tab_id", tabCtrl.UpdateTab)
	api.DELETE("/tabs/:tab_id", tabCtrl.DeleteTab)
	api.POST("/tabs/:tab_id/close", tabCtrl.CloseTab)

	// TAB ITEMS
	api.POST("/tabs/:tab_id/items", tabCtrl.AddItems)
	api.PATCH("/tabs/:tab_id/items/:item_id", tabCtrl.UpdateItem)
	api.DELETE("/tabs/:tab_id/items/:item_id", tabCtrl.DeleteItem)

	// PAYMENTS
	api.GET("/tabs/:tab_id/payments", paymentCtrl.GetPayments)
	api.POST("/tabs/:tab_id/payments", paymentCtrl.AddPayment)
	api.DELETE("/tabs/:tab_id/payments/:payment_id", middlewares.RequireRole("caixa"), paymentCtrl.DeletePayment)

	// PRINTING with per-tab trace logging
	printGroup := api.Group("/tabs/:tab_id")
	printGroup.Use(middlewares.PrintLoggerMiddleware())
	{
		printGroup.POST("/print/kitchen", printCtrl.PrintKitchenTicket)
		printGroup.GET("/receipt", printCtrl.GetReceipt)
		printGroup.GET("/share", printCtrl.GetShareMessage)
	}

	// CLIENTS and credit ledger
	api.GET("/clients", clientCtrl.GetAllClients)
	api.POST("/clients", clientCtrl.CreateClient)
	api.GET("/clients/:client_id", clientCtrl.GetClientByID)
	api.PATCH("/clients/:client_id", clientCtrl.UpdateClient)
	api.DELETE("/clients/:client_id", clientCtrl.DeleteClient)
	api.GET("/clients/:client_id/balance", clientCtrl.GetClientBalance)
	api.GET("/clients/:client_id/credits", clientCtrl.GetCreditEntries)
	api.POST("/clients/:client_id/credits", clientCtrl.CreateCreditEntry)

	// MENU / inventory
	api.GET("/menu-items", menuCtrl.GetAllMenuItems)
	api.POST("/menu-items", menuCtrl.CreateMenuItem)
	api.GET("/menu-items/:menu_id", menuCtrl.GetMenuItemByID)
	api.PATCH("/menu-items/:menu_id", menuCtrl.UpdateMenuItem)
	api.DELETE("/menu-items/:menu_id", middlewares.RequireRole("admin"), menuCtrl.DeleteMenuItem)
	api.POST("/menu-items/:menu_id/stock", menuCtrl.AdjustStock)

	return r
}

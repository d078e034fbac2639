package live

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lucasvieira/comanda-app/utils"
)

// Event types pushed to operator screens.
const (
	EventTabUpdate     = "tab_update"
	EventTabDelete     = "tab_delete"
	EventPaymentUpdate = "payment_update"
	EventPrintQueued   = "print_queued"
	EventClientUpdate  = "client_update"
	EventStockUpdate   = "stock_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// BoardHub holds every connected operator screen (cashier, waiter, kitchen)
// and fans events out to all of them.
type BoardHub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var boardHub = BoardHub{
	clients: make(map[*websocket.Conn]string),
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Auth happens in the websocket middleware; the origin check would block
	// the local operator frontends.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// BoardHandler upgrades the request and keeps the connection registered
// until the peer goes away.
func BoardHandler(c *gin.Context) {
	role := c.GetString("role")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("board upgrade failed: %v", err)
		return
	}

	register(conn, role)
	utils.InfoLogger.Printf("board client connected (role=%s)", role)

	go func() {
		defer unregister(conn)
		for {
			// Screens never send anything useful; the read loop only detects
			// disconnects.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func register(conn *websocket.Conn, role string) {
	boardHub.mutex.Lock()
	defer boardHub.mutex.Unlock()
	boardHub.clients[conn] = role
}

func unregister(conn *websocket.Conn) {
	boardHub.mutex.Lock()
	defer boardHub.mutex.Unlock()
	delete(boardHub.clients, conn)
	conn.Close()
}

// Broadcast sends an event to every connected screen. Dead connections are
// dropped on write failure.
func Broadcast(event string, data interface{}) {
	boardHub.mutex.Lock()
	defer boardHub.mutex.Unlock()

	msg := Message{Event: event, Data: data}
	for conn := range boardHub.clients {
		if err := conn.WriteJSON(msg); err != nil {
			utils.ErrorLogger.Printf("board write failed, dropping client: %v", err)
			delete(boardHub.clients, conn)
			conn.Close()
		}
	}
}

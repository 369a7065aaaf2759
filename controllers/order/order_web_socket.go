package orderControllers

import (
	"net/http"
	"sync"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

type orderEvent struct {
	Type    string             `json:"type"` // "order_placed" or "status_changed"
	OrderID string             `json:"order_id"`
	Status  models.OrderStatus `json:"status,omitempty"`
	Order   *models.Order      `json:"order,omitempty"`
}

// OrderWebSocketHandler handles GET /admin/orders/ws — a live feed of new
// orders and status changes for the back office.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

func broadcast(event orderEvent) {
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		if err := client.WriteJSON(event); err != nil {
			client.Close()
			delete(wsClients, client)
		}
	}
}

func broadcastNewOrder(order *models.Order) {
	broadcast(orderEvent{Type: "order_placed", OrderID: order.ID, Status: order.Status, Order: order})
}

func broadcastStatusChange(orderID string, status models.OrderStatus) {
	broadcast(orderEvent{Type: "status_changed", OrderID: orderID, Status: status})
}

package notify

import (
	"log"

	ws "github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// Handler returns a gin handler that upgrades the connection to
// WebSocket and runs it as a hub client.
func Handler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := ws.Accept(c.Writer, c.Request, &ws.AcceptOptions{
			// The app serves a single user on localhost or a home LAN.
			InsecureSkipVerify: true,
		})
		if err != nil {
			log.Printf("notify: websocket accept failed: %v", err)
			return
		}

		client := NewClient(hub, conn)
		client.Run(c.Request.Context())
	}
}

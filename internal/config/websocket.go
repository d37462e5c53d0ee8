package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

// NewWebSocket builds the upgrader for game connections. Origins are not
// checked; the CORS middleware is just as permissive.
func NewWebSocket() (*WebSocket, error) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader: upgrader,
	}

	return ws, nil
}

// Package httpapi exposes the server's HTTP surface: health check, room id
// registration, and the websocket upgrade endpoint.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dragonrelay/internal/hub"
	"dragonrelay/internal/ws"
)

func SetupRoutes(log *zap.Logger, h *hub.Hub) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", Health)
	r.Get("/register-room", RegisterRoom(log, h.Rooms()))
	r.Get("/echo/{name}", ws.Handler(log, h))
	return r
}

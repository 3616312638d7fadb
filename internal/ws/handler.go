// Package ws runs the per-connection read and write loops around the hub.
package ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"dragonrelay/internal/hub"
	"dragonrelay/internal/protocol"
	"dragonrelay/internal/registry"
	"dragonrelay/internal/session"
)

const (
	outboxSize   = 32
	writeTimeout = 3 * time.Second
)

// Handler upgrades GET /echo/{name} and ties the connection's lifetime to a
// registered session: read-decode-dispatch on this goroutine, outbox drain
// on a second one, registry and room cleanup on exit.
func Handler(log *zap.Logger, h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if name == "" {
			http.Error(w, "missing name", http.StatusBadRequest)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		log := log.With(zap.String("name", name), zap.String("conn_id", uuid.NewString()))

		sess := session.New(name, outboxSize)
		if err := h.Connect(sess); err != nil {
			if errors.Is(err, registry.ErrNameTaken) {
				writeMsg(r.Context(), conn, &protocol.UserExists{}, log)
			}
			return
		}
		defer h.Disconnect(sess)

		writeCtx, writeCancel := context.WithCancel(context.Background())
		defer writeCancel()
		go writeLoop(writeCtx, conn, sess, log)

		for {
			typ, frame, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				default:
					log.Debug("read loop ended", zap.Error(err))
				}
				return
			}
			if typ != websocket.MessageText {
				continue
			}

			msg, err := protocol.Decode(frame)
			if err != nil {
				if errors.Is(err, protocol.ErrUnknownAction) {
					sess.SendError(protocol.ReasonInvalidCommand)
				} else {
					log.Warn("dropping malformed frame", zap.Error(err))
				}
				continue
			}
			h.Dispatch(sess, msg)
		}
	}
}

// writeLoop drains the session outbox into websocket frames, so a slow peer
// stalls only its own queue and never the dispatch path.
func writeLoop(ctx context.Context, conn *websocket.Conn, sess *session.Session, log *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sess.Done():
			return
		case msg := <-sess.Outbox():
			writeMsg(ctx, conn, msg, log)
		}
	}
}

func writeMsg(ctx context.Context, conn *websocket.Conn, msg protocol.Outbound, log *zap.Logger) {
	frame, err := protocol.Encode(msg)
	if err != nil {
		log.Error("encoding outbound message", zap.Error(err))
		return
	}
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := conn.Write(wctx, websocket.MessageText, frame); err != nil {
		log.Debug("write failed", zap.String("action", msg.Action()), zap.Error(err))
	}
}

// Package hub wires the registries, the catalog, and the battle engine
// together. It routes each decoded client message to the handler matching
// the sender's live session state; clients never get to declare their own
// room or battle context.
package hub

import (
	"go.uber.org/zap"

	"dragonrelay/internal/data"
	"dragonrelay/internal/protocol"
	"dragonrelay/internal/registry"
	"dragonrelay/internal/session"
)

type Hub struct {
	log     *zap.Logger
	users   *registry.Users
	rooms   *registry.Rooms
	catalog *data.Catalog
}

func New(log *zap.Logger, catalog *data.Catalog) *Hub {
	return &Hub{
		log:     log,
		users:   registry.NewUsers(),
		rooms:   registry.NewRooms(),
		catalog: catalog,
	}
}

func (h *Hub) Users() *registry.Users { return h.users }
func (h *Hub) Rooms() *registry.Rooms { return h.rooms }

// Connect claims the session's name and announces it to everyone still in
// the main room. registry.ErrNameTaken means the caller must refuse the
// connection; the existing session is untouched.
func (h *Hub) Connect(s *session.Session) error {
	if err := h.users.Register(s); err != nil {
		return err
	}
	h.log.Info("client connected", zap.String("name", s.Name()))
	h.users.BroadcastLobby(&protocol.Welcome{Name: s.Name()})
	return nil
}

// Disconnect removes the session from the user registry and from its room,
// tearing the room down if it was the last member.
func (h *Hub) Disconnect(s *session.Session) {
	h.users.Remove(s.Name())
	if id := s.RoomID(); id != "" {
		h.rooms.Leave(id, s.Name())
		s.SetRoomID("")
	}
	s.Close()
	h.log.Info("user disconnected", zap.String("name", s.Name()))
}

// Dispatch routes one decoded message. Validation failures reply to the
// sender only and never leave state partially applied.
func (h *Hub) Dispatch(s *session.Session, msg protocol.Inbound) {
	switch m := msg.(type) {
	case *protocol.Chat:
		h.handleChat(s, m)
	case *protocol.CreateRoom:
		h.handleCreateRoom(s)
	case *protocol.JoinRoom:
		h.handleJoinRoom(s, m)
	case *protocol.LeaveRoom:
		h.handleLeaveRoom(s)
	case *protocol.StartBattle:
		h.handleStartBattle(s, m)
	case *protocol.UseMove:
		h.handleUseMove(s, m)
	case *protocol.Switch:
		h.handleSwitch(s, m)
	default:
		s.SendError(protocol.ReasonInvalidCommand)
	}
}

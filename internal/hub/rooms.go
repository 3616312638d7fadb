package hub

import (
	"go.uber.org/zap"

	"dragonrelay/internal/protocol"
	"dragonrelay/internal/session"
)

// handleChat relays a chat line to the sender's room, or to every connected
// user when the sender is in the main room.
func (h *Hub) handleChat(s *session.Session, m *protocol.Chat) {
	notify := &protocol.ChatNotify{Msg: m.Msg, SourceName: s.Name()}
	roomID := s.RoomID()
	if roomID == "" {
		h.users.BroadcastAll(notify)
		return
	}
	members, ok := h.rooms.Members(roomID)
	if !ok {
		// Room vanished under us; deliver as main-room chat.
		h.users.BroadcastAll(notify)
		return
	}
	h.users.Broadcast(members, notify)
}

// handleCreateRoom makes a fresh room with the sender as sole member,
// leaving any previous room first.
func (h *Hub) handleCreateRoom(s *session.Session) {
	if prev := s.RoomID(); prev != "" {
		h.rooms.Leave(prev, s.Name())
		s.SetRoomID("")
	}
	id, err := h.rooms.Create(s.Name())
	if err != nil {
		h.log.Error("room creation failed", zap.String("name", s.Name()), zap.Error(err))
		return
	}
	s.SetRoomID(id)
	s.Send(&protocol.RoomCreated{RoomID: id})
	h.log.Info("room created", zap.String("room_id", id), zap.String("owner", s.Name()))
}

// handleJoinRoom moves the sender into the named room. An unknown id fails
// the request without touching the sender's current membership.
func (h *Hub) handleJoinRoom(s *session.Session, m *protocol.JoinRoom) {
	if !h.rooms.Move(s.RoomID(), m.RoomID, s.Name()) {
		s.Send(&protocol.RoomJoinStatus{RoomID: m.RoomID, Succeeded: false})
		return
	}
	s.SetRoomID(m.RoomID)
	s.Send(&protocol.RoomJoinStatus{RoomID: m.RoomID, Succeeded: true})
}

func (h *Hub) handleLeaveRoom(s *session.Session) {
	roomID := s.RoomID()
	if roomID == "" {
		s.SendError(protocol.ReasonAlreadyInMainRoom)
		return
	}
	h.rooms.Leave(roomID, s.Name())
	s.SetRoomID("")
}

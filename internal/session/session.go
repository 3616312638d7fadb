// Package session holds the per-connection handle shared between the read
// side (dispatch) and the write side (outbox drain).
package session

import (
	"sync"

	"dragonrelay/internal/protocol"
)

// Session is one live connection: its claimed name, its outbound queue, and
// the room it currently occupies. The outbox is drained by the connection's
// writer goroutine; Send never blocks and drops on a full queue so callers
// can deliver while holding registry sections.
type Session struct {
	name   string
	outbox chan protocol.Outbound
	done   chan struct{}
	once   sync.Once

	mu     sync.Mutex
	roomID string
}

func New(name string, buffer int) *Session {
	return &Session{
		name:   name,
		outbox: make(chan protocol.Outbound, buffer),
		done:   make(chan struct{}),
	}
}

func (s *Session) Name() string { return s.name }

// Outbox is the writer goroutine's receive end.
func (s *Session) Outbox() <-chan protocol.Outbound { return s.outbox }

// Done is closed once the session is shut down.
func (s *Session) Done() <-chan struct{} { return s.done }

// Send queues msg for delivery. It reports false when the session is closed
// or the outbox is full; a failed delivery is this recipient's problem and
// must never fail the flow that triggered it.
func (s *Session) Send(msg protocol.Outbound) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.outbox <- msg:
		return true
	default:
		return false
	}
}

// SendError queues a request_error with the given reason.
func (s *Session) SendError(reason string) bool {
	return s.Send(&protocol.RequestError{Reason: reason})
}

// Close releases the writer goroutine. Safe to call more than once; the
// outbox channel itself is never closed so late Sends cannot panic.
func (s *Session) Close() {
	s.once.Do(func() { close(s.done) })
}

// RoomID returns the id of the room the session is in, or "" when in the
// main room. Membership truth lives in the room registry; this field follows
// it for the session's own dispatch flow.
func (s *Session) RoomID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomID
}

func (s *Session) SetRoomID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomID = id
}

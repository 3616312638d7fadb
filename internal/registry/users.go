// Package registry holds the process-wide user and room registries. Each is
// one shared structure behind its own exclusive section; callers get
// operations, never raw map access. When a handler needs both, it resolves
// session handles here first and only then enters the room section — the two
// locks are never held together.
package registry

import (
	"errors"
	"sync"

	"dragonrelay/internal/protocol"
	"dragonrelay/internal/session"
)

var ErrNameTaken = errors.New("user name already taken")

// Users maps claimed names to live sessions and enforces name uniqueness.
type Users struct {
	mu       sync.Mutex
	sessions map[string]*session.Session
}

func NewUsers() *Users {
	return &Users{sessions: make(map[string]*session.Session)}
}

// Register claims the session's name. ErrNameTaken leaves the existing
// session untouched.
func (u *Users) Register(s *session.Session) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, exists := u.sessions[s.Name()]; exists {
		return ErrNameTaken
	}
	u.sessions[s.Name()] = s
	return nil
}

// Remove drops the name's session, returning it for room-exit cleanup.
func (u *Users) Remove(name string) *session.Session {
	u.mu.Lock()
	defer u.mu.Unlock()
	s := u.sessions[name]
	delete(u.sessions, name)
	return s
}

func (u *Users) Get(name string) (*session.Session, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[name]
	return s, ok
}

func (u *Users) Count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.sessions)
}

// Broadcast delivers msg to every named recipient that still has a session.
// Delivery failures are independent per recipient.
func (u *Users) Broadcast(names []string, msg protocol.Outbound) {
	for _, s := range u.snapshot(names) {
		s.Send(msg)
	}
}

// BroadcastAll delivers msg to every connected user.
func (u *Users) BroadcastAll(msg protocol.Outbound) {
	for _, s := range u.all() {
		s.Send(msg)
	}
}

// BroadcastLobby delivers msg to every user currently in no room.
func (u *Users) BroadcastLobby(msg protocol.Outbound) {
	for _, s := range u.all() {
		if s.RoomID() == "" {
			s.Send(msg)
		}
	}
}

// Sessions resolves names to live session handles, skipping any that have
// disconnected since the caller took its member snapshot.
func (u *Users) Sessions(names []string) []*session.Session {
	return u.snapshot(names)
}

func (u *Users) snapshot(names []string) []*session.Session {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*session.Session, 0, len(names))
	for _, name := range names {
		if s, ok := u.sessions[name]; ok {
			out = append(out, s)
		}
	}
	return out
}

func (u *Users) all() []*session.Session {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*session.Session, 0, len(u.sessions))
	for _, s := range u.sessions {
		out = append(out, s)
	}
	return out
}

package registry

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"dragonrelay/internal/room"
)

var ErrRoomNotFound = errors.New("room not found")

const (
	roomIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"
	roomIDLength   = 5
)

// GenerateRoomID samples a fresh fixed-length uppercase-alphanumeric id.
// Uniqueness is the caller's job (Create resamples on collision).
func GenerateRoomID() (string, error) {
	id := make([]byte, roomIDLength)
	for i := range id {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(roomIDAlphabet))))
		if err != nil {
			return "", fmt.Errorf("generate room id: %w", err)
		}
		id[i] = roomIDAlphabet[n.Int64()]
	}
	return string(id), nil
}

// Rooms maps room ids to rooms. Room contents are part of the registry's
// exclusive section: mutations go through Update so one negotiation step or
// membership change completes under a single hold of the lock.
type Rooms struct {
	mu    sync.Mutex
	rooms map[string]*room.Room
}

func NewRooms() *Rooms {
	return &Rooms{rooms: make(map[string]*room.Room)}
}

// Create makes a room with owner as its sole member and returns its id,
// resampling on the off chance of an id collision.
func (r *Rooms) Create(owner string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		id, err := GenerateRoomID()
		if err != nil {
			return "", err
		}
		if _, taken := r.rooms[id]; taken {
			continue
		}
		r.rooms[id] = room.New(id, owner)
		return id, nil
	}
}

// Join appends name to the room's member list. A false return means the id
// is unknown and nothing was mutated.
func (r *Rooms) Join(id, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rooms[id]
	if !ok {
		return false
	}
	rm.Members = append(rm.Members, name)
	return true
}

// Leave removes name from the room's member list and deletes the room — and
// any battle state it held — the moment it empties.
func (r *Rooms) Leave(id, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rooms[id]
	if !ok {
		return
	}
	if rm.RemoveMember(name) {
		delete(r.rooms, id)
	}
}

// Move joins name to room toID, first removing it from fromID (pass "" when
// the user is in no room) so membership never exceeds one room. The whole
// step runs under one hold of the section. Moving into the current room is a
// no-op success. False means toID is unknown and nothing — including fromID
// membership — was mutated.
func (r *Rooms) Move(fromID, toID, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	target, ok := r.rooms[toID]
	if !ok {
		return false
	}
	if fromID == toID {
		return true
	}
	if prev, ok := r.rooms[fromID]; ok {
		if prev.RemoveMember(name) {
			delete(r.rooms, fromID)
		}
	}
	target.Members = append(target.Members, name)
	return true
}

// Members returns a copy of the room's member list.
func (r *Rooms) Members(id string) ([]string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rooms[id]
	if !ok {
		return nil, false
	}
	return append([]string(nil), rm.Members...), true
}

func (r *Rooms) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}

// Update runs fn on the room under the registry's exclusive section. fn must
// not call back into either registry; session sends are fine (they never
// block). ErrRoomNotFound is a caller bug for flows that checked membership
// first, but is surfaced rather than panicking.
func (r *Rooms) Update(id string, fn func(*room.Room) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rooms[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return fn(rm)
}

// Package room defines rooms and their battle state. A room is an ordered
// member list plus at most one battle in some stage of negotiation.
package room

import "slices"

type BattleState int

const (
	// StateNone: no battle activity.
	StateNone BattleState = iota
	// StatePrepared: one member proposed a battle, awaiting the opponent's
	// symmetric counter-proposal.
	StatePrepared
	// StateStarted: both sides confirmed; a live battle exists. Terminal
	// until the room is destroyed.
	StateStarted
)

// BattleStatus is the room's negotiation state machine position. Starter
// fields are meaningful in StatePrepared, Battle in StateStarted.
type BattleStatus struct {
	State         BattleState
	StarterName   string
	StarterRoster []string
	OtherName     string
	Battle        *Battle
}

// Room state is guarded by the room registry's exclusive section; nothing
// here locks.
type Room struct {
	ID      string
	Members []string
	Battle  BattleStatus
}

func New(id, initialMember string) *Room {
	return &Room{ID: id, Members: []string{initialMember}}
}

func (r *Room) HasMember(name string) bool {
	return slices.Contains(r.Members, name)
}

// RemoveMember drops name from the member list and reports whether the room
// is now empty (and must be deleted by the caller).
func (r *Room) RemoveMember(name string) bool {
	if i := slices.Index(r.Members, name); i >= 0 {
		r.Members = slices.Delete(r.Members, i, i+1)
	}
	return len(r.Members) == 0
}

package room

import (
	"dragonrelay/internal/engine"
	"dragonrelay/internal/protocol"
)

// Broadcaster delivers a message to the battle's bound recipients. The
// room messenger satisfies it; tests may pass a silent implementation.
type Broadcaster interface {
	Broadcast(msg protocol.Outbound)
}

// Action is one side's submitted turn action. Exactly one field is set;
// moves are resolved against the catalog before submission.
type Action struct {
	Move      *engine.Move
	SwitchIdx int
	IsSwitch  bool
}

// Battle is a live battle session: the fixed username↔side mapping, the
// battlefield it exclusively owns, and the slot holding the first of the two
// actions a turn needs before it resolves.
type Battle struct {
	side1       string
	side2       string
	Battlefield *engine.Battlefield
	Notify      Broadcaster

	pendingSide   engine.PartyID
	pendingAction *Action
}

func NewBattle(side1, side2 string, field *engine.Battlefield, notify Broadcaster) *Battle {
	return &Battle{side1: side1, side2: side2, Battlefield: field, Notify: notify}
}

// SideOf maps a username to its battle side, false for non-participants.
func (b *Battle) SideOf(name string) (engine.PartyID, bool) {
	switch name {
	case b.side1:
		return engine.Party1, true
	case b.side2:
		return engine.Party2, true
	}
	return 0, false
}

// UserOf maps a battle side back to its username.
func (b *Battle) UserOf(side engine.PartyID) string {
	if side == engine.Party1 {
		return b.side1
	}
	return b.side2
}

// Submit stores the side's action for the current turn. Once each side has
// one it returns both actions and clears the slot for the next turn; a
// resubmission by the waiting side replaces its earlier action.
func (b *Battle) Submit(side engine.PartyID, a Action) (map[engine.PartyID]Action, bool) {
	if b.pendingAction == nil || b.pendingSide == side {
		act := a
		b.pendingAction = &act
		b.pendingSide = side
		return nil, false
	}
	actions := map[engine.PartyID]Action{
		b.pendingSide: *b.pendingAction,
		side:          a,
	}
	b.pendingAction = nil
	return actions, true
}

// Waiting reports whether one side has submitted and which one.
func (b *Battle) Waiting() (engine.PartyID, bool) {
	if b.pendingAction == nil {
		return 0, false
	}
	return b.pendingSide, true
}

// Package relay adapts battle-simulation outcomes into outbound broadcasts.
// It is a pure translation layer: the engine runs identically whether a room
// messenger or a NopMessenger is attached.
package relay

import (
	"go.uber.org/zap"

	"dragonrelay/internal/engine"
	"dragonrelay/internal/protocol"
	"dragonrelay/internal/session"
)

// RoomMessenger broadcasts every battlefield outcome to the room members it
// was bound to at battle construction. Recipients are captured as session
// handles so delivery needs no registry lock; a member who joined after the
// battle started does not receive engine events.
type RoomMessenger struct {
	log        *zap.Logger
	recipients []*session.Session
}

func NewRoomMessenger(log *zap.Logger, recipients []*session.Session) *RoomMessenger {
	return &RoomMessenger{log: log, recipients: recipients}
}

// Broadcast delivers msg to every bound recipient. A full or closed outbox
// is that recipient's problem; the rest still get the message.
func (m *RoomMessenger) Broadcast(msg protocol.Outbound) {
	for _, s := range m.recipients {
		if !s.Send(msg) {
			m.log.Warn("dropping battle event for recipient",
				zap.String("recipient", s.Name()),
				zap.String("action", msg.Action()))
		}
	}
}

func (m *RoomMessenger) OnAttack(_ *engine.Battlefield, attacker engine.PartyID, moveName string) {
	m.Broadcast(&protocol.UseMoveNotify{Party: int(attacker), MoveName: moveName})
}

func (m *RoomMessenger) OnDamage(_ *engine.Battlefield, target engine.PartyID, amount int) {
	m.Broadcast(&protocol.DamageNotify{Party: int(target), Amount: amount})
}

func (m *RoomMessenger) OnSwitch(_ *engine.Battlefield, party engine.PartyID, _, to int) {
	m.Broadcast(&protocol.SwitchNotify{Party: int(party), NextIdx: to, SwitchAllowed: true})
}

func (m *RoomMessenger) OnEffectApplied(_ *engine.Battlefield, party engine.PartyID, effect string) {
	m.Broadcast(&protocol.EffectNotify{Party: int(party), Effect: effect})
}

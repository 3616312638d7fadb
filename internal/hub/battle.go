package hub

import (
	"sort"

	"go.uber.org/zap"

	"dragonrelay/internal/engine"
	"dragonrelay/internal/protocol"
	"dragonrelay/internal/relay"
	"dragonrelay/internal/room"
	"dragonrelay/internal/session"
)

const maxRosterSize = 6

// handleStartBattle advances the room's negotiation state machine:
// None -> Prepared on the first proposal, Prepared -> Started when the named
// opponent answers with the symmetric counter-proposal. Any guard failure
// replies to the sender and leaves the status exactly as it was.
func (h *Hub) handleStartBattle(s *session.Session, req *protocol.StartBattle) {
	roomID := s.RoomID()
	if roomID == "" {
		s.SendError(protocol.ReasonNoBattleInMainRoom)
		return
	}

	// Session handles are resolved before entering the room section; sends
	// on them are lock-free.
	opponent, _ := h.users.Get(req.OtherUser)
	members, ok := h.rooms.Members(roomID)
	if !ok {
		s.SendError(protocol.ReasonNoBattleInMainRoom)
		return
	}
	recipients := h.users.Sessions(members)

	err := h.rooms.Update(roomID, func(rm *room.Room) error {
		if opponent == nil || !rm.HasMember(req.OtherUser) {
			s.SendError(protocol.ReasonOpponentNotFound)
			return nil
		}
		if len(req.DragonNames) > maxRosterSize {
			s.SendError(protocol.ReasonTooManyPartyItems)
			return nil
		}

		switch rm.Battle.State {
		case room.StateNone:
			opponent.Send(&protocol.BattleInvite{OtherUser: s.Name()})
			rm.Battle = room.BattleStatus{
				State:         room.StatePrepared,
				StarterName:   s.Name(),
				StarterRoster: req.DragonNames,
				OtherName:     req.OtherUser,
			}

		case room.StatePrepared:
			// Only the invited user answering the original starter may
			// complete the handshake; anything else is rejected without
			// touching the prepared proposal.
			if s.Name() != rm.Battle.OtherName || req.OtherUser != rm.Battle.StarterName {
				s.SendError(protocol.ReasonBattleAlreadyPrepared)
				return nil
			}

			// opponent is the original starter here, by the symmetry check.
			starterParty, ok := h.buildParty(rm.Battle.StarterRoster)
			if !ok {
				s.SendError(protocol.ReasonInvalidPartyItem)
				opponent.Send(&protocol.RequestError{Reason: protocol.ReasonInvalidStarterParty})
				return nil
			}
			counterParty, ok := h.buildParty(req.DragonNames)
			if !ok {
				s.SendError(protocol.ReasonInvalidPartyItem)
				return nil
			}

			messenger := relay.NewRoomMessenger(h.log, recipients)
			field := engine.NewBattlefield(starterParty, counterParty, messenger)

			opponent.Send(&protocol.BattleStart{OtherParty: req.DragonNames})
			s.Send(&protocol.BattleStart{OtherParty: rm.Battle.StarterRoster})

			rm.Battle = room.BattleStatus{
				State:  room.StateStarted,
				Battle: room.NewBattle(rm.Battle.StarterName, s.Name(), field, messenger),
			}
			h.log.Info("battle started",
				zap.String("room_id", rm.ID),
				zap.String("side1", req.OtherUser),
				zap.String("side2", s.Name()))

		case room.StateStarted:
			s.SendError(protocol.ReasonOngoingBattle)
		}
		return nil
	})
	if err != nil {
		s.SendError(protocol.ReasonNoBattleInMainRoom)
	}
}

// buildParty resolves every roster name against the catalog. All-or-nothing:
// one unknown name fails the whole party.
func (h *Hub) buildParty(names []string) (*engine.Party, bool) {
	dragons := make([]*engine.Dragon, 0, len(names))
	for _, name := range names {
		d, ok := h.catalog.Dragon(name)
		if !ok {
			return nil, false
		}
		dragons = append(dragons, d)
	}
	party, err := engine.NewParty(dragons...)
	if err != nil {
		return nil, false
	}
	return party, true
}

func (h *Hub) handleUseMove(s *session.Session, m *protocol.UseMove) {
	h.submitAction(s, func() (room.Action, bool) {
		mv, ok := h.catalog.Move(m.MoveName)
		if !ok {
			s.SendError(protocol.ReasonInvalidMove)
			return room.Action{}, false
		}
		return room.Action{Move: mv}, true
	})
}

func (h *Hub) handleSwitch(s *session.Session, m *protocol.Switch) {
	h.submitAction(s, func() (room.Action, bool) {
		return room.Action{IsSwitch: true, SwitchIdx: m.NextDragon}, true
	})
}

// submitAction checks the in-room, battle-started, and participant guards,
// then parks the action produced by build in the battle's pending slot; the
// turn resolves once both sides have submitted. build runs only after the
// guards pass, so its own rejections never preempt them.
func (h *Hub) submitAction(s *session.Session, build func() (room.Action, bool)) {
	roomID := s.RoomID()
	if roomID == "" {
		s.SendError(protocol.ReasonNoBattleInMainRoom)
		return
	}
	err := h.rooms.Update(roomID, func(rm *room.Room) error {
		if rm.Battle.State != room.StateStarted {
			s.SendError(protocol.ReasonNoBattleInitiated)
			return nil
		}
		b := rm.Battle.Battle
		side, ok := b.SideOf(s.Name())
		if !ok {
			s.SendError(protocol.ReasonNotInBattle)
			return nil
		}
		act, ok := build()
		if !ok {
			return nil
		}
		if actions, ready := b.Submit(side, act); ready {
			h.resolveTurn(b, actions)
		}
		return nil
	})
	if err != nil {
		s.SendError(protocol.ReasonNoBattleInMainRoom)
	}
}

// resolveTurn applies both submitted actions: switches first, then moves in
// descending active-dragon speed, side 1 first on ties. An illegal switch is
// announced to the room and otherwise skipped.
func (h *Hub) resolveTurn(b *room.Battle, actions map[engine.PartyID]room.Action) {
	var movers []engine.PartyID
	for _, side := range []engine.PartyID{engine.Party1, engine.Party2} {
		act := actions[side]
		if act.IsSwitch {
			if !b.Battlefield.Switch(side, act.SwitchIdx) && b.Notify != nil {
				b.Notify.Broadcast(&protocol.SwitchNotify{
					Party:         int(side),
					NextIdx:       act.SwitchIdx,
					SwitchAllowed: false,
				})
			}
			continue
		}
		movers = append(movers, side)
	}

	sort.SliceStable(movers, func(i, j int) bool {
		si := b.Battlefield.Party(movers[i]).Active().Stats().Speed
		sj := b.Battlefield.Party(movers[j]).Active().Stats().Speed
		return si > sj
	})
	for _, side := range movers {
		b.Battlefield.Attack(side, actions[side].Move)
	}
}

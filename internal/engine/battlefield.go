package engine

// Messenger observes battlefield outcomes. Implementations must not call back
// into the battlefield; the simulation is fully functional with NopMessenger.
type Messenger interface {
	OnAttack(f *Battlefield, attacker PartyID, moveName string)
	OnDamage(f *Battlefield, target PartyID, amount int)
	OnSwitch(f *Battlefield, party PartyID, from, to int)
	OnEffectApplied(f *Battlefield, party PartyID, effect string)
}

// NopMessenger discards every outcome. Used for isolated simulation and tests.
type NopMessenger struct{}

func (NopMessenger) OnAttack(*Battlefield, PartyID, string)        {}
func (NopMessenger) OnDamage(*Battlefield, PartyID, int)           {}
func (NopMessenger) OnSwitch(*Battlefield, PartyID, int, int)      {}
func (NopMessenger) OnEffectApplied(*Battlefield, PartyID, string) {}

// Battlefield is one live battle between two parties.
type Battlefield struct {
	party1    *Party
	party2    *Party
	messenger Messenger
}

func NewBattlefield(p1, p2 *Party, m Messenger) *Battlefield {
	if m == nil {
		m = NopMessenger{}
	}
	return &Battlefield{party1: p1, party2: p2, messenger: m}
}

func (f *Battlefield) Party(id PartyID) *Party {
	if id == Party1 {
		return f.party1
	}
	return f.party2
}

// Attack applies move from the attacker's active dragon to the opposing active
// dragon. Damage scales the move's power by the attack/defense ratio, one
// point minimum. A side whose active dragon has fainted cannot attack.
func (f *Battlefield) Attack(attacker PartyID, move *Move) {
	atk := f.Party(attacker).Active()
	if atk.Fainted() {
		return
	}
	f.messenger.OnAttack(f, attacker, move.Name)

	target := attacker.Opponent()
	def := f.Party(target).Active()
	dmg := move.Power * atk.stats.Attack / max(def.stats.Defense, 1)
	if dmg < 1 {
		dmg = 1
	}
	if dmg > def.hp {
		dmg = def.hp
	}
	def.hp -= dmg
	f.messenger.OnDamage(f, target, dmg)
	if def.Fainted() {
		f.messenger.OnEffectApplied(f, target, "fainted")
	}
}

// Switch changes the party's active dragon and reports whether the target was
// legal. Only legal switches are announced.
func (f *Battlefield) Switch(party PartyID, idx int) bool {
	p := f.Party(party)
	from := p.ActiveIndex()
	if !p.Switch(idx) {
		return false
	}
	f.messenger.OnSwitch(f, party, from, idx)
	return true
}

// Over reports whether either side has no dragons left.
func (f *Battlefield) Over() bool {
	return f.party1.Defeated() || f.party2.Defeated()
}

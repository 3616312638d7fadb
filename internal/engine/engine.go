// Package engine is the battle-simulation engine: parties of dragons trading
// moves on a battlefield. It knows nothing about rooms, users, or the wire
// protocol; observers hook in through the Messenger callbacks.
package engine

import "errors"

var ErrEmptyParty = errors.New("party needs at least one dragon")

// PartyID identifies one of the two fixed battle sides.
type PartyID int

const (
	Party1 PartyID = 1
	Party2 PartyID = 2
)

func (p PartyID) Opponent() PartyID {
	if p == Party1 {
		return Party2
	}
	return Party1
}

type Stats struct {
	MaxHP   int `json:"max_hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

type Dragon struct {
	name  string
	stats Stats
	hp    int
}

func NewDragon(name string, stats Stats) *Dragon {
	return &Dragon{name: name, stats: stats, hp: stats.MaxHP}
}

func (d *Dragon) Name() string  { return d.name }
func (d *Dragon) HP() int       { return d.hp }
func (d *Dragon) Stats() Stats  { return d.stats }
func (d *Dragon) Fainted() bool { return d.hp <= 0 }

type Move struct {
	Name  string
	Power int
}

// Party is one side's ordered roster plus its active slot.
type Party struct {
	dragons []*Dragon
	active  int
}

func NewParty(dragons ...*Dragon) (*Party, error) {
	if len(dragons) == 0 {
		return nil, ErrEmptyParty
	}
	return &Party{dragons: dragons}, nil
}

func (p *Party) Active() *Dragon      { return p.dragons[p.active] }
func (p *Party) ActiveIndex() int     { return p.active }
func (p *Party) Size() int            { return len(p.dragons) }
func (p *Party) Dragon(i int) *Dragon { return p.dragons[i] }

// Switch makes the dragon at idx active. It reports false for an out-of-range
// index, a fainted target, or the already-active slot, leaving state unchanged.
func (p *Party) Switch(idx int) bool {
	if idx < 0 || idx >= len(p.dragons) {
		return false
	}
	if idx == p.active || p.dragons[idx].Fainted() {
		return false
	}
	p.active = idx
	return true
}

// Defeated reports whether every dragon in the party has fainted.
func (p *Party) Defeated() bool {
	for _, d := range p.dragons {
		if !d.Fainted() {
			return false
		}
	}
	return true
}

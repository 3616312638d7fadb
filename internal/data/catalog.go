// Package data loads the bundled dragon and move definitions and exposes them
// as a name lookup. Definitions are compiled into the binary.
package data

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"dragonrelay/internal/engine"
)

//go:embed dragons.json
var dragonsJSON []byte

//go:embed moves.json
var movesJSON []byte

type dragonDef struct {
	BaseStats engine.Stats `json:"base_stats"`
}

type moveDef struct {
	Power int `json:"power"`
}

// Catalog resolves dragon and move names to engine instances.
type Catalog struct {
	dragons map[string]dragonDef
	moves   map[string]moveDef
}

func Load() (*Catalog, error) {
	c := &Catalog{}
	if err := json.Unmarshal(dragonsJSON, &c.dragons); err != nil {
		return nil, fmt.Errorf("parse dragons.json: %w", err)
	}
	if err := json.Unmarshal(movesJSON, &c.moves); err != nil {
		return nil, fmt.Errorf("parse moves.json: %w", err)
	}
	return c, nil
}

// Dragon returns a fresh battle-ready dragon for name, or false if the name
// is not in the catalog.
func (c *Catalog) Dragon(name string) (*engine.Dragon, bool) {
	def, ok := c.dragons[name]
	if !ok {
		return nil, false
	}
	return engine.NewDragon(name, def.BaseStats), true
}

// Move returns the move definition for name, or false if unknown.
func (c *Catalog) Move(name string) (*engine.Move, bool) {
	def, ok := c.moves[name]
	if !ok {
		return nil, false
	}
	return &engine.Move{Name: name, Power: def.Power}, true
}

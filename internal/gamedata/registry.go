package gamedata

import (
	"errors"
	"fmt"
)

// MinionRegistry holds loaded minion definitions keyed by id.
type MinionRegistry struct {
	minions map[string]*MinionDef
	all     []MinionDef
}

// NewMinionRegistry creates a registry from loaded minion definitions.
func NewMinionRegistry(minions []MinionDef) *MinionRegistry {
	registry := &MinionRegistry{
		minions: make(map[string]*MinionDef),
		all:     minions,
	}
	for i := range minions {
		registry.minions[minions[i].ID] = &minions[i]
	}
	return registry
}

// LoadMinionRegistry loads and creates a registry from the embedded minions.json.
func LoadMinionRegistry() (*MinionRegistry, error) {
	minions, err := LoadMinions()
	if err != nil {
		return nil, err
	}
	if len(minions) == 0 {
		return nil, errors.New("no minions loaded from minions.json")
	}
	return NewMinionRegistry(minions), nil
}

// MustLoadMinionRegistry loads a registry, panicking on error.
func MustLoadMinionRegistry() *MinionRegistry {
	registry, err := LoadMinionRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the minion definition with the given ID, or nil if not found.
func (r *MinionRegistry) GetByID(id string) *MinionDef {
	return r.minions[id]
}

// All returns all minion definitions.
func (r *MinionRegistry) All() []MinionDef {
	return r.all
}

// Count returns the number of minion kinds in the registry.
func (r *MinionRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// ActionRegistry
// =============================================================================

// ActionRegistry holds the action menu in menu order.
type ActionRegistry struct {
	actions map[int]*ActionDef
	all     []ActionDef
}

// NewActionRegistry creates a registry from loaded action definitions.
func NewActionRegistry(actions []ActionDef) *ActionRegistry {
	registry := &ActionRegistry{
		actions: make(map[int]*ActionDef),
		all:     actions,
	}
	for i := range actions {
		registry.actions[actions[i].ID] = &actions[i]
	}
	return registry
}

// LoadActionRegistry loads and creates a registry from the embedded actions.json.
func LoadActionRegistry() (*ActionRegistry, error) {
	actions, err := LoadActions()
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return nil, errors.New("no actions loaded from actions.json")
	}
	for i, a := range actions {
		if a.ID != i+1 {
			return nil, fmt.Errorf("actions.json: entry %d has id %d, want %d", i, a.ID, i+1)
		}
	}
	return NewActionRegistry(actions), nil
}

// MustLoadActionRegistry loads a registry, panicking on error.
func MustLoadActionRegistry() *ActionRegistry {
	registry, err := LoadActionRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the action with the given menu number, or nil if not found.
func (r *ActionRegistry) GetByID(id int) *ActionDef {
	return r.actions[id]
}

// All returns the actions in menu order.
func (r *ActionRegistry) All() []ActionDef {
	return r.all
}

// Count returns the number of menu entries.
func (r *ActionRegistry) Count() int {
	return len(r.all)
}

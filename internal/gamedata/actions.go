package gamedata

import "fmt"

// ActionDef describes one entry of the per-move action menu.
type ActionDef struct {
	ID          int    `json:"id"`          // Menu number, also the reply value
	Key         string `json:"key"`         // Stable identifier (e.g., "fiery_shield")
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Short rules summary
}

// Label returns the menu line for this action.
func (a *ActionDef) Label() string {
	if a.Description == "" {
		return a.Name
	}
	return fmt.Sprintf("%s (%s)", a.Name, a.Description)
}

// ActionsFile represents the structure of actions.json.
type ActionsFile struct {
	Actions []ActionDef `json:"actions"`
}

// LoadActions loads the action menu from the embedded actions.json file.
func LoadActions() ([]ActionDef, error) {
	file, err := Load[ActionsFile]("actions.json")
	if err != nil {
		return nil, err
	}
	return file.Actions, nil
}

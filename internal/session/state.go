package session

import (
	"encoding/json"
	"os"

	"SmartSaver/internal/model"
)

// LoadState reads a persisted state snapshot from a JSON file. Returns nil
// without error if the file doesn't exist.
func LoadState(filePath string) (*model.UserState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var state model.UserState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	state.Normalize()
	return &state, nil
}

// SaveState writes the state snapshot to a JSON file.
func SaveState(filePath string, state *model.UserState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

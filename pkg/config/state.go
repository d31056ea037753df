// Package config provides state persistence for the lbtheme tool.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const currentStateVersion = 1

// AppState represents the tool's persistent state.
type AppState struct {
	Version int     `json:"version"`
	UI      UIState `json:"ui"`
}

// UIState captures UI-related preferences.
type UIState struct {
	// Appearance is "auto", "light" or "dark".
	Appearance string `json:"appearance"`
}

func defaultAppState() AppState {
	return AppState{
		Version: currentStateVersion,
		UI:      UIState{Appearance: "auto"},
	}
}

func (s *AppState) normalize() {
	if s == nil {
		return
	}
	if s.Version == 0 {
		s.Version = currentStateVersion
	}
	switch s.UI.Appearance {
	case "auto", "light", "dark":
	default:
		s.UI.Appearance = "auto"
	}
}

// GetStateDir returns the path to the .logbookone directory
func GetStateDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".logbookone"), nil
}

// EnsureStateDir creates the .logbookone directory if it doesn't exist
func EnsureStateDir() error {
	stateDir, err := GetStateDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(stateDir, 0755)
}

// getStateFilePath returns the path to the state.json file
func getStateFilePath() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "state.json"), nil
}

// LoadState loads the tool state from disk. A missing or unreadable state
// file yields the defaults rather than an error.
func LoadState() (*AppState, error) {
	stateFile, err := getStateFilePath()
	if err != nil {
		return nil, err
	}

	state := defaultAppState()

	if _, err := os.Stat(stateFile); os.IsNotExist(err) {
		return &state, nil
	} else if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(stateFile)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		state.normalize()
		return &state, nil
	}

	if err := json.Unmarshal(data, &state); err != nil {
		state.normalize()
		return &state, nil
	}

	state.normalize()
	return &state, nil
}

// SaveState saves the tool state to disk
func SaveState(state *AppState) error {
	if state == nil {
		return errors.New("state cannot be nil")
	}

	if err := EnsureStateDir(); err != nil {
		return err
	}

	state.normalize()

	stateFile, err := getStateFilePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(stateFile, data, 0644)
}

// GetAppearance returns the persisted appearance preference
func GetAppearance() (string, error) {
	state, err := LoadState()
	if err != nil {
		return "", err
	}
	return state.UI.Appearance, nil
}

// SetAppearance persists the appearance preference
func SetAppearance(appearance string) error {
	state, err := LoadState()
	if err != nil {
		return err
	}
	state.UI.Appearance = appearance
	return SaveState(state)
}

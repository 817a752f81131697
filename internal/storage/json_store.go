package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jordanwest/daykeep/internal/logger"
	"github.com/jordanwest/daykeep/internal/models"
	"github.com/jordanwest/daykeep/internal/store"
)

// JSONStore keeps the state blob in a single pretty-printed JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(store.NewState())
}

// Load reads the state blob. A missing file yields the default state; a file
// that fails to parse is logged and also yields the default state.
func (s *JSONStore) Load() (store.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return store.NewState(), nil
		}
		return store.State{}, fmt.Errorf("failed to read storage: %w", err)
	}

	return decodeState(data, s.path), nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Save(state store.State) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// decodeState parses a persisted blob, falling back to defaults on parse
// failure and normalizing settings so data from other versions loads cleanly.
func decodeState(data []byte, source string) store.State {
	var state store.State
	if err := json.Unmarshal(data, &state); err != nil {
		logger.Warn("Persisted state is corrupt, starting from defaults", "path", source, "error", err)
		return store.NewState()
	}
	if state.Days == nil {
		state.Days = map[string]models.DayRecord{}
	}
	state.Settings.Normalize()
	return state
}

package storage

import (
	"path/filepath"
	"strings"

	"github.com/jordanwest/daykeep/internal/store"
)

// Provider persists the application state as a single {days, settings} blob
// under a fixed key. Missing or corrupt data is never an error: Load degrades
// to the default state so a damaged file can only cost history, not crash
// the app.
type Provider interface {
	// Lifecycle
	Init() error
	Load() (store.State, error)
	Close() error

	// State blob
	Save(store.State) error
	Clear() error

	// Utils
	GetConfigPath() string
}

// NewProvider selects a backend by file extension: ".json" gets the
// plain-text store, everything else SQLite.
func NewProvider(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}

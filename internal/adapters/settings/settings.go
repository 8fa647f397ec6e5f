// Package settings provides the key-value settings store backing the
// packaging debug workflow. Three drivers are available (in-memory, SQLite
// and Badger); Resilient wraps any of them with retries and a circuit
// breaker.
package settings

import (
	"context"
	"fmt"
	"io"

	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
)

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
)

// Store is a settings store that owns resources released by Close.
type Store interface {
	ports.SettingsStore
	io.Closer
}

// Open returns the store for driver. path is the database file for sqlite
// and the data directory for badger; memory ignores it.
func Open(ctx context.Context, driver, path string) (Store, error) {
	switch driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite:
		return OpenSQLite(ctx, path)
	case DriverBadger:
		return OpenBadger(path)
	default:
		return nil, fmt.Errorf("settings: unsupported driver %q", driver)
	}
}

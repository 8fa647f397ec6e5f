package ports

import "context"

// SettingsStore is the process-wide key-value configuration store.
// Implementations must be safe for concurrent use; concurrent writers race
// and the last write wins.
type SettingsStore interface {
	// Get returns the value stored under key. found is false when the key
	// has never been set.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

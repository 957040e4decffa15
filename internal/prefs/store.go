// Package prefs provides durable key-value stores for user preferences.
package prefs

import (
	"errors"
	"fmt"
	"io"
)

// ThemeKey is the key under which the explicit theme override is stored.
const ThemeKey = "theme"

var (
	// ErrNotFound is returned by Get when the key has no value.
	ErrNotFound = errors.New("preference not found")
	// ErrUnavailable wraps failures of the underlying storage medium.
	ErrUnavailable = errors.New("preference store unavailable")
	// ErrUnknownBackend is returned by Open for unsupported backend names.
	ErrUnknownBackend = errors.New("unknown preference backend")
)

// Store is a durable string key-value store.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) (string, error)
	// Set stores value under key.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Backend names accepted by Open.
const (
	BackendFile    = "file"
	BackendSQLite  = "sqlite"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open constructs the store for a backend. The returned closer must be
// closed once the store is no longer needed.
func Open(backend, path string) (Store, io.Closer, error) {
	switch backend {
	case BackendFile, "":
		return NewFile(path), nopCloser{}, nil
	case BackendSQLite:
		store, err := NewSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case BackendKeyring:
		return NewKeyring(), nopCloser{}, nil
	case BackendMemory:
		return NewMemory(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func unavailable(op, key string, err error) error {
	return fmt.Errorf("%w: %s %q: %w", ErrUnavailable, op, key, err)
}

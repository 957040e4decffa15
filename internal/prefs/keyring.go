package prefs

import (
	"errors"

	"github.com/hanaburkart/portfolio/internal/platform/keyring"
)

// Keyring stores preferences in the system keychain.
type Keyring struct{}

// NewKeyring returns a keychain-backed store.
func NewKeyring() Keyring {
	return Keyring{}
}

func (Keyring) Get(key string) (string, error) {
	v, err := keyring.Get(key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", unavailable("get", key, err)
	}
	return v, nil
}

func (Keyring) Set(key, value string) error {
	if err := keyring.Set(key, value); err != nil {
		return unavailable("set", key, err)
	}
	return nil
}

func (Keyring) Delete(key string) error {
	if err := keyring.Delete(key); err != nil {
		return unavailable("delete", key, err)
	}
	return nil
}

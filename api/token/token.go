package token

import "time"

// Storage keeps revoked tokens until they expire. A token present in the
// storage must be rejected by the authenticator.
type Storage interface {
	Store(token string, expiration time.Time) error
	Exists(token string) (bool, error)
	RemoveExpired() error
	Close() error
}

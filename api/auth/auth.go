// Package auth resolves the caller of an HTTP request.
package auth

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/content"
)

//go:generate sh -c "mockgen -package=mock_auth -source=auth.go Authenticator >mock_auth/auth.go"

// Authenticator identifies the caller of a request. A request without
// usable credentials belongs to content.Anonymous and is not an error.
type Authenticator interface {
	CurrentUser(r *http.Request) (content.User, error)
	// Revoke invalidates the credentials carried by the request.
	Revoke(r *http.Request) error
	RevocationEnabled() bool
}

var ErrRevocationDisabled = errors.New("token revocation is disabled")

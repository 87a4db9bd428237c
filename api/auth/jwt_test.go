package auth

import (
	"io/ioutil"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/config"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/log"
)

var (
	secret = []byte("secret")
	logger log.Log
)

func init() {
	cfg := config.Log{}
	cfg.Converted.Writer = ioutil.Discard

	logger = log.WithStd(cfg)
}

type memStorage struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	err    error
}

func (s *memStorage) Store(token string, expiration time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokens == nil {
		s.tokens = map[string]time.Time{}
	}
	s.tokens[token] = expiration

	return s.err
}

func (s *memStorage) Exists(token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tokens[token]
	return ok, s.err
}

func (s *memStorage) RemoveExpired() error { return nil }
func (s *memStorage) Close() error         { return nil }

func mustToken(t *testing.T, key []byte, user content.User, ttl time.Duration) string {
	token, err := NewToken(key, user, ttl)
	if err != nil {
		t.Fatal(err)
	}

	return token
}

func TestJWT_CurrentUser(t *testing.T) {
	user := content.User{Login: "user1", Name: "User One"}
	admin := content.User{Login: "admin", Admin: true}

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		StandardClaims: jwt.StandardClaims{Subject: "user1"},
	}).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{}).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}

	revoked := mustToken(t, secret, user, time.Hour)

	tests := []struct {
		name    string
		header  string
		query   string
		storage *memStorage
		want    content.User
		wantErr bool
	}{
		{name: "no credentials", want: content.Anonymous},
		{name: "bearer header", header: "Bearer " + mustToken(t, secret, user, time.Hour), want: user},
		{name: "query argument", query: mustToken(t, secret, admin, time.Hour), want: admin},
		{name: "expired", header: "Bearer " + mustToken(t, secret, user, -time.Hour), want: content.Anonymous},
		{name: "wrong secret", header: "Bearer " + mustToken(t, []byte("other"), user, time.Hour), want: content.Anonymous},
		{name: "wrong algorithm", header: "Bearer " + hs256, want: content.Anonymous},
		{name: "no subject", header: "Bearer " + noSubject, want: content.Anonymous},
		{name: "malformed", header: "Bearer abc.def", want: content.Anonymous},
		{name: "revoked", header: "Bearer " + revoked, storage: &memStorage{tokens: map[string]time.Time{revoked: time.Now()}}, want: content.Anonymous},
		{name: "storage error", header: "Bearer " + revoked, storage: &memStorage{err: errors.New("storage")}, want: content.Anonymous, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var j JWT
			if tt.storage == nil {
				j = NewJWT(secret, nil, logger)
			} else {
				j = NewJWT(secret, tt.storage, logger)
			}

			target := "/"
			if tt.query != "" {
				target += "?token=" + tt.query
			}
			r := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := j.CurrentUser(r)
			if (err != nil) != tt.wantErr {
				t.Errorf("JWT.CurrentUser() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("JWT.CurrentUser() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJWT_Revoke(t *testing.T) {
	user := content.User{Login: "user1"}

	t.Run("disabled", func(t *testing.T) {
		j := NewJWT(secret, nil, logger)

		r := httptest.NewRequest("DELETE", "/", nil)
		r.Header.Set("Authorization", "Bearer "+mustToken(t, secret, user, time.Hour))

		if j.RevocationEnabled() {
			t.Errorf("JWT.RevocationEnabled() = true, want false")
		}
		if err := j.Revoke(r); err != ErrRevocationDisabled {
			t.Errorf("JWT.Revoke() error = %v, want %v", err, ErrRevocationDisabled)
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		j := NewJWT(secret, &memStorage{}, logger)

		if err := j.Revoke(httptest.NewRequest("DELETE", "/", nil)); errors.Cause(err) != content.ErrUnauthenticated {
			t.Errorf("JWT.Revoke() error = %v, want %v", err, content.ErrUnauthenticated)
		}
	})

	t.Run("revoked", func(t *testing.T) {
		storage := &memStorage{}
		j := NewJWT(secret, storage, logger)

		r := httptest.NewRequest("DELETE", "/", nil)
		r.Header.Set("Authorization", "Bearer "+mustToken(t, secret, user, time.Hour))

		if got, _ := j.CurrentUser(r); got != user {
			t.Fatalf("JWT.CurrentUser() = %v, want %v", got, user)
		}

		if err := j.Revoke(r); err != nil {
			t.Fatalf("JWT.Revoke() error = %v", err)
		}

		if got, _ := j.CurrentUser(r); !got.IsAnonymous() {
			t.Errorf("JWT.CurrentUser() after revoke = %v, want anonymous", got)
		}
	})
}

func TestNewToken(t *testing.T) {
	if _, err := NewToken(secret, content.Anonymous, time.Hour); err == nil {
		t.Errorf("NewToken() for anonymous error = nil")
	}

	token, err := NewToken(secret, content.User{Login: "user1", Name: "One", Admin: true}, time.Hour)
	if err != nil {
		t.Fatalf("NewToken() error = %v", err)
	}

	claims := &Claims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) { return secret, nil }); err != nil {
		t.Fatalf("jwt.ParseWithClaims() error = %v", err)
	}

	if claims.Subject != "user1" || claims.Name != "One" || !claims.Admin {
		t.Errorf("NewToken() claims = %+v", claims)
	}
}

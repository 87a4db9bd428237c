package auth

import (
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/dgrijalva/jwt-go/request"
	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/api/token"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/log"
)

// Claims carries the caller identity inside a token.
type Claims struct {
	jwt.StandardClaims
	Name  string `json:"name,omitempty"`
	Admin bool   `json:"admin,omitempty"`
}

// JWT authenticates requests bearing HS512 signed tokens, either in the
// Authorization header or in the token query argument.
type JWT struct {
	secret  []byte
	storage token.Storage
	log     log.Log
}

var extractor = request.MultiExtractor{
	request.AuthorizationHeaderExtractor,
	request.ArgumentExtractor{"token"},
}

// NewJWT creates a token authenticator. The storage may be nil, which
// disables revocation.
func NewJWT(secret []byte, storage token.Storage, log log.Log) JWT {
	return JWT{secret: secret, storage: storage, log: log}
}

// NewToken mints a signed token for the user, valid for ttl.
func NewToken(secret []byte, user content.User, ttl time.Duration) (string, error) {
	if user.IsAnonymous() {
		return "", errors.New("cannot mint a token for the anonymous user")
	}

	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   string(user.Login),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
		Name:  user.Name,
		Admin: user.Admin,
	})

	s, err := t.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}

	return s, nil
}

func (j JWT) CurrentUser(r *http.Request) (content.User, error) {
	raw, claims, ok := j.parse(r)
	if !ok {
		return content.Anonymous, nil
	}

	if j.storage != nil {
		revoked, err := j.storage.Exists(raw)
		if err != nil {
			return content.Anonymous, errors.WithMessage(err, "checking token revocation")
		}

		if revoked {
			j.log.Debugf("Rejecting revoked token for %s", claims.Subject)
			return content.Anonymous, nil
		}
	}

	return content.User{
		Login: content.Login(claims.Subject),
		Name:  claims.Name,
		Admin: claims.Admin,
	}, nil
}

func (j JWT) Revoke(r *http.Request) error {
	if j.storage == nil {
		return ErrRevocationDisabled
	}

	raw, claims, ok := j.parse(r)
	if !ok {
		return content.ErrUnauthenticated
	}

	expiration := time.Unix(claims.ExpiresAt, 0)
	if claims.ExpiresAt == 0 {
		// Tokens without expiration are kept for a year.
		expiration = time.Now().AddDate(1, 0, 0)
	}

	return errors.WithMessage(j.storage.Store(raw, expiration), "revoking token")
}

func (j JWT) RevocationEnabled() bool {
	return j.storage != nil
}

func (j JWT) parse(r *http.Request) (string, *Claims, bool) {
	claims := &Claims{}

	t, err := request.ParseFromRequestWithClaims(r, extractor, claims, j.keyFunc)
	if err != nil {
		if err != request.ErrNoTokenInRequest {
			j.log.Debugf("Invalid token: %v", err)
		}
		return "", nil, false
	}

	if !t.Valid || claims.Subject == "" {
		return "", nil, false
	}

	return t.Raw, claims, true
}

func (j JWT) keyFunc(t *jwt.Token) (interface{}, error) {
	if t.Method != jwt.SigningMethodHS512 {
		return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
	}

	return j.secret, nil
}

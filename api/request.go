package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/api/auth"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/log"
)

type contextKey string

var userKey = contextKey("user")

// UserContext resolves the caller through the authenticator and stores it in
// the request context. Callers without credentials are stored as
// content.Anonymous.
func UserContext(authenticator auth.Authenticator, next http.Handler, log log.Log) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticator.CurrentUser(r)
		if err != nil {
			writeError(w, log, errors.WithMessage(err, "resolving current user"))
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userValidator stops anonymous requests.
func userValidator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, stop := userFromRequest(w, r)
		if stop {
			return
		}

		if user.IsAnonymous() {
			writeStatus(w, http.StatusForbidden, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func userFromRequest(w http.ResponseWriter, r *http.Request) (user content.User, stop bool) {
	var ok bool
	if user, ok = r.Context().Value(userKey).(content.User); ok {
		return user, false
	}

	writeStatus(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
	return content.Anonymous, true
}

func readJSON(w http.ResponseWriter, r io.Reader, data interface{}) (stop bool) {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		writeStatus(w, http.StatusBadRequest, "Error decoding JSON request: "+err.Error())
		return true
	}

	return false
}

type args map[string]interface{}

func (a args) WriteJSON(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, a)
}

func writeJSON(w http.ResponseWriter, code int, data interface{}) {
	b, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(b)
}

func writeStatus(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, args{"error": message})
}

// writeError maps the content error taxonomy to a response. Unknown errors
// are logged and reported as internal errors.
func writeError(w http.ResponseWriter, log log.Log, err error) {
	switch cause := errors.Cause(err); {
	case content.IsValidation(err):
		writeStatus(w, http.StatusBadRequest, err.Error())
	case cause == content.ErrUnauthenticated, cause == content.ErrForbidden:
		writeStatus(w, http.StatusForbidden, cause.Error())
	case cause == content.ErrNoContent:
		writeStatus(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	case cause == content.ErrConflict:
		writeStatus(w, http.StatusConflict, err.Error())
	default:
		log.Printf("Error processing request: %+v", err)
		writeStatus(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

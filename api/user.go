package api

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/api/auth"
	"github.com/urandom/feedkeeper/log"
)

func getUserData(w http.ResponseWriter, r *http.Request) {
	user, stop := userFromRequest(w, r)
	if stop {
		return
	}

	args{"user": user}.WriteJSON(w)
}

func revokeToken(authenticator auth.Authenticator, log log.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, stop := userFromRequest(w, r)
		if stop {
			return
		}

		if err := authenticator.Revoke(r); err != nil {
			if err == auth.ErrRevocationDisabled {
				writeStatus(w, http.StatusNotImplemented, err.Error())
				return
			}

			writeError(w, log, errors.WithMessage(err, "revoking token"))
			return
		}

		log.Infof("Revoked token for user %s", user)

		w.WriteHeader(http.StatusNoContent)
	}
}

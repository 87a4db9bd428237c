// Package api serves the feed REST API.
package api

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/urandom/feedkeeper/api/auth"
	"github.com/urandom/feedkeeper/config"
	"github.com/urandom/feedkeeper/content/repo"
	"github.com/urandom/feedkeeper/content/search"
	"github.com/urandom/feedkeeper/log"
)

// Mux creates the API handler. The search provider may be nil, in which case
// feed search answers with 501.
func Mux(
	service repo.Service,
	searchProvider search.Provider,
	authenticator auth.Authenticator,
	config config.Config,
	log log.Log,
) (http.Handler, error) {
	feedRepo := service.FeedRepo()

	bodySize := config.API.Limits.BodySize
	if bodySize <= 0 {
		bodySize = 1 << 20
	}

	searchLimit := config.API.Limits.FeedsPerSearch
	if searchLimit <= 0 {
		searchLimit = 100
	}

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(instrument(config.Log.Access, log))
	r.Use(func(next http.Handler) http.Handler {
		return UserContext(authenticator, next, log)
	})

	r.Get("/features", featuresHandler(features{
		Search:          searchProvider != nil,
		TokenRevocation: authenticator.RevocationEnabled(),
	}))

	r.Route("/feeds", func(r chi.Router) {
		r.Get("/", listFeeds(feedRepo, log))
		r.With(userValidator).Post("/", createFeed(feedRepo, bodySize, log))
		r.Get("/search", searchFeeds(feedRepo, searchProvider, searchLimit, log))

		r.Route("/{feedID}", func(r chi.Router) {
			r.With(feedContext(feedRepo, log)).Get("/", getFeed)
			r.With(userValidator, feedContext(feedRepo, log)).Delete("/", deleteFeed(feedRepo, log))
		})
	})

	r.Route("/user", func(r chi.Router) {
		r.Use(userValidator)

		r.Get("/", getUserData)
		r.Delete("/token", revokeToken(authenticator, log))
	})

	return r, nil
}

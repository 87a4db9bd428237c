package api

import (
	"context"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/content/repo"
	"github.com/urandom/feedkeeper/content/search"
	"github.com/urandom/feedkeeper/log"
)

const totalCountHeader = "X-Total-Count"

var feedKey = contextKey("feed")

func feedContext(repo repo.Feed, log log.Log) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "feedID")
			if id == "" {
				writeStatus(w, http.StatusBadRequest, "no feed id")
				return
			}

			feed, err := repo.Get(r.Context(), content.FeedID(id))
			if err != nil {
				writeError(w, log, errors.WithMessage(err, "getting feed"))
				return
			}

			ctx := context.WithValue(r.Context(), feedKey, feed)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func feedFromRequest(w http.ResponseWriter, r *http.Request) (feed content.Feed, stop bool) {
	var ok bool
	if feed, ok = r.Context().Value(feedKey).(content.Feed); ok {
		return feed, false
	}

	writeStatus(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
	return content.Feed{}, true
}

func writeFeeds(w http.ResponseWriter, feeds []content.Feed) {
	if feeds == nil {
		feeds = []content.Feed{}
	}

	w.Header().Set(totalCountHeader, strconv.Itoa(len(feeds)))
	writeJSON(w, http.StatusOK, feeds)
}

func listFeeds(repo repo.Feed, log log.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feeds, err := repo.All(r.Context())
		if err != nil {
			writeError(w, log, errors.WithMessage(err, "getting feeds"))
			return
		}

		sort.Slice(feeds, func(i, j int) bool {
			return feeds[i].ID < feeds[j].ID
		})

		writeFeeds(w, feeds)
	}
}

func getFeed(w http.ResponseWriter, r *http.Request) {
	feed, stop := feedFromRequest(w, r)
	if stop {
		return
	}

	writeJSON(w, http.StatusOK, feed)
}

type createFeedData struct {
	Author string        `json:"author"`
	URL    string        `json:"url"`
	Link   string        `json:"link"`
	User   content.Login `json:"user"`
}

func createFeed(repo repo.Feed, bodySize int64, log log.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, stop := userFromRequest(w, r)
		if stop {
			return
		}

		var data createFeedData
		if stop = readJSON(w, http.MaxBytesReader(w, r.Body, bodySize), &data); stop {
			return
		}

		owner := data.User
		if owner == "" {
			owner = user.Login
		}

		if !content.CanCreateFor(user, owner) {
			writeError(w, log, errors.Wrapf(content.ErrForbidden, "%s creating feed for %s", user.Login, owner))
			return
		}

		feed, err := createFeedFor(r.Context(), repo, data, owner)
		if err != nil {
			writeError(w, log, err)
			return
		}

		log.Infof("User %s created feed %s", user, feed)

		writeJSON(w, http.StatusCreated, feed)
	}
}

func createFeedFor(ctx context.Context, r repo.Feed, data createFeedData, owner content.Login) (content.Feed, error) {
	feed, err := repo.CreateFeed(ctx, r, data.Author, data.URL, content.OwnedBy(owner), content.WithLink(data.Link))
	if err != nil {
		return content.Feed{}, errors.WithMessage(err, "creating feed")
	}

	return feed, nil
}

func deleteFeed(repo repo.Feed, log log.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, stop := userFromRequest(w, r)
		if stop {
			return
		}

		feed, stop := feedFromRequest(w, r)
		if stop {
			return
		}

		if !content.CanDelete(user, feed) {
			writeError(w, log, errors.Wrapf(content.ErrForbidden, "%s deleting feed %s", user.Login, feed.ID))
			return
		}

		if _, err := repo.Delete(r.Context(), feed.ID); err != nil {
			writeError(w, log, errors.WithMessage(err, "deleting feed"))
			return
		}

		log.Infof("User %s deleted feed %s", user, feed)

		w.WriteHeader(http.StatusNoContent)
	}
}

func searchFeeds(repo repo.Feed, searchProvider search.Provider, maxLimit int, log log.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if searchProvider == nil {
			writeStatus(w, http.StatusNotImplemented, "search is disabled")
			return
		}

		query := r.URL.Query()

		term := query.Get("q")
		if term == "" {
			writeStatus(w, http.StatusBadRequest, "no search term")
			return
		}

		limit, err := intParam(query.Get("limit"), maxLimit)
		if err != nil || limit <= 0 {
			writeStatus(w, http.StatusBadRequest, "invalid limit")
			return
		}
		if limit > maxLimit {
			limit = maxLimit
		}

		offset, err := intParam(query.Get("offset"), 0)
		if err != nil || offset < 0 {
			writeStatus(w, http.StatusBadRequest, "invalid offset")
			return
		}

		ids, err := searchProvider.Search(r.Context(), term, limit, offset)
		if err != nil {
			writeError(w, log, errors.WithMessage(err, "searching feeds"))
			return
		}

		feeds := make([]content.Feed, 0, len(ids))
		for _, id := range ids {
			feed, err := repo.Get(r.Context(), id)
			if err != nil {
				if content.IsNoContent(err) {
					// The index lags behind deletions.
					continue
				}

				writeError(w, log, errors.WithMessage(err, "getting search result"))
				return
			}

			feeds = append(feeds, feed)
		}

		writeFeeds(w, feeds)
	}
}

func intParam(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

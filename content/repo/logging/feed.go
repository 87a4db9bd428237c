package logging

import (
	"context"
	"time"

	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/content/repo"
	"github.com/urandom/feedkeeper/log"
)

type feedRepo struct {
	repo.Feed

	log log.Log
}

func (r feedRepo) Exists(ctx context.Context, id content.FeedID) (bool, error) {
	start := time.Now()

	exists, err := r.Feed.Exists(ctx, id)

	r.observe("repo.Feed.Exists", start, err)

	return exists, err
}

func (r feedRepo) Get(ctx context.Context, id content.FeedID) (content.Feed, error) {
	start := time.Now()

	feed, err := r.Feed.Get(ctx, id)

	r.observe("repo.Feed.Get", start, err)

	return feed, err
}

func (r feedRepo) All(ctx context.Context) ([]content.Feed, error) {
	start := time.Now()

	feeds, err := r.Feed.All(ctx)

	r.observe("repo.Feed.All", start, err)

	return feeds, err
}

func (r feedRepo) Create(ctx context.Context, feed content.Feed) error {
	start := time.Now()

	err := r.Feed.Create(ctx, feed)

	r.observe("repo.Feed.Create", start, err)

	return err
}

func (r feedRepo) Delete(ctx context.Context, id content.FeedID) (content.Feed, error) {
	start := time.Now()

	feed, err := r.Feed.Delete(ctx, id)

	r.observe("repo.Feed.Delete", start, err)

	return feed, err
}

func (r feedRepo) observe(call string, start time.Time, err error) {
	d := time.Since(start)

	r.log.Infof("%s took %s", call, d)

	callDuration.WithLabelValues(call, outcome(err)).Observe(d.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case content.IsNoContent(err):
		return "not-found"
	case content.IsConflict(err):
		return "conflict"
	case content.IsValidation(err):
		return "invalid"
	default:
		return "error"
	}
}

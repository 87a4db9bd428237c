package repo

import (
	"context"

	"github.com/urandom/feedkeeper/content"
)

//go:generate mockgen -package mock_repo -source=feed.go -destination=mock_repo/feed.go

// Feed allows fetching and manipulating content.Feed objects
type Feed interface {
	Exists(context.Context, content.FeedID) (bool, error)
	Get(context.Context, content.FeedID) (content.Feed, error)
	All(context.Context) ([]content.Feed, error)

	// Create saves a new feed, failing with content.ErrConflict when a
	// feed with the same id is already stored.
	Create(context.Context, content.Feed) error
	// Delete removes the feed and returns it, failing with
	// content.ErrNoContent when it is not stored.
	Delete(context.Context, content.FeedID) (content.Feed, error)
}

// Package repo defines the content repositories and their shared helpers.
package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/content"
)

// CreateFeed constructs a feed and saves it in one step.
func CreateFeed(ctx context.Context, r Feed, author, url string, opts ...content.FeedOpt) (content.Feed, error) {
	feed, err := content.NewFeed(author, url, opts...)
	if err != nil {
		return content.Feed{}, errors.WithMessage(err, "constructing feed")
	}

	if err = r.Create(ctx, feed); err != nil {
		return content.Feed{}, err
	}

	return feed, nil
}

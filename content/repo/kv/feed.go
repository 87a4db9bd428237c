package kv

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/content/kv"
	"github.com/urandom/feedkeeper/log"
)

type feedRepo struct {
	store kv.Store
	log   log.Log
}

const feedPrefix = "feed:"

func feedKey(id content.FeedID) string {
	return feedPrefix + string(id)
}

func (r feedRepo) Exists(ctx context.Context, id content.FeedID) (bool, error) {
	r.log.Debugf("Checking feed %s", id)

	exists, err := r.store.Exists(ctx, feedKey(id))
	if err != nil {
		return false, errors.WithMessage(err, "checking feed "+string(id))
	}

	return exists, nil
}

func (r feedRepo) Get(ctx context.Context, id content.FeedID) (content.Feed, error) {
	r.log.Infof("Getting feed %s", id)

	b, err := r.store.Get(ctx, feedKey(id))
	if err != nil {
		if err == kv.ErrNotFound {
			err = content.ErrNoContent
		}

		return content.Feed{}, errors.Wrapf(err, "getting feed %s", id)
	}

	return decodeFeed(b)
}

func (r feedRepo) All(ctx context.Context) ([]content.Feed, error) {
	r.log.Infoln("Getting all feeds")

	values, err := r.store.Values(ctx, feedPrefix)
	if err != nil {
		return nil, errors.WithMessage(err, "getting all feeds")
	}

	feeds := make([]content.Feed, 0, len(values))
	for _, b := range values {
		feed, err := decodeFeed(b)
		if err != nil {
			return nil, err
		}

		feeds = append(feeds, feed)
	}

	return feeds, nil
}

func (r feedRepo) Create(ctx context.Context, feed content.Feed) error {
	if err := feed.Validate(); err != nil {
		return errors.WithMessage(err, "validating feed")
	}

	r.log.Infof("Creating feed %s", feed)

	b, err := json.Marshal(feed)
	if err != nil {
		return errors.Wrapf(err, "encoding feed %s", feed.ID)
	}

	set, err := r.store.SetNX(ctx, feedKey(feed.ID), b)
	if err != nil {
		return errors.WithMessage(err, "creating feed "+string(feed.ID))
	}

	if !set {
		return errors.Wrapf(content.ErrConflict, "feed with url %s exists", feed.URL)
	}

	return nil
}

func (r feedRepo) Delete(ctx context.Context, id content.FeedID) (content.Feed, error) {
	r.log.Infof("Deleting feed %s", id)

	b, err := r.store.GetDel(ctx, feedKey(id))
	if err != nil {
		if err == kv.ErrNotFound {
			err = content.ErrNoContent
		}

		return content.Feed{}, errors.Wrapf(err, "deleting feed %s", id)
	}

	return decodeFeed(b)
}

func decodeFeed(b []byte) (content.Feed, error) {
	var feed content.Feed
	if err := json.Unmarshal(b, &feed); err != nil {
		return content.Feed{}, errors.Wrap(err, "decoding feed")
	}

	return feed, nil
}

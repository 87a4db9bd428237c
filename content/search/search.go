// Package search mirrors feeds into a full-text index.
package search

import (
	"context"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/config"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/content/repo"
	"github.com/urandom/feedkeeper/log"
)

type IndexOperation int

const (
	BatchAdd IndexOperation = iota + 1
	BatchDelete
)

type Provider interface {
	IsNewIndex() bool
	Search(ctx context.Context, term string, limit, offset int) ([]content.FeedID, error)
	BatchIndex(ctx context.Context, feeds []content.Feed, op IndexOperation) error
}

type indexFeed struct {
	FeedID string `json:"feed_id"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Link   string `json:"link"`
	User   string `json:"user"`
}

func prepareFeed(feed content.Feed) (string, indexFeed) {
	return string(feed.ID), indexFeed{
		FeedID: string(feed.ID),
		Author: feed.Author,
		URL:    feed.URL,
		Link:   feed.SiteLink(),
		User:   string(feed.Owner()),
	}
}

// New creates the provider selected by the config. A nil provider without an
// error means search is disabled.
func New(cfg config.Search, log log.Log) (Provider, error) {
	switch cfg.Provider {
	case "elastic":
		p, err := NewElastic(cfg.ElasticURL, cfg.BatchSize, log)
		if err != nil {
			return nil, errors.WithMessage(err, "initializing Elastic search")
		}
		return p, nil
	case "bleve":
		p, err := NewBleve(cfg.BlevePath, cfg.BatchSize, log)
		if err != nil {
			return nil, errors.WithMessage(err, "initializing Bleve search")
		}
		return p, nil
	case "none", "":
		return nil, nil
	default:
		return nil, errors.Errorf("unknown search provider %q", cfg.Provider)
	}
}

// Reindex adds every stored feed to the index.
func Reindex(ctx context.Context, p Provider, repo repo.Feed) error {
	feeds, err := repo.All(ctx)
	if err != nil {
		return errors.WithMessage(err, "getting all feeds")
	}

	if err = p.BatchIndex(ctx, feeds, BatchAdd); err != nil {
		return errors.WithMessage(err, "adding batch to index")
	}

	return nil
}

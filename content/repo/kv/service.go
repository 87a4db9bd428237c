// Package kv implements the content repositories on top of a key-value store.
package kv

import (
	"github.com/urandom/feedkeeper/content/kv"
	"github.com/urandom/feedkeeper/content/repo"
	"github.com/urandom/feedkeeper/log"
)

type Service struct {
	feed repo.Feed
}

// NewService creates the repositories. The store lifecycle stays with the
// caller.
func NewService(store kv.Store, log log.Log) Service {
	return Service{
		feed: feedRepo{store: store, log: log},
	}
}

func (s Service) FeedRepo() repo.Feed {
	return s.feed
}

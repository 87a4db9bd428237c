package eventable

import (
	"context"

	"github.com/urandom/feedkeeper/content/repo"
	"github.com/urandom/feedkeeper/log"
)

type Service struct {
	repo.Service
	eventBus bus

	feed feedRepo
}

// NewService wraps the repositories of s, dispatching an event after every
// successful mutation. The bus stops when ctx is done.
func NewService(ctx context.Context, s repo.Service, buffer int, log log.Log) Service {
	bus := newBus(ctx, buffer, log)

	return Service{s, bus, feedRepo{s.FeedRepo(), bus, log}}
}

func (s Service) Listener() Stream {
	return s.eventBus.Listener()
}

func (s Service) FeedRepo() repo.Feed {
	return s.feed
}

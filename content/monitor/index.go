package monitor

import (
	"context"
	"time"

	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/content/repo/eventable"
	"github.com/urandom/feedkeeper/content/search"
	"github.com/urandom/feedkeeper/log"
)

const indexTimeout = 30 * time.Second

// Index mirrors feed creation and deletion into the search provider. The
// listener is registered before Index returns; events are processed in the
// background until the service bus stops, at which point the returned
// channel is closed.
func Index(service eventable.Service, provider search.Provider, log log.Log) <-chan struct{} {
	stream := service.Listener()
	done := make(chan struct{})

	go func() {
		defer close(done)

		for event := range stream {
			switch data := event.Data.(type) {
			case eventable.FeedCreateData:
				index(provider, data.Feed, search.BatchAdd, log)
			case eventable.FeedDeleteData:
				index(provider, data.Feed, search.BatchDelete, log)
			}
		}
	}()

	return done
}

func index(provider search.Provider, feed content.Feed, op search.IndexOperation, log log.Log) {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	if op == search.BatchAdd {
		log.Infof("Adding feed %s to the search index", feed)
	} else {
		log.Infof("Deleting feed %s from the search index", feed)
	}

	if err := provider.BatchIndex(ctx, []content.Feed{feed}, op); err != nil {
		log.Printf("Error updating search index for feed %s: %+v", feed, err)
	}
}

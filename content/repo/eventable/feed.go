package eventable

import (
	"context"
	"encoding/json"

	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/content/repo"
	"github.com/urandom/feedkeeper/log"
)

const (
	FeedCreateEvent = "feed-create"
	FeedDeleteEvent = "feed-delete"
)

type FeedCreateData struct {
	Feed content.Feed
}

func (f FeedCreateData) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{"feedID": f.Feed.ID})
}

func (f FeedCreateData) FeedID() content.FeedID {
	return f.Feed.ID
}

type FeedDeleteData struct {
	Feed content.Feed
}

func (f FeedDeleteData) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{"feedID": f.Feed.ID})
}

func (f FeedDeleteData) FeedID() content.FeedID {
	return f.Feed.ID
}

type feedRepo struct {
	repo.Feed
	eventBus bus
	log      log.Log
}

func (r feedRepo) Create(ctx context.Context, feed content.Feed) error {
	err := r.Feed.Create(ctx, feed)

	if err == nil {
		r.log.Debugf("Dispatching feed create event")

		r.eventBus.Dispatch(FeedCreateEvent, FeedCreateData{feed})

		r.log.Debugf("Dispatch of feed create event end")
	}

	return err
}

func (r feedRepo) Delete(ctx context.Context, id content.FeedID) (content.Feed, error) {
	feed, err := r.Feed.Delete(ctx, id)

	if err == nil {
		r.log.Debugf("Dispatching feed delete event")

		r.eventBus.Dispatch(FeedDeleteEvent, FeedDeleteData{feed})

		r.log.Debugf("Dispatch of feed delete event end")
	}

	return feed, err
}

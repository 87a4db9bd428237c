package eventable

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/content/repo/mock_repo"
)

func Test_feedRepo(t *testing.T) {
	feed, _ := content.NewFeed("John", "http://sugr.org/1")

	tests := []struct {
		name      string
		create    bool
		err       error
		wantEvent string
	}{
		{"create", true, nil, FeedCreateEvent},
		{"create conflict", true, errors.Wrap(content.ErrConflict, "test"), ""},
		{"delete", false, nil, FeedDeleteEvent},
		{"delete not found", false, errors.Wrap(content.ErrNoContent, "test"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			service := mock_repo.NewMockService(ctrl)
			feedRepo := mock_repo.NewMockFeed(ctrl)
			service.EXPECT().FeedRepo().Return(feedRepo)

			s := NewService(ctx, service, 10, logger)
			l := s.Listener()

			if tt.create {
				feedRepo.EXPECT().Create(gomock.Any(), feed).Return(tt.err)
				if err := s.FeedRepo().Create(ctx, feed); err != tt.err {
					t.Errorf("feedRepo.Create() error = %v, want %v", err, tt.err)
				}
			} else {
				ret := feed
				if tt.err != nil {
					ret = content.Feed{}
				}
				feedRepo.EXPECT().Delete(gomock.Any(), feed.ID).Return(ret, tt.err)
				if _, err := s.FeedRepo().Delete(ctx, feed.ID); err != tt.err {
					t.Errorf("feedRepo.Delete() error = %v, want %v", err, tt.err)
				}
			}

			select {
			case e := <-l:
				if tt.wantEvent == "" {
					t.Errorf("unexpected event %v", e)
				} else if e.Name != tt.wantEvent {
					t.Errorf("event = %v, want %v", e.Name, tt.wantEvent)
				} else if d, ok := e.Data.(FeedData); !ok || d.FeedID() != feed.ID {
					t.Errorf("event data = %#v, want feed %s", e.Data, feed.ID)
				}
			case <-time.After(100 * time.Millisecond):
				if tt.wantEvent != "" {
					t.Errorf("no %s event dispatched", tt.wantEvent)
				}
			}
		})
	}
}

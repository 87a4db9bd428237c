package monitor

import (
	"context"
	"io/ioutil"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/config"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/content/kv"
	"github.com/urandom/feedkeeper/content/repo"
	"github.com/urandom/feedkeeper/content/repo/eventable"
	repokv "github.com/urandom/feedkeeper/content/repo/kv"
	"github.com/urandom/feedkeeper/content/search"
	"github.com/urandom/feedkeeper/log"
)

type call struct {
	id content.FeedID
	op search.IndexOperation
}

type recordingProvider struct {
	mu    sync.Mutex
	calls []call
	err   error
}

func (p *recordingProvider) IsNewIndex() bool {
	return false
}

func (p *recordingProvider) Search(ctx context.Context, term string, limit, offset int) ([]content.FeedID, error) {
	return nil, nil
}

func (p *recordingProvider) BatchIndex(ctx context.Context, feeds []content.Feed, op search.IndexOperation) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, f := range feeds {
		p.calls = append(p.calls, call{f.ID, op})
	}

	return p.err
}

func (p *recordingProvider) recorded() []call {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]call(nil), p.calls...)
}

func TestIndex(t *testing.T) {
	cfg := config.Log{}
	cfg.Converted.Writer = ioutil.Discard
	logger := log.WithStd(cfg)

	tests := []struct {
		name string
		err  error
	}{
		{"index ok", nil},
		{"index failure is swallowed", errors.New("index down")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())

			service := eventable.NewService(ctx, repokv.NewService(kv.NewMemory(logger), logger), 10, logger)
			provider := &recordingProvider{err: tt.err}

			done := Index(service, provider, logger)

			feed, err := repo.CreateFeed(ctx, service.FeedRepo(), "John", "http://sugr.org/1")
			if err != nil {
				t.Fatalf("repo.CreateFeed() error = %v", err)
			}

			if _, err := service.FeedRepo().Delete(ctx, feed.ID); err != nil {
				t.Fatalf("feedRepo.Delete() error = %v", err)
			}

			want := []call{{feed.ID, search.BatchAdd}, {feed.ID, search.BatchDelete}}

			deadline := time.Now().Add(time.Second)
			for len(provider.recorded()) < len(want) && time.Now().Before(deadline) {
				time.Sleep(10 * time.Millisecond)
			}

			got := provider.recorded()
			if len(got) != len(want) {
				t.Fatalf("Index() calls = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("Index() call %d = %v, want %v", i, got[i], want[i])
				}
			}

			cancel()

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Errorf("Index() did not stop after cancellation")
			}
		})
	}
}

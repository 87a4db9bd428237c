package kv

import (
	"context"
	"fmt"
	"io/ioutil"
	"reflect"
	"testing"

	"github.com/urandom/feedkeeper/config"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/content/kv"
	"github.com/urandom/feedkeeper/content/repo"
	"github.com/urandom/feedkeeper/log"
)

var logger log.Log

func init() {
	cfg := config.Log{}
	cfg.Converted.Writer = ioutil.Discard

	logger = log.WithStd(cfg)
}

func newRepo() repo.Feed {
	return NewService(kv.NewMemory(logger), logger).FeedRepo()
}

func Test_feedRepo_Get(t *testing.T) {
	ctx := context.Background()
	r := newRepo()

	feed1, err := repo.CreateFeed(ctx, r, "John", "http://sugr.org/1", content.OwnedBy("user1"))
	if err != nil {
		t.Fatal(err)
	}
	feed2, err := repo.CreateFeed(ctx, r, "Jane", "http://sugr.org/2", content.WithLink("http://sugr.org"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		id      content.FeedID
		want    content.Feed
		wantErr bool
	}{
		{"get 1", content.HashURL("http://sugr.org/1"), feed1, false},
		{"get 2", feed2.ID, feed2, false},
		{"get unknown", content.HashURL("http://sugr.org/3"), content.Feed{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Get(ctx, tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("feedRepo.Get() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !content.IsNoContent(err) {
				t.Errorf("feedRepo.Get() error = %v, want no content", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("feedRepo.Get() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_feedRepo_Create(t *testing.T) {
	ctx := context.Background()
	r := newRepo()

	valid, _ := content.NewFeed("John", "http://sugr.org/1")

	tests := []struct {
		name         string
		feed         content.Feed
		wantConflict bool
		wantInvalid  bool
	}{
		{"first", valid, false, false},
		{"duplicate", valid, true, false},
		{"duplicate url, other author", content.Feed{ID: valid.ID, Author: "Jane", URL: valid.URL}, true, false},
		{"invalid", content.Feed{Author: "John"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Create(ctx, tt.feed)
			if content.IsConflict(err) != tt.wantConflict {
				t.Errorf("feedRepo.Create() error = %v, wantConflict %v", err, tt.wantConflict)
			}
			if content.IsValidation(err) != tt.wantInvalid {
				t.Errorf("feedRepo.Create() error = %v, wantInvalid %v", err, tt.wantInvalid)
			}
		})
	}

	got, err := r.Get(ctx, valid.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Author != "John" {
		t.Errorf("feedRepo.Create() overwrote feed, author = %v", got.Author)
	}
}

func Test_feedRepo_All(t *testing.T) {
	ctx := context.Background()
	r := newRepo()

	feeds, err := r.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(feeds) != 0 {
		t.Errorf("feedRepo.All() = %d feeds, want 0", len(feeds))
	}

	for i := 0; i < 150; i++ {
		if _, err := repo.CreateFeed(ctx, r, "John", fmt.Sprintf("http://sugr.org/%d", i)); err != nil {
			t.Fatal(err)
		}
	}

	feeds, err = r.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(feeds) != 150 {
		t.Errorf("feedRepo.All() = %d feeds, want 150", len(feeds))
	}

	seen := map[content.FeedID]bool{}
	for _, f := range feeds {
		if seen[f.ID] {
			t.Errorf("feedRepo.All() duplicate feed %s", f.ID)
		}
		seen[f.ID] = true
	}
}

func Test_feedRepo_Delete(t *testing.T) {
	ctx := context.Background()
	r := newRepo()

	feed, err := repo.CreateFeed(ctx, r, "John", "http://sugr.org/1", content.OwnedBy("user1"))
	if err != nil {
		t.Fatal(err)
	}

	got, err := r.Delete(ctx, feed.ID)
	if err != nil {
		t.Fatalf("feedRepo.Delete() error = %v", err)
	}
	if !reflect.DeepEqual(got, feed) {
		t.Errorf("feedRepo.Delete() = %v, want %v", got, feed)
	}

	if exists, err := r.Exists(ctx, feed.ID); err != nil || exists {
		t.Errorf("feedRepo.Exists() after delete = %v, %v", exists, err)
	}

	if _, err := r.Get(ctx, feed.ID); !content.IsNoContent(err) {
		t.Errorf("feedRepo.Get() after delete error = %v, want no content", err)
	}

	if _, err := r.Delete(ctx, feed.ID); !content.IsNoContent(err) {
		t.Errorf("feedRepo.Delete() twice error = %v, want no content", err)
	}

	if _, err := repo.CreateFeed(ctx, r, "John", "http://sugr.org/1"); err != nil {
		t.Errorf("repo.CreateFeed() after delete error = %v", err)
	}
}

package content

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// FeedID is the content address of a feed, derived from its url.
type FeedID string

// Feed is a subscribed RSS/Atom source.
type Feed struct {
	ID           FeedID  `json:"id"`
	Author       string  `json:"author"`
	URL          string  `json:"url"`
	User         *Login  `json:"user"`
	Link         *string `json:"link"`
	ETag         *string `json:"etag"`
	LastModified *string `json:"lastModified"`
}

// FeedOpt sets an optional field of a new feed.
type FeedOpt func(*Feed)

// HashURL derives the feed id from the raw url. Any change here invalidates
// every stored feed.
func HashURL(url string) FeedID {
	sum := sha256.Sum256([]byte(url))

	return FeedID(hex.EncodeToString(sum[:]))
}

// NewFeed constructs a validated feed. It still needs to be saved in a
// repo.Feed.
func NewFeed(author, url string, opts ...FeedOpt) (Feed, error) {
	f := Feed{Author: author, URL: url, ID: HashURL(url)}

	for _, o := range opts {
		o(&f)
	}

	if err := f.Validate(); err != nil {
		return Feed{}, err
	}

	return f, nil
}

// OwnedBy sets the owner of the feed. An empty login leaves it unowned.
func OwnedBy(login Login) FeedOpt {
	return func(f *Feed) {
		if login != "" {
			f.User = &login
		}
	}
}

// WithLink sets the human-facing site link.
func WithLink(link string) FeedOpt {
	return func(f *Feed) {
		if link != "" {
			f.Link = &link
		}
	}
}

// Validate checks whether all required fields have been provided.
func (f Feed) Validate() error {
	if f.Author == "" {
		return NewValidationError(errors.New("no feed author"))
	}

	if f.URL == "" {
		return NewValidationError(errors.New("no feed url"))
	}

	if f.ID != HashURL(f.URL) {
		return NewValidationError(errors.Errorf("feed id %s does not match url %s", f.ID, f.URL))
	}

	return nil
}

// Owner returns the owner login, or an empty one for unowned feeds.
func (f Feed) Owner() Login {
	if f.User == nil {
		return ""
	}

	return *f.User
}

// SiteLink returns the link, falling back to the feed url.
func (f Feed) SiteLink() string {
	if f.Link == nil || *f.Link == "" {
		return f.URL
	}

	return *f.Link
}

func (f Feed) String() string {
	return fmt.Sprintf("%s: %s (%s)", f.ID, f.URL, f.Author)
}

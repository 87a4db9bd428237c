package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/config"
	"github.com/urandom/feedkeeper/content/kv"
	"github.com/urandom/feedkeeper/content/repo"
	"github.com/urandom/feedkeeper/content/repo/eventable"
	repokv "github.com/urandom/feedkeeper/content/repo/kv"
	"github.com/urandom/feedkeeper/content/repo/logging"
	"github.com/urandom/feedkeeper/content/search"
	"github.com/urandom/feedkeeper/log"
)

func initLog(config config.Log) log.Log {
	return log.WithLogrus(config)
}

func initStore(config config.KV, log log.Log) (kv.Store, error) {
	if config.Provider == "bolt" {
		if err := ensureDir(config.BoltPath); err != nil {
			return nil, err
		}
	}

	store, err := kv.Open(config, log)
	if err != nil {
		return nil, errors.WithMessage(err, "opening kv store")
	}

	return store, nil
}

// initService stacks the repo decorators over the kv repos. The returned
// service dispatches feed events until ctx is done.
func initService(ctx context.Context, store kv.Store, config config.Config, log log.Log) eventable.Service {
	var service repo.Service = repokv.NewService(store, log)

	if config.Log.RepoCallDuration {
		service = logging.NewService(service, log)
	}

	return eventable.NewService(ctx, service, config.Search.ListenerBuffer, log)
}

func initSearchProvider(config config.Search, log log.Log) (search.Provider, error) {
	if config.Provider == "bleve" && config.BlevePath != "" {
		if err := ensureDir(config.BlevePath); err != nil {
			return nil, err
		}
	}

	return search.New(config, log)
}

// stopSearch stops the event bus through cancel, waits for the pending index
// work to finish and only then closes the provider.
func stopSearch(cancel context.CancelFunc, p search.Provider, log log.Log, pending ...<-chan struct{}) {
	cancel()

	for _, done := range pending {
		<-done
	}

	closeSearchProvider(p, log)
}

func closeSearchProvider(p search.Provider, log log.Log) {
	if c, ok := p.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Printf("Error closing search provider: %+v", err)
		}
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return errors.Wrapf(err, "creating storage dir %s", dir)
	}

	return nil
}

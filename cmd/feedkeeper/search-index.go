package main

import (
	"context"
	"flag"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/config"
	repokv "github.com/urandom/feedkeeper/content/repo/kv"
	"github.com/urandom/feedkeeper/content/search"
)

var (
	searchIndexVerbose bool
)

func runSearchIndex(config config.Config, args []string) error {
	if searchIndexVerbose {
		config.Log.Level = "debug"
	}

	log := initLog(config.Log)

	store, err := initStore(config.KV, log)
	if err != nil {
		return err
	}
	defer store.Close()

	searchProvider, err := initSearchProvider(config.Search, log)
	if err != nil {
		return errors.WithMessage(err, "initializing search provider")
	}
	if searchProvider == nil {
		return errors.Errorf("search provider %q does not index", config.Search.Provider)
	}
	defer closeSearchProvider(searchProvider, log)

	log.Info("Starting feed indexing")

	service := repokv.NewService(store, log)
	if err := search.Reindex(context.Background(), searchProvider, service.FeedRepo()); err != nil {
		return errors.WithMessage(err, "indexing all feeds")
	}

	return nil
}

func init() {
	flags := flag.NewFlagSet("search-index", flag.ExitOnError)
	flags.BoolVar(&searchIndexVerbose, "verbose", false, "verbose output")

	commands = append(commands, Command{
		Name:  "search-index",
		Desc:  "re-index all feeds",
		Flags: flags,
		Run:   runSearchIndex,
	})
}

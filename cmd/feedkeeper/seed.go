package main

import (
	"context"
	"flag"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/config"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/content/monitor"
	"github.com/urandom/feedkeeper/content/repo"
	"github.com/urandom/feedkeeper/log"
)

var (
	seedAuthor string
	seedLink   string
)

// runSeed creates unowned feeds, which only admins may delete.
func runSeed(config config.Config, args []string) error {
	if len(args) == 0 {
		return errors.New("no feed urls")
	}

	log := initLog(config.Log)

	store, err := initStore(config.KV, log)
	if err != nil {
		return err
	}
	defer store.Close()

	searchProvider, err := initSearchProvider(config.Search, log)
	if err != nil {
		log.Printf("Error initializing search, feeds will not be indexed: %+v", err)
		searchProvider = nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := initService(ctx, store, config, log)

	if searchProvider != nil {
		defer stopSearch(cancel, searchProvider, log, monitor.Index(service, searchProvider, log))
	}

	return seed(ctx, service.FeedRepo(), args, log)
}

func seed(ctx context.Context, r repo.Feed, urls []string, log log.Log) error {
	for _, url := range urls {
		feed, err := repo.CreateFeed(ctx, r, seedAuthor, url, content.WithLink(seedLink))
		if err != nil {
			if content.IsConflict(err) {
				log.Infof("Feed %s already exists", url)
				continue
			}

			return errors.WithMessage(err, "seeding feed "+url)
		}

		log.Infof("Seeded feed %s", feed)
	}

	return nil
}

func init() {
	flags := flag.NewFlagSet("seed", flag.ExitOnError)
	flags.StringVar(&seedAuthor, "author", "feedkeeper", "author of the seeded feeds")
	flags.StringVar(&seedLink, "link", "", "site link of the seeded feeds")

	commands = append(commands, Command{
		Name:  "seed",
		Desc:  "create unowned feeds from the given urls",
		Flags: flags,
		Run:   runSeed,
	})
}

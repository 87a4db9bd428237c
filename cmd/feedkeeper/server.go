package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/urandom/feedkeeper/api"
	"github.com/urandom/feedkeeper/api/auth"
	"github.com/urandom/feedkeeper/api/token"
	"github.com/urandom/feedkeeper/config"
	"github.com/urandom/feedkeeper/content/monitor"
	"github.com/urandom/feedkeeper/content/search"
	"github.com/urandom/feedkeeper/log"
)

var (
	serverDevelPort int
)

func runServer(config config.Config, args []string) error {
	log := initLog(config.Log)

	if config.Auth.Secret == "" {
		return errors.New("no auth secret configured")
	}

	store, err := initStore(config.KV, log)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := initService(ctx, store, config, log)

	searchProvider, err := initSearchProvider(config.Search, log)
	if err != nil {
		log.Printf("Error initializing search, continuing without it: %+v", err)
		searchProvider = nil
	}

	if searchProvider != nil {
		indexed := monitor.Index(service, searchProvider, log)

		reindexed := make(chan struct{})
		if searchProvider.IsNewIndex() {
			go func() {
				defer close(reindexed)

				log.Info("Indexing all feeds into the new search index")
				if err := search.Reindex(ctx, searchProvider, service.FeedRepo()); err != nil {
					log.Printf("Error reindexing all feeds: %+v", err)
				}
			}()
		} else {
			close(reindexed)
		}

		defer stopSearch(cancel, searchProvider, log, indexed, reindexed)
	}

	var tokenStorage token.Storage
	if config.Auth.TokenStoragePath != "" {
		if err := ensureDir(config.Auth.TokenStoragePath); err != nil {
			return err
		}

		storage, err := token.NewBoltStorage(config.Auth.TokenStoragePath, log)
		if err != nil {
			return errors.WithMessage(err, "creating token storage")
		}
		defer storage.Close()

		tokenStorage = storage
		go cleanupTokens(ctx, storage, config.Auth.Converted.CleanupInterval, log)
	}

	authenticator := auth.NewJWT([]byte(config.Auth.Secret), tokenStorage, log)

	handler, err := api.Mux(service, searchProvider, authenticator, config, log)
	if err != nil {
		return errors.WithMessage(err, "creating api mux")
	}

	mux := chi.NewRouter()
	mux.Mount("/api", corsHandler(config.API.CORSOrigins).Handler(handler))
	mux.Handle("/metrics", promhttp.Handler())

	server := makeHTTPServer(mux, config.Timeout)

	if serverDevelPort > 0 {
		server.Addr = fmt.Sprintf(":%d", serverDevelPort)
	} else {
		server.Addr = fmt.Sprintf("%s:%d", config.Server.Address, config.Server.Port)
	}

	return serve(server, config.Server, config.Timeout.Converted.Shutdown, log)
}

func serve(server *http.Server, config config.Server, shutdownTimeout time.Duration, log log.Log) error {
	errc := make(chan error, 1)

	go func() {
		log.Infof("Starting server on address %s", server.Addr)

		if config.CertFile != "" && config.KeyFile != "" {
			errc <- errors.Wrap(server.ListenAndServeTLS(config.CertFile, config.KeyFile), "starting tls server")
		} else {
			errc <- errors.Wrap(server.ListenAndServe(), "starting server")
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case err := <-errc:
		return err
	case s := <-signals:
		log.Infof("Received %s, shutting down", s)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutting down server")
	}

	return nil
}

func corsHandler(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Total-Count"},
	})
}

func cleanupTokens(ctx context.Context, storage token.Storage, interval time.Duration, log log.Log) {
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := storage.RemoveExpired(); err != nil {
				log.Printf("Error removing expired tokens: %+v", err)
			}
		}
	}
}

func makeHTTPServer(mux http.Handler, timeout config.Timeout) *http.Server {
	return &http.Server{
		ReadTimeout:  timeout.Converted.Read,
		WriteTimeout: timeout.Converted.Write,
		IdleTimeout:  timeout.Converted.Idle,
		Handler:      mux,
	}
}

func init() {
	flags := flag.NewFlagSet("server", flag.ExitOnError)
	flags.IntVar(&serverDevelPort, "devel-port", 0, "when specified, overrides the configured address with this port")

	commands = append(commands, Command{
		Name:  "server",
		Desc:  "feed service server",
		Flags: flags,
		Run:   runServer,
	})
}

package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

func defaultConfig() (Config, error) {
	var def Config

	err := toml.Unmarshal([]byte(DefaultCfg), &def)

	if err != nil {
		return Config{}, errors.Wrap(err, "parsing default config")
	}

	def.API.Version = apiversion
	return def, nil
}

// DefaultCfg shows the default configuration of the feedkeeper server
var DefaultCfg = `
[server]
	port = 8080
[log]
	level = "info"     # error, info, debug
	file = "-"         # stderr, or a filename
	formatter = "text" # text, json
	access = false     # log every request
	repo-call-duration = false
[api]
	cors-origins = ["*"]
[api.limits]
	feeds-per-search = 100
	body-size = 1048576
[auth]
	token-storage-path = "./storage/token.db"
	token-ttl = "720h"
	cleanup-interval = "1h"
[kv]
	provider = "redis" # redis, memory, bolt
	redis-addr = "localhost:6379"
	redis-db = 0
	bolt-path = "./storage/feeds.db"
[search]
	provider = "elastic" # elastic, bleve, none
	batch-size = 100
	bleve-path = "./storage/search.bleve"
	elastic-url = "http://localhost:9200"
	listener-buffer = 100
[timeout]
	read = "5s"
	write = "5s"
	idle = "120s"
	shutdown = "10s"
`

package config

import (
	"io"
	"os"
	"time"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const apiversion = 1

type Server struct {
	Address  string `toml:"address"`
	Port     int    `toml:"port"`
	CertFile string `toml:"cert-file"`
	KeyFile  string `toml:"key-file"`
}

type Log struct {
	Level            string `toml:"level"`
	File             string `toml:"file"`
	Formatter        string `toml:"formatter"`
	Access           bool   `toml:"access"`
	RepoCallDuration bool   `toml:"repo-call-duration"`

	Converted struct {
		Writer io.Writer
		Prefix string
	} `toml:"-"`
}

type API struct {
	Version     int      `toml:"version"`
	CORSOrigins []string `toml:"cors-origins"`
	Limits      struct {
		FeedsPerSearch int   `toml:"feeds-per-search"`
		BodySize       int64 `toml:"body-size"`
	} `toml:"limits"`
}

type Auth struct {
	Secret           string `toml:"secret"`
	TokenStoragePath string `toml:"token-storage-path"`
	TokenTTL         string `toml:"token-ttl"`
	CleanupInterval  string `toml:"cleanup-interval"`

	Converted struct {
		TokenTTL        time.Duration
		CleanupInterval time.Duration
	} `toml:"-"`
}

// KV selects and configures the key-value store that holds the feeds.
type KV struct {
	Provider      string `toml:"provider"`
	RedisAddr     string `toml:"redis-addr"`
	RedisPassword string `toml:"redis-password"`
	RedisDB       int    `toml:"redis-db"`
	BoltPath      string `toml:"bolt-path"`
	DialTimeout   string `toml:"dial-timeout"`

	Converted struct {
		DialTimeout time.Duration
	} `toml:"-"`
}

type Search struct {
	Provider       string `toml:"provider"`
	BatchSize      int64  `toml:"batch-size"`
	BlevePath      string `toml:"bleve-path"`
	ElasticURL     string `toml:"elastic-url"`
	ListenerBuffer int    `toml:"listener-buffer"`
}

type Timeout struct {
	Read     string `toml:"read"`
	Write    string `toml:"write"`
	Idle     string `toml:"idle"`
	Shutdown string `toml:"shutdown"`

	Converted struct {
		Read     time.Duration
		Write    time.Duration
		Idle     time.Duration
		Shutdown time.Duration
	} `toml:"-"`
}

type converter interface {
	Convert()
}

func (c *API) Convert() {
	c.Version = apiversion

	if c.Limits.BodySize <= 0 {
		c.Limits.BodySize = 1 << 20
	}
}

func (c *Log) Convert() {
	if c.File == "-" || c.File == "" {
		c.Converted.Writer = os.Stderr
	} else {
		c.Converted.Writer = &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    20,
			MaxBackups: 5,
			MaxAge:     28,
		}
	}
}

func (c *Auth) Convert() {
	c.Converted.TokenTTL = parseDuration(c.TokenTTL, 30*24*time.Hour)
	c.Converted.CleanupInterval = parseDuration(c.CleanupInterval, time.Hour)
}

func (c *KV) Convert() {
	c.Converted.DialTimeout = parseDuration(c.DialTimeout, 5*time.Second)
}

func (c *Timeout) Convert() {
	c.Converted.Read = parseDuration(c.Read, 5*time.Second)
	c.Converted.Write = parseDuration(c.Write, 5*time.Second)
	c.Converted.Idle = parseDuration(c.Idle, 120*time.Second)
	c.Converted.Shutdown = parseDuration(c.Shutdown, 10*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	return fallback
}

package config

import (
	"io/ioutil"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the feedkeeper configuration
type Config struct {
	Server  Server  `toml:"server"`
	Log     Log     `toml:"log"`
	API     API     `toml:"api"`
	Auth    Auth    `toml:"auth"`
	KV      KV      `toml:"kv"`
	Search  Search  `toml:"search"`
	Timeout Timeout `toml:"timeout"`
}

// Read loads the config data from the given path
func Read(path string) (Config, error) {
	c, err := defaultConfig()

	if err != nil {
		return Config{}, errors.WithMessage(err, "initializing default config")
	}

	if path != "" {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "reading config from %s", path)
		}

		if err = toml.Unmarshal(b, &c); err != nil {
			return Config{}, errors.Wrapf(err, "unmarshaling toml config from %s", path)
		}
	}

	c.convert()

	return c, nil
}

func (c *Config) convert() {
	for _, cv := range []converter{&c.API, &c.Log, &c.Auth, &c.KV, &c.Timeout} {
		cv.Convert()
	}
}

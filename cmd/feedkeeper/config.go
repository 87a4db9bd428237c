package main

import (
	"flag"
	"fmt"

	toml "github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/config"
)

func runConfig(config config.Config, args []string) error {
	b, err := marshalConfig(config)
	if err != nil {
		return err
	}

	fmt.Print(string(b))

	return nil
}

func marshalConfig(config config.Config) ([]byte, error) {
	config.Auth.Secret = ""
	config.KV.RedisPassword = ""

	b, err := toml.Marshal(config)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling config")
	}

	return b, nil
}

func init() {
	commands = append(commands, Command{
		Name:  "config",
		Desc:  "print the effective configuration, without secrets",
		Flags: flag.NewFlagSet("config", flag.ExitOnError),
		Run:   runConfig,
	})
}

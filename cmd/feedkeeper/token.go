package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/api/auth"
	"github.com/urandom/feedkeeper/config"
	"github.com/urandom/feedkeeper/content"
)

var (
	tokenName  string
	tokenAdmin bool
	tokenTTL   time.Duration
)

func runToken(config config.Config, args []string) error {
	if len(args) != 1 {
		return errors.New("expected a single login argument")
	}

	if config.Auth.Secret == "" {
		return errors.New("no auth secret configured")
	}

	ttl := tokenTTL
	if ttl <= 0 {
		ttl = config.Auth.Converted.TokenTTL
	}

	user := content.User{Login: content.Login(args[0]), Name: tokenName, Admin: tokenAdmin}

	t, err := auth.NewToken([]byte(config.Auth.Secret), user, ttl)
	if err != nil {
		return errors.WithMessage(err, "creating token")
	}

	fmt.Println(t)

	return nil
}

func init() {
	flags := flag.NewFlagSet("token", flag.ExitOnError)
	flags.StringVar(&tokenName, "name", "", "display name of the user")
	flags.BoolVar(&tokenAdmin, "admin", false, "grant admin rights")
	flags.DurationVar(&tokenTTL, "ttl", 0, "token lifetime, defaults to the configured token-ttl")

	commands = append(commands, Command{
		Name:  "token",
		Desc:  "mint an api token for a login",
		Flags: flags,
		Run:   runToken,
	})
}

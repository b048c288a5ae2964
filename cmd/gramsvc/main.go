/*
Gramsvc starts the grammar-compiler HTTP service and begins listening for
compile requests.

Usage:

	gramsvc [flags]

Once started, gramsvc listens for HTTP requests and serves the grammar
compile and ambiguity-detection API. By default it listens on
localhost:8080 and stores its job history in ./gramsvc.db.

If a JWT token secret is not given, a random one is generated at
startup, which invalidates every issued token as soon as the server
restarts -- fine for local testing, not for production use.

The flags are:

	-v, --version
		Give the current version of the grammar compiler and then exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Defaults to the value of environment
		variable GRAMSVC_LISTEN_ADDRESS, or localhost:8080 if unset.

	-s, --secret TOKEN_SECRET
		Use the provided secret for signing JWT tokens. Defaults to the
		value of environment variable GRAMSVC_TOKEN_SECRET, or a random
		secret if unset.

	--db DSN
		SQLite DSN for the job store. Defaults to ./gramsvc.db.

	--seed-account USER:PASS
		Create a service account with the given username and password on
		startup if it does not already exist. Useful for first-run setup.
*/
package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/pellham/nlgram/internal/fixtures"
	"github.com/pellham/nlgram/internal/version"
	"github.com/pellham/nlgram/server"
)

const (
	EnvListen = "GRAMSVC_LISTEN_ADDRESS"
	EnvSecret = "GRAMSVC_TOKEN_SECRET"
)

const (
	ExitSuccess = iota
	ExitInitError
)

var (
	flagVersion     = pflag.BoolP("version", "v", false, "Give the current version and then exit.")
	flagListen      = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret      = pflag.StringP("secret", "s", "", "Secret used for signing JWT tokens.")
	flagDB          = pflag.String("db", "gramsvc.db", "SQLite DSN for the job store.")
	flagSeedAccount = pflag.String("seed-account", "", "USER:PASS to create on startup if missing.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	listen := *flagListen
	if listen == "" {
		listen = os.Getenv(EnvListen)
	}
	if listen == "" {
		listen = "localhost:8080"
	}

	secret := []byte(*flagSecret)
	if len(secret) == 0 {
		secret = []byte(os.Getenv(EnvSecret))
	}
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: generating random secret: %s\n", err.Error())
			os.Exit(ExitInitError)
		}
	}

	store, err := server.NewStore(*flagDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		os.Exit(ExitInitError)
	}
	defer store.Close()

	if *flagSeedAccount != "" {
		if err := seedAccount(store, *flagSeedAccount); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: seeding account: %s\n", err.Error())
			os.Exit(ExitInitError)
		}
	}

	srv := &server.Server{
		Store:        store,
		Secret:       secret,
		BuildFixture: fixtures.Build,
	}

	fmt.Printf("gramsvc %s listening on %s\n", version.Current, listen)
	if err := http.ListenAndServe(listen, srv.Router()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		os.Exit(ExitInitError)
	}
}

func seedAccount(store *server.Store, spec string) error {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("seed-account must be USER:PASS")
	}
	if _, err := store.GetAccountByUsername(context.Background(), parts[0]); err == nil {
		return nil
	}
	return server.CreateSeedAccount(store, parts[0], parts[1])
}

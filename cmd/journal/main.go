// Package main is the journal terminal client.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/journalapp/journal/internal/cli"
	"github.com/journalapp/journal/internal/client"
	"github.com/journalapp/journal/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		if sessionPath, err = cli.DefaultSessionPath(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	sessions := cli.NewSessionStore(sessionPath)

	sess, err := sessions.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	api, err := client.New(cfg.APIURL,
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		client.WithToken(sess.Token),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	app := cli.NewApp(api, sessions, os.Stdin, os.Stdout, int(os.Stdin.Fd()))
	return app.Run(ctx, os.Args[1:])
}

// Package cmd implements the CLI application to track a crypto portfolio.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cryptofolio/api"
	"github.com/etnz/cryptofolio/session"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&loginCmd{},
	&registerCmd{},
	&logoutCmd{},
	&whoamiCmd{},
	&listCmd{},
	&addCmd{},
	&updateCmd{},
	&deleteCmd{},
	&pricesCmd{},
	&priceCmd{},
	&symbolsCmd{},
	&catalogCmd{},
	&seedCmd{},
	&clearCacheCmd{},
	&watchCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiURL = flag.String("api-url", "", "Base URL of the backend API (defaults to $CRYPTOFOLIO_API_URL)")
var homeDir = flag.String("home", "", "Directory holding the session files (defaults to $CRYPTOFOLIO_HOME)")

func baseURL() string {
	if *apiURL != "" {
		return *apiURL
	}
	return os.Getenv("CRYPTOFOLIO_API_URL")
}

func sessionDir() string {
	if *homeDir != "" {
		return *homeDir
	}
	if dir := os.Getenv("CRYPTOFOLIO_HOME"); dir != "" {
		return dir
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return ".cryptofolio"
	}
	return filepath.Join(cfg, "cryptofolio")
}

// OpenSession is the central function to build the API client and restore the
// persisted session, if any.
func OpenSession() (*session.Store, *api.Client, error) {
	client, err := api.New(baseURL())
	if err != nil {
		return nil, nil, fmt.Errorf("invalid backend address: %w", err)
	}
	store, err := session.Open(sessionDir(), client)
	if err != nil {
		return nil, nil, err
	}
	return store, client, nil
}

// RequireSession is like OpenSession but fails when nobody is logged in.
func RequireSession() (*session.Store, *api.Client, error) {
	store, client, err := OpenSession()
	if err != nil {
		return nil, nil, err
	}
	if !store.Authenticated() {
		return nil, nil, fmt.Errorf("not logged in (run 'cfo login' first)")
	}
	return store, client, nil
}

// printMarkdown renders markdown on the terminal, falling back to the raw
// text when the renderer cannot be built.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// confirm asks the user a yes/no question on the terminal.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

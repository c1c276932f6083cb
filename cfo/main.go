// Command cfo tracks a crypto portfolio from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/cryptofolio/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env in the working directory may carry CRYPTOFOLIO_API_URL and
	// friends. Absence is fine.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()

	// Ctrl-C cancels long running commands such as watch.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(int(commander.Execute(ctx)))
}

// completion registers shell completion for every subcommand, and exits
// when invoked by the shell's completion machinery.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	completions := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"api-url": predict.Something,
			"home":    predict.Dirs("*"),
		},
	}
	completions.Complete("cfo")
}

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd <command> <flags>

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "properties file with dataset and logging settings",
	}
	datasetFlag = cli.StringFlag{
		Name:  "dataset",
		Usage: "static or random; without this flag or a config file both tables are shown",
	}
	pagesFlag = cli.IntFlag{
		Name:  "pages",
		Usage: "number of pages in a random dataset",
	}
	seedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed for random attributes and the NRU draw, 0 seeds from the clock",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "debug, info, warn or error",
	}
)

// sessionFlags are accepted both before and after the command name.
func sessionFlags() []cli.Flag {
	return []cli.Flag{
		&configFlag,
		&datasetFlag,
		&pagesFlag,
		&seedFlag,
		&logLevelFlag,
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "evict",
		Usage: "pick the page each replacement policy would evict",
		Flags: append(sessionFlags(), &resultsTableFlag),
		Commands: []*cli.Command{
			&Run,
			&Drain,
		},
		Action: run,
	}
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

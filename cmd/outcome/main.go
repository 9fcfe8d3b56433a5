// Command outcome prints HTTP responses as results and checks message catalogs.
//
// Run using
//
//	go run ./cmd/outcome <command> <flags>
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// errFailure makes the process exit with status 1 after a failure result
// has been printed.
var errFailure = errors.New("result is a failure")

var (
	formatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "output encoding of results, json or yaml",
		Value: "json",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "write debug logs to stderr",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "outcome",
		Usage: "inspect HTTP responses and validation message catalogs",
		Flags: []cli.Flag{
			&formatFlag,
			&verboseFlag,
		},
		Commands: []*cli.Command{
			&FetchCmd,
			&CatalogCmd,
		},
	}
}

func main() {
	err := newApp().Run(os.Args)
	switch {
	case errors.Is(err, errFailure):
		os.Exit(1)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/outcome/pkg/httpresult"
	"github.com/dmitrymomot/outcome/pkg/logger"
	"github.com/dmitrymomot/outcome/pkg/result"
)

var (
	timeoutFlag = cli.DurationFlag{
		Name:  "timeout",
		Usage: "request timeout",
		Value: 30 * time.Second,
	}
	bodyFlag = cli.BoolFlag{
		Name:  "body",
		Usage: "read a 2xx body as text and print it as the result value",
	}
)

var FetchCmd = cli.Command{
	Action:    doFetch,
	Name:      "fetch",
	Usage:     "GET a URL and print the response converted to a result",
	ArgsUsage: "<url>",
	Flags: []cli.Flag{
		&timeoutFlag,
		&bodyFlag,
	},
}

func doFetch(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("missing url parameter")
	}

	cfg, err := httpresult.LoadConfig()
	if err != nil {
		return err
	}
	opts := []httpresult.Option{
		httpresult.WithConfig(cfg),
		httpresult.WithLogger(newLogger(c)),
	}

	ctx, cancel := context.WithTimeout(c.Context, c.Duration(timeoutFlag.Name))
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Args().Get(0), nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return printResult(c, result.FromError(err))
	}

	if c.Bool(bodyFlag.Name) {
		res, err := httpresult.ReadText(ctx, resp, opts...)
		if err != nil {
			return printResult(c, result.FromError(err))
		}
		return printOf(c, res)
	}

	res, err := httpresult.ToResult(ctx, resp, opts...)
	if err != nil {
		return printResult(c, result.FromError(err))
	}
	return printResult(c, res)
}

func printResult(c *cli.Context, res result.Result) error {
	if err := encode(c.App.Writer, c.String(formatFlag.Name), res); err != nil {
		return err
	}
	if res.IsFailure() {
		return errFailure
	}
	return nil
}

func printOf(c *cli.Context, res result.Of[string]) error {
	if err := encode(c.App.Writer, c.String(formatFlag.Name), res); err != nil {
		return err
	}
	if res.IsFailure() {
		return errFailure
	}
	return nil
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q, want json or yaml", format)
	}
}

func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool(verboseFlag.Name) {
		level = slog.LevelDebug
	}
	return logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(level),
		logger.WithOutput(c.App.ErrWriter),
	)
}

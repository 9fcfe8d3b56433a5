package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/outcome/pkg/validator"
)

var CatalogCmd = cli.Command{
	Action:    doCatalog,
	Name:      "catalog",
	Usage:     "check a YAML validation message catalog and list its languages",
	ArgsUsage: "<file>",
}

func doCatalog(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("missing catalog file parameter")
	}

	f, err := os.Open(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer f.Close()

	cat, err := validator.LoadCatalog(f)
	if err != nil {
		return err
	}

	tags := slices.Clone(cat.Languages())
	slices.SortFunc(tags, func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, tag := range tags {
		fmt.Fprintln(c.App.Writer, tag)
	}
	return nil
}

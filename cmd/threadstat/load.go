package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/threadstat/threadstat/internal/config"
	"github.com/threadstat/threadstat/internal/dates"
	"github.com/threadstat/threadstat/internal/dom"
	"github.com/threadstat/threadstat/internal/parse"
	"github.com/threadstat/threadstat/internal/thread"
)

// parseFlags are the windowing flags shared by every command that parses
// an export file.
type parseFlags struct {
	year    int
	limit   int
	offset  int
	authors []string
}

func addParseFlags(cmd *cobra.Command, pf *parseFlags) {
	cmd.Flags().IntVar(&pf.year, "year", 0, "Calendar year to retain (default from config)")
	cmd.Flags().IntVar(&pf.limit, "limit", -1, "Max messages to emit (-1 = unbounded)")
	cmd.Flags().IntVar(&pf.offset, "offset", 0, "Year-accepted messages to skip")
	cmd.Flags().StringArrayVar(&pf.authors, "author", nil, "Extra author seeded into participants (repeatable)")
}

// loadThread opens the export file and parses it with config defaults
// merged under the flags.
func loadThread(path string, pf parseFlags) (*thread.Thread, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := dom.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	year := pf.year
	if year == 0 {
		year = cfg.Year
	}

	seeds := append(append([]string{}, cfg.Authors...), pf.authors...)

	p := parse.New(doc, parse.Options{
		Year:        year,
		Limit:       pf.limit,
		Offset:      pf.offset,
		SeedAuthors: seeds,
		Resolver:    dates.NewResolver(cfg.Timezones),
	})

	t, err := p.ParseThread()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}

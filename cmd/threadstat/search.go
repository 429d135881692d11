package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/threadstat/threadstat/internal/query"
)

const (
	sColorReset   = "\033[0m"
	sColorBoldRed = "\033[1;31m"
	sColorGreen   = "\033[1;32m"
	sColorDim     = "\033[2m"
)

func colorizeSnippet(snippet string) string {
	snippet = strings.ReplaceAll(snippet, ">>>", sColorBoldRed)
	snippet = strings.ReplaceAll(snippet, "<<<", sColorReset)
	return snippet
}

func searchCmd() *cobra.Command {
	var pf parseFlags
	var author string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <export.html> <query>",
		Short: "Full-text search over the thread's message content",
		Long:  `Parses the export, loads it into an in-memory FTS5 index and runs the query. Nothing is written to disk.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadThread(args[0], pf)
			if err != nil {
				return err
			}

			ix, err := query.Open(t)
			if err != nil {
				return err
			}
			defer ix.Close()

			results, err := ix.Search(args[1], query.Options{
				Author: author,
				Limit:  limit,
			})
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintln(os.Stderr, "No results found.")
				return nil
			}

			for _, r := range results {
				snippet := strings.ReplaceAll(r.Snippet, "\n", " ")
				fmt.Printf("%s%s%s  %s%s%s  %s\n",
					sColorDim, r.Sent, sColorReset,
					sColorGreen, r.Author, sColorReset,
					colorizeSnippet(snippet),
				)
			}
			return nil
		},
	}

	addParseFlags(cmd, &pf)
	cmd.Flags().StringVar(&author, "by", "", "Filter by message author")
	cmd.Flags().IntVar(&limit, "max", 50, "Max results")
	return cmd
}

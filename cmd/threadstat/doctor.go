package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/threadstat/threadstat/internal/config"
	"github.com/threadstat/threadstat/internal/dates"
	"github.com/threadstat/threadstat/internal/dom"
	"github.com/threadstat/threadstat/internal/parse"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor <export.html>",
		Short: "Self-check: verify the export's shape without a full parse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			resolver := dates.NewResolver(cfg.Timezones)

			fmt.Println("=== File ===")
			info, err := os.Stat(args[0])
			if err != nil {
				fmt.Printf("  %s (NOT FOUND)\n", args[0])
				return nil
			}
			fmt.Printf("  %s (%d bytes)\n", args[0], info.Size())

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := dom.Load(f)
			if err != nil {
				fmt.Printf("  HTML: FAILED (%v)\n", err)
				return nil
			}
			fmt.Println("  HTML: OK")

			fmt.Println("\n=== Thread container ===")
			container, err := doc.FirstClass("thread")
			if err != nil {
				return err
			}
			if container == nil {
				fmt.Println("  .thread: NOT FOUND")
				return nil
			}
			fmt.Println("  .thread: OK")

			if node := container.NthChild(1); node == nil {
				fmt.Println("  participants node: MISSING")
			} else if text := strings.TrimSpace(node.Text()); !strings.HasPrefix(text, "Participants: ") {
				fmt.Printf("  participants node: UNEXPECTED (%q)\n", truncate(text, 40))
			} else {
				names := strings.Split(strings.TrimPrefix(text, "Participants: "), ", ")
				fmt.Printf("  participants: %d\n", len(names))
			}

			fmt.Println("\n=== Boundaries ===")
			boundaries, err := doc.FindClass("message")
			if err != nil {
				return err
			}
			fmt.Printf("  .message nodes: %d\n", len(boundaries))

			if len(boundaries) > 0 {
				header := boundaries[0].ChildElement(0)
				if header == nil {
					fmt.Println("  first boundary: NO HEADER")
				} else if dateNode := header.ChildElement(1); dateNode == nil {
					fmt.Println("  first boundary: NO DATE NODE")
				} else if stamp, err := resolver.Parse(strings.TrimSpace(dateNode.Text())); err != nil {
					fmt.Printf("  first boundary date: FAILED (%v)\n", err)
				} else {
					fmt.Printf("  first boundary date: OK (%s, year %d)\n", stamp.DateKey(), stamp.Year())
				}
			}

			fmt.Println("\n=== Dates ===")
			fmt.Printf("  known timezone abbreviations: %d\n", resolver.ZoneCount())
			fmt.Printf("  configured year: %d (parser default %d)\n", cfg.Year, parse.DefaultYear)

			return nil
		},
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

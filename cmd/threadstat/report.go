package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/threadstat/threadstat/internal/render"
	"github.com/threadstat/threadstat/internal/stats"
)

func reportCmd() *cobra.Command {
	var pf parseFlags

	cmd := &cobra.Command{
		Use:   "report <export.html>",
		Short: "Parse a thread export and print the full statistics report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadThread(args[0], pf)
			if err != nil {
				return err
			}

			render.Report(os.Stdout, t, stats.New(t))
			return nil
		},
	}

	addParseFlags(cmd, &pf)
	return cmd
}

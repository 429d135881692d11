package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/threadstat/threadstat/internal/render"
	"github.com/threadstat/threadstat/internal/tui"
	"golang.org/x/term"
)

func messagesCmd() *cobra.Command {
	var pf parseFlags
	var plain bool

	cmd := &cobra.Command{
		Use:   "messages <export.html>",
		Short: "Browse or list the thread's messages",
		Long:  `Opens an interactive browser when stdout is a terminal; prints one line per content item when piped or with --plain.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadThread(args[0], pf)
			if err != nil {
				return err
			}

			if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
				return tui.Run(t)
			}

			render.Messages(os.Stdout, t)
			return nil
		},
	}

	addParseFlags(cmd, &pf)
	cmd.Flags().BoolVar(&plain, "plain", false, "Force line output even on a terminal")
	return cmd
}

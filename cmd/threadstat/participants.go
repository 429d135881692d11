package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func participantsCmd() *cobra.Command {
	var pf parseFlags

	cmd := &cobra.Command{
		Use:   "participants <export.html>",
		Short: "Print the thread's participant list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadThread(args[0], pf)
			if err != nil {
				return err
			}

			for _, p := range t.Participants {
				fmt.Println(p)
			}
			return nil
		},
	}

	addParseFlags(cmd, &pf)
	return cmd
}

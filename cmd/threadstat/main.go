package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "threadstat",
		Short:   "threadstat - parse messenger thread exports and compute statistics",
		Version: version,
	}

	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(messagesCmd())
	rootCmd.AddCommand(participantsCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

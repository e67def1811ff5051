package main

import (
	"os"

	"github.com/spf13/cobra"

	"reachdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reachdesk",
		Short: "Reachdesk - volunteer CRM console",
		Long:  `Reachdesk is the web console for the volunteer CRM: tickets, people, groups, and events, served against the CRM backend API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

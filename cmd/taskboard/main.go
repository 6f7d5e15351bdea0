package main

import (
	"os"

	"github.com/spf13/cobra"

	"taskboard/internal/interfaces/cli/migrate"
	"taskboard/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskboard",
		Short: "Task board backend",
		Long:  `A multi-tenant task board backend with projects, tickets, labels, and comments.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

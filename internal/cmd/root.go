// Package cmd wires configuration, logging and the application container
// into the runnable commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trainings-api",
	Short: "Fitness training management backend",
	Long: "REST backend for managing users, gym clients, memberships, trainings " +
		"and payments, plus the background worker that consumes payment updates " +
		"and runs scheduled jobs.",
	SilenceUsage: true,
}

// Execute runs the selected subcommand.
func Execute() {
	rootCmd.AddCommand(apiCmd, workerCmd, migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

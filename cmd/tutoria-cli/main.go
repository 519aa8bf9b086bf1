// Package main is the entry point for the tutoria-cli application.
// It registers the maintenance commands (migrate, catalog seeding, admin
// accounts, route listing) and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/OscarMeza24/SistemaDeTurorias/cmd/tutoria-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "tutoria-cli",
		Short: "Maintenance CLI for the tutoring service",
		Long: `tutoria-cli prepares and inspects a tutoring service deployment.
It migrates the database, seeds programs, subjects and instructors,
creates administrator accounts and prints the named route table.

The configuration file is read from --config, then CONFIG_PATH, then
configs/rest-app.yaml. TUTORIA_* environment variables override it.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	commands.AddConfigFlag(rootCmd)

	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitCatalogCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize catalog commands: %w", err)
	}

	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	if err := commands.InitRoutesCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize routes commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}

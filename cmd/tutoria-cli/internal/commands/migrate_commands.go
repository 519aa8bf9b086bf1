package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := openEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			env.logger.Info("Schema migrated", "type", env.cfg.Database.Type)
			fmt.Fprintf(cmd.OutOrStdout(), "schema migrated (%s)\n", env.cfg.Database.Type)
			return nil
		},
	}

	rootCmd.AddCommand(migrateCmd)
	return nil
}

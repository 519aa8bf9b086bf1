package commands

import (
	"fmt"
	"os"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/app"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// adminPasswordEnv supplies the password when --password is omitted
const adminPasswordEnv = "TUTORIA_ADMIN_PASSWORD"

// InitAdminCommands registers create-admin
func InitAdminCommands(rootCmd *cobra.Command) error {
	createAdminCmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Long:  "Creates an administrator account. Administrators cannot sign up over HTTP.",
		RunE:  createAdmin,
	}
	createAdminCmd.Flags().String("email", "", "Email")
	createAdminCmd.Flags().String("first-name", "", "First name")
	createAdminCmd.Flags().String("last-name", "", "Last name")
	createAdminCmd.Flags().String("password", "", "Password (or set "+adminPasswordEnv+")")

	for _, flag := range []string{"email", "first-name", "last-name"} {
		if err := createAdminCmd.MarkFlagRequired(flag); err != nil {
			return fmt.Errorf("failed to mark %s required: %w", flag, err)
		}
	}

	rootCmd.AddCommand(createAdminCmd)
	return nil
}

func createAdmin(cmd *cobra.Command, _ []string) error {
	password := mustString(cmd, "password")
	if password == "" {
		password = os.Getenv(adminPasswordEnv)
	}
	if password == "" {
		return fmt.Errorf("password is required: pass --password or set %s", adminPasswordEnv)
	}

	env, err := openEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	userRepo, err := persistence.NewGormUserRepository(env.db, env.logger)
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}

	instructorRepo, err := persistence.NewGormInstructorRepository(env.db, env.logger)
	if err != nil {
		return fmt.Errorf("failed to create instructor repository: %w", err)
	}

	accountService, err := app.NewAccountService(userRepo, instructorRepo, env.cfg.Tutoring.DefaultHourlyRate, env.logger)
	if err != nil {
		return fmt.Errorf("failed to create account service: %w", err)
	}

	user, err := accountService.CreateAdmin(cmd.Context(), mustString(cmd, "email"), password, mustString(cmd, "first-name"), mustString(cmd, "last-name"))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "admin %s %s\n", user.Email, user.ID)
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"clinic-management/cmd/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic",
		Short: "Clinic management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}

			app.Run()
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	for _, direction := range []string{"up", "down"} {
		direction := direction
		short := "Apply pending migrations"
		if direction == "down" {
			short = "Revert the last migration"
		}

		cmd.AddCommand(&cobra.Command{
			Use:   direction,
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return bootstrap.Migrate(direction)
			},
		})
	}

	return cmd
}

func createAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			secret, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")

			admin, err := bootstrap.CreateAdmin(context.Background(), email, secret, name)
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			fmt.Printf("Created admin %s (professional %d, account %d)\n", admin.Email, admin.ID, admin.AccountID)
			return nil
		},
	}

	cmd.Flags().String("email", "", "Admin email")
	cmd.Flags().String("password", "", "Admin password")
	cmd.Flags().String("name", "Administrador", "Admin display name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

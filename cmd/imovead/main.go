// Command imovead bundles the admin tooling for the listing API:
// database migrations and development tokens.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/imovead/imovead/internal/db"
	"github.com/imovead/imovead/internal/service"
)

func main() {
	// Load .env if present; flags and env vars still win.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "imovead",
		Short: "Admin tools for the imovead listing API",
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, driver, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close()
			return db.RunMigrations(database.DB, driver)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, driver, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close()
			return db.MigrateDown(database.DB, driver)
		},
	})

	return cmd
}

func tokenCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development JWT for a user id",
		Long: "Mints an HS256 token with the shared JWT_SECRET, the way the\n" +
			"identity provider would. Development use only.",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := os.Getenv("JWT_SECRET")
			if secret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}

			auth := service.NewAuthService(secret, 168*time.Hour)
			token, err := auth.GenerateJWT(userID)
			if err != nil {
				return err
			}

			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "identity provider user id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func openDB() (database *sqlx.DB, driver string, err error) {
	driver = envOr("DB_DRIVER", "sqlite")
	connection := envOr("DB_CONNECTION", "./data/imovead.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")

	database, err = db.Init(driver, connection)
	return database, driver, err
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

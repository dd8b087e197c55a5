package main

import (
	"fmt"
	"os"
	"strconv"

	"db-console-api/internal/config"
	"db-console-api/internal/database"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	databaseURL string
	verbose     bool
	logger      = logrus.New()
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or drop the console tables",
		Long: `Apply or revert the schema of the records and catalog tables.

The database is taken from --database-url or, when unset, from DATABASE_URL
(optionally loaded from a .env file). Both postgres:// and sqlite:/// URLs
are supported.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Database URL (defaults to DATABASE_URL)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(upCmd())
	cmd.AddCommand(downCmd())
	cmd.AddCommand(stepsCmd())
	cmd.AddCommand(statusCmd())

	return cmd
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(database.Up)
		},
	}
}

func downCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Revert all migrations, dropping the tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(database.Down)
		},
	}
}

func stepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps [n]",
		Short: "Apply n migrations, or revert them when n is negative",
		Example: `  migrate steps 1
  migrate steps -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step count %q: %w", args[0], err)
			}

			manager, err := newManager()
			if err != nil {
				return err
			}
			if err := manager.Steps(n); err != nil {
				return err
			}
			return printStatus(manager)
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the applied migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newManager()
			if err != nil {
				return err
			}
			return printStatus(manager)
		},
	}
}

func run(direction database.Direction) error {
	manager, err := newManager()
	if err != nil {
		return err
	}
	if err := manager.Migrate(direction); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "✗ migrate %s failed: %v\n", direction, err)
		return err
	}
	return printStatus(manager)
}

func newManager() (*database.MigrationManager, error) {
	url := databaseURL
	if url == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		url = cfg.Database.URL
	}
	return database.NewMigrationManager(url, logger)
}

func printStatus(manager *database.MigrationManager) error {
	info, err := manager.Status()
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	switch {
	case info.Dirty:
		color.New(color.FgRed).Printf("✗ version %d (dirty)\n", info.Version)
	case !info.Applied:
		color.New(color.FgYellow).Println("○ no migrations applied")
	default:
		color.New(color.FgGreen).Printf("✓ version %d\n", info.Version)
	}
	return nil
}

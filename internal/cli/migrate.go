package cli

import (
	"fmt"

	"github.com/GlebRadaev/costeo/internal/config"
	"github.com/GlebRadaev/costeo/internal/pg"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		pool, err := pgxpool.New(cmd.Context(), cfg.Database)
		if err != nil {
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		defer pool.Close()

		if err := pg.RunMigrations(pool); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

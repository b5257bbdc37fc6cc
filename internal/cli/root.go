package cli

import (
	"fmt"

	"github.com/GlebRadaev/costeo/internal/config"
	"github.com/GlebRadaev/costeo/pkg/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "costeoctl",
	Short: "Operator commands for the costeo backend",
	Long: `Operator commands for the costeo backend. Configuration comes from the
same environment variables the server reads.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		if err := logger.InitLogger(cfg, logger.ComponentCLI); err != nil {
			return fmt.Errorf("can't init logger: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

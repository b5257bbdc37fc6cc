package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GlebRadaev/costeo/internal/app"
	"github.com/GlebRadaev/costeo/internal/config"
	"github.com/GlebRadaev/costeo/internal/handlers/cron"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().String("at", "", "Run as if the current time were this RFC3339 instant")
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run the threshold scan once and print the report",
	Long: `Run the threshold scan once, the same way the cron endpoint does, and print
the JSON report. Queued notifications are delivered before the command exits.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

// openScanner is replaced in tests.
var openScanner = func(ctx context.Context, cfg *config.Config) (cron.Service, func(), error) {
	core, err := app.NewCore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return core.Services.ScanService, core.Close, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	now := time.Now()
	if at, _ := cmd.Flags().GetString("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return fmt.Errorf("invalid --at value %q: %w", at, err)
		}
		now = parsed
	}

	ctx := cmd.Context()
	scanner, closeFn, err := openScanner(ctx, config.FromEnv())
	if err != nil {
		return err
	}
	defer closeFn()

	report, err := scanner.Run(ctx, now)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(cron.ReportDTO(report))
}

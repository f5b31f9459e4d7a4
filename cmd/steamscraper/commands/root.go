package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"steamscraper/internal/components/telemetry"
	"steamscraper/internal/config"
	"steamscraper/internal/scrapers"
	"steamscraper/internal/storefront"
	"time"

	"github.com/spf13/cobra"
)

const serviceName = "steamscraper"

var (
	configPath *string
	verbose    *bool
)

// state is set up once per invocation by the root command.
var state struct {
	cfg  config.Config
	tel  telemetry.API
	otel telemetry.Otel
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", config.DefaultPath, "The json5 configuration file to read.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output and resource usage.")
}

var rootCmd = &cobra.Command{
	Use:           "steamscraper",
	Short:         "steamscraper retrieves product metadata from the Steam store page and the appdetails API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(*verbose)

		cfg, err := config.Load(*configPath, cmd.Flag("config").Changed)
		if err != nil {
			return err
		}
		state.cfg = cfg
		state.tel = telemetry.SlogAPI{}

		state.otel, err = telemetry.SetupOtel(cmd.Context(), serviceName, cfg.Telemetry)
		if err != nil {
			slog.Warn("failed to setup otel, continuing without it", "err", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if *verbose {
			telemetry.ReportPerfStats(cmd.Context(), state.tel)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := state.otel.Shutdown(ctx)
		if err != nil {
			slog.Warn("failed to shutdown otel", "err", err)
		}
	},
}

// exitCode is 2 for input that was rejected before anything was fetched and 1
// for every other failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, storefront.ErrInvalidIdentifier),
		errors.Is(err, storefront.ErrUnsupportedLanguage),
		errors.Is(err, scrapers.ErrUnknownMode):
		return 2
	}
	return 1
}

func ExecuteContext(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return exitCode(err)
}

// pollo is a terminal side-scroller: walk right, stomp chickens, collect
// coins and bottles, and bring down the boss with thrown bottles.
//
// Usage:
//
//	pollo list               - List available levels
//	pollo play [level]       - Play a level (default: pollo), --fps sets the render rate
//	pollo simulate [level]   - Run a level headless with the autopilot
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible runs
//	--config <path>     - Custom pollo.yaml
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pollo-run/internal/games/pollo"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	logger  *log.Logger
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		//nolint:errcheck // Closing on exit
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pollo",
	Short: "Pollo Run - a side-scroller in your terminal",
	Long: `Pollo Run is a terminal side-scroller. Walk right, stomp chickens,
collect coins and bottles, and bring down the boss by throwing bottles.

Available commands:
  list      - Show all available levels
  play      - Play a level
  simulate  - Run a level headless with a scripted player

Examples:
  pollo list
  pollo play
  pollo play pollo-boss --difficulty hard
  pollo simulate --seed 42 --max-ticks 7200`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pollo.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("opening log file: %w", openErr)
		}
		out = f
		logSink = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pollo",
		Level:           level,
	})
	pollo.SetLogger(logger)
	pollo.SetConfigPath(flagConfig)
	return nil
}

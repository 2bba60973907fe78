// Command planner is a small Cobra CLI around the planning core: it reads a
// JSON fixture standing in for a real calendar/mapping integration (both out
// of scope per spec.md's Non-goals), runs one invocation, and prints the
// resulting Day Plan. It exists to exercise the library the way a caller
// described in spec.md §6 would, not to be a production scheduling service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rahullath/dayplanner/internal/config"
	"github.com/rahullath/dayplanner/internal/obslog"
)

var (
	verbose    bool
	configPath string
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Deterministic daily execution planner",
	Long: `planner turns a day's calendar events, wake/sleep times, and energy
level into a gap-free Day Plan: Wake-Ramp, per-anchor execution chains with
reverse-reflowed prep steps, placed meals, and a location timeline.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = obslog.New(verbose)
		return err
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a PlannerConfig TOML file (defaults to the built-in config)")
	rootCmd.AddCommand(planCmd, validateConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.PlannerConfig, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

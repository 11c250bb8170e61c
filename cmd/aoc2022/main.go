// Command aoc2022 prints the answers to the Advent of Code 2022 puzzles.
//
// Inputs are read from <data>/<day>/<input>, data/1/input.txt by default.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/maisem/aoc2022"
)

var (
	verbose    bool
	configPath string
	day        int
	part       int
	input      string
	dataDir    string

	cfg    *aoc.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aoc2022",
	Short: "Solve Advent of Code 2022 puzzles",
	Long: `aoc2022 runs the solutions for Advent of Code 2022.

Without --day every registered day is run in order. Expected answers and
per-day params are read from the config file.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = aoc.LoadConfig(configPath)
		if err != nil {
			return err
		}

		zc := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("config log_level: %w", err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		aoc.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("input") {
			cfg.Input = input
		}
		if cmd.Flags().Changed("data") {
			cfg.DataDir = dataDir
		}
		logger.Debug("config loaded",
			zap.String("path", configPath),
			zap.Int("year", cfg.Year),
			zap.String("data_dir", cfg.DataDir))
		r := &aoc.Runner{
			Config: cfg,
			Days:   days,
			Out:    cmd.OutOrStdout(),
			Logger: logger,
		}
		return r.Run(day, part)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "aoc.yaml", "Config file; missing is fine")
	rootCmd.Flags().IntVarP(&day, "day", "d", 0, "Day to run (default all)")
	rootCmd.Flags().IntVarP(&part, "part", "p", 0, "Part to run, 1 or 2 (default both)")
	rootCmd.Flags().StringVarP(&input, "input", "i", "input.txt", "Input file name within the day's directory")
	rootCmd.Flags().StringVar(&dataDir, "data", "data", "Directory holding one subdirectory per day")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

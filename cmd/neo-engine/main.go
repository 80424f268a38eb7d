// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the neo-engine CLI: load a catalog of
// near-Earth-object close approaches and query it by date, filters and
// result shape.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/neo-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// appConfig holds the configuration resolved before each command runs.
	appConfig types.Config

	// logger writes CLI diagnostics to stderr.
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// rootCmd is the base command for the neo-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "neo-engine",
	Short: "Query near-Earth object close approaches",
	Long: `neo-engine loads a CSV catalog of near-Earth object close approaches into
memory and answers lookup queries: which objects passed near Earth on a date
or within a date range, optionally filtered by hazard flag, diameter,
magnitude, miss distance or velocity.

Results are returned as objects (NEO) or as their orbit paths (Path) and can
be printed or written to CSV, JSON, YAML or SQLite files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		appConfig = cfg
		logger = newLogger(cfg.Log.Verbose)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./neo-engine.yaml or ~/.config/neo-engine/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "catalog CSV file (default: data/neo_data.csv)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	_ = viper.BindPFlag("catalog.path", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("log.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("neo-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "neo-engine"))
		}
	}

	viper.SetEnvPrefix("NEO_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

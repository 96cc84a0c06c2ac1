package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kavya-marri/portfolio-demos/internal/config"
	"github.com/kavya-marri/portfolio-demos/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	configFile string
	envFile    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portfolio-demos",
		Short: "Edge-detection and crop-advisor demos",
		Long: `portfolio-demos serves two small project demos: a gradient-magnitude edge
filter for uploaded images and a rule-based crop recommender. They are
available over HTTP (serve), as MCP tools over stdio (mcp), or directly
from the command line (edges, crop).`,
		SilenceUsage: true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file; ignored when missing")

	rootCmd.AddCommand(
		newServeCmd(),
		newMCPCmd(),
		newEdgesCmd(),
		newCropCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// loadConfig resolves the layered config and applies its log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.Options{File: configFile, EnvFile: envFile})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(cfg.LogLevel)
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "portfolio-demos %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}

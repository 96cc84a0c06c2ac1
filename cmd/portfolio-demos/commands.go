package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kavya-marri/portfolio-demos/internal/agro"
	"github.com/kavya-marri/portfolio-demos/internal/formatter"
	"github.com/kavya-marri/portfolio-demos/internal/imaging"
	"github.com/kavya-marri/portfolio-demos/internal/logger"
	"github.com/kavya-marri/portfolio-demos/internal/metrics"
	"github.com/kavya-marri/portfolio-demos/internal/server"
	"github.com/kavya-marri/portfolio-demos/internal/web"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demos over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.L().Info("starting portfolio-demos",
				"version", Version, "commit", GitCommit, "addr", cfg.HTTPAddr)
			return web.NewServer(*cfg, metrics.New()).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides http_addr)")
	return cmd
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Run the demos as MCP tools. Requests are read from stdin and responses
written to stdout, one JSON-RPC message per line; logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			logger.Debugf("MCP server %s (built %s, commit %s)", Version, BuildTime, GitCommit)
			return server.New(Version).Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newEdgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edges INPUT OUTPUT",
		Short: "Write the edge-magnitude image of INPUT to OUTPUT",
		Long: `Compute the gradient-magnitude edge image of INPUT and save it to OUTPUT.
The output format follows the OUTPUT extension (.png, .jpg or .jpeg).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdges(args[0], args[1])
		},
	}
}

func runEdges(in, out string) error {
	img, err := imaging.NewImageCache().Load(in)
	if err != nil {
		return err
	}

	start := time.Now()
	edges := imaging.EdgeMagnitude(img)
	b := edges.Bounds()
	logger.L().Debug("edge filter done", "width", b.Dx(), "height", b.Dy(), "elapsed", time.Since(start))

	if err := imaging.Save(out, edges); err != nil {
		return err
	}
	logger.Infof("wrote %dx%d edge image to %s", b.Dx(), b.Dy(), out)
	return nil
}

func newCropCmd() *cobra.Command {
	var (
		reading agro.SoilReading
		output  string
	)

	cmd := &cobra.Command{
		Use:   "crop [flags]",
		Short: "Recommend a crop for a soil and weather reading",
		Long: `Recommend a crop from nitrogen, phosphorus, potassium, temperature,
humidity, pH and rainfall, and print any advisory notes.

Examples:
  # Paddy conditions
  portfolio-demos crop --n 100 --p 50 --k 100 --temp 25 --humidity 70 --ph 6.5 --rainfall 120

  # Machine-readable output
  portfolio-demos crop --ph 4.5 --rainfall 10 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := formatter.Report{Reading: reading, Recommendation: agro.Recommend(reading)}
			return formatter.Display(cmd.OutOrStdout(), report, output)
		},
	}

	// Defaults match the web form.
	cmd.Flags().Float64Var(&reading.N, "n", 90, "Nitrogen (N)")
	cmd.Flags().Float64Var(&reading.P, "p", 60, "Phosphorus (P)")
	cmd.Flags().Float64Var(&reading.K, "k", 80, "Potassium (K)")
	cmd.Flags().Float64Var(&reading.Temperature, "temp", 28, "Temperature in °C")
	cmd.Flags().Float64Var(&reading.Humidity, "humidity", 70, "Relative humidity in percent")
	cmd.Flags().Float64Var(&reading.PH, "ph", 6.5, "Soil pH")
	cmd.Flags().Float64Var(&reading.Rainfall, "rainfall", 120, "Rainfall in mm")
	cmd.Flags().StringVarP(&output, "output", "o", formatter.FormatHuman, "Output format (human, json, yaml)")

	return cmd
}

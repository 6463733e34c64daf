package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heatsheet-gen/heatsheet-gen/meet"
	"github.com/heatsheet-gen/heatsheet-gen/meet/render"
)

var (
	configPath  string // Path to the YAML meet configuration
	entriesPath string // Path to the entries CSV
	outputPath  string // Destination for the rendered document
	seed        int64  // Master seed for mark synthesis
	logLevel    string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "heatsheet-gen",
	Short: "Heat sheet generator for track and field meets",
}

// generateCmd runs the one-shot pipeline: parse entries, seed heats,
// build the schedule, render, and write the document.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a typeset heat sheet from a meet config and an entries CSV",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		// Without an explicit --seed each run draws a fresh seed, so
		// repeated invocations produce different heat sheets.
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}

		if err := runGenerate(configPath, entriesPath, outputPath, seed); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// runGenerate is the testable body of the generate subcommand.
func runGenerate(configPath, entriesPath, outputPath string, seed int64) error {
	cfg, err := meet.LoadConfig(configPath)
	if err != nil {
		return err
	}
	m, err := meet.NewMeet(cfg)
	if err != nil {
		return err
	}

	entries, err := os.Open(entriesPath)
	if err != nil {
		return err
	}
	result, err := meet.Generate(m, entries, meet.SeedKey(seed))
	entries.Close() //nolint:errcheck // read-only file
	if err != nil {
		return err
	}

	doc := render.Document(render.Meta{
		Name:     m.Name,
		Date:     m.Date,
		Location: m.Location,
		Host:     m.Host,
	}, m.TeamNames, result.Events)

	if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
		return err
	}
	logrus.Infof("Heat sheet written to %s (run %s)", outputPath, result.RunID)
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	generateCmd.Flags().StringVar(&configPath, "config", "meet.yaml", "Path to YAML meet configuration")
	generateCmd.Flags().StringVar(&entriesPath, "entries", "entries.csv", "Path to entries CSV (Name, List of events)")
	generateCmd.Flags().StringVar(&outputPath, "out", "heat_sheet.tex", "Output path for the rendered document")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for mark synthesis (omit for a time-derived seed)")
	generateCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(generateCmd)
}

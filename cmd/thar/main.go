package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/thar/internal/cluster"
	"github.com/standardbeagle/thar/internal/config"
	"github.com/standardbeagle/thar/internal/debug"
	"github.com/standardbeagle/thar/internal/export"
	"github.com/standardbeagle/thar/internal/taxonomy"
	"github.com/standardbeagle/thar/internal/version"
)

// loadConfigWithOverrides loads config and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("threshold") {
		cfg.Cluster.Threshold = c.Float64("threshold")
	}
	if c.IsSet("format") {
		cfg.Export.Format = c.String("format")
	}
	if c.IsSet("output") {
		cfg.Export.Output = c.String("output")
	}
	if c.IsSet("column") {
		cfg.Input.Column = c.String("column")
	}
	if c.IsSet("last-token") {
		cfg.Input.LastToken = c.Bool("last-token")
	}
	if c.IsSet("fold") {
		cfg.Input.FoldDiacritics = c.Bool("fold")
	}
	if c.IsSet("query") {
		cfg.Input.SQLiteQuery = c.String("query")
	}
	if c.IsSet("overlay") {
		cfg.Taxonomy.Overlay = c.String("overlay")
	}
	if c.Bool("debug") {
		cfg.Logging.Debug = true
	}

	// Overrides go through the same checks as the file
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := setupDebug(c, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupDebug(c *cli.Context, cfg *config.Config) error {
	if !cfg.Logging.Debug {
		return nil
	}
	debug.SetEnabled(true)
	if !cfg.Logging.File {
		debug.SetDebugOutput(c.App.ErrWriter)
		return nil
	}
	logPath, err := debug.InitDebugLogFile()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.ErrWriter, "Debug log: %s\n", logPath)
	return nil
}

// loadTaxonomy returns the built-in taxonomy, extended by the configured
// overlay when there is one.
func loadTaxonomy(cfg *config.Config) (*taxonomy.Taxonomy, error) {
	tax := taxonomy.Default()
	if cfg.Taxonomy.Overlay == "" {
		return tax, nil
	}

	entries, err := taxonomy.LoadOverlay(cfg.Taxonomy.Overlay)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy overlay: %w", err)
	}
	tax, err = tax.WithOverlay(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to apply taxonomy overlay %s: %w", cfg.Taxonomy.Overlay, err)
	}
	if err := tax.Validate(); err != nil {
		return nil, fmt.Errorf("taxonomy with overlay %s is inconsistent: %w", cfg.Taxonomy.Overlay, err)
	}
	debug.Log("TAXONOMY", "overlay %s added %d surnames\n", cfg.Taxonomy.Overlay, len(entries))
	return tax, nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "thar",
		Usage:                  "Cluster romanized Nepali surname spellings and classify them by ethnic category",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (default: ~/.thar.kdl then ./.thar.kdl)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug output",
			},
			&cli.Float64Flag{
				Name:        "threshold",
				Aliases:     []string{"t"},
				Usage:       "Similarity threshold 0-100 for joining a cluster",
				Value:       cluster.DefaultThreshold,
				DefaultText: "from config",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format: csv, json, text or sqlite",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write results to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "column",
				Usage: "CSV/TSV header column holding the surname",
			},
			&cli.BoolFlag{
				Name:  "last-token",
				Usage: "Inputs are full names; keep only the last word",
			},
			&cli.BoolFlag{
				Name:        "fold",
				Usage:       "Strip diacritics from inputs (--fold=false to keep them)",
				DefaultText: "from config",
			},
			&cli.StringFlag{
				Name:  "query",
				Usage: "SQL query for SQLite inputs; the first column is read",
			},
			&cli.StringFlag{
				Name:  "overlay",
				Usage: "TOML file of extra known surnames",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "cluster",
				Usage:     "Cluster surnames read from files, globs or stdin",
				ArgsUsage: "[files or globs...]",
				Description: `Reads surnames from text (one per line), CSV, TSV or SQLite inputs and
groups spelling variants into clusters. With no arguments, stdin is read
as text.

Examples:
  thar cluster names.txt
  thar -t 80 -f json cluster 'rolls/**/*.csv'
  thar -f sqlite -o surnames.db cluster voters.db`,
				Action: clusterCommand,
			},
			{
				Name:      "lookup",
				Aliases:   []string{"l"},
				Usage:     "Look up surnames in the taxonomy, guessing unknown ones",
				ArgsUsage: "<surname...>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: lookupCommand,
			},
			{
				Name:  "categories",
				Usage: "List the main and sub ethnic categories",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: categoriesCommand,
			},
			{
				Name:      "sweep",
				Usage:     "Report how clustering changes across thresholds",
				ArgsUsage: "[files or globs...]",
				Flags: []cli.Flag{
					&cli.Float64SliceFlag{
						Name:  "thresholds",
						Usage: "Thresholds to try",
						Value: cli.NewFloat64Slice(70, 75, 80, 85, 90, 95),
					},
				},
				Action: sweepCommand,
			},
			{
				Name:      "watch",
				Aliases:   []string{"w"},
				Usage:     "Re-cluster and export whenever the inputs change",
				ArgsUsage: "<files or globs...>",
				Action:    watchCommand,
			},
			{
				Name:   "mcp",
				Usage:  "Start the MCP server on stdio",
				Action: mcpCommand,
			},
			{
				Name:  "config",
				Usage: "Configuration management",
				Subcommands: []*cli.Command{
					{
						Name:  "init",
						Usage: "Create a configuration file with the default settings",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "path",
								Usage: "File to create",
								Value: config.FileName,
							},
							&cli.BoolFlag{
								Name:  "force",
								Usage: "Overwrite an existing file",
							},
						},
						Action: configInitCommand,
					},
					{
						Name:   "show",
						Usage:  "Print the effective configuration",
						Action: configShowCommand,
					},
					{
						Name:   "validate",
						Usage:  "Check the configuration",
						Action: configValidateCommand,
					},
				},
			},
		},
	}
}

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintln(c.App.Writer, version.FullInfo())
	}

	app := newApp()
	err := app.Run(os.Args)
	debug.CloseDebugLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// exportOptions builds export settings from the effective config.
func exportOptions(cfg *config.Config, tax *taxonomy.Taxonomy) (export.Options, error) {
	format, err := export.ParseFormat(cfg.Export.Format)
	if err != nil {
		return export.Options{}, err
	}
	opts := export.Options{
		Format:    format,
		Output:    cfg.Export.Output,
		Threshold: cfg.Cluster.Threshold,
		Taxonomy:  tax,
	}
	opts.Display.ShowDevanagari = true
	opts.Display.ShowCategory = true
	return opts, nil
}

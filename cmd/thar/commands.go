package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/thar/internal/cluster"
	"github.com/standardbeagle/thar/internal/config"
	"github.com/standardbeagle/thar/internal/debug"
	"github.com/standardbeagle/thar/internal/export"
	"github.com/standardbeagle/thar/internal/guess"
	"github.com/standardbeagle/thar/internal/ingest"
	"github.com/standardbeagle/thar/internal/mcp"
	"github.com/standardbeagle/thar/internal/normalize"
	"github.com/standardbeagle/thar/internal/taxonomy"
	"github.com/standardbeagle/thar/internal/watch"
)

// setup loads the effective config and taxonomy for a command.
func setup(c *cli.Context) (*config.Config, *taxonomy.Taxonomy, error) {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return nil, nil, err
	}
	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, tax, nil
}

// readNames reads surnames from the inputs named by args, or from stdin
// when there are none.
func readNames(c *cli.Context, cfg *config.Config) ([]string, error) {
	opts := cfg.IngestOptions()
	if c.NArg() == 0 {
		return ingest.ReadText(c.App.Reader, opts)
	}

	paths, err := ingest.Expand(c.Args().Slice())
	if err != nil {
		return nil, err
	}
	return ingest.ReadAll(c.Context, paths, opts)
}

func clusterCommand(c *cli.Context) error {
	cfg, tax, err := setup(c)
	if err != nil {
		return err
	}

	names, err := readNames(c, cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	clusters := cluster.NewEngine(tax).Cluster(names, cfg.Cluster.Threshold)
	elapsed := time.Since(start)

	opts, err := exportOptions(cfg, tax)
	if err != nil {
		return err
	}
	if err := export.Save(c.Context, opts, clusters, c.App.Writer); err != nil {
		return err
	}

	printSummary(c, len(names), clusters, cfg.Cluster.Threshold, elapsed)
	return nil
}

func printSummary(c *cli.Context, inputs int, clusters []cluster.Cluster, threshold float64, elapsed time.Duration) {
	s := cluster.Summarize(clusters)
	fmt.Fprintf(c.App.ErrWriter, "Clustered %d surnames into %d clusters at threshold %g (%v)\n",
		inputs, s.Clusters, threshold, elapsed.Round(time.Millisecond))
	fmt.Fprintf(c.App.ErrWriter, "Confidence: high %d, medium %d, low %d\n",
		s.ByConfidence[cluster.High], s.ByConfidence[cluster.Medium], s.ByConfidence[cluster.Low])
}

// lookupResult is one row of `thar lookup`.
type lookupResult struct {
	Surname string `json:"surname"`
	Key     string `json:"key"`
	Source  string `json:"source"` // taxonomy, inferred or guessed
	taxonomy.SurnameRecord
}

func lookupCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("lookup needs at least one surname")
	}
	_, tax, err := setup(c)
	if err != nil {
		return err
	}
	guesser := guess.New(tax)

	results := make([]lookupResult, 0, c.NArg())
	for _, name := range c.Args().Slice() {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		res := lookupResult{Surname: name, Key: normalize.Key(name)}
		if rec, ok := tax.FindSurnameInfo(name); ok {
			res.Source = "taxonomy"
			res.SurnameRecord = rec
		} else {
			g := guesser.Guess(name)
			res.Source = "guessed"
			if g.Inferred {
				res.Source = "inferred"
			}
			res.SurnameRecord = taxonomy.SurnameRecord{
				Devanagari: g.Devanagari,
				MainID:     g.MainID,
				MainName:   g.MainName,
				SubID:      g.SubID,
				SubName:    g.SubName,
			}
		}
		results = append(results, res)
	}

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		fmt.Fprintf(c.App.Writer, "%s → %s\n", r.Surname, r.Devanagari)
		fmt.Fprintf(c.App.Writer, "  main %d %s, sub %d %s (%s)\n", r.MainID, r.MainName, r.SubID, r.SubName, r.Source)
	}
	return nil
}

type categoryTree struct {
	taxonomy.MainCategory
	Subs []taxonomy.SubCategory `json:"subs"`
}

func categoriesCommand(c *cli.Context) error {
	_, tax, err := setup(c)
	if err != nil {
		return err
	}

	var tree []categoryTree
	index := make(map[int]int)
	for _, m := range tax.MainCategories() {
		index[m.ID] = len(tree)
		tree = append(tree, categoryTree{MainCategory: m})
	}
	for _, sub := range tax.SubCategories() {
		if i, ok := index[sub.MainID]; ok {
			tree[i].Subs = append(tree[i].Subs, sub)
		}
	}

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	}

	for _, m := range tree {
		fmt.Fprintf(c.App.Writer, "%d %s\n", m.ID, m.Name)
		for _, sub := range m.Subs {
			fmt.Fprintf(c.App.Writer, "  %d %s\n", sub.ID, sub.Name)
		}
	}
	fmt.Fprintf(c.App.ErrWriter, "%d known surnames\n", tax.Len())
	return nil
}

func sweepCommand(c *cli.Context) error {
	cfg, tax, err := setup(c)
	if err != nil {
		return err
	}
	thresholds := c.Float64Slice("thresholds")
	if len(thresholds) == 0 {
		return errors.New("sweep needs at least one threshold")
	}

	names, err := readNames(c, cfg)
	if err != nil {
		return err
	}

	points := cluster.NewEngine(tax).Sweep(names, thresholds)
	fmt.Fprintf(c.App.Writer, "%-10s %9s %11s %8s %9s\n", "threshold", "clusters", "singletons", "largest", "avg size")
	for _, p := range points {
		fmt.Fprintf(c.App.Writer, "%-10g %9d %11d %8d %9.2f\n", p.Threshold, p.Clusters, p.Singletons, p.Largest, p.AverageSize)
	}
	return nil
}

func watchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("watch needs at least one input file or glob")
	}
	cfg, tax, err := setup(c)
	if err != nil {
		return err
	}
	opts, err := exportOptions(cfg, tax)
	if err != nil {
		return err
	}

	patterns := c.Args().Slice()
	ingestOpts := cfg.IngestOptions()
	engine := cluster.NewEngine(tax)

	job := &watch.Job{
		Load: func(ctx context.Context) ([]string, error) {
			paths, err := ingest.Expand(patterns)
			if err != nil {
				return nil, err
			}
			return ingest.ReadAll(ctx, paths, ingestOpts)
		},
		Process: func(ctx context.Context, names []string) error {
			start := time.Now()
			clusters := engine.Cluster(names, cfg.Cluster.Threshold)
			if err := export.Save(ctx, opts, clusters, c.App.Writer); err != nil {
				return err
			}
			printSummary(c, len(names), clusters, cfg.Cluster.Threshold, time.Since(start))
			return nil
		},
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(c.App.ErrWriter, "Watching %s (Ctrl+C to stop)\n", strings.Join(patterns, ", "))
	err = watch.Run(ctx, watch.Options{
		Patterns: patterns,
		Debounce: time.Duration(cfg.Watch.DebounceMs) * time.Millisecond,
	}, job, func(err error) {
		fmt.Fprintf(c.App.ErrWriter, "Error: %v\n", err)
	})

	stats := job.Stats()
	debug.LogWatch("watch stopped: %d runs, %d skipped, %d errors\n", stats.Runs, stats.Skipped, stats.Errors)
	return err
}

func mcpCommand(c *cli.Context) error {
	// stdout carries JSON-RPC only
	debug.SetMCPMode(true)

	cfg, tax, err := setup(c)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(cfg, tax)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func configInitCommand(c *cli.Context) error {
	output := c.String("path")

	if !c.Bool("force") {
		if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", output)
		}
	}

	if err := os.WriteFile(output, []byte(config.ToKDL(config.Default())), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Configuration file created: %s\n", output)
	return nil
}

func configShowCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		fmt.Fprintf(c.App.Writer, "// loaded from %s\n", cfg.Path)
	}
	fmt.Fprint(c.App.Writer, config.ToKDL(cfg))
	return nil
}

func configValidateCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	var warnings []string
	if th := cfg.Cluster.Threshold; th < 0 || th > 100 {
		warnings = append(warnings, fmt.Sprintf("cluster threshold %g is outside 0-100", th))
	}
	if export.Format(cfg.Export.Format) == export.FormatSQLite && cfg.Export.Output == "" {
		warnings = append(warnings, "sqlite export needs an output file (set export.output or pass --output)")
	}
	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}
	if err := tax.Validate(); err != nil {
		return fmt.Errorf("taxonomy is inconsistent: %w", err)
	}

	source := cfg.Path
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(c.App.Writer, "Configuration is valid (%s)\n", source)
	fmt.Fprintf(c.App.Writer, "Taxonomy: %d known surnames, %d sub-categories, consistent\n", tax.Len(), len(tax.SubCategories()))
	for _, w := range warnings {
		fmt.Fprintf(c.App.Writer, "Warning: %s\n", w)
	}
	return nil
}

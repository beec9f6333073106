package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/docufixture/internal/ledger"
	"pkg.jsn.cam/docufixture/pkg/fixture"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		edges      int
		outputDir  string
		seed       uint64
		ledgerPath string
		progress   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a new pair of fixture CSVs",
		Long: `Generates --edges unique edges and writes both fixture files into --output.
Existing files are never overwritten; the run fails instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("edges") {
				cfg.EdgeCount = edges
			}
			if flags.Changed("output") {
				cfg.OutputDir = outputDir
			}
			if flags.Changed("seed") {
				cfg.Seed = &seed
			}
			if flags.Changed("ledger") {
				cfg.LedgerPath = ledgerPath
			}
			if flags.Changed("progress") {
				cfg.Progress = progress
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			runSeed := rand.Uint64()
			if cfg.Seed != nil {
				runSeed = *cfg.Seed
			}

			a.logger.Info("generating fixtures",
				zap.Int("edges", cfg.EdgeCount),
				zap.String("output_dir", cfg.OutputDir),
				zap.Uint64("seed", runSeed))

			opts := fixture.Options{
				EdgeCount: cfg.EdgeCount,
				OutputDir: cfg.OutputDir,
			}
			var bar *progressbar.ProgressBar
			if cfg.Progress && cfg.EdgeCount > 0 {
				bar = progressbar.NewOptions(cfg.EdgeCount,
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetDescription("generating edges"),
					progressbar.OptionThrottle(100*time.Millisecond),
					progressbar.OptionClearOnFinish(),
				)
				opts.Progress = func(int) { _ = bar.Add(1) }
			}

			start := time.Now()
			res, err := fixture.Create(opts, rand.New(rand.NewPCG(runSeed, runSeed)))
			if bar != nil {
				_ = bar.Finish()
			}
			if err != nil {
				return err
			}

			a.logger.Info("fixtures written",
				zap.String("tree_objects", res.TreeObjectsPath),
				zap.String("file_resources", res.FileResourcesPath),
				zap.Int("objects", res.NumObjects),
				zap.Int("resources", res.NumResources),
				zap.Duration("elapsed", time.Since(start)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fixtures written (seed %d):\n", runSeed)
			fmt.Fprintf(out, "  Tree objects:   %s (%s objects)\n", res.TreeObjectsPath, humanize.Comma(int64(res.NumObjects)))
			fmt.Fprintf(out, "  File resources: %s (%s edges, %s resources)\n",
				res.FileResourcesPath, humanize.Comma(int64(res.NumEdges)), humanize.Comma(int64(res.NumResources)))

			if cfg.LedgerPath == "" {
				return nil
			}
			return recordRun(a, cfg.LedgerPath, &ledger.Run{
				EdgeCount:         cfg.EdgeCount,
				Seed:              runSeed,
				NumObjects:        res.NumObjects,
				NumResources:      res.NumResources,
				TreeObjectsPath:   res.TreeObjectsPath,
				FileResourcesPath: res.FileResourcesPath,
			})
		},
	}

	cmd.Flags().IntVarP(&edges, "edges", "n", fixture.DefaultEdgeCount, "Number of edges to generate")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory to write the fixtures into")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: a fresh random seed)")
	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "bbolt file to record the run in")
	cmd.Flags().BoolVar(&progress, "progress", true, "Show a progress bar")

	return cmd
}

func recordRun(a *app, path string, run *ledger.Run) error {
	l, err := ledger.Open(path)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer l.Close()

	if err := l.Record(run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	a.logger.Debug("run recorded", zap.String("run_id", run.ID), zap.String("ledger", path))
	return nil
}

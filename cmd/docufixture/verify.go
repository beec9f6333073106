package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/docufixture/pkg/fixture"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		edges int
		dir   string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a fixture pair on disk",
		Long: `Reads <N>_edge_tree_objects.csv and <N>_edge_file_resources.csv back from --dir
and checks that edges are unique and sorted and that every object and resource
has at least one edge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("edges") {
				edges = a.cfg.EdgeCount
			}
			if !cmd.Flags().Changed("dir") {
				dir = a.cfg.OutputDir
			}

			stats, err := fixture.VerifyDir(dir, edges)
			if err != nil {
				return err
			}
			a.logger.Debug("fixtures verified", zap.String("dir", dir), zap.Int("edges", edges))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fixtures OK:\n")
			fmt.Fprintf(out, "  Objects:             %s\n", humanize.Comma(int64(stats.NumObjects)))
			fmt.Fprintf(out, "  Resources:           %s\n", humanize.Comma(int64(stats.NumResources)))
			fmt.Fprintf(out, "  Edges:               %s\n", humanize.Comma(int64(stats.NumEdges)))
			fmt.Fprintf(out, "  Max object degree:   %s\n", humanize.Comma(int64(stats.MaxObjectDegree)))
			fmt.Fprintf(out, "  Max resource degree: %s\n", humanize.Comma(int64(stats.MaxResourceDegree)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&edges, "edges", "n", fixture.DefaultEdgeCount, "Edge count the fixtures were generated with")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory holding the fixtures")

	return cmd
}

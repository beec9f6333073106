package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/docufixture/internal/ledger"
)

var errNoLedger = errors.New("no ledger configured (use --ledger or ledger_path)")

func newHistoryCmd(a *app) *cobra.Command {
	var ledgerPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generate runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("ledger") {
				ledgerPath = a.cfg.LedgerPath
			}
			if ledgerPath == "" {
				return errNoLedger
			}

			l, err := ledger.Open(ledgerPath)
			if err != nil {
				return fmt.Errorf("open ledger: %w", err)
			}
			defer l.Close()

			runs, err := l.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}

			fmt.Fprintf(out, "%-36s %-10s %-20s %-10s %-10s %s\n", "RUN ID", "EDGES", "SEED", "OBJECTS", "RESOURCES", "CREATED")
			fmt.Fprintln(out, "──────────────────────────────────────────────────────────────────────────────────────────────────────────")
			for _, run := range runs {
				fmt.Fprintf(out, "%-36s %-10s %-20d %-10s %-10s %s\n",
					run.ID,
					humanize.Comma(int64(run.EdgeCount)),
					run.Seed,
					humanize.Comma(int64(run.NumObjects)),
					humanize.Comma(int64(run.NumResources)),
					run.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "bbolt file runs were recorded in")

	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-seq/internal/batch"
	"github.com/inodb/vibe-seq/internal/ledger"
	"github.com/inodb/vibe-seq/internal/output"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <script.yaml>",
		Short: "Run a YAML script of sequence edits, searches and transcriptions",
		Long: `Run executes every step of a batch script in order and prints one
tab-delimited row per step. Validation failures are reported as rows; use
--continue-on-error=false to stop at the first one. A summary grouped by
operation and outcome is printed to stderr.

Script format:

  sequences:
    - {name: s1, id: demo, kind: dna, symbols: ATGC}
  steps:
    - {op: mutate, target: s1, position: 2, char: T}
    - {op: find, target: s1, motif: TT}
    - {op: transcribe, target: s1, as: r1}

Operations: create, mutate, find, find_all, complement, reverse_complement,
transcribe, render, length.`,
		Example: `  vibe-seq batch edits.yaml
  cat edits.yaml | vibe-seq batch -
  vibe-seq batch --metrics edits.yaml`,
		Args: usageArgs(cobra.ExactArgs(1)),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlag("batch.continue_on_error", cmd.Flags().Lookup("continue-on-error")); err != nil {
				return err
			}
			return viper.BindPFlag("batch.metrics", cmd.Flags().Lookup("metrics"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, a, args[0])
		},
	}
	cmd.Flags().Bool("continue-on-error", true, "Keep running after a failing step")
	cmd.Flags().Bool("metrics", false, "Print Prometheus metrics to stderr after the run")
	return cmd
}

func runBatch(cmd *cobra.Command, a *app, path string) error {
	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open batch script: %w", err)
		}
		defer f.Close()
		in = f
	}

	script, err := batch.ParseScript(in)
	if err != nil {
		return err
	}

	l, err := ledger.Open()
	if err != nil {
		return err
	}
	defer l.Close()

	runner := batch.NewRunner()
	runner.SetLogger(a.logger)
	runner.SetContinueOnError(viper.GetBool("batch.continue_on_error"))
	runner.SetRecorder(l)

	var metrics *batch.Metrics
	if viper.GetBool("batch.metrics") {
		metrics = batch.NewMetrics()
		runner.SetMetrics(metrics)
	}

	runErr := runner.Run(script, output.NewTabWriter(cmd.OutOrStdout()))

	if err := writeSummary(cmd.ErrOrStderr(), l); err != nil {
		a.logger.Warn("could not summarize batch", zap.Error(err))
	}
	if metrics != nil {
		if err := metrics.WriteText(cmd.ErrOrStderr()); err != nil {
			a.logger.Warn("could not write metrics", zap.Error(err))
		}
	}

	return runErr
}

func writeSummary(w io.Writer, l *ledger.Ledger) error {
	rows, err := l.Summary()
	if err != nil {
		return err
	}
	total, err := l.Count()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nBatch summary (%d steps):\n", total)
	for _, r := range rows {
		fmt.Fprintf(w, "  %-20s %-26s %d\n", r.Op, r.Outcome, r.Count)
	}
	return nil
}

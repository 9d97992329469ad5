package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LanceryH/Space-propulsion/internal/cases"
	"github.com/LanceryH/Space-propulsion/internal/writers"
)

func newBatchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <cases.yaml>...",
		Short: "Evaluate YAML case files and check their expectations",
		Long: `Evaluate every case of one or more YAML case files in order.

Each case names a formula, its arguments and optionally an expected value
(with tolerance) or an expected error kind (parameter|domain).
A file-level g0 applies to cases that need it and do not set it; --g0
applies to files without one. Use "-" to read a file from stdin.

Exit status is 1 when any case errors or misses its expectation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, paths []string) error {
			return runBatch(cmd, opts, paths)
		},
	}
}

func runBatch(cmd *cobra.Command, opts *RootOptions, paths []string) error {
	log := opts.Logger
	g0 := opts.G0

	var all []cases.Prepared
	for _, path := range paths {
		var (
			list []cases.Prepared
			err  error
		)
		if path == "-" {
			list, err = cases.Load(cmd.InOrStdin(), "-", &g0)
		} else {
			list, err = cases.LoadFile(path, &g0)
		}
		if err != nil {
			return WrapExitError(ExitCommandError, "load cases", err)
		}
		log.Debug("loaded case file", zap.String("source", path), zap.Int("cases", len(list)))
		all = append(all, list...)
	}

	runID := cases.NewRunID()
	log.Debug("batch start", zap.String("run_id", runID), zap.Int("cases", len(all)))

	in, done := writers.StartResultWriter(cmd.OutOrStdout(), opts.Format, !opts.NoHeader, runID, 64)
	failed := 0
	runErr := cases.ForEach(ctxOf(cmd), all, func(r cases.Result) error {
		if r.Failed() {
			failed++
			log.Warn("case failed",
				zap.String("case", r.Case),
				zap.String("formula", r.Formula),
				zap.String("source", r.Source),
				zap.String("status", string(r.Status)))
		}
		in <- r
		return nil
	})
	close(in)
	writeErr := <-done

	switch {
	case writeErr != nil:
		return WrapExitError(ExitWriteError, "output error", writeErr)
	case errors.Is(runErr, context.Canceled), errors.Is(runErr, context.DeadlineExceeded):
		return WrapExitError(ExitCancelled, "batch interrupted", runErr)
	case runErr != nil:
		return WrapExitError(ExitFailure, "batch", runErr)
	case failed > 0:
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d case(s) failed", failed, len(all)))
	}
	log.Debug("batch done", zap.String("run_id", runID))
	return nil
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

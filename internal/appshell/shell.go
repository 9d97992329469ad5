// Package appshell runs a CLI entry point under a signal-aware context.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// CancelledCode is returned when a signal interrupted an otherwise successful run.
const CancelledCode = 130

// Main runs run with the process arguments and exits with its code.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Normalize(ctx, run(ctx, os.Args[1:], os.Stdout, os.Stderr))
	stop()
	os.Exit(code)
}

// Normalize maps a zero exit code to CancelledCode once ctx is done.
func Normalize(ctx context.Context, code int) int {
	if ctx.Err() != nil && code == 0 {
		return CancelledCode
	}
	return code
}

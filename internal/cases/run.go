package cases

import (
	"context"

	"github.com/google/uuid"
)

// NewRunID returns a time-ordered id that tags every result of one run.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ForEach evaluates cases in order and hands each result to send. It stops at
// the first send error or when ctx is cancelled.
func ForEach(ctx context.Context, list []Prepared, send func(Result) error) error {
	for _, p := range list {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := send(Evaluate(p)); err != nil {
			return err
		}
	}
	return nil
}

// Tally counts passed and failed results.
func Tally(rs []Result) (passed, failed int) {
	for _, r := range rs {
		switch r.Status {
		case StatusPass, StatusOK:
			passed++
		case StatusFail, StatusError:
			failed++
		}
	}
	return passed, failed
}

package cases

import (
	"fmt"
	"math"

	"github.com/LanceryH/Space-propulsion/core/propulsion"
	"github.com/LanceryH/Space-propulsion/internal/formula"
)

// Error kinds as they appear in case files and outputs.
const (
	KindParameter = "parameter"
	KindDomain    = "domain"
	KindInput     = "input"
)

// Status of one evaluated case.
type Status string

const (
	StatusOK    Status = "ok"    // evaluated, no expectation
	StatusError Status = "error" // failed, no expectation
	StatusPass  Status = "pass"  // expectation met
	StatusFail  Status = "fail"  // expectation not met
)

// Result is the outcome of one evaluation.
type Result struct {
	Case    string
	Formula string
	Unit    string
	Args    formula.Args
	Value   float64
	Err     error
	Status  Status
	Expect  *Expect
	Reason  string // why an expectation failed
	Source  string
}

// ErrorKind classifies err for reporting.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case propulsion.IsParameterError(err):
		return KindParameter
	case propulsion.IsDomainError(err):
		return KindDomain
	default:
		return KindInput
	}
}

// Evaluate runs p and checks its expectation, if any.
func Evaluate(p Prepared) Result {
	v, err := p.Formula.Evaluate(p.Args)
	r := Result{
		Case:    p.Name,
		Formula: p.Formula.Name,
		Unit:    p.Formula.Unit,
		Args:    p.Args,
		Value:   v,
		Err:     err,
		Expect:  p.Expect,
		Source:  p.Source,
	}
	if p.Expect == nil {
		r.Status = StatusOK
		if err != nil {
			r.Status = StatusError
		}
		return r
	}
	r.Reason = check(*p.Expect, v, err)
	r.Status = StatusPass
	if r.Reason != "" {
		r.Status = StatusFail
	}
	return r
}

func check(e Expect, v float64, err error) string {
	if e.Error != "" {
		if got := ErrorKind(err); got != e.Error {
			if err == nil {
				return fmt.Sprintf("want %s error, got value %g", e.Error, v)
			}
			return fmt.Sprintf("want %s error, got %s error", e.Error, got)
		}
		return ""
	}
	if err != nil {
		return fmt.Sprintf("want %g, got error: %v", *e.Value, err)
	}
	if v == *e.Value {
		return ""
	}
	// NaN fails every tolerance.
	if !(math.Abs(v-*e.Value) <= e.Tolerance) {
		return fmt.Sprintf("want %g ± %g, got %g", *e.Value, e.Tolerance, v)
	}
	return ""
}

// Failed reports whether r counts against the run's exit status.
func (r Result) Failed() bool { return r.Status == StatusFail || r.Status == StatusError }

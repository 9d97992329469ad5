package propulsion

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is; every error returned by this package wraps one.
var (
	ErrParameter = errors.New("parameter error")
	ErrDomain    = errors.New("domain error")
)

// ParameterError reports an unusable combination of inputs (specific impulse).
type ParameterError struct {
	Op     string // formula name, e.g. "SpecificImpulse"
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrParameter, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrParameter }

// DomainError reports a violated mathematical precondition: a zero divisor,
// a negative radicand, or a NaN result.
type DomainError struct {
	Op     string
	Param  string // offending input or sub-expression
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, ErrDomain, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s (%s=%g)", e.Op, ErrDomain, e.Reason, e.Param, e.Value)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// IsParameterError reports whether err (or anything it wraps) is a *ParameterError.
func IsParameterError(err error) bool {
	var pe *ParameterError
	return errors.As(err, &pe)
}

// IsDomainError reports whether err (or anything it wraps) is a *DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

func domainErr(op, param string, v float64, reason string) error {
	return &DomainError{Op: op, Param: param, Value: v, Reason: reason}
}

func paramErr(op, reason string) error {
	return &ParameterError{Op: op, Reason: reason}
}

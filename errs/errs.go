// Package errs defines the three fatal error kinds surfaced by the
// hwidth core: ConfigError, SolverError and LogicError. None of them
// is ever swallowed internally; they are returned to the caller as is,
// or (for solver failures) wrapped in a further SolverError whose
// Unwrap exposes the inner error, so errors.As recovers the concrete
// kind.
package errs

import "fmt"

// ConfigError reports an invalid hypergraph, FD, or FD-vs-hypergraph
// mismatch detected at construction or at SUBW build time.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config error: " + e.Msg }

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// SolverError reports that the LP solver returned a non-optimal
// status (infeasible, unbounded, or any other non-"optimal" result).
// It is never retried: the LPs built here are deterministic in their
// inputs, so a retry cannot change the outcome.
type SolverError struct {
	Msg string
	Err error
}

func (e *SolverError) Error() string {
	if e.Err != nil {
		return "solver error: " + e.Msg + ": " + e.Err.Error()
	}
	return "solver error: " + e.Msg
}

func (e *SolverError) Unwrap() error { return e.Err }

// NewSolverError wraps the underlying solver failure.
func NewSolverError(msg string, err error) *SolverError {
	return &SolverError{Msg: msg, Err: err}
}

// LogicError guards an internal invariant; seeing one means the
// implementation, not the caller's input, is broken.
type LogicError struct {
	Msg string
}

func (e *LogicError) Error() string { return "logic error: " + e.Msg }

// NewLogicError builds a LogicError with a formatted message.
func NewLogicError(format string, args ...any) *LogicError {
	return &LogicError{Msg: fmt.Sprintf(format, args...)}
}

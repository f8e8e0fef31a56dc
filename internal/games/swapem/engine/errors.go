package engine

import (
	"errors"
	"fmt"
)

// ErrResolving is returned when a mutation is requested while a resolution
// cycle is still in flight.
var ErrResolving = errors.New("engine: resolution in progress")

// ConfigurationError reports an invalid session or grid parameter.
// It is returned at construction time and is never recovered internally.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("engine: invalid %s: %s", e.Field, e.Reason)
}

// InvariantViolation reports an engine state that should be impossible,
// such as a gap surviving settlement.
type InvariantViolation struct {
	Op     string
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("engine: invariant violated in %s: %s", e.Op, e.Detail)
}

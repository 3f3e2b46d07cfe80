package storage

import "errors"

// ErrConfigNotFound is returned when a company has no petty-cash configuration.
var ErrConfigNotFound = errors.New("configuration not found")

// ErrNoActiveCycle is returned when a company has no active cycle.
var ErrNoActiveCycle = errors.New("no active cycle")

// ErrNoCycle is returned when a company has no cycles at all.
var ErrNoCycle = errors.New("no cycle found")

// ErrMultipleActiveCycles is returned when more than one cycle is flagged
// active for a company. This is a data-integrity violation that must be
// surfaced, not silently resolved.
var ErrMultipleActiveCycles = errors.New("multiple active cycles for company")

// ErrCycleNotActive is returned when completing a cycle that is missing or
// already closed.
var ErrCycleNotActive = errors.New("cycle not active")

// ErrCycleNotFound is returned when an operation references a cycle that does
// not exist.
var ErrCycleNotFound = errors.New("cycle not found")

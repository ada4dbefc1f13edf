package metrics

import "errors"

// Sentinel errors for the metrics package.
var (
	// ErrEmptyName indicates a metric was declared with an empty name.
	ErrEmptyName = errors.New("metrics: name is empty")

	// ErrDuplicateMetric indicates a second declaration of an already-known
	// metric name. Per spec, the duplicate is ignored with a warning by the
	// caller (the parser); the registry itself just reports the conflict.
	ErrDuplicateMetric = errors.New("metrics: duplicate metric name")

	// ErrUnknownOpt indicates an Opt value outside {Min, Max}.
	ErrUnknownOpt = errors.New("metrics: unknown optimization direction")

	// ErrUnknownCombo indicates a Combo value outside {Add, ComboMin, ComboMax}.
	ErrUnknownCombo = errors.New("metrics: unknown combination rule")

	// ErrMetricNotDeclared indicates a vector references a metric name the
	// registry never declared. Returned by Vector.Validate.
	ErrMetricNotDeclared = errors.New("metrics: metric not declared in registry")

	// ErrMissingMetric indicates a vector omits a value for a declared
	// metric. Returned by Vector.Validate; strict callers (the parser)
	// treat this as fatal rather than silently substituting MISSING.
	ErrMissingMetric = errors.New("metrics: vector omits a declared metric")
)

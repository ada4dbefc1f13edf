package parser

import "errors"

// Sentinel errors for the parser package. All are fatal: the caller
// should abort the load rather than attempt to recover a partial
// result.
var (
	// ErrUnknownSection indicates a bracketed header that is not one of
	// [metrics], [nodes], [edges].
	ErrUnknownSection = errors.New("parser: unknown section header")

	// ErrLineOutsideSection indicates a non-blank, non-comment line
	// appearing before any section header.
	ErrLineOutsideSection = errors.New("parser: line outside any section")

	// ErrMalformedMetric indicates a metrics-section line that does not
	// have the name|OPT|COMBO shape, or an unrecognized OPT/COMBO token.
	ErrMalformedMetric = errors.New("parser: malformed metric line")

	// ErrMalformedNode indicates a nodes-section line that does not have
	// the name|description shape.
	ErrMalformedNode = errors.New("parser: malformed node line")

	// ErrMalformedEdge indicates an edges-section line that does not have
	// the src|dst|k1=v1,k2=v2,... shape, or a metric token missing '='.
	ErrMalformedEdge = errors.New("parser: malformed edge line")

	// ErrIncompleteMetrics indicates an edge line whose metric vector does
	// not exactly match the declared metrics: it omits a declared metric
	// (wrapping metrics.ErrMissingMetric) or carries a key the [metrics]
	// section never declared (wrapping metrics.ErrMetricNotDeclared).
	ErrIncompleteMetrics = errors.New("parser: edge metrics do not match the declared metrics")
)

// Package engine bundles the read-only run state a host needs to drive
// the relaxation driver and collect its results: a Metric Registry, a
// Graph Store, and the Path Table they populate.
//
// Config controls run behavior — worker count and decimal precision —
// and can be built via functional options or loaded from YAML.
package engine

// Package pathopt computes Pareto-optimal paths over a directed,
// edge-weighted graph carrying more than one metric per edge.
//
// Where a single-objective shortest-path algorithm collapses a graph's
// weights to one comparable total, pathopt keeps every declared metric
// (cost, latency, hops, bandwidth, ...) separate and enumerates, for each
// ordered pair of nodes, the set of paths no other path dominates: a path
// p dominates q only if p is at least as good as q on every metric and
// strictly better on at least one. The result is a Pareto frontier per
// (source, destination) pair rather than a single "best" route.
//
// The module is organized as:
//
//	metrics/      — metric declarations (optimization direction, combination
//	                rule, bias) and the Vector type combine operates over
//	graphstore/    — node and directed-edge storage keyed by (src, dst)
//	paths/         — Path, Collection (a non-dominated set) and Table
//	                 (Collection per node pair), plus the domination relation
//	relax/         — the fixed-point relaxation driver that populates a Table,
//	                 sequentially or with one goroutine per source node
//	parser/        — the `[metrics]`/`[nodes]`/`[edges]` input file format
//	output/        — result serialization back to that format's path lines
//	engine/        — Engine, wiring Registry+Store+Table+Config into one call
//	cmd/pathopt/   — the `pathopt run`/`pathopt validate` CLI
//
// A graph with a single metric declared MIN/ADD degenerates to ordinary
// shortest-path search, but that is not this module's purpose: it exists
// for the case where no single weight tells the whole story and the
// trade-off itself is the answer.
package pathopt

// Package parser reads the three-section input file format into a
// metrics.Registry and a graphstore.Store: a plain-text file with
// bracketed section headers ([metrics], [nodes], [edges]), blank lines
// and '#' comments ignored, fields separated by '|'.
//
//	[metrics]
//	cost|MIN|ADD
//	bw|MAX|MIN
//
//	[nodes]
//	A|first node
//	B|second node
//
//	[edges]
//	A|B|cost=1,bw=10
//
// Every line-level error is fatal per the file format's contract: a
// malformed line aborts the parse and returns an error wrapping one of
// the sentinels in errors.go, rather than skipping the line.
package parser

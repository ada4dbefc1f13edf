package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/josephcolton/pathopt/graphstore"
	"github.com/josephcolton/pathopt/metrics"
)

// section identifies which bracketed block the scanner is currently in.
type section int

const (
	sectionNone section = iota
	sectionMetrics
	sectionNodes
	sectionEdges
)

// Result bundles the Registry and Store produced by a successful Load.
type Result struct {
	Registry *metrics.Registry
	Store    *graphstore.Store
}

// Load reads the three-section input format from r in a single pass and
// returns the populated Registry and Store, or the first fatal error
// encountered. Nodes must be declared before any edge referencing them,
// matching the documented file layout ([metrics], then [nodes], then
// [edges]). Duplicate metric declarations are not fatal: the first
// declaration wins and a warning is logged, per the file format's
// "semantic registry errors" handling.
func Load(r io.Reader) (*Result, error) {
	reg := metrics.NewRegistry()
	store := graphstore.New(reg)
	sec := sectionNone

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			s, err := parseSectionHeader(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			sec = s
			continue
		}

		if sec == sectionNone {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrLineOutsideSection, line)
		}

		var err error
		switch sec {
		case sectionMetrics:
			err = parseMetricLine(reg, line)
		case sectionNodes:
			err = parseNodeLine(store, line)
		case sectionEdges:
			err = parseEdgeLine(reg, store, line)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Result{Registry: reg, Store: store}, nil
}

func parseSectionHeader(line string) (section, error) {
	switch line {
	case "[metrics]":
		return sectionMetrics, nil
	case "[nodes]":
		return sectionNodes, nil
	case "[edges]":
		return sectionEdges, nil
	default:
		return sectionNone, fmt.Errorf("%w: %q", ErrUnknownSection, line)
	}
}

// parseMetricLine parses "name|OPT|COMBO" where COMBO may carry an
// "ADD+<float>" bias suffix.
func parseMetricLine(reg *metrics.Registry, line string) error {
	fields := strings.Split(line, "|")
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedMetric, line)
	}

	name := fields[0]

	var opt metrics.Opt
	switch fields[1] {
	case "MIN":
		opt = metrics.Min
	case "MAX":
		opt = metrics.Max
	default:
		return fmt.Errorf("%w: unknown optimization %q", ErrMalformedMetric, fields[1])
	}

	combo, arg, err := parseCombo(fields[2])
	if err != nil {
		return err
	}

	if err := reg.Declare(name, opt, combo, arg); err != nil {
		if errors.Is(err, metrics.ErrDuplicateMetric) {
			log.Printf("parser: duplicate metric %q, keeping first declaration", name)
			return nil
		}
		return err
	}

	return nil
}

func parseCombo(token string) (metrics.Combo, float64, error) {
	switch {
	case token == "MIN":
		return metrics.ComboMin, 0, nil
	case token == "MAX":
		return metrics.ComboMax, 0, nil
	case token == "ADD":
		return metrics.Add, 0, nil
	case strings.HasPrefix(token, "ADD+"):
		arg, err := strconv.ParseFloat(token[len("ADD+"):], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad ADD bias %q", ErrMalformedMetric, token)
		}
		return metrics.Add, arg, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown combination %q", ErrMalformedMetric, token)
	}
}

func parseNodeLine(store *graphstore.Store, line string) error {
	fields := strings.SplitN(line, "|", 2)
	if len(fields) != 2 {
		return fmt.Errorf("%w: %q", ErrMalformedNode, line)
	}

	return store.AddNode(fields[0], fields[1])
}

// parseEdgeLine parses "src|dst|k1=v1,k2=v2,...".
func parseEdgeLine(reg *metrics.Registry, store *graphstore.Store, line string) error {
	fields := strings.SplitN(line, "|", 3)
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedEdge, line)
	}

	src, dst := fields[0], fields[1]
	values := map[string]float64{}

	for _, tok := range strings.Split(fields[2], ",") {
		if tok == "" {
			continue
		}
		kv := strings.SplitN(tok, "=", 2)
		if len(kv) != 2 {
			return fmt.Errorf("%w: metric token %q", ErrMalformedEdge, tok)
		}
		v, err := strconv.ParseFloat(kv[1], 64)
		if err != nil {
			return fmt.Errorf("%w: bad value in %q", ErrMalformedEdge, tok)
		}
		values[kv[0]] = v
	}

	vec := metrics.NewVector(values)
	if err := vec.Validate(reg); err != nil {
		return fmt.Errorf("%w: edge %s->%s: %w", ErrIncompleteMetrics, src, dst, err)
	}

	return store.AddEdge(src, dst, vec)
}

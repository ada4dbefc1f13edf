package metrics

import "fmt"

// Registry holds the ordered sequence of declared metrics. Order is
// canonical: it defines the iteration order used everywhere metrics are
// compared (domination) or combined. Names are unique within a Registry.
//
// Registry is built once per engine run and is read-only once relaxation
// begins (per the concurrency model in SPEC_FULL.md §5); it carries no
// internal locking because all writers (the parser) finish before any
// reader (the relaxation driver) starts.
type Registry struct {
	order []string              // declaration order of metric names
	byKey map[string]Declaration // name -> declaration
}

// NewRegistry creates an empty Registry.
// Complexity: O(1).
func NewRegistry() *Registry {
	return &Registry{
		byKey: make(map[string]Declaration),
	}
}

// Declare adds a new metric declaration to the Registry.
//
// Returns ErrEmptyName if name is empty, ErrUnknownOpt/ErrUnknownCombo for
// out-of-range enum values, and ErrDuplicateMetric if name was already
// declared — the first declaration always prevails; callers that want the
// "ignore with a warning" semantics of spec.md §7 should check
// errors.Is(err, ErrDuplicateMetric) and continue rather than abort.
//
// Complexity: O(1) amortized.
func (r *Registry) Declare(name string, opt Opt, combo Combo, arg float64) error {
	if name == "" {
		return ErrEmptyName
	}
	if opt != Min && opt != Max {
		return fmt.Errorf("%w: %d", ErrUnknownOpt, opt)
	}
	if combo != Add && combo != ComboMin && combo != ComboMax {
		return fmt.Errorf("%w: %d", ErrUnknownCombo, combo)
	}
	if _, exists := r.byKey[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateMetric, name)
	}

	r.byKey[name] = Declaration{Name: name, Opt: opt, Combo: combo, Arg: arg}
	r.order = append(r.order, name)

	return nil
}

// Lookup returns the Declaration for name and whether it was found.
// Complexity: O(1).
func (r *Registry) Lookup(name string) (Declaration, bool) {
	d, ok := r.byKey[name]

	return d, ok
}

// Names returns the declared metric names in canonical (declaration)
// order. The returned slice is owned by the caller; mutating it does not
// affect the Registry.
// Complexity: O(n).
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Len reports the number of declared metrics.
// Complexity: O(1).
func (r *Registry) Len() int {
	return len(r.order)
}

// Has reports whether name was declared.
// Complexity: O(1).
func (r *Registry) Has(name string) bool {
	_, ok := r.byKey[name]

	return ok
}

package sieve

import "fmt"

// Spec is an ordered stack of sieve openings in millimeters, coarsest
// first, terminated by the pan entry (size 0). The pan has no opening
// to interpolate against but still collects mass, so it always closes
// the stack.
type Spec struct {
	// Sizes are the sieve openings in mm, strictly decreasing,
	// with Sizes[len(Sizes)-1] == 0 for the pan.
	Sizes []float64
}

// PanSize is the nominal opening assigned to the pan.
const PanSize = 0.0

// StandardStack returns the default sieve stack used for fine-aggregate
// gradation: 4.75 mm down to 0.075 mm, plus the pan.
func StandardStack() Spec {
	return Spec{Sizes: []float64{4.75, 2.36, 1.18, 0.600, 0.300, 0.150, 0.075, PanSize}}
}

// NewSpec builds a Spec from the given openings. A missing pan entry is
// appended automatically.
func NewSpec(sizes []float64) (Spec, error) {
	if len(sizes) == 0 {
		return Spec{}, &StackError{"sieve stack must contain at least one opening"}
	}
	stack := make([]float64, len(sizes))
	copy(stack, sizes)
	if stack[len(stack)-1] != PanSize {
		stack = append(stack, PanSize)
	}
	s := Spec{Sizes: stack}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// Validate checks the stack ordering invariants.
func (s Spec) Validate() error {
	if len(s.Sizes) < 2 {
		return &StackError{"sieve stack must contain at least one sieve above the pan"}
	}
	if s.Sizes[len(s.Sizes)-1] != PanSize {
		return &StackError{"sieve stack must end with the pan (size 0)"}
	}
	for i := 1; i < len(s.Sizes); i++ {
		if s.Sizes[i] < 0 {
			return &StackError{fmt.Sprintf("sieve opening at position %d is negative", i+1)}
		}
		if s.Sizes[i] >= s.Sizes[i-1] {
			return &StackError{fmt.Sprintf("sieve openings must be strictly decreasing: %.3f mm follows %.3f mm", s.Sizes[i], s.Sizes[i-1])}
		}
	}
	return nil
}

// Count returns the number of weight values a sample must supply, one
// per stack entry including the pan.
func (s Spec) Count() int {
	return len(s.Sizes)
}

// CheckCount verifies that the weight list matches the stack length.
func (s Spec) CheckCount(weights []float64) error {
	if len(weights) != s.Count() {
		return &CountMismatchError{Expected: s.Count(), Got: len(weights)}
	}
	return nil
}

// Label returns the display label for the opening at index i, "Pan" for
// the pan entry.
func (s Spec) Label(i int) string {
	if s.Sizes[i] == PanSize {
		return "Pan"
	}
	return fmt.Sprintf("%.3f", s.Sizes[i])
}

package sieve

import (
	"strconv"
	"strings"
)

// ParseWeights reads a comma-separated list of retained weights in
// grams. Each token must parse as a non-negative real number; the first
// offending token is reported in a ParseError. Empty tokens produced by
// trailing commas are rejected the same way.
func ParseWeights(input string) ([]float64, error) {
	tokens := strings.Split(input, ",")
	weights := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		w, err := strconv.ParseFloat(tok, 64)
		if err != nil || w < 0 {
			return nil, &ParseError{Token: tok, Index: i}
		}
		weights = append(weights, w)
	}
	return weights, nil
}

// ParseSizes reads a comma-separated list of sieve openings in
// millimeters and builds a validated Spec from them. The pan entry may
// be omitted; NewSpec appends it.
func ParseSizes(input string) (Spec, error) {
	tokens := strings.Split(input, ",")
	sizes := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		sz, err := strconv.ParseFloat(tok, 64)
		if err != nil || sz < 0 {
			return Spec{}, &ParseError{Token: tok, Index: i}
		}
		sizes = append(sizes, sz)
	}
	return NewSpec(sizes)
}

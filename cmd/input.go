package cmd

import (
	"github.com/alexiusacademia/gosieve/internal/sieve"
)

// buildAnalysis parses the shared --sieves/--weights inputs and runs
// the gradation computation. An empty sizes string selects the
// standard stack.
func buildAnalysis(sizes, weights string) (*sieve.Analysis, error) {
	stack := sieve.StandardStack()
	if sizes != "" {
		var err error
		stack, err = sieve.ParseSizes(sizes)
		if err != nil {
			return nil, err
		}
	}

	values, err := sieve.ParseWeights(weights)
	if err != nil {
		return nil, err
	}

	return sieve.Analyze(stack, values)
}

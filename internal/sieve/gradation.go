package sieve

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/gosieve/internal/soil"
)

// Row is one line of the gradation table.
type Row struct {
	Size               float64 // sieve opening (mm), 0 for the pan
	WeightRetained     float64 // g
	PercentRetained    float64
	CumulativeRetained float64
	PercentPassing     float64
}

// Analysis is the complete result of a gradation computation. All
// fields the presentation layers need are precomputed here, including
// the classification labels, so renderers never re-derive values.
type Analysis struct {
	Spec        Spec
	Rows        []Row
	TotalWeight float64 // g

	// Characteristic grain diameters (mm) read off the passing curve.
	D10 float64
	D30 float64
	D60 float64

	// Cu and Cc are +Inf when D10 (or, for Cc, D60) is zero.
	Cu float64
	Cc float64

	Gradation      string // well-/poorly-graded label
	Classification string // D10 bucket label
}

// Analyze computes the gradation table and derived metrics for a
// validated stack and weight list. It is a pure function: every call
// allocates its own result and no state is shared between calls.
//
// D10/D30/D60 are found by linear interpolation of sieve size against
// percent passing over the sieves above the pan. When a target
// percentile falls outside the observed passing range the diameter is
// clamped to the nearest measured sieve size.
func Analyze(spec Spec, weights []float64) (*Analysis, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := spec.CheckCount(weights); err != nil {
		return nil, err
	}

	var total float64
	for i, w := range weights {
		if w < 0 {
			return nil, &ParseError{Token: fmt.Sprintf("%g", w), Index: i}
		}
		total += w
	}
	if total == 0 {
		return nil, &DegenerateInputError{}
	}

	a := &Analysis{
		Spec:        spec,
		Rows:        make([]Row, len(weights)),
		TotalWeight: total,
	}

	var cumulative float64
	for i, w := range weights {
		retained := w / total * 100
		cumulative += retained
		a.Rows[i] = Row{
			Size:               spec.Sizes[i],
			WeightRetained:     w,
			PercentRetained:    retained,
			CumulativeRetained: cumulative,
			PercentPassing:     100 - cumulative,
		}
	}

	// The pan (size 0) contributes mass to the cumulative sums but has
	// no opening, so it is excluded from the interpolation domain.
	curve := interpolationCurve(a.Rows)
	a.D10 = interpolateDiameter(curve, 10)
	a.D30 = interpolateDiameter(curve, 30)
	a.D60 = interpolateDiameter(curve, 60)

	a.Cu, a.Cc = coefficients(a.D10, a.D30, a.D60)

	a.Gradation = soil.ClassifyGradation(a.Cu, a.Cc)
	a.Classification = soil.ClassifyD10(a.D10)

	return a, nil
}

// coefficients derives the uniformity and curvature coefficients. A
// zero D10 (or D60, for Cc) yields the +Inf sentinel rather than a
// division fault.
func coefficients(d10, d30, d60 float64) (cu, cc float64) {
	if d10 == 0 {
		cu = math.Inf(1)
	} else {
		cu = d60 / d10
	}
	if d10 == 0 || d60 == 0 {
		cc = math.Inf(1)
	} else {
		cc = d30 * d30 / (d10 * d60)
	}
	return cu, cc
}

// curvePoint pairs a percent-passing value with its sieve opening.
type curvePoint struct {
	Passing float64
	Size    float64
}

// interpolationCurve extracts the (passing, size) pairs above the pan,
// sorted by ascending percent passing. Passing decreases as size
// decreases, so the ascending view is the reversed sieve order; the
// stable sort keeps ties fine-sieve first, which pins the endpoint
// clamp to the finest opening when the curve is flat.
func interpolationCurve(rows []Row) []curvePoint {
	pts := make([]curvePoint, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		if r := rows[i]; r.Size > PanSize {
			pts = append(pts, curvePoint{Passing: r.PercentPassing, Size: r.Size})
		}
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Passing < pts[j].Passing })
	return pts
}

// interpolateDiameter reads the sieve size at the given percent passing
// off the sorted curve, clamping to the nearest endpoint outside the
// observed range.
func interpolateDiameter(pts []curvePoint, passing float64) float64 {
	if len(pts) == 0 {
		return 0
	}
	if passing <= pts[0].Passing {
		return pts[0].Size
	}
	if passing >= pts[len(pts)-1].Passing {
		return pts[len(pts)-1].Size
	}
	for i := 1; i < len(pts); i++ {
		lo, hi := pts[i-1], pts[i]
		if passing > hi.Passing {
			continue
		}
		if hi.Passing == lo.Passing {
			return lo.Size
		}
		t := (passing - lo.Passing) / (hi.Passing - lo.Passing)
		return lo.Size + t*(hi.Size-lo.Size)
	}
	return pts[len(pts)-1].Size
}

// Interpretation renders the derived metrics as display lines for the
// summary box and the PDF interpretation block.
func (a *Analysis) Interpretation() []string {
	return []string{
		fmt.Sprintf("D10 = %.3f mm", a.D10),
		fmt.Sprintf("D30 = %.3f mm", a.D30),
		fmt.Sprintf("D60 = %.3f mm", a.D60),
		fmt.Sprintf("Uniformity Coefficient (Cu) = %s", formatCoefficient(a.Cu)),
		fmt.Sprintf("Coefficient of Curvature (Cc) = %s", formatCoefficient(a.Cc)),
		fmt.Sprintf("Gradation: %s", a.Gradation),
		fmt.Sprintf("Soil type: %s", a.Classification),
	}
}

func formatCoefficient(v float64) string {
	if math.IsInf(v, 1) {
		return "∞ (D10 at zero)"
	}
	return fmt.Sprintf("%.2f", v)
}

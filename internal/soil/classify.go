package soil

// Grain-size classification constants (mm). The buckets follow the
// common geotechnical split at the No. 200 and No. 10 sieve openings.
const (
	// FineLimit is the upper bound of the fines fraction (silt/clay).
	FineLimit = 0.075

	// SandLimit is the upper bound of the sand fraction.
	SandLimit = 2.0
)

// Gradation-shape thresholds on the uniformity and curvature
// coefficients.
const (
	CuWellGraded = 4.0
	CcLowerBound = 1.0
	CcUpperBound = 3.0
)

// Classification labels.
const (
	FineSoil = "Fine soil (silt/clay range)"
	Sand     = "Sand"
	Gravel   = "Gravel / coarse soil"

	WellGraded   = "Well-graded"
	PoorlyGraded = "Poorly-graded"
)

// ClassifyD10 buckets the soil by its effective grain size D10 (mm).
func ClassifyD10(d10 float64) string {
	switch {
	case d10 < FineLimit:
		return FineSoil
	case d10 < SandLimit:
		return Sand
	default:
		return Gravel
	}
}

// ClassifyGradation labels the gradation shape from the uniformity
// coefficient Cu and the coefficient of curvature Cc. A soil is
// well-graded when Cu > 4 and Cc lies strictly between 1 and 3.
func ClassifyGradation(cu, cc float64) string {
	if cu > CuWellGraded && cc > CcLowerBound && cc < CcUpperBound {
		return WellGraded
	}
	return PoorlyGraded
}

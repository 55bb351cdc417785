package physics

import "math"

// RubberCoefficient is the c in d·c·R / (R + c·d).
const RubberCoefficient = 0.55

// Rubber compresses distance with the default coefficient.
func Rubber(distance, rng float64) float64 {
	return RubberBand{Coefficient: RubberCoefficient, Range: rng}.Map(distance)
}

// RubberBand maps overscroll into a visual offset with diminishing returns.
// The result approaches Range but never reaches it.
type RubberBand struct {
	Coefficient float64
	Range       float64
}

// Map compresses |distance| and restores the sign.
func (r RubberBand) Map(distance float64) float64 {
	if distance == 0 || r.Range <= 0 || r.Coefficient <= 0 || !finite(distance) {
		return 0
	}
	d := math.Abs(distance)
	m := (d * r.Coefficient * r.Range) / (r.Range + r.Coefficient*d)
	return math.Copysign(m, distance)
}

// Display leaves raw untouched inside [lo, hi] and rubber-maps the part that
// overshoots either edge.
func (r RubberBand) Display(raw, lo, hi float64) float64 {
	switch {
	case raw < lo:
		return lo + r.Map(raw-lo)
	case raw > hi:
		return hi + r.Map(raw-hi)
	}
	return raw
}

// Overshoot returns how far raw lies outside [lo, hi] (signed, 0 inside).
func Overshoot(raw, lo, hi float64) float64 {
	switch {
	case raw < lo:
		return raw - lo
	case raw > hi:
		return raw - hi
	}
	return 0
}

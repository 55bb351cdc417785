package physics

import (
	"math"
	"time"
)

// FrictionToLambda converts a per-frame retained fraction (sampled at 60 Hz)
// into the continuous decay constant λ, so that f^60 = e^-λ.
func FrictionToLambda(friction float64) float64 {
	if friction <= 0 {
		return math.Inf(1)
	}
	return -60 * math.Log(friction)
}

// DecayVelocity is v0·e^(-λt). λ <= 0 means no friction and keeps v0.
func DecayVelocity(v0, lambda, t float64) float64 {
	if t <= 0 || lambda <= 0 {
		return v0
	}
	return v0 * math.Exp(-lambda*t)
}

// DecayOffset is the distance travelled after t seconds: (v0/λ)(1 - e^(-λt)).
// λ <= 0 means no friction and degrades to v0·t.
func DecayOffset(v0, lambda, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if lambda <= 0 {
		return v0 * t
	}
	return (v0 / lambda) * (1 - math.Exp(-lambda*t))
}

// DurationUntil returns the seconds until |velocity| falls to threshold.
func DurationUntil(v0, lambda, threshold float64) float64 {
	speed := math.Abs(v0)
	if speed <= threshold {
		return 0
	}
	if lambda <= 0 || threshold <= 0 {
		return math.Inf(1)
	}
	return math.Log(speed/threshold) / lambda
}

// DecayEnd says why an evaluated decay session stopped, if it did.
type DecayEnd uint8

const (
	Coasting DecayEnd = iota
	Resting
	HitLower
	HitUpper
)

func (e DecayEnd) String() string {
	switch e {
	case Resting:
		return "resting"
	case HitLower:
		return "hit-lower"
	case HitUpper:
		return "hit-upper"
	default:
		return "coasting"
	}
}

// Decay is one momentum coast. Position and velocity at any instant are pure
// functions of the four fields, so interrupting it is just reading them.
type Decay struct {
	From   float64
	V0     float64 // units per second
	Lambda float64
	Start  time.Duration
}

// StartDecay begins a coast at time at. It refuses (second value false) when
// |v0| is below flingThreshold.
func StartDecay(from, v0, lambda float64, at time.Duration, flingThreshold float64) (Decay, bool) {
	if math.Abs(v0) < flingThreshold || !finite(v0) {
		return Decay{}, false
	}
	return Decay{From: from, V0: v0, Lambda: lambda, Start: at}, true
}

func (d Decay) elapsed(now time.Duration) float64 {
	return (now - d.Start).Seconds()
}

// Position evaluates the coast at now.
func (d Decay) Position(now time.Duration) float64 {
	return d.From + DecayOffset(d.V0, d.Lambda, d.elapsed(now))
}

// Velocity evaluates the coast at now.
func (d Decay) Velocity(now time.Duration) float64 {
	return DecayVelocity(d.V0, d.Lambda, d.elapsed(now))
}

// Target is where the coast would come to rest without bounds.
func (d Decay) Target() float64 {
	if d.Lambda <= 0 {
		return math.Copysign(math.Inf(1), d.V0)
	}
	return d.From + d.V0/d.Lambda
}

// Duration is the time from Start until the speed drops under restVelocity.
func (d Decay) Duration(restVelocity float64) time.Duration {
	s := DurationUntil(d.V0, d.Lambda, restVelocity)
	if math.IsInf(s, 1) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(s * float64(time.Second))
}

// Evaluate returns position and velocity at now, clamping the position to
// [lo, hi]. The end value is Coasting while the session should continue.
func (d Decay) Evaluate(now time.Duration, lo, hi, restVelocity float64) (float64, float64, DecayEnd) {
	pos := d.Position(now)
	vel := d.Velocity(now)
	switch {
	case pos < lo:
		return lo, vel, HitLower
	case pos > hi:
		return hi, vel, HitUpper
	case math.Abs(vel) < restVelocity:
		return pos, 0, Resting
	}
	return pos, vel, Coasting
}

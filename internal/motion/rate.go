package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// RateFunc maps linear time in [0, 1] to animation progress. Every rate
// function returns 0 at 0; all but ThereAndBack return 1 at 1.
type RateFunc func(t float64) float64

func Linear(t float64) float64 { return t }

// Smooth is a normalized logistic ease-in-out.
func Smooth(t float64) float64 {
	const inflection = 10.0
	sig := func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
	e := sig(-inflection / 2)
	return clamp01((sig(inflection*(t-0.5)) - e) / (1 - 2*e))
}

// EaseOutBack overshoots the target slightly before settling.
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// ThereAndBack runs Smooth forward over the first half and backward over
// the second, ending where it started.
func ThereAndBack(t float64) float64 {
	if t < 0.5 {
		return Smooth(2 * t)
	}
	return Smooth(2 * (1 - t))
}

// Spring returns a rate function following a damped spring released from 0
// toward 1. The motion is simulated once with harmonica and normalized so
// it ends exactly at 1.
func Spring(frequency, damping float64) RateFunc {
	const steps = 120
	s := harmonica.NewSpring(harmonica.FPS(steps), frequency, damping)
	table := make([]float64, steps+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= steps; i++ {
		pos, vel = s.Update(pos, vel, 1)
		table[i] = pos
	}
	end := table[steps]
	if end != 0 {
		for i := range table {
			table[i] /= end
		}
	}

	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		x := t * steps
		i := int(x)
		return lerp(table[i], table[i+1], x-float64(i))
	}
}

func clamp01(x float64) float64 { return math.Max(0, math.Min(1, x)) }

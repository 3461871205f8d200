// Package ease implements the easing curves used by page timelines.
package ease

import "math"

// Func maps normalised time in [0,1] to normalised progress. Every curve in
// this package returns exactly 0 at t<=0 and exactly 1 at t>=1.
type Func func(t float64) float64

func pin(f func(float64) float64) Func {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return f(t)
	}
}

var Linear = pin(func(t float64) float64 { return t })

// PowerIn follows GSAP naming: power1 is quadratic, power2 cubic, and so on.
func PowerIn(n int) Func {
	e := float64(n + 1)
	return pin(func(t float64) float64 { return math.Pow(t, e) })
}

func PowerOut(n int) Func {
	e := float64(n + 1)
	return pin(func(t float64) float64 { return 1 - math.Pow(1-t, e) })
}

func PowerInOut(n int) Func {
	e := float64(n + 1)
	return pin(func(t float64) float64 {
		if t < 0.5 {
			return math.Pow(2*t, e) / 2
		}
		return 1 - math.Pow(2*(1-t), e)/2
	})
}

// BackOut overshoots the target by an amount controlled by s before settling.
func BackOut(s float64) Func {
	return pin(func(t float64) float64 {
		u := t - 1
		return 1 + (s+1)*u*u*u + s*u*u
	})
}

// ElasticOut oscillates around the target with decaying amplitude.
func ElasticOut(amplitude, period float64) Func {
	if amplitude < 1 {
		amplitude = 1
	}
	if period <= 0 {
		period = 0.3
	}
	shift := period / (2 * math.Pi) * math.Asin(1/amplitude)
	return pin(func(t float64) float64 {
		return amplitude*math.Pow(2, -10*t)*math.Sin((t-shift)*(2*math.Pi)/period) + 1
	})
}

var SineInOut = pin(func(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 })

// Sample evaluates f at n+1 evenly spaced points in [0,1].
func Sample(f Func, n int) []float64 {
	if n < 1 {
		n = 1
	}
	out := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		out[i] = f(float64(i) / float64(n))
	}
	return out
}

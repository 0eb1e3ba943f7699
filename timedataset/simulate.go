package timedataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// GenerateT creates a time axis of n samples spaced step minutes apart
// starting at zero.
func GenerateT(n int, step float64) TimeSlice {
	t := make(TimeSlice, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, float64(i)*step)
	}
	return t
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateFreezeY simulates a supercooled freezing run: a linear cooling ramp
// until the nucleation time, a recalescence jump back toward the melting
// plateau, then an exponential decay toward the end temperature.
func GenerateFreezeY(t TimeSlice, nucleationAt, startTemp, coolRate, endTemp, decayRate float64) Series {
	n := len(t)
	y := make([]float64, 0, n)

	nucTemp := startTemp - coolRate*nucleationAt
	for i := 0; i < n; i++ {
		if t[i] < nucleationAt {
			y = append(y, startTemp-coolRate*t[i])
			continue
		}
		elapsed := t[i] - nucleationAt
		val := endTemp + (nucTemp+latentHeatJump-endTemp)*math.Exp(-decayRate*elapsed)
		y = append(y, val)
	}
	return Series(y)
}

// latentHeatJump approximates the recalescence temperature rise at nucleation.
const latentHeatJump = 8.0

// GenerateFlowY simulates a gas flow that steps between a base and boost
// level over a time range.
func GenerateFlowY(t TimeSlice, base, boost, boostStart, boostEnd float64) Series {
	n := len(t)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		val := base
		if t[i] >= boostStart && t[i] < boostEnd {
			val = boost
		}
		y = append(y, val)
	}
	return Series(y)
}

func GenerateNoise(n int, scale float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rand.NormFloat64()*scale)
	}
	return Series(y)
}

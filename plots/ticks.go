// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from gonum/plot:
// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is an implementation of the Talbot, Lin and Hanrahan algorithm
// described in doi:10.1109/TVCG.2010.130 with reference to the R
// implementation in the labeling package, ©2014 Justin Talbot (Licensed
// MIT+file LICENSE|Unlimited).

package plots

import (
	"math"
	"strconv"
)

// Tick is one axis tick: a data value and its rendered label.
type Tick struct {
	Value float64
	Label string
}

// Ticks returns approximately want nicely placed ticks for the data
// range [min, max]. Tick values may extend moderately beyond the
// range; callers clip to the visible span when rendering. A NaN or
// infinite bound returns nil; a degenerate range returns a single
// tick.
func Ticks(min, max float64, want int) []Tick {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if want < 2 {
		want = 2
	}
	values, step := talbotLinHanrahan(min, max, want)
	prec := 0
	if step > 0 {
		prec = labelPrec(values, step)
	}
	ticks := make([]Tick, 0, len(values))
	for _, v := range values {
		lb := formatTick(v, prec)
		if n := len(ticks); n > 0 && ticks[n-1].Label == lb {
			continue
		}
		ticks = append(ticks, Tick{Value: v, Label: lb})
	}
	return ticks
}

// labelPrec returns the fewest decimal digits that render every value
// to within a small fraction of the tick step.
func labelPrec(values []float64, step float64) int {
	for prec := 0; prec < 12; prec++ {
		ok := true
		for _, v := range values {
			r, err := strconv.ParseFloat(formatTick(v, prec), 64)
			if err != nil || math.Abs(r-v) > step*1e-3 {
				ok = false
				break
			}
		}
		if ok {
			return prec
		}
	}
	return 12
}

// formatTick renders a tick value with prec decimal digits, switching
// to compact scientific form for very large or very small values.
func formatTick(v float64, prec int) string {
	if a := math.Abs(v); a != 0 && (a >= 1e6 || a < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

const (
	// dlamchE is the machine epsilon. For IEEE this is 2^{-53}.
	dlamchE = 1.0 / (1 << 53)

	// dlamchP is radix * eps.
	dlamchP = 2 * dlamchE
)

// niceNums are the preferred tick step multipliers, most
// preferred first.
var niceNums = []float64{1, 5, 2, 2.5, 4, 3}

// tickWeights are the scoring weights from the paper, with the unit
// legibility weight folded into [weights.score].
var tickWeights = weights{
	simplicity: 0.25,
	coverage:   0.2,
	density:    0.5,
	legibility: 0.05,
}

// talbotLinHanrahan returns an optimal set of approximately want label
// values for the data range [dMin, dMax], and the step between them.
// Label placement is free: values may fall moderately outside the
// data range.
func talbotLinHanrahan(dMin, dMax float64, want int) (values []float64, step float64) {
	const eps = dlamchP * 100

	if r := dMax - dMin; r < eps {
		l := make([]float64, want)
		step = r / float64(want-1)
		for i := range l {
			l[i] = dMin + float64(i)*step
		}
		return l, step
	}

	type selection struct {
		// n is the number of labels selected.
		n int
		// lMin and lMax are the selected min and max label values.
		lMin, lMax float64
		// lStep is the step between labels before magnitude scaling.
		lStep float64
		// score is the score for the selection.
		score float64
		// magnitude is the magnitude of the label step distance.
		magnitude int
	}
	best := selection{score: -2}

outer:
	for skip := 1; ; skip++ {
		for _, q := range niceNums {
			sm := maxSimplicity(q, skip)
			if tickWeights.score(sm, 1, 1) < best.score {
				break outer
			}

			for have := 2; ; have++ {
				dm := maxDensity(have, want)
				if tickWeights.score(sm, 1, dm) < best.score {
					break
				}

				delta := (dMax - dMin) / float64(have+1) / float64(skip) / q

				const maxExp = 309
				for mag := int(math.Ceil(math.Log10(delta))); mag < maxExp; mag++ {
					stp := float64(skip) * q * math.Pow10(mag)

					cm := maxCoverage(dMin, dMax, stp*float64(have-1))
					if tickWeights.score(sm, cm, dm) < best.score {
						break
					}

					fracStep := stp / float64(skip)
					kStep := stp * float64(have-1)

					minStart := (math.Floor(dMax/stp) - float64(have-1)) * float64(skip)
					maxStart := math.Ceil(dMax/stp) * float64(skip)
					for start := minStart; start <= maxStart && start != start-1; start++ {
						lMin := start * fracStep
						lMax := lMin + kStep

						score := tickWeights.score(
							simplicity(q, skip, lMin, lMax, stp),
							coverage(dMin, dMax, lMin, lMax),
							density(have, want, dMin, dMax, lMin, lMax),
						)
						if score > best.score {
							best = selection{
								n:         have,
								lMin:      lMin,
								lMax:      lMax,
								lStep:     float64(skip) * q,
								score:     score,
								magnitude: mag,
							}
						}
					}
				}
			}
		}
	}

	if best.score == -2 {
		l := make([]float64, want)
		step = (dMax - dMin) / float64(want-1)
		for i := range l {
			l[i] = dMin + float64(i)*step
		}
		return l, step
	}

	l := make([]float64, best.n)
	step = best.lStep * math.Pow10(best.magnitude)
	for i := range l {
		l[i] = best.lMin + float64(i)*step
	}
	return l, step
}

// simplicity returns the simplicity score for how well the current q,
// lMin, lMax, lStep and skip match the preferred numbers.
func simplicity(q float64, skip int, lMin, lMax, lStep float64) float64 {
	const eps = dlamchP * 100

	for i, v := range niceNums {
		if v == q {
			m := math.Mod(lMin, lStep)
			v = 0
			if (m < eps || lStep-m < eps) && lMin <= 0 && 0 <= lMax {
				v = 1
			}
			return 1 - float64(i)/(float64(len(niceNums))-1) - float64(skip) + v
		}
	}
	panic("plots: invalid tick step multiplier")
}

// maxSimplicity returns the maximum simplicity for q and skip.
func maxSimplicity(q float64, skip int) float64 {
	for i, v := range niceNums {
		if v == q {
			return 1 - float64(i)/(float64(len(niceNums))-1) - float64(skip) + 1
		}
	}
	panic("plots: invalid tick step multiplier")
}

// coverage returns the coverage score based on the average squared
// distance between the extreme labels, lMin and lMax, and the extreme
// data points, dMin and dMax.
func coverage(dMin, dMax, lMin, lMax float64) float64 {
	r := 0.1 * (dMax - dMin)
	max := dMax - lMax
	min := dMin - lMin
	return 1 - 0.5*(max*max+min*min)/(r*r)
}

// maxCoverage returns the maximum coverage achievable for the
// data range.
func maxCoverage(dMin, dMax, span float64) float64 {
	r := dMax - dMin
	if span <= r {
		return 1
	}
	h := 0.5 * (span - r)
	r *= 0.1
	return 1 - (h*h)/(r*r)
}

// density returns the density score, which measures the goodness of
// the labelling density compared to the want target.
func density(have, want int, dMin, dMax, lMin, lMax float64) float64 {
	rho := float64(have-1) / (lMax - lMin)
	rhot := float64(want-1) / (math.Max(lMax, dMax) - math.Min(dMin, lMin))
	if d := rho / rhot; d >= 1 {
		return 2 - d
	}
	return 2 - rhot/rho
}

// maxDensity returns the maximum density score achievable for have
// and want.
func maxDensity(have, want int) float64 {
	if have < want {
		return 1
	}
	return 2 - float64(have-1)/float64(want-1)
}

// weights is a helper type to calculate a labelling scheme's
// total score.
type weights struct {
	simplicity, coverage, density, legibility float64
}

// score returns the combined score for simplicity s, coverage c, and
// density d, with the constant unit legibility score folded in.
func (w *weights) score(s, c, d float64) float64 {
	return w.simplicity*s + w.coverage*c + w.density*d + w.legibility
}

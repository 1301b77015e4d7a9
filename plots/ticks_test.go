// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicksNiceRange(t *testing.T) {
	ticks := Ticks(0, 100, 5)
	require.Len(t, ticks, 5)
	want := []float64{0, 25, 50, 75, 100}
	labels := []string{"0", "25", "50", "75", "100"}
	for i, tk := range ticks {
		assert.InDelta(t, want[i], tk.Value, 1e-9)
		assert.Equal(t, labels[i], tk.Label)
	}
}

func TestTicksFractional(t *testing.T) {
	ticks := Ticks(0, 1, 6)
	require.Len(t, ticks, 6)
	labels := []string{"0.0", "0.2", "0.4", "0.6", "0.8", "1.0"}
	for i, tk := range ticks {
		assert.InDelta(t, 0.2*float64(i), tk.Value, 1e-9)
		assert.Equal(t, labels[i], tk.Label)
	}
}

func TestTicksProperties(t *testing.T) {
	cases := []struct {
		min, max float64
		want     int
	}{
		{-3.7, 18.2, 6},
		{0.001, 0.0042, 4},
		{-1e6, 1e6, 8},
		{2.5, 2.5 + 1e-9, 5},
	}
	for _, c := range cases {
		ticks := Ticks(c.min, c.max, c.want)
		require.GreaterOrEqual(t, len(ticks), 2, "range %g..%g", c.min, c.max)
		step := ticks[1].Value - ticks[0].Value
		require.Greater(t, step, 0.0)
		for i, tk := range ticks {
			if i > 0 {
				d := tk.Value - ticks[i-1].Value
				assert.InDelta(t, step, d, 1e-9*step, "uneven spacing in %g..%g", c.min, c.max)
			}
			parsed, err := strconv.ParseFloat(tk.Label, 64)
			require.NoError(t, err)
			assert.InDelta(t, tk.Value, parsed, step*1e-3+1e-12, "label %q for %g", tk.Label, tk.Value)
		}
	}
}

func TestTicksDegenerate(t *testing.T) {
	ticks := Ticks(5, 5, 3)
	require.Len(t, ticks, 1)
	assert.Equal(t, 5.0, ticks[0].Value)
	assert.Equal(t, "5", ticks[0].Label)

	ticks = Ticks(0, 0, 2)
	require.Len(t, ticks, 1)
	assert.Equal(t, "0", ticks[0].Label)
}

func TestTicksInvalid(t *testing.T) {
	assert.Nil(t, Ticks(math.NaN(), 1, 5))
	assert.Nil(t, Ticks(0, math.Inf(1), 5))

	// reversed bounds are swapped
	assert.Equal(t, Ticks(0, 100, 5), Ticks(100, 0, 5))
}

/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package scalar_test

import (
	"math"
	"testing"

	"github.com/fentec-project/antithetic/sample"
	"github.com/fentec-project/antithetic/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestUniform(t *testing.T) {
	s, err := scalar.NewUniform(-2, 4, sample.Antithetic)
	require.NoError(t, err)
	assert.Equal(t, -2.0, s.Low())
	assert.Equal(t, 4.0, s.High())
	assert.Equal(t, 1.0, s.Mean())
	assert.InDelta(t, 3.0, s.Variance(), 1e-12)
	assert.InDelta(t, math.Sqrt(3), s.StdDev(), 1e-12)

	dist := distuv.Uniform{Min: -2, Max: 4}
	testMarginal(t, s, dist.CDF, paramBounds{
		meanLow:  0.95,
		meanHigh: 1.05,
		varLow:   2.9,
		varHigh:  3.1,
	})
	testDeterminism(t, s)

	x, xp, err := s.SampleN(sample.NewSeeded(3), numPairs)
	require.NoError(t, err)
	for i := range x {
		// x + x' = low + high for antithetic pairs
		assert.InDelta(t, 2.0, x[i]+xp[i], 1e-12)
	}
	assert.InDelta(t, -1, stat.Correlation(x, xp, nil), 1e-9)

	common, err := scalar.NewUniform(-2, 4, sample.Common)
	require.NoError(t, err)
	testCommon(t, common)
}

func TestUniform_Boundary(t *testing.T) {
	s, err := scalar.NewUniform(5, 7, sample.Antithetic)
	require.NoError(t, err)

	x, xp, err := s.Sample(&replay{0})
	require.NoError(t, err)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 7.0, xp)
}

func TestNewUniform_Invalid(t *testing.T) {
	var tests = []struct {
		name string
		low  float64
		high float64
	}{
		{name: "Reversed bounds", low: 5, high: 2},
		{name: "Degenerate", low: 2, high: 2},
		{name: "NaN bound", low: math.NaN(), high: 2},
		{name: "Infinite bound", low: 0, high: math.Inf(1)},
		{name: "Overflowing width", low: -1e308, high: 1e308},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := scalar.NewUniform(test.low, test.high, sample.Common)
			assert.ErrorIs(t, err, scalar.ErrInvalidParameter)
			assert.Nil(t, s)
		})
	}
}

func TestUniform_WideBounds(t *testing.T) {
	s, err := scalar.NewUniform(-1e300, 1e300, sample.Antithetic)
	require.NoError(t, err)
	assert.False(t, math.IsInf(s.StdDev(), 0))

	var tests = []struct {
		name   string
		stream sample.Stream
	}{
		{name: "Seeded stream", stream: sample.NewSeeded(1)},
		{name: "Zero variate", stream: &replay{0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			x, xp, err := s.Sample(test.stream)
			require.NoError(t, err)
			for _, v := range []float64{x, xp} {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "got %v", v)
				assert.True(t, v >= -1e300 && v <= 1e300, "got %v", v)
			}
		})
	}
}

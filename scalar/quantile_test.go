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

package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestQuantiles_OutOfRange(t *testing.T) {
	var tests = []struct {
		name string
		q    QuantileFunc
	}{
		{name: "Normal", q: normalQuantile(distuv.Normal{Mu: 0, Sigma: 1})},
		{name: "Uniform", q: uniformQuantile(distuv.Uniform{Min: 0, Max: 1})},
		{name: "Exponential", q: exponentialQuantile(1)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, p := range []float64{-1e-12, 1 + 1e-12, math.NaN(), math.Inf(-1)} {
				_, err := test.q(p)
				assert.ErrorIs(t, err, ErrProbabilityRange)
			}
			_, err := test.q(0.5)
			assert.NoError(t, err)
		})
	}
}

func TestExponentialQuantile_SmallProbabilities(t *testing.T) {
	q := exponentialQuantile(1)
	for _, p := range []float64{1e-20, 1e-300, 5e-324} {
		x, err := q(p)
		assert.NoError(t, err)
		// -ln(1-p) = p for tiny p; 1-p would round to 1 and give 0
		assert.InEpsilon(t, p, x, 1e-12)
	}
}

func TestBoundary(t *testing.T) {
	assert.Equal(t, 0.0, BoundaryLimit.apply(0))
	assert.Equal(t, 1.0, BoundaryLimit.apply(1))
	assert.True(t, BoundaryClamp.apply(0) > 0)
	assert.True(t, BoundaryClamp.apply(1) < 1)
	assert.Equal(t, 0.25, BoundaryClamp.apply(0.25))

	assert.NoError(t, BoundaryClamp.validate())
	assert.ErrorIs(t, Boundary(-1).validate(), ErrInvalidParameter)

	_, _, err := Transform(0.5, 0.5, nil, BoundaryLimit)
	assert.Equal(t, ErrNilQuantile, err)
}

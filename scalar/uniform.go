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

	"github.com/fentec-project/antithetic/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform samples pairs from the continuous uniform
// distribution on [low, high].
type Uniform struct {
	*inverse
	dist distuv.Uniform
}

// NewUniform returns an instance of Uniform sampler.
// It returns an error unless low < high, both are finite and
// so is the width high - low.
func NewUniform(low, high float64, c sample.Correlation) (*Uniform, error) {
	if math.IsInf(low, 0) || math.IsInf(high, 0) || !(low < high) || math.IsInf(high-low, 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "bounds [%v, %v]", low, high)
	}

	dist := distuv.Uniform{Min: low, Max: high}
	inv, err := newInverse(uniformQuantile(dist), c, BoundaryLimit)
	if err != nil {
		return nil, err
	}

	return &Uniform{
		inverse: inv,
		dist:    dist,
	}, nil
}

func uniformQuantile(dist distuv.Uniform) QuantileFunc {
	width := dist.Max - dist.Min
	return func(p float64) (float64, error) {
		if err := checkProbability(p); err != nil {
			return 0, err
		}
		return dist.Min + width*p, nil
	}
}

// Low returns the lower bound of the support.
func (u *Uniform) Low() float64 {
	return u.dist.Min
}

// High returns the upper bound of the support.
func (u *Uniform) High() float64 {
	return u.dist.Max
}

// Mean returns the mean of the distribution.
func (u *Uniform) Mean() float64 {
	return u.dist.Mean()
}

// StdDev returns the standard deviation of the distribution.
func (u *Uniform) StdDev() float64 {
	return (u.dist.Max - u.dist.Min) / math.Sqrt(12)
}

// Variance returns the variance of the distribution. It is +Inf
// when the width of the support exceeds about 1e154, as the true
// value is not representable.
func (u *Uniform) Variance() float64 {
	return u.dist.Variance()
}

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

// Exponential samples pairs from the exponential
// distribution with the given rate.
type Exponential struct {
	*inverse
	dist distuv.Exponential
}

// NewExponential returns an instance of Exponential sampler.
// It returns an error unless rate is a finite positive number.
func NewExponential(rate float64, c sample.Correlation) (*Exponential, error) {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "rate %v", rate)
	}

	dist := distuv.Exponential{Rate: rate}
	inv, err := newInverse(exponentialQuantile(dist.Rate), c, BoundaryLimit)
	if err != nil {
		return nil, err
	}

	return &Exponential{
		inverse: inv,
		dist:    dist,
	}, nil
}

// exponentialQuantile returns -ln(1-p)/rate. Log1p keeps the
// result accurate for small p, where 1-p would round to 1.
func exponentialQuantile(rate float64) QuantileFunc {
	return func(p float64) (float64, error) {
		if err := checkProbability(p); err != nil {
			return 0, err
		}
		switch p {
		case 0:
			return 0, nil
		case 1:
			return math.Inf(1), nil
		}
		return -math.Log1p(-p) / rate, nil
	}
}

// Rate returns the rate parameter of the distribution.
func (e *Exponential) Rate() float64 {
	return e.dist.Rate
}

// Mean returns the mean of the distribution, 1/rate.
func (e *Exponential) Mean() float64 {
	return e.dist.Mean()
}

// StdDev returns the standard deviation of the distribution, 1/rate.
func (e *Exponential) StdDev() float64 {
	return e.dist.StdDev()
}

// Variance returns the variance of the distribution.
func (e *Exponential) Variance() float64 {
	return e.dist.Variance()
}

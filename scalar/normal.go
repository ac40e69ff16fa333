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

// Normal samples pairs from the Normal (Gaussian) distribution
// with mean mu and standard deviation sigma.
type Normal struct {
	*inverse
	dist distuv.Normal
}

// NewNormal returns an instance of Normal sampler.
// It returns an error if mean is not finite or std is not
// a finite positive number.
func NewNormal(mean, std float64, c sample.Correlation) (*Normal, error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "mean %v", mean)
	}
	if !(std > 0) || math.IsInf(std, 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "standard deviation %v", std)
	}

	dist := distuv.Normal{Mu: mean, Sigma: std}
	inv, err := newInverse(normalQuantile(dist), c, BoundaryLimit)
	if err != nil {
		return nil, err
	}

	return &Normal{
		inverse: inv,
		dist:    dist,
	}, nil
}

// normalQuantile returns mu + sigma * Phi^-1(p), with
// Phi^-1(0) = -Inf and Phi^-1(1) = +Inf.
func normalQuantile(dist distuv.Normal) QuantileFunc {
	return func(p float64) (float64, error) {
		if err := checkProbability(p); err != nil {
			return 0, err
		}
		switch p {
		case 0:
			return math.Inf(-1), nil
		case 1:
			return math.Inf(1), nil
		}
		return dist.Mu + dist.Sigma*distuv.UnitNormal.Quantile(p), nil
	}
}

// Mean returns the mean of the distribution.
func (n *Normal) Mean() float64 {
	return n.dist.Mean()
}

// StdDev returns the standard deviation of the distribution.
func (n *Normal) StdDev() float64 {
	return n.dist.StdDev()
}

// Variance returns the variance of the distribution.
func (n *Normal) Variance() float64 {
	return n.dist.Variance()
}

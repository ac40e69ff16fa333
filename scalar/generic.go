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
	"github.com/fentec-project/antithetic/sample"
)

// Generic samples pairs through a caller supplied quantile function.
// The function is trusted to be the inverse CDF of the desired
// distribution; its errors and panics reach the caller as they are.
type Generic struct {
	*inverse
}

// NewGeneric returns an instance of Generic sampler.
// The boundary policy b decides whether q may receive the
// probabilities 0 and 1. It returns an error if q is nil.
func NewGeneric(q QuantileFunc, c sample.Correlation, b Boundary) (*Generic, error) {
	if q == nil {
		return nil, ErrNilQuantile
	}
	inv, err := newInverse(q, c, b)
	if err != nil {
		return nil, err
	}

	return &Generic{inverse: inv}, nil
}

// NewGenericFunc is like NewGeneric for quantile functions that
// cannot fail, such as the Quantile methods of gonum's distuv
// distributions.
func NewGenericFunc(f func(p float64) float64, c sample.Correlation, b Boundary) (*Generic, error) {
	if f == nil {
		return nil, ErrNilQuantile
	}

	return NewGeneric(func(p float64) (float64, error) {
		return f(p), nil
	}, c, b)
}

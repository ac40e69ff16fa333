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

	"github.com/fentec-project/antithetic/internal"
	"github.com/pkg/errors"
)

var (
	ErrInvalidParameter  = internal.InvalidParameter
	ErrProbabilityRange  = internal.ProbabilityRange
	ErrNilQuantile       = internal.NilQuantile
	ErrUndefinedQuantile = internal.UndefinedQuantile
)

// QuantileFunc maps a probability p to the value x with CDF(x) = p.
// It must be non-decreasing on (0, 1).
type QuantileFunc func(p float64) (float64, error)

// Boundary decides what a quantile function receives when
// a uniform variate lands exactly on 0 or 1.
type Boundary int

const (
	// BoundaryLimit passes 0 and 1 through unchanged. The built-in
	// quantiles map them to the limits of the support, which may be
	// infinite.
	BoundaryLimit Boundary = iota
	// BoundaryClamp moves 0 and 1 to the nearest probabilities
	// inside the open interval (0, 1).
	BoundaryClamp
)

var (
	minOpen = math.Nextafter(0, 1)
	maxOpen = math.Nextafter(1, 0)
)

func (b Boundary) validate() error {
	if b != BoundaryLimit && b != BoundaryClamp {
		return errors.Wrapf(ErrInvalidParameter, "unknown boundary policy %d", int(b))
	}
	return nil
}

func (b Boundary) apply(p float64) float64 {
	if b == BoundaryClamp {
		return math.Min(math.Max(p, minOpen), maxOpen)
	}
	return p
}

// checkProbability fails for NaN and anything outside of [0, 1].
func checkProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return errors.Wrapf(ErrProbabilityRange, "got %v", p)
	}
	return nil
}

// Transform maps the uniform pair (u, up) to (q(u), q(up)), after
// applying the boundary policy b to both probabilities. Probabilities
// outside of [0, 1] are rejected. An error returned by q is passed
// through unmodified, while a NaN returned by q fails with
// ErrUndefinedQuantile. If u and up are equal q is evaluated once, so
// common pairs always give identical outputs.
func Transform(u, up float64, q QuantileFunc, b Boundary) (float64, float64, error) {
	if q == nil {
		return 0, 0, ErrNilQuantile
	}
	if err := checkProbability(u); err != nil {
		return 0, 0, err
	}
	if err := checkProbability(up); err != nil {
		return 0, 0, err
	}

	x, err := evaluate(q, b.apply(u))
	if err != nil {
		return 0, 0, err
	}
	if up == u {
		return x, x, nil
	}
	xp, err := evaluate(q, b.apply(up))
	if err != nil {
		return 0, 0, err
	}

	return x, xp, nil
}

func evaluate(q QuantileFunc, p float64) (float64, error) {
	x, err := q(p)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) {
		return 0, errors.Wrapf(ErrUndefinedQuantile, "at p = %v", p)
	}
	return x, nil
}

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

package sample

import (
	"math"
	"strconv"
	"strings"

	"github.com/fentec-project/antithetic/internal"
	"github.com/pkg/errors"
)

var (
	ErrInvalidCorrelation = internal.InvalidCorrelation
	ErrInvalidCount       = internal.InvalidCount
	ErrInvalidUniform     = internal.InvalidUniform
)

// Correlation selects how the second member of a pair
// is derived from the first one. The zero value is not
// a valid Correlation.
type Correlation int

const (
	// Common pairs use the same variate twice, u' = u.
	Common Correlation = iota + 1
	// Antithetic pairs use the reflected variate, u' = 1 - u.
	Antithetic
)

// ParseCorrelation returns the Correlation named by s,
// either "common" or "antithetic".
func ParseCorrelation(s string) (Correlation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "common":
		return Common, nil
	case "antithetic":
		return Antithetic, nil
	}
	return 0, errors.Wrapf(ErrInvalidCorrelation, "unknown mode %q", s)
}

// Validate returns an error if c is not Common or Antithetic.
func (c Correlation) Validate() error {
	if c != Common && c != Antithetic {
		return errors.Wrapf(ErrInvalidCorrelation, "got %d", int(c))
	}
	return nil
}

func (c Correlation) String() string {
	switch c {
	case Common:
		return "common"
	case Antithetic:
		return "antithetic"
	}
	return "Correlation(" + strconv.Itoa(int(c)) + ")"
}

// partner derives the second member of a pair from u.
func (c Correlation) partner(u float64) float64 {
	if c == Antithetic {
		return 1 - u
	}
	return u
}

// Draw takes one variate u from s and returns the pair (u, u').
// The stream is advanced by exactly one step.
func Draw(s Stream, c Correlation) (float64, float64, error) {
	if err := c.Validate(); err != nil {
		return 0, 0, err
	}
	u, err := s.Uniform()
	if err != nil {
		return 0, 0, err
	}
	if err := checkUniform(u); err != nil {
		return 0, 0, err
	}

	return u, c.partner(u), nil
}

// DrawN takes n consecutive variates from s and pairs each of
// them with its partner. Both members at index i are derived
// from the same variate. The stream is advanced by exactly n steps.
func DrawN(s Stream, n int, c Correlation) ([]float64, []float64, error) {
	if n < 1 {
		return nil, nil, errors.Wrapf(ErrInvalidCount, "need at least 1 draw, got %d", n)
	}
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	us := make([]float64, n)
	if err := s.Uniforms(us); err != nil {
		return nil, nil, err
	}
	ups := make([]float64, n)
	for i, u := range us {
		if err := checkUniform(u); err != nil {
			return nil, nil, err
		}
		ups[i] = c.partner(u)
	}

	return us, ups, nil
}

// checkUniform rejects values a Stream must never produce.
func checkUniform(u float64) error {
	if math.IsNaN(u) || u < 0 || u >= 1 {
		return errors.Wrapf(ErrInvalidUniform, "%v is outside of [0, 1)", u)
	}
	return nil
}

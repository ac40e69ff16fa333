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
	"github.com/fentec-project/antithetic/data"
	"github.com/fentec-project/antithetic/sample"
)

// Sampler samples pairs (x, x') of random variables sharing
// one marginal distribution.
type Sampler interface {
	// Sample draws a single pair, advancing s by one step.
	Sample(s sample.Stream) (float64, float64, error)
	// SampleN draws n pairs, advancing s by n steps. The i-th
	// elements of both vectors form a pair.
	SampleN(s sample.Stream, n int) (data.Vector, data.Vector, error)
}

// inverse implements Sampler for any quantile function.
// It is embedded by all distribution samplers of this package.
type inverse struct {
	quantile QuantileFunc
	corr     sample.Correlation
	boundary Boundary
}

func newInverse(q QuantileFunc, c sample.Correlation, b Boundary) (*inverse, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	return &inverse{
		quantile: q,
		corr:     c,
		boundary: b,
	}, nil
}

// Correlation returns the correlation mode of the pairs.
func (s *inverse) Correlation() sample.Correlation {
	return s.corr
}

// Sample draws a single pair (x, x').
func (s *inverse) Sample(st sample.Stream) (float64, float64, error) {
	u, up, err := sample.Draw(st, s.corr)
	if err != nil {
		return 0, 0, err
	}

	return Transform(u, up, s.quantile, s.boundary)
}

// SampleN draws n pairs. On failure no values are returned.
func (s *inverse) SampleN(st sample.Stream, n int) (data.Vector, data.Vector, error) {
	us, ups, err := sample.DrawN(st, n, s.corr)
	if err != nil {
		return nil, nil, err
	}

	x := make(data.Vector, n)
	xp := make(data.Vector, n)
	for i := range us {
		x[i], xp[i], err = Transform(us[i], ups[i], s.quantile, s.boundary)
		if err != nil {
			return nil, nil, err
		}
	}

	return x, xp, nil
}

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

// Package estimate implements Monte Carlo estimators on top of
// the pair samplers of package scalar.
//
// Antithetic averages f over both members of antithetic pairs,
// Crude spends the same number of evaluations of f on independent
// draws, and Difference compares two functions under common random
// variables. VarianceReduction relates two estimates of equal cost.
package estimate

import (
	"math"

	"github.com/fentec-project/antithetic/data"
	"github.com/fentec-project/antithetic/internal"
	"github.com/fentec-project/antithetic/sample"
	"github.com/fentec-project/antithetic/scalar"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	gstat "gonum.org/v1/gonum/stat"
)

// Result is a Monte Carlo estimate built from N
// independent observations.
type Result struct {
	// Mean is the estimate itself.
	Mean float64
	// Variance is the sample variance of a single observation.
	Variance float64
	// StdErr is the standard error of Mean.
	StdErr float64
	N      int
}

// Correlation returns the Pearson correlation between x and y.
// It returns an error if the vectors differ in length or hold
// fewer than two elements.
func Correlation(x, y data.Vector) (float64, error) {
	if len(x) != len(y) {
		return 0, errors.Wrapf(internal.InvalidLength, "correlation of %d and %d elements", len(x), len(y))
	}
	if len(x) < 2 {
		return 0, errors.Wrapf(internal.InvalidLength, "correlation needs at least 2 elements, got %d", len(x))
	}

	return gstat.Correlation(x, y, nil), nil
}

// Antithetic estimates E[f(X)] from n pairs of s. Each observation
// is the average of f over both members of a pair.
func Antithetic(s scalar.Sampler, st sample.Stream, n int, f func(float64) float64) (Result, error) {
	x, xp, err := s.SampleN(st, n)
	if err != nil {
		return Result{}, err
	}

	obs, err := x.Apply(f).Add(xp.Apply(f))
	if err != nil {
		return Result{}, err
	}

	return summarize(obs.MulScalar(0.5))
}

// Crude estimates E[f(X)] with the budget of Antithetic, evaluating
// f on the first members of 2n pairs of s. The pairs should not be
// common ones, as those would make the estimate no better than n draws.
func Crude(s scalar.Sampler, st sample.Stream, n int, f func(float64) float64) (Result, error) {
	if n < 1 {
		return Result{}, errors.Wrapf(internal.InvalidCount, "need at least 1 pair, got %d", n)
	}
	x, _, err := s.SampleN(st, 2*n)
	if err != nil {
		return Result{}, err
	}

	return summarize(x.Apply(f))
}

// Difference estimates E[f(X) - g(X')] from n pairs of s. With common
// pairs both systems see the same random input, which removes the
// shared part of their variance from the comparison.
func Difference(s scalar.Sampler, st sample.Stream, n int, f, g func(float64) float64) (Result, error) {
	x, xp, err := s.SampleN(st, n)
	if err != nil {
		return Result{}, err
	}

	obs, err := x.Apply(f).Sub(xp.Apply(g))
	if err != nil {
		return Result{}, err
	}

	return summarize(obs)
}

// VarianceReduction returns the ratio of the squared standard errors
// of base and improved. A value above 1 means improved is more precise.
// If improved has zero standard error the ratio is +Inf, or 1 when
// base has zero standard error too.
func VarianceReduction(base, improved Result) float64 {
	if improved.StdErr == 0 {
		if base.StdErr == 0 {
			return 1
		}
		return math.Inf(1)
	}
	return (base.StdErr * base.StdErr) / (improved.StdErr * improved.StdErr)
}

func summarize(obs data.Vector) (Result, error) {
	if len(obs) < 2 {
		return Result{}, errors.Wrapf(internal.InvalidCount, "need at least 2 observations, got %d", len(obs))
	}

	me, err := stats.Mean(stats.Float64Data(obs))
	if err != nil {
		return Result{}, err
	}
	v, err := stats.SampleVariance(stats.Float64Data(obs))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Mean:     me,
		Variance: v,
		StdErr:   math.Sqrt(v / float64(len(obs))),
		N:        len(obs),
	}, nil
}

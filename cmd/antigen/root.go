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

package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fentec-project/antithetic/data"
	"github.com/fentec-project/antithetic/estimate"
	"github.com/fentec-project/antithetic/sample"
	"github.com/fentec-project/antithetic/scalar"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	dist        string
	mean        float64
	std         float64
	low         float64
	high        float64
	rate        float64
	correlation string
	seed        uint64
	seeded      bool
	keyed       bool
	pairs       int
	summary     bool
}

func newRootCmd(log *zap.Logger) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "antigen",
		Short: "Generate common or antithetic pairs of random variables",
		Long: `antigen writes pairs (x, x') sharing a marginal distribution as CSV rows.
With --correlation antithetic the members of a pair are negatively correlated,
with --correlation common they are equal.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.seeded = cmd.Flags().Changed("seed")
			return run(o, cmd.OutOrStdout(), log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.dist, "dist", "normal", "marginal distribution: normal, uniform or exponential")
	flags.Float64Var(&o.mean, "mean", 0, "mean of the normal distribution")
	flags.Float64Var(&o.std, "std", 1, "standard deviation of the normal distribution")
	flags.Float64Var(&o.low, "low", 0, "lower bound of the uniform distribution")
	flags.Float64Var(&o.high, "high", 1, "upper bound of the uniform distribution")
	flags.Float64Var(&o.rate, "rate", 1, "rate of the exponential distribution")
	flags.StringVar(&o.correlation, "correlation", "antithetic", "pair correlation: common or antithetic")
	flags.Uint64Var(&o.seed, "seed", 0, "seed of the random stream; without it the output is not reproducible")
	flags.BoolVar(&o.keyed, "keyed", false, "derive a salsa20 keyed stream from the seed")
	flags.IntVar(&o.pairs, "pairs", 10, "number of pairs to generate")
	flags.BoolVar(&o.summary, "summary", false, "log the sample mean, variance and within-pair correlation")

	return cmd
}

func (o *options) sampler() (scalar.Sampler, error) {
	c, err := sample.ParseCorrelation(o.correlation)
	if err != nil {
		return nil, err
	}

	switch o.dist {
	case "normal":
		return scalar.NewNormal(o.mean, o.std, c)
	case "uniform":
		return scalar.NewUniform(o.low, o.high, c)
	case "exponential":
		return scalar.NewExponential(o.rate, c)
	}
	return nil, errors.Errorf("unknown distribution %q", o.dist)
}

func (o *options) stream() sample.Stream {
	switch {
	case o.seeded && o.keyed:
		return sample.NewKeyed(sample.KeyFromSeed(o.seed))
	case o.seeded:
		return sample.NewSeeded(o.seed)
	}
	return sample.NewEntropy()
}

func run(o *options, out io.Writer, log *zap.Logger) error {
	if o.keyed && !o.seeded {
		return errors.New("--keyed requires --seed")
	}
	s, err := o.sampler()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	log.Debug("generating pairs",
		zap.String("dist", o.dist),
		zap.String("correlation", o.correlation),
		zap.Int("pairs", o.pairs),
		zap.Bool("seeded", o.seeded),
		zap.Bool("keyed", o.keyed))

	x, xp, err := s.SampleN(o.stream(), o.pairs)
	if err != nil {
		return errors.Wrap(err, "sampling failed")
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"x", "x_prime"}); err != nil {
		return err
	}
	for i := range x {
		row := []string{
			strconv.FormatFloat(x[i], 'g', -1, 64),
			strconv.FormatFloat(xp[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if o.summary {
		return logSummary(log, x, xp)
	}
	return nil
}

func logSummary(log *zap.Logger, x, xp data.Vector) error {
	pooled := append(x.Copy(), xp...)
	me, err := stats.Mean(stats.Float64Data(pooled))
	if err != nil {
		return err
	}
	fields := []zap.Field{
		zap.Int("pairs", len(x)),
		zap.Float64("mean", me),
	}
	if v, err := stats.SampleVariance(stats.Float64Data(pooled)); err == nil {
		fields = append(fields, zap.Float64("variance", v))
	}
	// correlation is undefined for a single pair
	if rho, err := estimate.Correlation(x, xp); err == nil {
		fields = append(fields, zap.Float64("correlation", rho))
	}
	log.Info("summary", fields...)

	return nil
}

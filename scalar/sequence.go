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
	"github.com/pkg/errors"
)

// Arrangement decides how the pairs of a sequence are laid out.
type Arrangement int

const (
	// Zip places every value next to its partner:
	// x0, x0', x1, x1', ...
	Zip Arrangement = iota
	// Concatenate places all first members before
	// all second members: x0, x1, ..., x0', x1', ...
	Concatenate
	// Shuffle randomly permutes the concatenated sequence.
	Shuffle
	// ShuffleInterior randomly permutes the values of complete pairs
	// only. For odd lengths the unpaired value stays last.
	ShuffleInterior
)

// Sequence returns n values of sampler s built from ceil(n/2) pairs,
// laid out according to a. For odd n the partner of the last pair is
// discarded. Shuffle takes n-1 and ShuffleInterior 2*(n/2)-1 additional
// variates from st after the pairs have been drawn.
func Sequence(s Sampler, st sample.Stream, n int, a Arrangement) (data.Vector, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "sequence length %d", n)
	}
	if a < Zip || a > ShuffleInterior {
		return nil, errors.Wrapf(ErrInvalidParameter, "unknown arrangement %d", int(a))
	}

	pairs := (n + 1) / 2
	x, xp, err := s.SampleN(st, pairs)
	if err != nil {
		return nil, err
	}

	seq := make(data.Vector, 0, 2*pairs)
	if a == Zip {
		for i := range x {
			seq = append(seq, x[i], xp[i])
		}
		return seq[:n], nil
	}

	if a == ShuffleInterior {
		complete := n / 2
		seq = append(seq, x[:complete]...)
		seq = append(seq, xp[:complete]...)
		if err := shuffle(seq, st); err != nil {
			return nil, err
		}
		if n%2 == 1 {
			seq = append(seq, x[complete])
		}
		return seq, nil
	}

	seq = append(seq, x...)
	seq = append(seq, xp...)
	if n%2 == 1 {
		seq = seq[:n]
	}
	if a == Shuffle {
		if err := shuffle(seq, st); err != nil {
			return nil, err
		}
	}

	return seq, nil
}

// shuffle permutes v in place with the Fisher-Yates algorithm.
func shuffle(v data.Vector, st sample.Stream) error {
	if len(v) < 2 {
		return nil
	}
	us, _, err := sample.DrawN(st, len(v)-1, sample.Common)
	if err != nil {
		return err
	}
	for i := len(v) - 1; i > 0; i-- {
		j := int(us[len(v)-1-i] * float64(i+1))
		if j > i {
			j = i
		}
		v[i], v[j] = v[j], v[i]
	}

	return nil
}

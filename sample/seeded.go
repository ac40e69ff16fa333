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
	"golang.org/x/exp/rand"
)

// Seeded is a reproducible Stream backed by a pseudo-random
// source. Each variate consumes exactly one Uint64 of the source.
type Seeded struct {
	src rand.Source
}

// NewSeeded returns a Seeded stream over a PCG source
// initialized with seed. Two streams with the same seed
// produce the same sequence of variates.
func NewSeeded(seed uint64) *Seeded {
	return FromSource(rand.NewSource(seed))
}

// FromSource returns a Seeded stream that draws from src.
// The stream does not reseed src.
func FromSource(src rand.Source) *Seeded {
	return &Seeded{src: src}
}

// Uniform returns the next variate on [0, 1).
func (s *Seeded) Uniform() (float64, error) {
	return float53(s.src.Uint64()), nil
}

// Uniforms fills dst with the next len(dst) variates.
func (s *Seeded) Uniforms(dst []float64) error {
	for i := range dst {
		dst[i] = float53(s.src.Uint64())
	}
	return nil
}

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
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Entropy is a Stream reading from a cryptographically secure
// source of randomness. It cannot be seeded, so its output is
// not reproducible.
type Entropy struct {
	r io.Reader
}

// NewEntropy returns an Entropy stream reading from crypto/rand.
func NewEntropy() *Entropy {
	return &Entropy{r: rand.Reader}
}

// Uniform returns the next variate on [0, 1).
func (e *Entropy) Uniform() (float64, error) {
	var b [8]byte
	if _, err := io.ReadFull(e.r, b[:]); err != nil {
		return 0, errors.Wrap(err, "error while sampling")
	}
	return float53(binary.LittleEndian.Uint64(b[:])), nil
}

// Uniforms fills dst with the next len(dst) variates.
// The content of dst is unspecified if an error is returned.
func (e *Entropy) Uniforms(dst []float64) error {
	b := make([]byte, 8*len(dst))
	if _, err := io.ReadFull(e.r, b); err != nil {
		return errors.Wrap(err, "error while sampling")
	}
	for i := range dst {
		dst[i] = float53(binary.LittleEndian.Uint64(b[8*i:]))
	}
	return nil
}

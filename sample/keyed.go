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
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/salsa20"
)

// keystream block size of salsa20
const blockSize = 64

// Keyed is a deterministic Stream whose variates are read from
// the salsa20 keystream of a 256-bit key. The index of every
// 64-byte block is used as its nonce, so the stream never repeats
// a block for a given key.
type Keyed struct {
	key   *[32]byte
	block uint64
	buf   [blockSize]byte
	off   int
}

// NewKeyed returns an instance of the Keyed stream.
// The key determines the whole sequence of variates.
func NewKeyed(key *[32]byte) *Keyed {
	k := *key
	return &Keyed{
		key: &k,
		off: blockSize,
	}
}

// KeyFromSeed derives a 32-byte key from an integer seed,
// for callers that want a Keyed stream seeded like NewSeeded.
func KeyFromSeed(seed uint64) *[32]byte {
	var in [8]byte
	binary.LittleEndian.PutUint64(in[:], seed)
	key := blake2b.Sum256(in[:])
	return &key
}

// Uniform returns the next variate on [0, 1).
func (k *Keyed) Uniform() (float64, error) {
	return float53(k.next()), nil
}

// Uniforms fills dst with the next len(dst) variates.
func (k *Keyed) Uniforms(dst []float64) error {
	for i := range dst {
		dst[i] = float53(k.next())
	}
	return nil
}

// next returns the next 8 bytes of the keystream,
// generating a new block when the buffer is used up.
func (k *Keyed) next() uint64 {
	if k.off == blockSize {
		var in [blockSize]byte // input is initialized to zeros
		nonce := make([]byte, 8)
		binary.LittleEndian.PutUint64(nonce, k.block)

		salsa20.XORKeyStream(k.buf[:], in[:], nonce, k.key)
		k.block++
		k.off = 0
	}
	w := binary.LittleEndian.Uint64(k.buf[k.off:])
	k.off += 8
	return w
}

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

// Stream is a source of uniform random variates on [0, 1).
// Successive variates are expected to be independent.
type Stream interface {
	// Uniform returns the next variate of the stream.
	Uniform() (float64, error)
	// Uniforms fills dst with the next len(dst) variates,
	// advancing the stream by exactly len(dst) steps.
	Uniforms(dst []float64) error
}

// float53 maps a 64-bit word to [0, 1) using its top 53 bits,
// so every representable value is a multiple of 2^-53.
func float53(w uint64) float64 {
	return float64(w>>11) * 0x1.0p-53
}

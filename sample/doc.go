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

// Package sample includes sources of uniform random variates
// and the pairing of those variates into common or antithetic pairs.
//
// Package sample provides the Stream interface
// along with different implementations of this interface.
// A Stream is always owned by the caller: functions in this module
// only borrow it for the duration of a call and never keep a reference.
// Streams are not safe for concurrent use, so a Stream shared between
// goroutines must be guarded by the caller.
//
// Draw and DrawN turn a Stream into correlated uniform pairs (u, u'),
// where u' = u for Common and u' = 1 - u for Antithetic pairs.
// These pairs are the input of the inverse-CDF samplers in package scalar.
package sample

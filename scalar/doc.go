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

// Package scalar includes samplers of common and antithetic pairs
// of scalar random variables with a prescribed marginal distribution.
//
// Every sampler draws a correlated uniform pair (u, u') with
// package sample and maps both members through the quantile
// function (inverse CDF) of its distribution:
//
//	x  = Q(u)
//	x' = Q(u')
//
// Since Q is non-decreasing, antithetic uniforms (u' = 1 - u) give
// negatively correlated outputs and common uniforms (u' = u) give
// identical outputs, while both x and x' keep the marginal distribution
// of Q. Normal, Uniform and Exponential supply closed-form quantiles;
// Generic accepts any caller supplied quantile function.
//
// Parameters are validated by the constructors, so a sampler that was
// constructed successfully fails only when its stream or its quantile
// function fails.
package scalar

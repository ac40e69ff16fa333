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

package internal

import (
	"errors"
	"fmt"
)

var invalidStr = "is not valid"

var InvalidCorrelation = errors.New(fmt.Sprintf("correlation mode %s", invalidStr))
var InvalidCount = errors.New(fmt.Sprintf("number of draws %s", invalidStr))
var InvalidUniform = errors.New(fmt.Sprintf("uniform variate %s", invalidStr))
var InvalidParameter = errors.New(fmt.Sprintf("distribution parameter %s", invalidStr))
var InvalidLength = errors.New(fmt.Sprintf("vector length %s", invalidStr))

var ProbabilityRange = errors.New("probability is outside of [0, 1]")
var NilQuantile = errors.New("quantile function is nil")
var UndefinedQuantile = errors.New("quantile function returned NaN")

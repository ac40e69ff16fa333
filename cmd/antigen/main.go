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

// Command antigen writes common or antithetic pairs of random
// variables as CSV to standard output.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(outputs ...string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if os.Getenv("ANTIGEN_DEBUG") != "" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if len(outputs) > 0 {
		cfg.OutputPaths = outputs
	}
	return cfg.Build()
}

// buildLogger reports a failure to build the logger on w
// and returns nil in that case.
func buildLogger(w io.Writer, outputs ...string) *zap.Logger {
	log, err := newLogger(outputs...)
	if err != nil {
		fmt.Fprintln(w, "antigen: cannot build logger:", err)
		return nil
	}
	return log
}

func main() {
	log := buildLogger(os.Stderr)
	if log == nil {
		os.Exit(2)
	}
	defer log.Sync() //nolint:errcheck

	if err := newRootCmd(log).Execute(); err != nil {
		log.Error("antigen failed", zap.Error(err))
		os.Exit(1)
	}
}

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
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func execute(t *testing.T, args ...string) ([][]string, *observer.ObservedLogs, error) {
	core, logs := observer.New(zap.DebugLevel)
	cmd := newRootCmd(zap.New(core))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return nil, logs, err
	}

	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	return rows, logs, nil
}

func TestRoot(t *testing.T) {
	var tests = []struct {
		name string
		args []string
	}{
		{name: "Normal", args: []string{"--dist", "normal", "--mean", "2", "--std", "3"}},
		{name: "Uniform", args: []string{"--dist", "uniform", "--low", "-1", "--high", "1"}},
		{name: "Exponential", args: []string{"--dist", "exponential", "--rate", "4"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			args := append([]string{"--seed", "5", "--pairs", "20", "--correlation", "common"}, test.args...)
			rows, _, err := execute(t, args...)
			require.NoError(t, err)
			require.Len(t, rows, 21)
			assert.Equal(t, []string{"x", "x_prime"}, rows[0])
			for _, row := range rows[1:] {
				assert.Equal(t, row[0], row[1], "common pairs should be equal")
			}

			again, _, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, rows, again, "seeded output should be reproducible")
		})
	}
}

func TestRoot_Antithetic(t *testing.T) {
	rows, logs, err := execute(t, "--dist", "uniform", "--seed", "1", "--keyed", "--pairs", "50", "--summary")
	require.NoError(t, err)
	require.Len(t, rows, 51)
	for _, row := range rows[1:] {
		x, err := strconv.ParseFloat(row[0], 64)
		require.NoError(t, err)
		xp, err := strconv.ParseFloat(row[1], 64)
		require.NoError(t, err)
		assert.InDelta(t, 1, x+xp, 1e-12)
	}

	summary := logs.FilterMessage("summary").All()
	require.Len(t, summary, 1)
	fields := summary[0].ContextMap()
	assert.InDelta(t, -1, fields["correlation"], 1e-9)
	assert.InDelta(t, 0.5, fields["mean"], 1e-12)
}

func TestRoot_Errors(t *testing.T) {
	var tests = []struct {
		name string
		args []string
	}{
		{name: "Reversed bounds", args: []string{"--dist", "uniform", "--low", "5", "--high", "2"}},
		{name: "Negative std", args: []string{"--std", "-1"}},
		{name: "Unknown distribution", args: []string{"--dist", "cauchy"}},
		{name: "Unknown correlation", args: []string{"--correlation", "negative"}},
		{name: "No pairs", args: []string{"--seed", "1", "--pairs", "0"}},
		{name: "Keyed without seed", args: []string{"--keyed"}},
		{name: "Positional argument", args: []string{"extra"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := execute(t, test.args...)
			assert.Error(t, err)
		})
	}
}

func TestBuildLogger(t *testing.T) {
	var tests = []struct {
		name    string
		outputs []string
		fails   bool
	}{
		{name: "Default outputs"},
		{name: "Unwritable output", outputs: []string{"/nonexistent/antigen/antigen.log"}, fails: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stderr bytes.Buffer
			log := buildLogger(&stderr, test.outputs...)
			if test.fails {
				assert.Nil(t, log)
				assert.Contains(t, stderr.String(), "cannot build logger")
				return
			}
			require.NotNil(t, log)
			assert.Empty(t, stderr.String())
		})
	}
}

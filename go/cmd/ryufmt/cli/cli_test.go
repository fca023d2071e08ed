/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runFs(t, afero.NewMemMapFs(), stdin, args...)
}

func runFs(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRoot(fs)
	var out bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name: "general",
			args: []string{"format", "--", "0.1", "100", "1e21", "0.0001", "-0", "NaN"},
			want: "0.1\n100.0\n1.0E21\n1.0E-4\n-0.0\nNaN\n",
		},
		{
			name: "scientific with custom marker",
			args: []string{"--notation", "scientific", "--exponent-char", "e", "format", "123.456", "1e-21"},
			want: "1.23456e2\n1.0e-21\n",
		},
		{
			name: "window",
			args: []string{"--low", "-10", "--high", "10", "format", "0.0001", "1e10"},
			want: "0.0001\n1.0E10\n",
		},
		{
			name: "float32 decimal",
			args: []string{"--float32", "--notation", "decimal", "--precision", "4", "format", "0.333333333", "0"},
			want: "0.3333\n0.0000\n",
		},
		{
			name: "float32 shortest",
			args: []string{"--float32", "format", "0.1", "16777216"},
			want: "0.1\n1.6777216E7\n",
		},
		{
			name: "max length",
			args: []string{"--notation", "Decimal", "--max-length", "4", "format", "--", "123.456", "-1e400"},
			want: "123\n-Inf\n",
		},
		{
			name: "negative values",
			args: []string{"--notation", "scientific", "format", "--", "-0.5", "-1e-7"},
			want: "-5.0E-1\n-1.0E-7\n",
		},
		{
			name:  "negative values on stdin",
			stdin: "-0.5\n-inf\n",
			args:  []string{"format"},
			want:  "-0.5\n-Infinity\n",
		},
		{
			name:  "stdin",
			stdin: "1\n\n  2.5  \n1e7\n",
			args:  []string{"format"},
			want:  "1.0\n2.5\n1.0E7\n",
		},
		{
			name: "bits",
			args: []string{"bits", "0x3fb999999999999a", "7FF0000000000000", "1"},
			want: "0.1\nInfinity\n4.9E-324\n",
		},
		{
			name: "float32 bits",
			args: []string{"--float32", "bits", "3eaaaaab", "0x00000001"},
			want: "0.33333334\n1.4E-45\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatErrors(t *testing.T) {
	cases := []struct {
		args []string
		err  string
	}{
		{[]string{"--notation", "engineering", "format", "1"}, "unknown notation"},
		{[]string{"--exponent-char", "ee", "format", "1"}, "single ASCII character"},
		{[]string{"--low", "5", "--high", "5", "format", "1"}, "low must be smaller than high"},
		{[]string{"format", "one"}, `invalid value "one"`},
		{[]string{"bits", "0xzz"}, "invalid 64-bit pattern"},
		{[]string{"--float32", "bits", "0x3ff0000000000000"}, "invalid 32-bit pattern"},
		{[]string{"--config", "/etc/missing.yaml", "format", "1"}, "reading config"},
		{[]string{"--log-fmt", "xml", "format", "1"}, "invalid log-fmt"},
		{[]string{"check", "extra"}, "unknown command"},
		{[]string{"format", "-0.5"}, "unknown shorthand flag"},
	}
	for _, tc := range cases {
		t.Run(tc.err, func(t *testing.T) {
			_, err := run(t, "", tc.args...)
			require.ErrorContains(t, err, tc.err)
		})
	}
}

func TestConfigAndEnv(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/ryufmt.yaml", []byte("notation: decimal\nmax-length: 4\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/etc/ryufmt.json", []byte(`{"low": -10, "high": 10}`), 0o644))

	got, err := runFs(t, fs, "", "--config", "/etc/ryufmt.yaml", "format", "123.456")
	require.NoError(t, err)
	assert.Equal(t, "123\n", got)

	got, err = runFs(t, fs, "", "--config", "/etc/ryufmt.json", "format", "1e-9")
	require.NoError(t, err)
	assert.Equal(t, "0.000000001\n", got)

	// flags win over the config file
	got, err = runFs(t, fs, "", "--config", "/etc/ryufmt.yaml", "--notation", "general", "format", "123.456")
	require.NoError(t, err)
	assert.Equal(t, "123.456\n", got)

	t.Setenv("RYUFMT_NOTATION", "scientific")
	t.Setenv("RYUFMT_EXPONENT_CHAR", "e")
	got, err = run(t, "", "format", "0.1")
	require.NoError(t, err)
	assert.Equal(t, "1.0e-1\n", got)

	// the environment wins over the config file
	got, err = runFs(t, fs, "", "--config", "/etc/ryufmt.yaml", "format", "123.456")
	require.NoError(t, err)
	assert.Equal(t, "1.23456e2\n", got)
}

func TestExplain(t *testing.T) {
	got, err := run(t, "", "explain", "1")
	require.NoError(t, err)
	assert.Contains(t, got, "1 (float64)")
	assert.Contains(t, got, "0x3ff0000000000000")
	assert.Contains(t, got, "neg=false m=4503599627370496 e2=-52")
	assert.Contains(t, got, "even=true")
	assert.Contains(t, got, "1 (1 digits, exponent 0)")
	assert.Contains(t, got, "1.0")

	got, err = run(t, "", "--float32", "--notation", "decimal", "--max-length", "4", "explain", "--", "-inf")
	require.NoError(t, err)
	assert.Contains(t, got, "0xff800000")
	assert.Contains(t, got, "-Infinity")
	assert.Contains(t, got, "-Inf")
	assert.NotContains(t, got, "interval")
}

func TestExplainOutputs(t *testing.T) {
	got, err := run(t, "", "explain", "--output", "json", "0.1", "nan")
	require.NoError(t, err)
	var exps []explanation
	require.NoError(t, json.Unmarshal([]byte(got), &exps))
	require.Len(t, exps, 2)
	assert.Equal(t, "0.1", exps[0].Value)
	assert.Equal(t, 64, exps[0].BitSize)
	assert.Equal(t, stage{"bits", "0x3fb999999999999a"}, exps[0].Stages[0])
	assert.Equal(t, stage{"output", "0.1"}, exps[0].Stages[len(exps[0].Stages)-1])
	assert.Equal(t, []stage{{"bits", "0x7ff8000000000001"}, {"literal", "NaN"}, {"output", "NaN"}}, exps[1].Stages)

	got, err = run(t, "", "--float32", "explain", "-o", "yaml", "1e-45")
	require.NoError(t, err)
	assert.Contains(t, got, "- bitSize: 32")
	assert.Contains(t, got, "stage: bits")
	assert.Contains(t, got, "0x00000001")
	assert.Contains(t, got, "1.4E-45")

	got, err = run(t, "", "explain", "-o", "tree", "2.5")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "2.5 (float64)\n"), got)
	assert.Contains(t, got, "── bits: 0x4004000000000000")
	assert.Contains(t, got, "── output: 2.5")

	_, err = run(t, "", "explain", "-o", "xml", "1")
	require.ErrorContains(t, err, "unknown output")
}

func TestCheck(t *testing.T) {
	got, err := run(t, "", "check", "--count", "3000", "--workers", "3")
	require.NoError(t, err)
	assert.Equal(t, "checked 3,000 float64 patterns: 0 mismatches\n", got)

	got, err = run(t, "", "--float32", "check", "--count", "3000", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, "checked 3,000 float32 patterns: 0 mismatches\n", got)
}

func TestCheckPattern(t *testing.T) {
	for _, bits := range []uint64{0, 1, 0x3fb999999999999a, 0x7ff0000000000000, 0x7ff8000000000001, 0x7fefffffffffffff} {
		assert.Empty(t, checkPattern(bits, 64), "%#x", bits)
	}
	for _, bits := range []uint64{0, 1, 0x3eaaaaab, 0x7f800000, 0x7fc00000, 0x7f7fffff} {
		assert.Empty(t, checkPattern(bits, 32), "%#x", bits)
	}
	assert.Equal(t, "parsed back as 0x3ff0000000000000", roundTrip(0x3ff0000000000001, 64, "1.0"))
	a, b := 0.1, 0.2
	assert.Equal(t, 17, shortestLen(a+b, 64))
	assert.Equal(t, 1, shortestLen(-1e21, 64))
}

func TestCheckPatternsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := checkPatterns(ctx, 64, 10, 2, 1)
	require.ErrorIs(t, err, context.Canceled)
}

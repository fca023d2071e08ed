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

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		err  bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: " INFO ", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "Error", want: slog.LevelError},
		{in: "trace", err: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseLevel(tc.in)
			if tc.err {
				require.ErrorContains(t, err, "invalid log-level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	h, err := newHandler("json", &buf, nil)
	require.NoError(t, err)
	assert.IsType(t, &slog.JSONHandler{}, h)

	h, err = newHandler("logfmt", &buf, nil)
	require.NoError(t, err)
	assert.IsType(t, &slog.TextHandler{}, h)

	_, err = newHandler("xml", &buf, nil)
	require.ErrorContains(t, err, "invalid log-fmt")
}

func TestTextHandler(t *testing.T) {
	var buf bytes.Buffer
	h, err := newHandler("text", &buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("dropped")
	logger.Warn("mismatch", "bits", "0x1")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "mismatch")
	assert.Contains(t, out, "bits=0x1")
	assert.NotContains(t, out, "\x1b[", "no color outside a terminal")
	assert.False(t, isTerminal(&buf))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	restore := SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	InfoS("dropped")
	WarnS("formatted", "value", "1.0E-4")
	assert.False(t, Enabled(slog.LevelDebug))
	assert.True(t, Enabled(slog.LevelError))
	restore()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "formatted", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "1.0E-4", rec["value"])
	assert.False(t, structured.Load())
}

func TestSetLoggerNil(t *testing.T) {
	restore := SetLogger(nil)
	restore()
	assert.False(t, structured.Load())
}

func TestInit(t *testing.T) {
	prevDefault := slog.Default()
	prevOutput := output
	t.Cleanup(func() {
		slog.SetDefault(prevDefault)
		structured.Store(false)
		output = prevOutput
	})

	var buf bytes.Buffer
	output = &buf

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	// Without --log-fmt glog stays in charge.
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, Init(fs))
	assert.False(t, structured.Load())

	require.NoError(t, fs.Parse([]string{"--log-fmt", "logfmt", "--log-level", "debug"}))
	require.NoError(t, Init(fs))
	assert.True(t, structured.Load())

	DebugS("selected", "digits", 17)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=selected")
	assert.Contains(t, buf.String(), "digits=17")
	assert.Contains(t, buf.String(), "log_test.go")
}

func TestInitInvalid(t *testing.T) {
	t.Cleanup(func() {
		logFormat, logLevel = "json", "info"
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-fmt", "yaml"}))
	require.ErrorContains(t, Init(fs), "invalid log-fmt")

	require.NoError(t, fs.Parse([]string{"--log-fmt", "json", "--log-level", "loud"}))
	require.ErrorContains(t, Init(fs), "invalid log-level")
	assert.False(t, structured.Load())
}

func TestRegisterFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	RegisterFlags(pflag.NewFlagSet("other", pflag.ContinueOnError))

	for _, name := range []string{"log_dir", "logtostderr", "v", "log-fmt", "log-level", "log-rotate-max-size"} {
		assert.NotNil(t, fs.Lookup(name), name)
	}
	assert.Equal(t, "v", fs.Lookup("v").Shorthand)
}

func TestMaxSizeValue(t *testing.T) {
	prev := atomic.LoadUint64(&glog.MaxSize)
	t.Cleanup(func() { atomic.StoreUint64(&glog.MaxSize, prev) })

	var v maxSizeValue
	cases := []struct {
		in   string
		want uint64
	}{
		{"1024", 1024},
		{"512MB", 512_000_000},
		{"1GiB", 1 << 30},
	}
	for _, tc := range cases {
		require.NoError(t, v.Set(tc.in), tc.in)
		assert.Equal(t, tc.want, atomic.LoadUint64(&glog.MaxSize), tc.in)
		assert.Equal(t, strconv.FormatUint(tc.want, 10), v.String())
	}
	assert.Equal(t, "bytes", v.Type())
	assert.ErrorContains(t, v.Set("-1"), `invalid size "-1"`)
	assert.Error(t, v.Set("lots"))
}

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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

var (
	logFormat string
	logLevel  string

	// structured is set once Init or SetLogger installs a slog logger.
	// Until then every call goes to glog.
	structured atomic.Bool

	// output is where structured records are written.
	output io.Writer = os.Stderr
)

// Init switches to structured logging when --log-fmt was given on fs.
// Without it, glog stays in charge and Init is a no-op.
func Init(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	if f := fs.Lookup("log-fmt"); f == nil || !f.Changed {
		return nil
	}

	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	handler, err := newHandler(logFormat, output, &slog.HandlerOptions{AddSource: true, Level: level})
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))
	structured.Store(true)
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", s)
}

func newHandler(format string, w io.Writer, opts *slog.HandlerOptions) (slog.Handler, error) {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "logfmt":
		return slog.NewTextHandler(w, opts), nil
	case "text":
		return tint.NewHandler(w, &tint.Options{
			AddSource: opts.AddSource,
			Level:     opts.Level,
			NoColor:   !isTerminal(w),
		}), nil
	}
	return nil, fmt.Errorf("invalid log-fmt %q: expected json, logfmt or text", format)
}

// isTerminal reports whether w is a terminal, in which case text output
// is colored.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Enabled reports whether a record at level would be emitted. Under glog,
// debug records need -v 1 or higher.
func Enabled(level slog.Level) bool {
	if structured.Load() {
		return slog.Default().Enabled(context.Background(), level)
	}
	if level < slog.LevelInfo {
		return bool(glog.V(1))
	}
	return true
}

// emit skips itself and the exported wrapper when attributing the caller.
func emit(level slog.Level, msg string, args ...any) {
	if !structured.Load() {
		toGlog(level, msg, args...)
		return
	}

	logger := slog.Default()
	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = logger.Handler().Handle(ctx, r)
}

func toGlog(level slog.Level, msg string, args ...any) {
	const depth = 2
	line := append([]any{msg}, args...)
	switch {
	case level >= slog.LevelError:
		glog.ErrorDepth(depth, line...)
	case level >= slog.LevelWarn:
		glog.WarningDepth(depth, line...)
	case level >= slog.LevelInfo:
		glog.InfoDepth(depth, line...)
	default:
		if glog.V(1) {
			glog.InfoDepth(depth, line...)
		}
	}
}

// InfoS logs msg with key/value args at the Info level.
func InfoS(msg string, args ...any) { emit(slog.LevelInfo, msg, args...) }

// WarnS logs msg with key/value args at the Warn level.
func WarnS(msg string, args ...any) { emit(slog.LevelWarn, msg, args...) }

// ErrorS logs msg with key/value args at the Error level.
func ErrorS(msg string, args ...any) { emit(slog.LevelError, msg, args...) }

// DebugS logs msg with key/value args at the Debug level.
func DebugS(msg string, args ...any) { emit(slog.LevelDebug, msg, args...) }

// SetLogger routes structured calls to logger until the returned function
// is called. Used by tests.
func SetLogger(logger *slog.Logger) func() {
	if logger == nil {
		return func() {}
	}
	prevStructured := structured.Load()
	prevDefault := slog.Default()

	slog.SetDefault(logger)
	structured.Store(true)
	return func() {
		slog.SetDefault(prevDefault)
		structured.Store(prevStructured)
	}
}

/*
Copyright 2019 The Vitess Authors.

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

// Package log provides a thin adapter around glog with optional structured
// logging via slog.
//
// By default, it uses glog and its flags. Structured logging is enabled only
// when the --log-fmt flag is explicitly set.
package log

import (
	goflag "flag"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"vitess.io/floatfmt/go/flagutil"
)

// Flush writes out buffered glog output. Structured handlers are
// unbuffered.
func Flush() {
	glog.Flush()
}

// glogFlags are the flags glog registers on the standard library flag set
// that we expose on our pflag sets. log_dir keeps its underscore, see
// flagutil.NormalizeUnderscoresToDashes.
var glogFlags = []string{"logtostderr", "alsologtostderr", "stderrthreshold", "v", "vmodule", "log_dir"}

// RegisterFlags installs log flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	for _, name := range glogFlags {
		if f := goflag.CommandLine.Lookup(name); f != nil && fs.Lookup(name) == nil {
			fs.AddGoFlag(f)
		}
	}

	flagutil.SetFlagVar(fs, maxSizeValue{}, "log-rotate-max-size", "file size at which glog rotates, as bytes or with a unit like 512MB or 1GiB")

	// Structured logging flags.
	flagutil.SetFlagStringVar(fs, &logFormat, "log-fmt", "json", "format for structured logging output: json, logfmt or text")
	flagutil.SetFlagStringVar(fs, &logLevel, "log-level", "info", "minimum structured logging level: info, warn, debug, or error")
}

// maxSizeValue reads and writes glog.MaxSize, which glog loads atomically.
type maxSizeValue struct{}

func (maxSizeValue) Set(s string) error {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", s, err)
	}
	atomic.StoreUint64(&glog.MaxSize, n)
	return nil
}

func (maxSizeValue) String() string {
	return strconv.FormatUint(atomic.LoadUint64(&glog.MaxSize), 10)
}

func (maxSizeValue) Type() string {
	return "bytes"
}

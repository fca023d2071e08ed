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

// pow5gen writes go/ryu/pow5_tables.go, or with --verify checks that the
// file on disk is up to date.
package main

import (
	"os"

	"github.com/spf13/pflag"

	"vitess.io/floatfmt/go/flagutil"
	"vitess.io/floatfmt/go/log"
	"vitess.io/floatfmt/go/tools/pow5gen"
)

func main() {
	var (
		out     = "pow5_tables.go"
		pkg     = "ryu"
		verify  bool
		exitErr = func(msg string, err error) {
			log.ErrorS(msg, "err", err)
			log.Flush()
			os.Exit(1)
		}
	)

	fs := pflag.CommandLine
	fs.SetNormalizeFunc(flagutil.NormalizeUnderscoresToDashes)
	flagutil.SetFlagStringVar(fs, &out, "out", out, "path of the generated file")
	flagutil.SetFlagStringVar(fs, &pkg, "package", pkg, "package name of the generated file")
	flagutil.SetFlagBoolVar(fs, &verify, "verify", false, "ensure that the generated file is up to date instead of writing it")
	log.RegisterFlags(fs)
	pflag.Parse()
	if err := log.Init(fs); err != nil {
		exitErr("invalid logging flags", err)
	}
	defer log.Flush()

	file, err := pow5gen.Generate(pkg, pow5gen.Tables)
	if err != nil {
		exitErr("failed to generate tables", err)
	}

	if verify {
		if err := pow5gen.VerifyFileOnDisk(out, file); err != nil {
			exitErr("tables out of date", err)
		}
		log.InfoS("tables OK", "path", out, "tables", len(pow5gen.Tables))
		return
	}

	if err := file.Save(out); err != nil {
		exitErr("failed to save tables", err)
	}
	log.InfoS("saved tables", "path", out)
}

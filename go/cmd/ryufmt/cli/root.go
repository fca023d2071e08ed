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

// Package cli holds the cobra command tree of ryufmt.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vitess.io/floatfmt/go/flagutil"
	"vitess.io/floatfmt/go/log"
	"vitess.io/floatfmt/go/ryu"
)

// EnvPrefix is prepended to every config key when read from the
// environment, e.g. RYUFMT_MAX_LENGTH.
const EnvPrefix = "RYUFMT"

// settings are the persistent flags shared by every subcommand. Values are
// read back through v so that the config file and the environment apply.
type settings struct {
	v  *viper.Viper
	fs afero.Fs

	configFile   string
	notation     string
	low, high    int
	exponentChar flagutil.ByteValue
	maxLength    int
	precision    int
	float32      bool
}

// New returns the ryufmt root command.
func New() *cobra.Command {
	return newRoot(afero.NewOsFs())
}

// newRoot builds the command tree reading config files from fs.
func newRoot(fs afero.Fs) *cobra.Command {
	s := &settings{
		v:            viper.New(),
		fs:           fs,
		notation:     ryu.General.String(),
		low:          ryu.DefaultWindow.Low,
		high:         ryu.DefaultWindow.High,
		exponentChar: 'E',
		precision:    -1,
	}

	root := &cobra.Command{
		Use:   "ryufmt",
		Short: "ryufmt prints floating-point values as their shortest round-trip decimal text.",
		Long: "`ryufmt` formats IEEE-754 values with the Ryu algorithm.\n\n" +
			"Values come from the command line or, when none are given, from stdin, one per line.\n" +
			"Negative values on the command line must follow --, as in `ryufmt format -- -0.5`.\n" +
			"Settings can also be given in a config file (--config) or as " + EnvPrefix + "_* environment variables.",
		SilenceUsage:      true,
		PersistentPreRunE: s.preRun,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}

	flags := root.PersistentFlags()
	flags.SetNormalizeFunc(flagutil.NormalizeUnderscoresToDashes)
	flagutil.SetFlagStringVar(flags, &s.configFile, "config", "", "path to a YAML, JSON or TOML config file")
	flagutil.SetFlagStringVar(flags, &s.notation, "notation", s.notation, "output notation: general, scientific or decimal")
	flagutil.SetFlagIntVar(flags, &s.low, "low", s.low, "lowest decimal exponent general notation prints in plain form")
	flagutil.SetFlagIntVar(flags, &s.high, "high", s.high, "decimal exponent at which general notation switches to scientific")
	flagutil.SetFlagVar(flags, &s.exponentChar, "exponent-char", "character between mantissa and exponent in scientific form")
	flagutil.SetFlagIntVar(flags, &s.maxLength, "max-length", 0, "truncate decimal output to this many bytes (0 for no limit)")
	flagutil.SetFlagIntVar(flags, &s.precision, "precision", s.precision, "digits after the point in decimal notation (-1 for shortest)")
	flagutil.SetFlagBoolVar(flags, &s.float32, "float32", false, "treat values as float32")
	log.RegisterFlags(flags)

	root.AddCommand(
		newFormatCmd(s),
		newBitsCmd(s),
		newExplainCmd(s),
		newCheckCmd(s),
	)
	return root
}

func (s *settings) preRun(cmd *cobra.Command, args []string) error {
	if err := log.Init(cmd.Flags()); err != nil {
		return err
	}

	s.v.SetEnvPrefix(EnvPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.v.AutomaticEnv()
	if err := s.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if s.configFile != "" {
		s.v.SetFs(s.fs)
		s.v.SetConfigFile(s.configFile)
		if err := s.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", s.configFile, err)
		}
		log.DebugS("loaded config", "path", s.v.ConfigFileUsed())
	}
	return nil
}

// options resolves the formatting options from flags, config and
// environment, in viper's order of precedence.
func (s *settings) options() (ryu.Options, error) {
	name := strings.ToLower(strings.TrimSpace(s.v.GetString("notation")))
	notation, ok := ryu.ParseNotation(name)
	if !ok {
		return ryu.Options{}, fmt.Errorf("unknown notation %q: expected general, scientific or decimal", name)
	}

	var ch flagutil.ByteValue
	if err := ch.Set(s.v.GetString("exponent-char")); err != nil {
		return ryu.Options{}, fmt.Errorf("exponent-char: %w", err)
	}

	w := ryu.Window{Low: s.v.GetInt("low"), High: s.v.GetInt("high")}
	if w.Low >= w.High {
		return ryu.Options{}, errors.New("low must be smaller than high")
	}

	return ryu.Options{
		Notation:     notation,
		Window:       w,
		ExponentChar: byte(ch),
		MaxLength:    s.v.GetInt("max-length"),
		Precision:    s.v.GetInt("precision"),
	}, nil
}

func (s *settings) bitSize() int {
	if s.v.GetBool("float32") {
		return 32
	}
	return 64
}

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
	"github.com/spf13/cobra"

	"vitess.io/floatfmt/go/log"
	"vitess.io/floatfmt/go/ryu"
)

func newFormatCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "format [value ...]",
		Short: "Format decimal values.",
		Long:  "Format decimal values. Negative values must follow -- so they are not read as flags.",
		Example: "ryufmt format 0.1 1e21\n" +
			"ryufmt format -- -0.5 -1e-7\n" +
			"ryufmt --notation decimal --precision 4 --float32 format 0.333333333",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := s.options()
			if err != nil {
				return err
			}
			vals, err := inputs(cmd, args)
			if err != nil {
				return err
			}

			bitSize := s.bitSize()
			out := make([]string, 0, len(vals))
			for _, v := range vals {
				f, err := parseValue(v, bitSize)
				if err != nil {
					return err
				}
				if bitSize == 32 {
					out = append(out, ryu.FormatFloat32(float32(f), opts))
				} else {
					out = append(out, ryu.FormatFloat64(f, opts))
				}
			}
			log.DebugS("formatted values", "count", len(out), "notation", opts.Notation.String())
			return writeLines(cmd.OutOrStdout(), out)
		},
	}
}

func newBitsCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:     "bits [pattern ...]",
		Short:   "Format raw IEEE-754 bit patterns given in hexadecimal.",
		Example: "ryufmt bits 0x3fb999999999999a\nryufmt --float32 bits 7f800000",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := s.options()
			if err != nil {
				return err
			}
			vals, err := inputs(cmd, args)
			if err != nil {
				return err
			}

			bitSize := s.bitSize()
			out := make([]string, 0, len(vals))
			for _, v := range vals {
				b, err := parseBits(v, bitSize)
				if err != nil {
					return err
				}
				if bitSize == 32 {
					out = append(out, ryu.FormatBits32(uint32(b), opts))
				} else {
					out = append(out, ryu.FormatBits64(b, opts))
				}
			}
			return writeLines(cmd.OutOrStdout(), out)
		},
	}
}

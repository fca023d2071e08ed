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
	"cmp"
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"vitess.io/floatfmt/go/flagutil"
	"vitess.io/floatfmt/go/log"
	"vitess.io/floatfmt/go/ryu"
)

// mismatch is a pattern whose formatted text failed a check.
type mismatch struct {
	Bits     uint64
	Notation ryu.Notation
	Output   string
	Reason   string
}

var checkModes = []ryu.Options{
	{},
	ryu.ScientificOptions(),
	ryu.DecimalOptions(0, -1),
}

func newCheckCmd(s *settings) *cobra.Command {
	var (
		count   = 100000
		seed    = 1
		workers = runtime.GOMAXPROCS(0)
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Round-trip random bit patterns through every notation and report mismatches.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bitSize := s.bitSize()
			bad, err := checkPatterns(cmd.Context(), bitSize, count, max(workers, 1), uint64(seed))
			if err != nil {
				return err
			}
			for _, m := range bad {
				log.WarnS("mismatch", "bits", fmt.Sprintf("%#x", m.Bits), "notation", m.Notation.String(), "output", m.Output, "reason", m.Reason)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "checked %s float%d patterns: %s mismatches\n",
				humanize.Comma(int64(count)), bitSize, humanize.Comma(int64(len(bad)))); err != nil {
				return err
			}
			if len(bad) > 0 {
				return fmt.Errorf("%d mismatches", len(bad))
			}
			return nil
		},
	}
	flagutil.SetFlagIntVar(cmd.Flags(), &count, "count", count, "number of random patterns to check")
	flagutil.SetFlagIntVar(cmd.Flags(), &seed, "seed", seed, "seed of the pattern generator")
	flagutil.SetFlagIntVar(cmd.Flags(), &workers, "workers", workers, "number of concurrent workers")
	return cmd
}

// checkPatterns checks count pseudo-random patterns split across workers.
// The patterns depend only on seed and workers.
func checkPatterns(ctx context.Context, bitSize, count, workers int, seed uint64) ([]mismatch, error) {
	var (
		mu  sync.Mutex
		bad []mismatch
	)
	g, ctx := errgroup.WithContext(ctx)
	per := (count + workers - 1) / workers
	for w := range workers {
		n := min(per, count-w*per)
		if n <= 0 {
			break
		}
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, uint64(w)))
			for i := range n {
				if i%1024 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				bits := rng.Uint64()
				if bitSize == 32 {
					bits &= math.MaxUint32
				}
				if ms := checkPattern(bits, bitSize); len(ms) > 0 {
					mu.Lock()
					bad = append(bad, ms...)
					mu.Unlock()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.SortFunc(bad, func(a, b mismatch) int {
		return cmp.Or(cmp.Compare(a.Bits, b.Bits), cmp.Compare(a.Notation, b.Notation))
	})
	return bad, nil
}

// checkPattern formats bits in every notation, parses the text back and
// compares the digit count with strconv's shortest form.
func checkPattern(bits uint64, bitSize int) []mismatch {
	var bad []mismatch
	for _, opts := range checkModes {
		var out string
		if bitSize == 32 {
			out = ryu.FormatBits32(uint32(bits), opts)
		} else {
			out = ryu.FormatBits64(bits, opts)
		}
		if reason := roundTrip(bits, bitSize, out); reason != "" {
			bad = append(bad, mismatch{Bits: bits, Notation: opts.Notation, Output: out, Reason: reason})
		}
	}

	var (
		f      float64
		digits ryu.Digits
		ok     bool
	)
	if bitSize == 32 {
		f32 := math.Float32frombits(uint32(bits))
		f = float64(f32)
		digits, ok = ryu.ShortestDigits32(f32)
	} else {
		f = math.Float64frombits(bits)
		digits, ok = ryu.ShortestDigits64(f)
	}
	if ok {
		if want := shortestLen(f, bitSize); digits.Length != want {
			bad = append(bad, mismatch{
				Bits:   bits,
				Output: strconv.FormatUint(digits.Mantissa, 10),
				Reason: fmt.Sprintf("%d digits, shortest has %d", digits.Length, want),
			})
		}
	}
	return bad
}

func roundTrip(bits uint64, bitSize int, out string) string {
	back, err := strconv.ParseFloat(out, bitSize)
	if err != nil {
		return err.Error()
	}
	var got uint64
	if bitSize == 32 {
		if math.IsNaN(back) && math.IsNaN(float64(math.Float32frombits(uint32(bits)))) {
			return ""
		}
		got = uint64(math.Float32bits(float32(back)))
	} else {
		if math.IsNaN(back) && math.IsNaN(math.Float64frombits(bits)) {
			return ""
		}
		got = math.Float64bits(back)
	}
	if got != bits {
		return fmt.Sprintf("parsed back as %#x", got)
	}
	return ""
}

// shortestLen counts the significant digits of strconv's shortest form.
func shortestLen(f float64, bitSize int) int {
	s := strconv.FormatFloat(math.Abs(f), 'e', -1, bitSize)
	mant, _, _ := strings.Cut(s, "e")
	return len(strings.Replace(mant, ".", "", 1))
}

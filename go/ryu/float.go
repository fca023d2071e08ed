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

package ryu

import (
	"math"

	"vitess.io/floatfmt/go/ryu/pow5"
)

//go:generate go run vitess.io/floatfmt/go/tools/pow5gen/main --out pow5_tables.go

// floatInfo describes one IEEE-754 binary format together with the
// power-of-five tables sized for its exponent range.
type floatInfo struct {
	mantbits uint
	expbits  uint
	bias     int

	pow5bits    int
	pow5invbits int
	pow5        []pow5.Entry
	pow5inv     []pow5.Entry
}

var float64info = floatInfo{
	mantbits:    52,
	expbits:     11,
	bias:        1023,
	pow5bits:    121,
	pow5invbits: 122,
	pow5:        float64Pow5[:],
	pow5inv:     float64Pow5Inv[:],
}

var float32info = floatInfo{
	mantbits:    23,
	expbits:     8,
	bias:        127,
	pow5bits:    61,
	pow5invbits: 59,
	pow5:        float32Pow5[:],
	pow5inv:     float32Pow5Inv[:],
}

// minExp is the binary exponent shared by subnormals and the smallest normal
// binade.
func (info *floatInfo) minExp() int {
	return 1 - info.bias - int(info.mantbits)
}

// class partitions bit patterns into the ones that go through the pipeline
// and the ones that map straight to a literal.
type class int

const (
	classFinite class = iota
	classZero
	classInf
	classNaN
)

// Decoded is a finite non-zero value as Mantissa * 2^Exponent. Mantissa
// carries the implicit leading bit for normal numbers.
type Decoded struct {
	Neg      bool
	Mantissa uint64
	Exponent int
}

func (info *floatInfo) decode(bits uint64) (Decoded, class) {
	neg := bits>>(info.expbits+info.mantbits) != 0
	maxExp := int(1)<<info.expbits - 1
	exp := int(bits>>info.mantbits) & maxExp
	mant := bits & (uint64(1)<<info.mantbits - 1)

	switch exp {
	case maxExp:
		if mant != 0 {
			return Decoded{}, classNaN
		}
		return Decoded{Neg: neg}, classInf
	case 0:
		if mant == 0 {
			return Decoded{Neg: neg}, classZero
		}
		// subnormal: no implicit bit, exponent pinned to the smallest binade
		return Decoded{Neg: neg, Mantissa: mant, Exponent: info.minExp()}, classFinite
	default:
		mant |= uint64(1) << info.mantbits
		return Decoded{Neg: neg, Mantissa: mant, Exponent: exp - info.bias - int(info.mantbits)}, classFinite
	}
}

const (
	literalNaN     = "NaN"
	literalInf     = "Infinity"
	literalNegInf  = "-Infinity"
	literalZero    = "0.0"
	literalNegZero = "-0.0"
)

func literal(d Decoded, c class) string {
	switch c {
	case classNaN:
		return literalNaN
	case classInf:
		if d.Neg {
			return literalNegInf
		}
		return literalInf
	case classZero:
		if d.Neg {
			return literalNegZero
		}
		return literalZero
	}
	return ""
}

// Interval is the rounding interval of a decoded value, scaled by 4 so that
// both half-ULP bounds are integers. Even reports whether the mantissa is
// even, in which case both bounds round back to the value and are inclusive.
type Interval struct {
	MV, MP, MM uint64
	Exponent   int
	Even       bool
}

func (info *floatInfo) interval(d Decoded) Interval {
	mv := 4 * d.Mantissa
	// At the bottom of a binade the gap to the predecessor is half the gap to
	// the successor, except in the lowest binade where subnormal spacing is
	// the same on both sides.
	mmShift := uint64(1)
	if d.Mantissa == uint64(1)<<info.mantbits && d.Exponent > info.minExp() {
		mmShift = 0
	}
	return Interval{
		MV:       mv,
		MP:       mv + 2,
		MM:       mv - 1 - mmShift,
		Exponent: d.Exponent - 2,
		Even:     d.Mantissa&1 == 0,
	}
}

func float64bits(f float64) uint64 { return math.Float64bits(f) }

func float32bits(f float32) uint64 { return uint64(math.Float32bits(f)) }

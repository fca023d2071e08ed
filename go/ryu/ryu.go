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

// Package ryu formats IEEE-754 binary floating-point values as the shortest
// decimal string that parses back to the same bits, using the Ryū algorithm.
//
// See Ulf Adams, "Ryū: Fast Float-to-String Conversion" (doi:10.1145/3192366.3192369).
//
// A conversion runs Decoder -> Interval -> Decimal converter -> shortest digit
// selection -> notation formatting. Every stage works on call-local values;
// the only shared state is the read-only power-of-five tables, so all
// functions are safe for concurrent use. Callers that want to reuse memory
// pass their own buffer to the Append functions.
package ryu

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"vitess.io/floatfmt/go/hack"
)

// FormatFloat64 formats f according to opts.
func FormatFloat64(f float64, opts Options) string {
	return FormatBits64(float64bits(f), opts)
}

// FormatFloat32 formats f according to opts, using the shortest digits that
// identify f among float32 values.
func FormatFloat32(f float32, opts Options) string {
	return FormatBits32(math.Float32bits(f), opts)
}

// FormatBits64 formats the float64 whose IEEE-754 encoding is bits.
func FormatBits64(bits uint64, opts Options) string {
	return hack.String(float64info.appendFloat(make([]byte, 0, 32), bits, &opts, nil))
}

// FormatBits32 formats the float32 whose IEEE-754 encoding is bits.
func FormatBits32(bits uint32, opts Options) string {
	return hack.String(float32info.appendFloat(make([]byte, 0, 24), uint64(bits), &opts, nil))
}

// AppendFloat64 appends the formatted f to dst and returns the extended
// buffer.
func AppendFloat64(dst []byte, f float64, opts Options) []byte {
	return float64info.appendFloat(dst, float64bits(f), &opts, nil)
}

// AppendFloat32 appends the formatted f to dst and returns the extended
// buffer.
func AppendFloat32(dst []byte, f float32, opts Options) []byte {
	return float32info.appendFloat(dst, float32bits(f), &opts, nil)
}

// Format formats any float type, picking the precision from its size.
func Format[F constraints.Float](f F, opts Options) string {
	if unsafe.Sizeof(f) == 4 {
		return FormatFloat32(float32(f), opts)
	}
	return FormatFloat64(float64(f), opts)
}

// String64 formats f in General notation with the default window, the way
// most languages print a double: "1.0", "0.001", "1.0E7".
func String64(f float64) string {
	return FormatFloat64(f, Options{})
}

// String32 is String64 for float32.
func String32(f float32) string {
	return FormatFloat32(f, Options{})
}

// ShortestDigits64 returns the shortest digits of a finite f. The second
// result is false for NaN, infinities and zeros.
func ShortestDigits64(f float64) (Digits, bool) {
	return float64info.shortestDigits(float64bits(f))
}

// ShortestDigits32 is ShortestDigits64 for float32.
func ShortestDigits32(f float32) (Digits, bool) {
	return float32info.shortestDigits(float32bits(f))
}

// Trace records every stage of one conversion. Literal is set, and the
// stages left empty, for values that bypass the pipeline.
type Trace struct {
	Bits     uint64
	Literal  string
	Decoded  Decoded
	Interval Interval
	Decimal  DecimalTriple
	Digits   Digits
	Output   string
}

// Explain64 formats f like FormatFloat64 and reports the intermediate values.
func Explain64(f float64, opts Options) Trace {
	var tr Trace
	tr.Output = string(float64info.appendFloat(nil, float64bits(f), &opts, &tr))
	return tr
}

// Explain32 formats f like FormatFloat32 and reports the intermediate values.
func Explain32(f float32, opts Options) Trace {
	var tr Trace
	tr.Output = string(float32info.appendFloat(nil, float32bits(f), &opts, &tr))
	return tr
}

func (info *floatInfo) shortestDigits(bits uint64) (Digits, bool) {
	d, c := info.decode(bits)
	if c != classFinite {
		return Digits{}, false
	}
	digs := shortest(info.toDecimal(info.interval(d)), 1)
	digs.Neg = d.Neg
	return digs, true
}

func (info *floatInfo) appendFloat(dst []byte, bits uint64, opts *Options, tr *Trace) []byte {
	start := len(dst)
	d, c := info.decode(bits)
	if tr != nil {
		tr.Bits = bits
		tr.Decoded = d
	}
	if c != classFinite {
		if tr != nil {
			tr.Literal = literal(d, c)
		}
		dst = appendLiteral(dst, d, c, opts)
		if opts.Notation == Decimal {
			dst = truncate(dst, start, opts.MaxLength)
		}
		return dst
	}

	iv := info.interval(d)
	dt := info.toDecimal(iv)

	var digs Digits
	sci := false
	switch opts.Notation {
	case Scientific:
		sci = true
		digs = shortest(dt, 2)
	case General:
		digs = shortest(dt, 1)
		if !opts.Window.contains(digs.Exponent) {
			sci = true
			if digs.Length < 2 {
				digs = shortest(dt, 2)
			}
		}
	default:
		digs = shortest(dt, 1)
	}
	digs.Neg = d.Neg
	if tr != nil {
		tr.Interval = iv
		tr.Decimal = dt
		tr.Digits = digs
	}

	switch {
	case sci:
		dst = appendScientific(dst, digs, opts.exponentChar())
	case opts.Notation == Decimal:
		dst = appendPlain(dst, digs, opts.Precision)
		dst = truncate(dst, start, opts.MaxLength)
	default:
		dst = appendPlain(dst, digs, -1)
	}
	return dst
}

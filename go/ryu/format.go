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
	"strconv"
)

// Notation selects how digits are laid out.
type Notation int

const (
	// General renders plain positional notation when the decimal exponent
	// falls inside the options' window and scientific notation otherwise.
	General Notation = iota
	// Scientific always renders d.dddE[-]n.
	Scientific
	// Decimal always renders plain positional notation, honouring
	// MaxLength and Precision.
	Decimal
)

func (n Notation) String() string {
	switch n {
	case General:
		return "general"
	case Scientific:
		return "scientific"
	case Decimal:
		return "decimal"
	}
	return "Notation(" + strconv.Itoa(int(n)) + ")"
}

// ParseNotation maps a name (as returned by Notation.String) to a Notation.
func ParseNotation(s string) (Notation, bool) {
	for _, n := range []Notation{General, Scientific, Decimal} {
		if n.String() == s {
			return n, true
		}
	}
	return General, false
}

// Window is the half-open range [Low, High) of decimal exponents that General
// renders in plain notation. The zero Window selects DefaultWindow; any other
// window with Low == High, such as {1, 1}, is empty and makes General always
// scientific.
type Window struct {
	Low, High int
}

var (
	// DefaultWindow matches the usual language default of plain notation
	// for 1e-3 <= |x| < 1e7.
	DefaultWindow = Window{Low: -3, High: 7}
	// FriendlyWindow keeps plain notation for 1e-10 <= |x| < 1e10.
	FriendlyWindow = Window{Low: -10, High: 10}
)

func (w Window) contains(exp int) bool {
	if w == (Window{}) {
		w = DefaultWindow
	}
	return exp >= w.Low && exp < w.High
}

// Options control the textual rendering. The zero value is General notation
// with DefaultWindow and an 'E' exponent marker.
//
// Precision is only read in Decimal notation, where its zero value means no
// fractional digits: Options{Notation: Decimal} prints 1.5 as "1". Use
// DecimalOptions(0, -1) for shortest Decimal output.
type Options struct {
	Notation Notation
	Window   Window
	// ExponentChar separates mantissa and exponent in scientific notation;
	// 0 means 'E'.
	ExponentChar byte
	// MaxLength truncates Decimal output to at most this many bytes;
	// values <= 0 disable truncation.
	MaxLength int
	// Precision fixes the number of Decimal digits after the point,
	// padding with zeros or dropping digits without rounding. A negative
	// value keeps the shortest digits.
	Precision int
}

// GeneralOptions returns General notation with the given window.
func GeneralOptions(w Window) Options {
	return Options{Notation: General, Window: w, Precision: -1}
}

// FriendlyOptions returns General notation with FriendlyWindow.
func FriendlyOptions() Options {
	return GeneralOptions(FriendlyWindow)
}

// ScientificOptions returns Scientific notation.
func ScientificOptions() Options {
	return Options{Notation: Scientific, Precision: -1}
}

// DecimalOptions returns Decimal notation. Pass a non-positive maxLength or a
// negative precision to leave either unset.
func DecimalOptions(maxLength, precision int) Options {
	return Options{Notation: Decimal, MaxLength: maxLength, Precision: precision}
}

func (o *Options) exponentChar() byte {
	if o.ExponentChar == 0 {
		return 'E'
	}
	return o.ExponentChar
}

// appendDigits writes the decimal digits of d.Mantissa into buf and returns
// the written slice.
func appendDigits(buf []byte, d Digits) []byte {
	var tmp [20]byte
	i := len(tmp)
	v := d.Mantissa
	for v >= 10 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	i--
	tmp[i] = byte('0' + v)
	return append(buf, tmp[i:]...)
}

func appendScientific(dst []byte, d Digits, expChar byte) []byte {
	if d.Neg {
		dst = append(dst, '-')
	}
	var tmp [20]byte
	digs := appendDigits(tmp[:0], d)
	dst = append(dst, digs[0], '.')
	if len(digs) > 1 {
		dst = append(dst, digs[1:]...)
	} else {
		dst = append(dst, '0')
	}
	dst = append(dst, expChar)
	return strconv.AppendInt(dst, int64(d.Exponent), 10)
}

// appendPlain renders d positionally. With precision < 0 the fraction holds
// the shortest digits, or a single zero for whole numbers; otherwise it holds
// exactly precision digits.
func appendPlain(dst []byte, d Digits, precision int) []byte {
	if d.Neg {
		dst = append(dst, '-')
	}
	var tmp [20]byte
	digs := appendDigits(tmp[:0], d)
	pos := d.Exponent

	// integer part
	if pos < 0 {
		dst = append(dst, '0')
	} else {
		for i := 0; i <= pos; i++ {
			if i < len(digs) {
				dst = append(dst, digs[i])
			} else {
				dst = append(dst, '0')
			}
		}
	}

	if precision == 0 {
		return dst
	}
	dst = append(dst, '.')
	start := len(dst)

	// fraction
	if pos < 0 {
		for i := 0; i < -pos-1; i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, digs...)
	} else if pos+1 < len(digs) {
		dst = append(dst, digs[pos+1:]...)
	}

	switch {
	case precision < 0:
		if len(dst) == start {
			dst = append(dst, '0')
		}
	case len(dst)-start > precision:
		dst = dst[:start+precision]
	default:
		for len(dst)-start < precision {
			dst = append(dst, '0')
		}
	}
	return dst
}

// appendLiteral renders the values that skip the digit pipeline. Zeros still
// honour the Decimal precision; truncation happens in the caller.
func appendLiteral(dst []byte, d Decoded, c class, opts *Options) []byte {
	if c == classZero && opts.Notation == Decimal && opts.Precision >= 0 {
		return appendPlain(dst, Digits{Neg: d.Neg, Length: 1}, opts.Precision)
	}
	return append(dst, literal(d, c)...)
}

// truncate caps the text appended after start at maxLength bytes, dropping a
// dangling decimal point.
func truncate(dst []byte, start, maxLength int) []byte {
	if maxLength <= 0 || len(dst)-start <= maxLength {
		return dst
	}
	dst = dst[:start+maxLength]
	if n := len(dst); n > start+1 && dst[n-1] == '.' {
		dst = dst[:n-1]
	}
	return dst
}

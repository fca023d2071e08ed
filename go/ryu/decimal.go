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
	"fmt"
	"math/bits"

	"vitess.io/floatfmt/go/ryu/pow5"
)

// DecimalTriple holds the three interval bounds rescaled to a shared decimal
// exponent: the bounds are DM*10^Exponent <= DV*10^Exponent <= DP*10^Exponent,
// truncated towards zero. The Exact flags record that no non-zero digit was
// lost in the truncation. Inclusive reports whether exact bounds themselves
// round back to the original value.
type DecimalTriple struct {
	DV, DP, DM uint64
	Exponent   int

	DVExact, DPExact, DMExact bool
	Inclusive                 bool
}

// toDecimal converts the binary interval to decimal. The decimal exponent is
// chosen one digit below the floor estimate so that the digit loop always
// removes at least one digit and sees the rounding digit of DV.
func (info *floatInfo) toDecimal(iv Interval) DecimalTriple {
	dt := DecimalTriple{Inclusive: iv.Even}
	e2 := iv.Exponent
	if e2 >= 0 {
		// x * 2^e2 / 10^q = x * 2^(e2-q) / 5^q
		q := max(0, log10Pow2(e2)-1)
		k := info.pow5invbits + pow5.Bits(q) - 1
		i := -e2 + q + k
		mul := info.pow5inv[q]
		dt.DV = mulShift(iv.MV, mul, i)
		dt.DP = mulShift(iv.MP, mul, i)
		dt.DM = mulShift(iv.MM, mul, i)
		dt.Exponent = q

		// e2 >= q, so exactness only depends on the factors of five.
		dt.DVExact = pow5Factor(iv.MV) >= q
		dt.DPExact = pow5Factor(iv.MP) >= q
		dt.DMExact = pow5Factor(iv.MM) >= q
		return dt
	}

	// x * 2^e2 / 10^(q+e2) = x * 5^(-e2-q) / 2^q
	q := max(0, log10Pow5(-e2)-1)
	i := -e2 - q
	k := pow5.Bits(i) - info.pow5bits
	j := q - k
	mul := info.pow5[i]
	dt.DV = mulShift(iv.MV, mul, j)
	dt.DP = mulShift(iv.MP, mul, j)
	dt.DM = mulShift(iv.MM, mul, j)
	dt.Exponent = q + e2

	dt.DVExact = multipleOfPowerOf2(iv.MV, q)
	dt.DPExact = multipleOfPowerOf2(iv.MP, q)
	dt.DMExact = multipleOfPowerOf2(iv.MM, q)
	return dt
}

// mulShift returns floor(m * mul / 2^j). The product is up to 192 bits wide;
// the result must fit in 64.
func mulShift(m uint64, mul pow5.Entry, j int) uint64 {
	if j <= 0 || j >= 192 {
		panic(fmt.Sprintf("ryu: shift %d out of range", j))
	}
	hi0, lo := bits.Mul64(m, mul.Lo)
	hi1, lo1 := bits.Mul64(m, mul.Hi)
	mid, carry := bits.Add64(hi0, lo1, 0)
	top := hi1 + carry

	s := uint(j)
	switch {
	case s >= 128:
		return top >> (s - 128)
	case s >= 64:
		return mid>>(s-64) | top<<(128-s)
	default:
		return lo>>s | mid<<(64-s)
	}
}

// log10Pow2 returns floor(log10(2^e)) for 0 <= e <= 1650.
func log10Pow2(e int) int {
	return int((uint32(e) * 78913) >> 18)
}

// log10Pow5 returns floor(log10(5^e)) for 0 <= e <= 2620.
func log10Pow5(e int) int {
	return int((uint32(e) * 732923) >> 20)
}

func pow5Factor(v uint64) int {
	n := 0
	for v != 0 && v%5 == 0 {
		v /= 5
		n++
	}
	return n
}

func multipleOfPowerOf2(v uint64, p int) bool {
	return v != 0 && bits.TrailingZeros64(v) >= p
}

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

// Digits is a shortest decimal representation: Mantissa has Length digits and
// its most significant digit sits at 10^Exponent, so the value is
// Mantissa * 10^(Exponent-Length+1).
type Digits struct {
	Neg      bool
	Mantissa uint64
	Length   int
	Exponent int
}

var uint64pow10 = [...]uint64{
	1e00, 1e01, 1e02, 1e03, 1e04, 1e05, 1e06, 1e07, 1e08, 1e09,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

func decimalLen(v uint64) int {
	n := 1
	for n < len(uint64pow10) && v >= uint64pow10[n] {
		n++
	}
	return n
}

// shortest trims dt down to the fewest digits that still lie inside the
// rounding interval, keeping at least minDigits digits, and rounds the last
// kept digit to nearest with ties to even.
func shortest(dt DecimalTriple, minDigits int) Digits {
	vr, vp, vm := dt.DV, dt.DP, dt.DM
	vrExact := dt.DVExact
	vmExact := dt.DMExact && dt.Inclusive
	if dt.DPExact && !dt.Inclusive {
		vp--
	}
	limit := uint64pow10[minDigits]

	removed := 0
	var lastRemoved uint64
	for vp/10 > vm/10 {
		if vp < limit {
			break
		}
		vmExact = vmExact && vm%10 == 0
		vrExact = vrExact && lastRemoved == 0
		lastRemoved = vr % 10
		vr /= 10
		vp /= 10
		vm /= 10
		removed++
	}
	// An exact, inclusive lower bound may keep giving up trailing zeros
	// after the upper bound stopped the loop above.
	if vmExact {
		for vm%10 == 0 {
			if vp < limit {
				break
			}
			vrExact = vrExact && lastRemoved == 0
			lastRemoved = vr % 10
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
	}
	if vrExact && lastRemoved == 5 && vr%2 == 0 {
		// exactly ...50000: round half to even
		lastRemoved = 4
	}

	out := vr
	if (vr == vm && !vmExact) || lastRemoved >= 5 {
		out++
	}
	exp := dt.Exponent + removed
	n := decimalLen(out)
	for n > minDigits && out%10 == 0 {
		out /= 10
		exp++
		n--
	}
	return Digits{Mantissa: out, Length: n, Exponent: exp + n - 1}
}

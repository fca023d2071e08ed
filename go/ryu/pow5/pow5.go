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

// Package pow5 builds the fixed-point power-of-five tables used by the
// shortest float formatter in vitess.io/floatfmt/go/ryu.
//
// The tables are computed with math/big. The formatter itself never calls
// into this package at runtime except for Bits; it reads literal copies of the
// tables generated by go/tools/pow5gen, and tests check those copies against
// Powers and InversePowers entry by entry.
package pow5

import (
	"fmt"
	"math/big"
)

// MaxBitCount is the widest normalisation an Entry can hold.
const MaxBitCount = 128

// Entry is a 128-bit unsigned value split into two machine words.
type Entry struct {
	Hi uint64
	Lo uint64
}

// Big returns the entry as a big.Int.
func (e Entry) Big() *big.Int {
	v := new(big.Int).SetUint64(e.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(e.Lo))
}

// String renders the entry as a single hexadecimal number.
func (e Entry) String() string {
	if e.Hi == 0 {
		return fmt.Sprintf("0x%x", e.Lo)
	}
	return fmt.Sprintf("0x%x%016x", e.Hi, e.Lo)
}

// Bits returns the bit length of 5^e, i.e. ceil(log2(5^e)) for e > 0 and 1
// for e == 0. It is exact for 0 <= e <= 3528.
func Bits(e int) int {
	return int((uint32(e)*1217359)>>19) + 1
}

var (
	bigOne  = big.NewInt(1)
	bigFive = big.NewInt(5)
	mask64  = new(big.Int).SetUint64(^uint64(0))
)

// Powers returns 5^i for i in [0, n), each normalised to exactly bitCount
// significant bits. Powers wider than bitCount are truncated; narrower ones
// are shifted left, which is exact.
func Powers(n, bitCount int) ([]Entry, error) {
	if err := checkArgs(n, bitCount); err != nil {
		return nil, err
	}
	out := make([]Entry, n)
	pow := big.NewInt(1)
	for i := 0; i < n; i++ {
		if i > 0 {
			pow.Mul(pow, bigFive)
		}
		l := pow.BitLen()
		if l != Bits(i) {
			return nil, fmt.Errorf("bit length of 5^%d is %d, Bits reports %d", i, l, Bits(i))
		}
		v := new(big.Int)
		if shift := l - bitCount; shift >= 0 {
			v.Rsh(pow, uint(shift))
		} else {
			v.Lsh(pow, uint(-shift))
		}
		out[i] = split(v)
	}
	return out, nil
}

// InversePowers returns, for i in [0, n), floor(2^k / 5^i) + 1 where
// k = bitlen(5^i) - 1 + bitCount. The +1 makes every entry an upper bound of
// the true reciprocal, so multiplications never undershoot.
func InversePowers(n, bitCount int) ([]Entry, error) {
	if err := checkArgs(n, bitCount); err != nil {
		return nil, err
	}
	out := make([]Entry, n)
	pow := big.NewInt(1)
	for i := 0; i < n; i++ {
		if i > 0 {
			pow.Mul(pow, bigFive)
		}
		k := pow.BitLen() - 1 + bitCount
		v := new(big.Int).Lsh(bigOne, uint(k))
		v.Quo(v, pow)
		v.Add(v, bigOne)
		if v.BitLen() > MaxBitCount {
			return nil, fmt.Errorf("inverse of 5^%d needs %d bits", i, v.BitLen())
		}
		out[i] = split(v)
	}
	return out, nil
}

func checkArgs(n, bitCount int) error {
	if n < 0 {
		return fmt.Errorf("invalid table size %d", n)
	}
	if bitCount <= 0 || bitCount > MaxBitCount-1 {
		return fmt.Errorf("invalid bit count %d; must be in [1, %d]", bitCount, MaxBitCount-1)
	}
	return nil
}

func split(v *big.Int) Entry {
	lo := new(big.Int).And(v, mask64)
	hi := new(big.Int).Rsh(v, 64)
	return Entry{Hi: hi.Uint64(), Lo: lo.Uint64()}
}

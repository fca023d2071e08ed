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
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitess.io/floatfmt/go/ryu/pow5"
)

func TestMulShift(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 2000 {
		m := rng.Uint64() >> rng.IntN(8)
		e := pow5.Entry{Hi: rng.Uint64() >> 7, Lo: rng.Uint64()}
		prod := new(big.Int).Mul(new(big.Int).SetUint64(m), e.Big())
		lo := max(1, prod.BitLen()-64)
		for _, j := range []int{lo, lo + 1, lo + 17, 64, 128, 191} {
			if j < lo {
				continue
			}
			want := new(big.Int).Rsh(prod, uint(j))
			require.Equal(t, want.Uint64(), mulShift(m, e, j), "m=%d e=%s j=%d", m, e, j)
		}
	}
}

func TestMulShiftPanics(t *testing.T) {
	assert.Panics(t, func() { mulShift(1, pow5.Entry{Lo: 1}, 0) })
	assert.Panics(t, func() { mulShift(1, pow5.Entry{Lo: 1}, -3) })
	assert.Panics(t, func() { mulShift(1, pow5.Entry{Lo: 1}, 192) })
}

func TestLog10(t *testing.T) {
	pow := big.NewInt(1)
	ten := big.NewInt(10)
	two := big.NewInt(2)
	floorLog10 := func(v *big.Int) int {
		n := 0
		for p := big.NewInt(10); p.Cmp(v) <= 0; p.Mul(p, ten) {
			n++
		}
		return n
	}
	for e := 0; e <= 1650; e++ {
		if e%50 == 0 || e < 40 || e > 1600 {
			require.Equal(t, floorLog10(pow), log10Pow2(e), "2^%d", e)
		}
		pow.Mul(pow, two)
	}

	pow.SetInt64(1)
	five := big.NewInt(5)
	for e := 0; e <= 2620; e++ {
		if e%50 == 0 || e < 40 || e > 2580 {
			require.Equal(t, floorLog10(pow), log10Pow5(e), "5^%d", e)
		}
		pow.Mul(pow, five)
	}
}

func TestPow5Factor(t *testing.T) {
	assert.Equal(t, 0, pow5Factor(0))
	assert.Equal(t, 0, pow5Factor(1))
	assert.Equal(t, 0, pow5Factor(12))
	assert.Equal(t, 1, pow5Factor(10))
	assert.Equal(t, 3, pow5Factor(250))
	assert.Equal(t, 27, pow5Factor(7450580596923828125))

	assert.False(t, multipleOfPowerOf2(0, 0))
	assert.True(t, multipleOfPowerOf2(1, 0))
	assert.True(t, multipleOfPowerOf2(96, 5))
	assert.False(t, multipleOfPowerOf2(96, 6))
	assert.True(t, multipleOfPowerOf2(1<<63, 63))
}

// exactDecimal returns floor(m * 2^e2 / 10^e10) and whether the division
// was exact.
func exactDecimal(m uint64, e2, e10 int) (uint64, bool) {
	num := new(big.Int).SetUint64(m)
	den := big.NewInt(1)
	if e2 >= 0 {
		num.Lsh(num, uint(e2))
	} else {
		den.Lsh(den, uint(-e2))
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(max(e10, -e10))), nil)
	if e10 >= 0 {
		den.Mul(den, p)
	} else {
		num.Mul(num, p)
	}
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	return q.Uint64(), r.Sign() == 0
}

func checkDecimal(t *testing.T, info *floatInfo, bits uint64) {
	t.Helper()
	d, c := info.decode(bits)
	if c != classFinite {
		return
	}
	iv := info.interval(d)
	dt := info.toDecimal(iv)

	require.LessOrEqual(t, dt.DM, dt.DV, "bits %x", bits)
	require.LessOrEqual(t, dt.DV, dt.DP, "bits %x", bits)
	require.Equal(t, iv.Even, dt.Inclusive)

	for _, b := range []struct {
		m     uint64
		got   uint64
		exact bool
	}{
		{iv.MV, dt.DV, dt.DVExact},
		{iv.MP, dt.DP, dt.DPExact},
		{iv.MM, dt.DM, dt.DMExact},
	} {
		want, exact := exactDecimal(b.m, iv.Exponent, dt.Exponent)
		require.Equal(t, want, b.got, "bits %x bound %d", bits, b.m)
		require.Equal(t, exact, b.exact, "bits %x bound %d", bits, b.m)
	}
}

func TestToDecimal64(t *testing.T) {
	rng := rand.New(rand.NewPCG(64, 64))
	for range 3000 {
		checkDecimal(t, &float64info, rng.Uint64())
	}
	for exp := uint64(0); exp < 2047; exp++ {
		for _, mant := range []uint64{0, 1, 2, 3, 1<<52 - 1, 0x8000000000000} {
			checkDecimal(t, &float64info, exp<<52|mant)
		}
	}
}

func TestToDecimal32(t *testing.T) {
	rng := rand.New(rand.NewPCG(32, 32))
	for range 5000 {
		checkDecimal(t, &float32info, uint64(rng.Uint32()))
	}
	for exp := uint64(0); exp < 255; exp++ {
		for _, mant := range []uint64{0, 1, 2, 3, 1<<23 - 1, 0x400000} {
			checkDecimal(t, &float32info, exp<<23|mant)
		}
	}
}

func TestToDecimalExactPowers(t *testing.T) {
	// Integers carry their trailing zeros into the triple.
	for _, f := range []float64{1, 10, 1e15, 1e22, 5, 0.5, 0.125} {
		d, c := float64info.decode(math.Float64bits(f))
		require.Equal(t, classFinite, c)
		dt := float64info.toDecimal(float64info.interval(d))
		assert.True(t, dt.DVExact, "%v", f)
	}
}

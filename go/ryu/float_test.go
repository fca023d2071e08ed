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
	"testing"

	"github.com/stretchr/testify/assert"

	"vitess.io/floatfmt/go/test/utils"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name  string
		info  *floatInfo
		bits  uint64
		want  Decoded
		class class
	}{
		{"one", &float64info, math.Float64bits(1), Decoded{Mantissa: 1 << 52, Exponent: -52}, classFinite},
		{"minus two", &float64info, math.Float64bits(-2), Decoded{Neg: true, Mantissa: 1 << 52, Exponent: -51}, classFinite},
		{"smallest normal", &float64info, 0x0010000000000000, Decoded{Mantissa: 1 << 52, Exponent: -1074}, classFinite},
		{"largest subnormal", &float64info, 0x000fffffffffffff, Decoded{Mantissa: 1<<52 - 1, Exponent: -1074}, classFinite},
		{"smallest subnormal", &float64info, 1, Decoded{Mantissa: 1, Exponent: -1074}, classFinite},
		{"max", &float64info, 0x7fefffffffffffff, Decoded{Mantissa: 1<<53 - 1, Exponent: 971}, classFinite},
		{"zero", &float64info, 0, Decoded{}, classZero},
		{"negative zero", &float64info, 1 << 63, Decoded{Neg: true}, classZero},
		{"inf", &float64info, 0x7ff0000000000000, Decoded{}, classInf},
		{"nan", &float64info, 0x7ff8000000000000, Decoded{}, classNaN},
		{"float32 one", &float32info, uint64(math.Float32bits(1)), Decoded{Mantissa: 1 << 23, Exponent: -23}, classFinite},
		{"float32 negative", &float32info, uint64(math.Float32bits(-0.5)), Decoded{Neg: true, Mantissa: 1 << 23, Exponent: -24}, classFinite},
		{"float32 subnormal", &float32info, 3, Decoded{Mantissa: 3, Exponent: -149}, classFinite},
		{"float32 negative inf", &float32info, 0xff800000, Decoded{Neg: true}, classInf},
		{"float32 nan", &float32info, 0x7fc00000, Decoded{}, classNaN},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, c := tc.info.decode(tc.bits)
			assert.Equal(t, tc.class, c)
			utils.MustMatch(t, tc.want, got)
		})
	}
}

func TestInterval(t *testing.T) {
	cases := []struct {
		name string
		info *floatInfo
		bits uint64
		want Interval
	}{
		{
			// power of two: the lower neighbour is half as far away
			name: "one",
			info: &float64info,
			bits: math.Float64bits(1),
			want: Interval{MV: 4 << 52, MP: 4<<52 + 2, MM: 4<<52 - 1, Exponent: -54, Even: true},
		},
		{
			name: "odd mantissa",
			info: &float64info,
			bits: math.Float64bits(1) + 1,
			want: Interval{MV: 4<<52 + 4, MP: 4<<52 + 6, MM: 4<<52 + 2, Exponent: -54},
		},
		{
			name: "smallest normal",
			info: &float64info,
			bits: 0x0010000000000000,
			want: Interval{MV: 4 << 52, MP: 4<<52 + 2, MM: 4<<52 - 2, Exponent: -1076, Even: true},
		},
		{
			name: "smallest subnormal",
			info: &float64info,
			bits: 1,
			want: Interval{MV: 4, MP: 6, MM: 2, Exponent: -1076},
		},
		{
			name: "float32 power of two",
			info: &float32info,
			bits: uint64(math.Float32bits(8)),
			want: Interval{MV: 4 << 23, MP: 4<<23 + 2, MM: 4<<23 - 1, Exponent: -22, Even: true},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, c := tc.info.decode(tc.bits)
			assert.Equal(t, classFinite, c)
			utils.MustMatch(t, tc.want, tc.info.interval(d))
		})
	}
}

func TestMinExp(t *testing.T) {
	assert.Equal(t, -1074, float64info.minExp())
	assert.Equal(t, -149, float32info.minExp())
}

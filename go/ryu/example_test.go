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

package ryu_test

import (
	"fmt"

	"vitess.io/floatfmt/go/ryu"
)

func ExampleFormatFloat64() {
	fmt.Println(ryu.FormatFloat64(100, ryu.Options{}))
	fmt.Println(ryu.FormatFloat64(1e21, ryu.Options{}))
	fmt.Println(ryu.FormatFloat64(0.0001, ryu.FriendlyOptions()))
	fmt.Println(ryu.FormatFloat64(123.456, ryu.ScientificOptions()))
	// Output:
	// 100.0
	// 1.0E21
	// 0.0001
	// 1.23456E2
}

func ExampleFormatFloat32() {
	third := float32(1) / 3
	fmt.Println(ryu.FormatFloat32(third, ryu.Options{}))
	fmt.Println(ryu.FormatFloat32(third, ryu.DecimalOptions(0, 4)))
	fmt.Println(ryu.FormatFloat32(third, ryu.DecimalOptions(4, -1)))
	// Output:
	// 0.33333334
	// 0.3333
	// 0.33
}

func ExampleAppendFloat64() {
	buf := []byte("pi=")
	buf = ryu.AppendFloat64(buf, 3.141592653589793, ryu.Options{})
	fmt.Println(string(buf))
	// Output: pi=3.141592653589793
}

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

package pow5gen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitess.io/floatfmt/go/ryu/pow5"
)

func render(t *testing.T, tables []Table) string {
	t.Helper()
	file, err := Generate("ryu", tables)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, file.Render(&buf))
	return buf.String()
}

func TestGenerate(t *testing.T) {
	src := render(t, Tables)

	assert.True(t, strings.HasPrefix(src, "/*\nCopyright"), "license header first")
	assert.Contains(t, src, "// Code generated by pow5gen. DO NOT EDIT.")
	assert.Contains(t, src, "package ryu")
	assert.Contains(t, src, `"vitess.io/floatfmt/go/ryu/pow5"`)
	for _, tbl := range Tables {
		assert.Contains(t, src, "// "+tbl.Comment)
		assert.Regexp(t, `var `+tbl.Name+` = \[\d+\]pow5\.Entry\{`, src)
	}

	// 5^0 normalised to 121 bits, and 5^1 at 61 bits.
	assert.Contains(t, src, "{Hi: 0x0100000000000000, Lo: 0x0000000000000000},")
	assert.Contains(t, src, "{Hi: 0x0000000000000000, Lo: 0x1400000000000000},")
}

func TestGenerateEntries(t *testing.T) {
	tbl := Table{Name: "small", Size: 3, BitCount: 8, Comment: "small is a test table."}
	entries, err := tbl.Entries()
	require.NoError(t, err)
	assert.Equal(t, []pow5.Entry{{Lo: 0x80}, {Lo: 0xa0}, {Lo: 0xc8}}, entries)

	src := render(t, []Table{tbl})
	assert.Contains(t, src, "var small = [3]pow5.Entry{")
	assert.Equal(t, 3, strings.Count(src, "{Hi: 0x0000000000000000, Lo: 0x00000000000000"))
}

func TestGenerateInvalid(t *testing.T) {
	_, err := Generate("ryu", []Table{{Name: "bad", Size: 4, BitCount: 0}})
	require.ErrorContains(t, err, "table bad")
}

func TestVerifyFileOnDisk(t *testing.T) {
	tables := []Table{{Name: "tiny", Inverse: true, Size: 2, BitCount: 16, Comment: "tiny is a test table."}}
	file, err := Generate("ryu", tables)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tiny.go")
	require.ErrorContains(t, VerifyFileOnDisk(path, file), "missing file on disk")

	require.NoError(t, file.Save(path))
	require.NoError(t, VerifyFileOnDisk(path, file))

	require.NoError(t, os.WriteFile(path, []byte("package ryu\n"), 0o644))
	require.ErrorContains(t, VerifyFileOnDisk(path, file), "has changed")
}

func TestCheckedInTables(t *testing.T) {
	// The checked-in file must carry every generated entry.
	onDisk, err := os.ReadFile(filepath.Join("..", "..", "ryu", "pow5_tables.go"))
	require.NoError(t, err)
	for _, tbl := range Tables {
		entries, err := tbl.Entries()
		require.NoError(t, err)
		for i, e := range entries {
			line := "{Hi: " + hex(e.Hi) + ", Lo: " + hex(e.Lo) + "},"
			require.Contains(t, string(onDisk), line, "%s[%d]", tbl.Name, i)
		}
	}
}

// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedFilesAreCurrent(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		max:    22,
		tuple:  filepath.Join(dir, "tuple_gen.go"),
		derive: filepath.Join(dir, "derive_gen.go"),
	}
	require.NoError(t, run(opts))

	for generated, committed := range map[string]string{
		opts.tuple:  filepath.Join("..", "..", "tuple", "tuple_gen.go"),
		opts.derive: filepath.Join("..", "..", "derive_gen.go"),
	} {
		want, err := os.ReadFile(committed)
		require.NoError(t, err)
		got, err := os.ReadFile(generated)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), "%s is stale; run go generate ./tuple", committed)
	}
}

func TestSmallerMax(t *testing.T) {
	dir := t.TempDir()
	opts := options{max: 3, tuple: filepath.Join(dir, "t.go"), derive: filepath.Join(dir, "d.go")}
	require.NoError(t, run(opts))

	src, err := os.ReadFile(opts.derive)
	require.NoError(t, err)
	assert.Contains(t, string(src), "func IdentityTuple3[")
	assert.NotContains(t, string(src), "Tuple4")
}

func TestMaxBelowTwoRejected(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--max", "1", "--tuple", filepath.Join(dir, "t.go"), "--derive", filepath.Join(dir, "d.go")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max must be at least 2, got 1")
	assert.NoFileExists(t, filepath.Join(dir, "t.go"))
}

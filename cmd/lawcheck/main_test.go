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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/prelude"
	"github.com/wdamron/prelude/laws"
	"github.com/wdamron/prelude/laws/lawtest"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCatalogHolds(t *testing.T) {
	checker := laws.NewChecker(laws.DefaultConfig(), nil)
	for _, s := range catalog() {
		lawtest.AssertReport(t, s.run(checker))
	}
}

func TestRunCommand(t *testing.T) {
	stdout, stderr, err := execute(t, "run", "--samples", "20")
	require.NoError(t, err)
	assert.Contains(t, stdout, "samples=20 seed=42")
	assert.Contains(t, stdout, "Sum[int]")
	assert.Contains(t, stdout, "associativity")
	assert.Contains(t, stdout, "laws held")
	assert.Empty(t, stderr)
}

func TestRunFilter(t *testing.T) {
	stdout, _, err := execute(t, "run", "Covariant")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Covariant[[]int]")
	assert.Contains(t, stdout, "Covariant[Option[int]]")
	assert.NotContains(t, stdout, "Sum[int]")

	_, _, err = execute(t, "run", "Nothing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no subject matches")
}

func TestRunVerboseLogs(t *testing.T) {
	_, stderr, err := execute(t, "run", "--verbose", "Or")
	require.NoError(t, err)
	assert.Contains(t, stderr, "law held")
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lawcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 7\nseed: 3\n"), 0o644))

	stdout, _, err := execute(t, "run", "--config", path, "--seed", "9", "And")
	require.NoError(t, err)
	assert.Contains(t, stdout, "samples=7 seed=9")
	assert.Contains(t, stdout, "(7 trials)")
}

func TestRunRejectsInvalidSamples(t *testing.T) {
	_, _, err := execute(t, "run", "--samples", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, laws.ErrInvalidConfig)
}

func TestRunReportsViolations(t *testing.T) {
	var out bytes.Buffer
	minus := prelude.MakeIdentity(0, func(l, r int) int { return l - r })
	report := laws.Check(laws.NewChecker(laws.DefaultConfig(), newLogger(&bytes.Buffer{}, false)),
		"minus", laws.IdentityLaws[int](), minus, prelude.DefaultEqual[int](), laws.Int())

	require.NoError(t, writeReports(&out, laws.DefaultConfig(), []laws.Report{report}))
	assert.Contains(t, out.String(), "✗ leftIdentity")
	assert.Contains(t, out.String(), "2 of 3 laws violated")
}

func TestClassesCommand(t *testing.T) {
	stdout, _, err := execute(t, "classes", "--instances")
	require.NoError(t, err)

	lines := strings.Split(stdout, "\n")
	assert.Contains(t, lines, "Identity refines Associative")
	assert.Contains(t, lines, "Applicative refines Covariant, IdentityBoth, DeriveEqual")
	assert.Contains(t, lines, "Identity int")
	assert.Contains(t, lines, "Covariant []int,[]int")
	assert.Contains(t, lines, "DeriveEqual option.Option[int]")
}

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

// Package lawtest reports law checks through testing.TB.
package lawtest

import (
	"testing"

	"github.com/wdamron/prelude"
	"github.com/wdamron/prelude/laws"
)

// AssertReport fails t for every violated law in r.
func AssertReport(t testing.TB, r laws.Report) {
	t.Helper()

	for _, res := range r.Failures() {
		t.Errorf("%s: law %s violated after %d trials: %s\nsamples: %v",
			r.Subject, res.Law, res.Trials, res.Reason, res.Samples)
	}
	if r.Passed() {
		t.Logf("✓ %s: %d laws held", r.Subject, len(r.Results))
	}
}

// AssertLaws checks set against inst with DefaultConfig and fails t on any violation.
func AssertLaws[C, A any](t testing.TB, subject string, set laws.LawSet[C, A], inst C, eq prelude.Equal[A], gen laws.Gen[A]) laws.Report {
	t.Helper()

	r := laws.Check(laws.NewChecker(laws.DefaultConfig(), nil), subject, set, inst, eq, gen)
	AssertReport(t, r)
	return r
}

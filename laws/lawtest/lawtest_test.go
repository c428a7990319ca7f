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

package lawtest_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdamron/prelude"
	"github.com/wdamron/prelude/laws"
	"github.com/wdamron/prelude/laws/lawtest"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	errors []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recorder) Logf(string, ...any) {}

func TestAssertLawsHolds(t *testing.T) {
	rec := &recorder{TB: t}
	report := lawtest.AssertLaws(rec, "Sum[int]", laws.IdentityLaws[int](), prelude.Sum[int](), prelude.DefaultEqual[int](), laws.Int())

	assert.True(t, report.Passed())
	assert.Empty(t, rec.errors)
}

func TestAssertLawsReportsEachViolation(t *testing.T) {
	rec := &recorder{TB: t}
	minus := prelude.MakeIdentity(0, func(l, r int) int { return l - r })
	report := lawtest.AssertLaws(rec, "minus", laws.IdentityLaws[int](), minus, prelude.DefaultEqual[int](), laws.Int())

	assert.False(t, report.Passed())
	assert.Len(t, rec.errors, 2)
	assert.Contains(t, rec.errors[0], "minus: law leftIdentity violated")
}

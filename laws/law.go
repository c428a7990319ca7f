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

// Package laws declares algebraic laws as data and checks instances against them.
//
// A Law is a named predicate over a capability instance and a fixed number of
// sample values. Laws are grouped into LawSets, which combine associatively with
// Empty as identity, so independently declared laws can be merged in any grouping.
// Check evaluates a LawSet against an instance using generated samples and reports
// the first counterexample of each law.
package laws

import (
	"fmt"

	"github.com/wdamron/prelude"
)

// Result is the outcome of evaluating one law.
type Result struct {
	Law    string
	Passed bool
	// Samples holds the values a failed law was evaluated on.
	Samples []any
	// Reason explains a failure.
	Reason string
	// Trials counts the sample draws evaluated by Check.
	Trials int
}

func (r Result) String() string {
	if r.Passed {
		return fmt.Sprintf("%s: ok", r.Law)
	}
	return fmt.Sprintf("%s: violated: %s (samples: %v)", r.Law, r.Reason, r.Samples)
}

// Law is a named predicate over an instance of capability C for values of type A.
type Law[C, A any] struct {
	Name string
	// Arity is the number of samples the law consumes.
	Arity int
	check func(inst C, eq prelude.Equal[A], samples []A) (bool, string)
}

// New declares a law. check receives exactly arity samples and reports whether
// the law holds, with an explanation when it does not.
func New[C, A any](name string, arity int, check func(inst C, eq prelude.Equal[A], samples []A) (ok bool, reason string)) Law[C, A] {
	return Law[C, A]{Name: name, Arity: arity, check: check}
}

// Run evaluates the law on the first Arity samples.
func (l Law[C, A]) Run(inst C, eq prelude.Equal[A], samples []A) Result {
	if len(samples) < l.Arity {
		return Result{Law: l.Name, Reason: fmt.Sprintf("needs %d samples, got %d", l.Arity, len(samples))}
	}
	samples = samples[:l.Arity]
	ok, reason := l.check(inst, eq, samples)
	if ok {
		return Result{Law: l.Name, Passed: true}
	}
	erased := make([]any, len(samples))
	for i, s := range samples {
		erased[i] = s
	}
	return Result{Law: l.Name, Samples: erased, Reason: reason}
}

// Refine reuses a law of capability C for a capability D that refines it.
func Refine[D, C, A any](l Law[C, A], narrow func(D) C) Law[D, A] {
	return New(l.Name, l.Arity, func(inst D, eq prelude.Equal[A], samples []A) (bool, string) {
		return l.check(narrow(inst), eq, samples)
	})
}

// equalOrExplain compares lhs and rhs with eq.
func equalOrExplain[A any](eq prelude.Equal[A], lhs, rhs A) (bool, string) {
	if eq.Equal(lhs, rhs) {
		return true, ""
	}
	return false, fmt.Sprintf("%v != %v", lhs, rhs)
}

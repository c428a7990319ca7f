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

package laws

import (
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/prelude"
)

var emptyList = immutable.NewList()

// LawSet is an immutable, ordered collection of laws over the same capability.
// The zero value is the empty set.
type LawSet[C, A any] struct {
	l *immutable.List
}

func Empty[C, A any]() LawSet[C, A] { return LawSet[C, A]{emptyList} }

func Of[C, A any](laws ...Law[C, A]) LawSet[C, A] {
	b := immutable.NewListBuilder(emptyList)
	for _, l := range laws {
		b.Append(l)
	}
	return LawSet[C, A]{b.List()}
}

func (s LawSet[C, A]) list() *immutable.List {
	if s.l == nil {
		return emptyList
	}
	return s.l
}

func (s LawSet[C, A]) Len() int            { return s.list().Len() }
func (s LawSet[C, A]) Get(i int) Law[C, A] { return s.list().Get(i).(Law[C, A]) }
func (s LawSet[C, A]) IsEmpty() bool       { return s.Len() == 0 }

// With returns s extended by l.
func (s LawSet[C, A]) With(l Law[C, A]) LawSet[C, A] {
	return LawSet[C, A]{s.list().Append(l)}
}

// If f returns false, iteration will be stopped.
func (s LawSet[C, A]) Range(f func(int, Law[C, A]) bool) {
	iter := s.list().Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Law[C, A])) {
			return
		}
	}
}

// Combine returns the laws of s followed by the laws of o.
func (s LawSet[C, A]) Combine(o LawSet[C, A]) LawSet[C, A] {
	switch {
	case o.IsEmpty():
		return s
	case s.IsEmpty():
		return o
	}
	b := immutable.NewListBuilder(s.list())
	o.Range(func(_ int, l Law[C, A]) bool {
		b.Append(l)
		return true
	})
	return LawSet[C, A]{b.List()}
}

// Names returns the law names in order.
func (s LawSet[C, A]) Names() []string {
	names := make([]string, 0, s.Len())
	s.Range(func(_ int, l Law[C, A]) bool {
		names = append(names, l.Name)
		return true
	})
	return names
}

// MaxArity returns the largest arity of any law in s.
func (s LawSet[C, A]) MaxArity() int {
	n := 0
	s.Range(func(_ int, l Law[C, A]) bool {
		n = max(n, l.Arity)
		return true
	})
	return n
}

// Check evaluates every law on samples.
func (s LawSet[C, A]) Check(inst C, eq prelude.Equal[A], samples []A) []Result {
	results := make([]Result, 0, s.Len())
	s.Range(func(_ int, l Law[C, A]) bool {
		results = append(results, l.Run(inst, eq, samples))
		return true
	})
	return results
}

// Holds reports whether every law holds on samples. The empty set holds vacuously.
func (s LawSet[C, A]) Holds(inst C, eq prelude.Equal[A], samples []A) bool {
	holds := true
	s.Range(func(_ int, l Law[C, A]) bool {
		holds = l.Run(inst, eq, samples).Passed
		return holds
	})
	return holds
}

// RefineSet reuses the laws of capability C for a capability D that refines it.
func RefineSet[D, C, A any](s LawSet[C, A], narrow func(D) C) LawSet[D, A] {
	b := immutable.NewListBuilder(emptyList)
	s.Range(func(_ int, l Law[C, A]) bool {
		b.Append(Refine(l, narrow))
		return true
	})
	return LawSet[D, A]{b.List()}
}

// Monoid is the Identity instance of law sets under Combine.
func Monoid[C, A any]() prelude.Identity[LawSet[C, A]] {
	return prelude.MakeIdentity(Empty[C, A](), LawSet[C, A].Combine)
}

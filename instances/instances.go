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

// Package instances provides capability instances for slices and option.Option,
// and assembles them into Applicative instances.
package instances

import (
	"github.com/wdamron/prelude"
	"github.com/wdamron/prelude/option"
	"github.com/wdamron/prelude/tuple"
	"github.com/wdamron/prelude/typeclass"
)

// SliceCovariant maps every element of a slice.
func SliceCovariant[A, B any]() prelude.Covariant[A, B, []A, []B] {
	return prelude.CovariantFunc[A, B, []A, []B](func(f func(A) B) func([]A) []B {
		return func(as []A) []B {
			if as == nil {
				return nil
			}
			bs := make([]B, len(as))
			for i, a := range as {
				bs[i] = f(a)
			}
			return bs
		}
	})
}

// SliceIdentityBoth pairs every element of fa with every element of fb, in
// row-major order. Any is the slice holding a single unit.
func SliceIdentityBoth[A, B any]() prelude.IdentityBoth[[]A, []B, []tuple.Tuple2[A, B], []tuple.Unit] {
	return prelude.MakeIdentityBoth(func(as []A, bs []B) []tuple.Tuple2[A, B] {
		out := make([]tuple.Tuple2[A, B], 0, len(as)*len(bs))
		for _, a := range as {
			for _, b := range bs {
				out = append(out, tuple.Of2(a, b))
			}
		}
		return out
	}, []tuple.Unit{{}})
}

// SliceDeriveEqual compares slices by length, then element-wise.
func SliceDeriveEqual[A any]() prelude.DeriveEqual[A, []A] {
	return prelude.DeriveEqualFunc[A, []A](func(eq prelude.Equal[A]) prelude.Equal[[]A] {
		return prelude.MakeEqual(func(l, r []A) bool {
			if len(l) != len(r) {
				return false
			}
			for i := range l {
				if !eq.Equal(l[i], r[i]) {
					return false
				}
			}
			return true
		})
	})
}

func SliceApplicative[A, B any]() prelude.Applicative[A, B, []A, []B, []tuple.Tuple2[A, B], []tuple.Unit] {
	return prelude.NewApplicative(SliceCovariant[A, B](), SliceIdentityBoth[A, B](), SliceDeriveEqual[A]())
}

// RegisterSlice adds the slice capabilities for element types A and B to r.
func RegisterSlice[A, B any](r typeclass.Registry) typeclass.Registry {
	r = prelude.ProvideCovariant(r, SliceCovariant[A, B]())
	r = prelude.ProvideIdentityBoth(r, SliceIdentityBoth[A, B]())
	return prelude.ProvideDeriveEqual(r, SliceDeriveEqual[A]())
}

// OptionCovariant maps the value of an Option, if any.
func OptionCovariant[A, B any]() prelude.Covariant[A, B, option.Option[A], option.Option[B]] {
	return prelude.CovariantFunc[A, B, option.Option[A], option.Option[B]](func(f func(A) B) func(option.Option[A]) option.Option[B] {
		return func(o option.Option[A]) option.Option[B] { return option.Map(o, f) }
	})
}

// OptionIdentityBoth is Some of both values when both are present. Any is Some(Unit{}).
func OptionIdentityBoth[A, B any]() prelude.IdentityBoth[option.Option[A], option.Option[B], option.Option[tuple.Tuple2[A, B]], option.Option[tuple.Unit]] {
	return prelude.MakeIdentityBoth(func(oa option.Option[A], ob option.Option[B]) option.Option[tuple.Tuple2[A, B]] {
		a, okA := oa.Get()
		b, okB := ob.Get()
		if !okA || !okB {
			return option.None[tuple.Tuple2[A, B]]()
		}
		return option.Some(tuple.Of2(a, b))
	}, option.Some(tuple.Unit{}))
}

// OptionDeriveEqual treats two Nones as equal and compares two Somes by value.
func OptionDeriveEqual[A any]() prelude.DeriveEqual[A, option.Option[A]] {
	return prelude.DeriveEqualFunc[A, option.Option[A]](func(eq prelude.Equal[A]) prelude.Equal[option.Option[A]] {
		return prelude.MakeEqual(func(l, r option.Option[A]) bool {
			a, okL := l.Get()
			b, okR := r.Get()
			if okL != okR {
				return false
			}
			return !okL || eq.Equal(a, b)
		})
	})
}

func OptionApplicative[A, B any]() prelude.Applicative[A, B, option.Option[A], option.Option[B], option.Option[tuple.Tuple2[A, B]], option.Option[tuple.Unit]] {
	return prelude.NewApplicative(OptionCovariant[A, B](), OptionIdentityBoth[A, B](), OptionDeriveEqual[A]())
}

// RegisterOption adds the Option capabilities for value types A and B to r.
func RegisterOption[A, B any](r typeclass.Registry) typeclass.Registry {
	r = prelude.ProvideCovariant(r, OptionCovariant[A, B]())
	r = prelude.ProvideIdentityBoth(r, OptionIdentityBoth[A, B]())
	return prelude.ProvideDeriveEqual(r, OptionDeriveEqual[A]())
}

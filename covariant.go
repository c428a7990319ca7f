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

package prelude

// Capabilities of a type constructor F.
//
// Go has no type-constructor parameters, so each capability names the
// instantiations of F it relates: FA stands for F[A], FB for F[B], FAB for
// F[tuple.Tuple2[A, B]] and FU for F[tuple.Unit].

// Covariant lifts a function A -> B to F[A] -> F[B]. It should preserve identity
// functions and composition.
type Covariant[A, B, FA, FB any] interface {
	Map(f func(A) B) func(FA) FB
}

// CovariantFunc adapts a function to Covariant.
type CovariantFunc[A, B, FA, FB any] func(f func(A) B) func(FA) FB

func (c CovariantFunc[A, B, FA, FB]) Map(f func(A) B) func(FA) FB { return c(f) }

// IdentityBoth combines two independent computations into one producing both
// results, with Any as the computation producing only the unit value.
type IdentityBoth[FA, FB, FAB, FU any] interface {
	Both(fa FA, fb FB) FAB
	Any() FU
}

type identityBoth[FA, FB, FAB, FU any] struct {
	both func(FA, FB) FAB
	unit FU
}

func (ib identityBoth[FA, FB, FAB, FU]) Both(fa FA, fb FB) FAB { return ib.both(fa, fb) }
func (ib identityBoth[FA, FB, FAB, FU]) Any() FU               { return ib.unit }

// MakeIdentityBoth returns an IdentityBoth backed by both and the unit computation.
func MakeIdentityBoth[FA, FB, FAB, FU any](both func(FA, FB) FAB, unit FU) IdentityBoth[FA, FB, FAB, FU] {
	return identityBoth[FA, FB, FAB, FU]{both: both, unit: unit}
}

// DeriveEqual derives equality of F[A] from equality of A.
type DeriveEqual[A, FA any] interface {
	Derive(eq Equal[A]) Equal[FA]
}

// DeriveEqualFunc adapts a function to DeriveEqual.
type DeriveEqualFunc[A, FA any] func(eq Equal[A]) Equal[FA]

func (d DeriveEqualFunc[A, FA]) Derive(eq Equal[A]) Equal[FA] { return d(eq) }

// Applicative is the composite of Covariant, IdentityBoth and DeriveEqual.
type Applicative[A, B, FA, FB, FAB, FU any] interface {
	Covariant[A, B, FA, FB]
	IdentityBoth[FA, FB, FAB, FU]
	DeriveEqual[A, FA]
}

type applicative[A, B, FA, FB, FAB, FU any] struct {
	Covariant[A, B, FA, FB]
	IdentityBoth[FA, FB, FAB, FU]
	DeriveEqual[A, FA]
}

// NewApplicative assembles an Applicative from its parts. Every operation
// delegates to the part that provides it.
func NewApplicative[A, B, FA, FB, FAB, FU any](
	covariant Covariant[A, B, FA, FB],
	identityBoth IdentityBoth[FA, FB, FAB, FU],
	deriveEqual DeriveEqual[A, FA],
) Applicative[A, B, FA, FB, FAB, FU] {
	return applicative[A, B, FA, FB, FAB, FU]{
		Covariant:    covariant,
		IdentityBoth: identityBoth,
		DeriveEqual:  deriveEqual,
	}
}

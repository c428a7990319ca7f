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

import (
	"fmt"
	"reflect"

	"github.com/wdamron/prelude/tuple"
)

// Product derivation.
//
// A product instance is built from an ordered sequence of slot instances, one per
// position. The derived identity is the sequence of slot identities and the derived
// combine applies each slot's combine to the values at that slot, in order. Slots
// are never reordered or combined across positions.
//
// Values of the product are represented as []any of the same length as the slot
// sequence. A derived instance panics on a slice of any other length, and a slot
// instance panics on a non-nil value that is not of its type. The typed
// wrappers in derive_gen.go convert between []any and tuple.TupleN, so the
// behaviour for every arity is defined here once.

// EraseIdentity hides the element type of m so it can occupy a product slot.
func EraseIdentity[A any](m Identity[A]) Identity[any] {
	return MakeIdentity[any](m.Identity(), func(l, r any) any {
		return m.Combine(unerase[A](l), unerase[A](r))
	})
}

// EraseAssociative hides the element type of s so it can occupy a product slot.
func EraseAssociative[A any](s Associative[A]) Associative[any] {
	return MakeAssociative(func(l, r any) any {
		return s.Combine(unerase[A](l), unerase[A](r))
	})
}

// EraseEqual hides the element type of eq so it can occupy a product slot.
func EraseEqual[A any](eq Equal[A]) Equal[any] {
	return EqualFunc[any](func(l, r any) bool {
		return eq.Equal(unerase[A](l), unerase[A](r))
	})
}

// unerase recovers an A from a slot; nil yields the zero value, which covers
// interface-typed slots holding nil. Any other value not of type A panics.
func unerase[A any](v any) A {
	a, ok := v.(A)
	if !ok && v != nil {
		panic(fmt.Sprintf("prelude: product slot holds %T, want %v", v, reflect.TypeFor[A]()))
	}
	return a
}

// checkShape panics unless l and r both have one value per slot.
func checkShape(slots int, l, r []any) {
	if len(l) != slots || len(r) != slots {
		panic(fmt.Sprintf("prelude: product of %d slots applied to %d and %d values", slots, len(l), len(r)))
	}
}

// DeriveProduct derives the slot-wise Identity of a product. With no slots it
// describes the empty product, whose combine is a no-op; with one slot it behaves
// as that slot's instance.
func DeriveProduct(slots ...Identity[any]) Identity[[]any] {
	slots = append([]Identity[any](nil), slots...)
	unit := make([]any, len(slots))
	for i, m := range slots {
		unit[i] = m.Identity()
	}
	return MakeIdentity(unit, func(l, r []any) []any {
		checkShape(len(slots), l, r)
		out := make([]any, len(slots))
		for i, m := range slots {
			out[i] = m.Combine(l[i], r[i])
		}
		return out
	})
}

// DeriveAssociativeProduct derives the slot-wise Associative of a product.
func DeriveAssociativeProduct(slots ...Associative[any]) Associative[[]any] {
	slots = append([]Associative[any](nil), slots...)
	return MakeAssociative(func(l, r []any) []any {
		checkShape(len(slots), l, r)
		out := make([]any, len(slots))
		for i, s := range slots {
			out[i] = s.Combine(l[i], r[i])
		}
		return out
	})
}

// DeriveEqualProduct derives the slot-wise Equal of a product: two products are
// equal iff every pair of corresponding slots is equal.
func DeriveEqualProduct(slots ...Equal[any]) Equal[[]any] {
	slots = append([]Equal[any](nil), slots...)
	return EqualFunc[[]any](func(l, r []any) bool {
		checkShape(len(slots), l, r)
		for i, eq := range slots {
			if !eq.Equal(l[i], r[i]) {
				return false
			}
		}
		return true
	})
}

// IdentityUnit is the Identity of the empty product.
func IdentityUnit() Identity[tuple.Unit] {
	return InvmapIdentity(DeriveProduct(), tuple.FromUnit, tuple.Unit.Values)
}

// EqualUnit is the Equal of the empty product; all units are equal.
func EqualUnit() Equal[tuple.Unit] {
	return ContramapEqual(DeriveEqualProduct(), tuple.Unit.Values)
}

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
	"errors"
	"fmt"
	"reflect"

	"github.com/wdamron/prelude/typeclass"
)

var (
	// ErrNoInstance is returned when no instance is registered for a class and type.
	ErrNoInstance = errors.New("prelude: no instance")
	// ErrInstanceType is returned when a registered value does not implement the requested capability.
	ErrInstanceType = errors.New("prelude: instance has wrong type")
)

// Capability classes. Identity refines Associative; Applicative refines Covariant,
// IdentityBoth and DeriveEqual.
var (
	AssociativeClass  = typeclass.NewClass(1, "Associative")
	IdentityClass     = typeclass.NewClass(2, "Identity").Refine(AssociativeClass)
	EqualClass        = typeclass.NewClass(3, "Equal")
	CovariantClass    = typeclass.NewClass(4, "Covariant")
	IdentityBothClass = typeclass.NewClass(5, "IdentityBoth")
	DeriveEqualClass  = typeclass.NewClass(6, "DeriveEqual")
	ApplicativeClass  = typeclass.NewClass(7, "Applicative").Refine(CovariantClass, IdentityBothClass, DeriveEqualClass)
)

// Classes returns every capability class, super-classes first.
func Classes() []*typeclass.Class {
	classes, err := typeclass.Order([]*typeclass.Class{
		ApplicativeClass, DeriveEqualClass, IdentityBothClass, CovariantClass,
		EqualClass, IdentityClass, AssociativeClass,
	})
	if err != nil {
		panic(err)
	}
	return classes
}

func keyFor[A any]() typeclass.Key { return typeclass.KeyOf(reflect.TypeFor[A]()) }

func keyFor2[A, B any]() typeclass.Key {
	return typeclass.KeyOf(reflect.TypeFor[A](), reflect.TypeFor[B]())
}

func summon[C any](r typeclass.Registry, class *typeclass.Class, key typeclass.Key) (C, error) {
	var zero C
	inst, ok := r.Find(class, key)
	if !ok {
		return zero, fmt.Errorf("%w: %s for %s", ErrNoInstance, class.Name, key)
	}
	c, ok := inst.Value.(C)
	if !ok {
		return zero, fmt.Errorf("%w: %s for %s is %T", ErrInstanceType, inst.Class.Name, key, inst.Value)
	}
	return c, nil
}

// ProvideAssociative registers s as the Associative instance for A.
func ProvideAssociative[A any](r typeclass.Registry, s Associative[A]) typeclass.Registry {
	return r.Add(AssociativeClass, keyFor[A](), s)
}

// ProvideIdentity registers m as the Identity instance for A. It also satisfies
// Associative lookups for A that have no instance of their own.
func ProvideIdentity[A any](r typeclass.Registry, m Identity[A]) typeclass.Registry {
	return r.Add(IdentityClass, keyFor[A](), m)
}

func ProvideEqual[A any](r typeclass.Registry, eq Equal[A]) typeclass.Registry {
	return r.Add(EqualClass, keyFor[A](), eq)
}

// ProvideCovariant registers c under the key (FA, FB).
func ProvideCovariant[A, B, FA, FB any](r typeclass.Registry, c Covariant[A, B, FA, FB]) typeclass.Registry {
	return r.Add(CovariantClass, keyFor2[FA, FB](), c)
}

// ProvideIdentityBoth registers ib under the key (FA, FB).
func ProvideIdentityBoth[FA, FB, FAB, FU any](r typeclass.Registry, ib IdentityBoth[FA, FB, FAB, FU]) typeclass.Registry {
	return r.Add(IdentityBothClass, keyFor2[FA, FB](), ib)
}

// ProvideDeriveEqual registers d under the key FA.
func ProvideDeriveEqual[A, FA any](r typeclass.Registry, d DeriveEqual[A, FA]) typeclass.Registry {
	return r.Add(DeriveEqualClass, keyFor[FA](), d)
}

// ProvideApplicative registers app under the key (FA, FB). It then satisfies
// Covariant and IdentityBoth lookups for the same key.
func ProvideApplicative[A, B, FA, FB, FAB, FU any](r typeclass.Registry, app Applicative[A, B, FA, FB, FAB, FU]) typeclass.Registry {
	return r.Add(ApplicativeClass, keyFor2[FA, FB](), app)
}

func SummonAssociative[A any](r typeclass.Registry) (Associative[A], error) {
	return summon[Associative[A]](r, AssociativeClass, keyFor[A]())
}

func SummonIdentity[A any](r typeclass.Registry) (Identity[A], error) {
	return summon[Identity[A]](r, IdentityClass, keyFor[A]())
}

func SummonEqual[A any](r typeclass.Registry) (Equal[A], error) {
	return summon[Equal[A]](r, EqualClass, keyFor[A]())
}

func SummonCovariant[A, B, FA, FB any](r typeclass.Registry) (Covariant[A, B, FA, FB], error) {
	return summon[Covariant[A, B, FA, FB]](r, CovariantClass, keyFor2[FA, FB]())
}

func SummonIdentityBoth[FA, FB, FAB, FU any](r typeclass.Registry) (IdentityBoth[FA, FB, FAB, FU], error) {
	return summon[IdentityBoth[FA, FB, FAB, FU]](r, IdentityBothClass, keyFor2[FA, FB]())
}

func SummonDeriveEqual[A, FA any](r typeclass.Registry) (DeriveEqual[A, FA], error) {
	return summon[DeriveEqual[A, FA]](r, DeriveEqualClass, keyFor[FA]())
}

// SummonApplicative returns the Applicative registered for (FA, FB) or, failing
// that, assembles one from the registered Covariant, IdentityBoth and DeriveEqual.
// A registered value that is not an Applicative is reported, not bypassed.
func SummonApplicative[A, B, FA, FB, FAB, FU any](r typeclass.Registry) (Applicative[A, B, FA, FB, FAB, FU], error) {
	app, err := summon[Applicative[A, B, FA, FB, FAB, FU]](r, ApplicativeClass, keyFor2[FA, FB]())
	if err == nil || !errors.Is(err, ErrNoInstance) {
		return app, err
	}
	covariant, err := SummonCovariant[A, B, FA, FB](r)
	if err != nil {
		return nil, err
	}
	identityBoth, err := SummonIdentityBoth[FA, FB, FAB, FU](r)
	if err != nil {
		return nil, err
	}
	deriveEqual, err := SummonDeriveEqual[A, FA](r)
	if err != nil {
		return nil, err
	}
	return NewApplicative(covariant, identityBoth, deriveEqual), nil
}

// Standard returns a registry holding the canonical instances of the basic types:
// addition for numbers, concatenation for strings, disjunction for bool, and ==
// for equality.
func Standard() typeclass.Registry {
	r := typeclass.NewRegistry()
	r = ProvideIdentity(r, Sum[int]())
	r = ProvideIdentity(r, Sum[int64]())
	r = ProvideIdentity(r, Sum[float64]())
	r = ProvideIdentity(r, Concat())
	r = ProvideIdentity(r, Or())
	r = ProvideEqual(r, DefaultEqual[int]())
	r = ProvideEqual(r, DefaultEqual[int64]())
	r = ProvideEqual(r, DefaultEqual[float64]())
	r = ProvideEqual(r, DefaultEqual[string]())
	r = ProvideEqual(r, DefaultEqual[bool]())
	return r
}

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

// Associative combines two values. Combine must be associative:
//
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
type Associative[A any] interface {
	Combine(l, r A) A
}

// Identity is an Associative with an identity element:
//
//	Combine(Identity(), a) == a == Combine(a, Identity())
type Identity[A any] interface {
	Associative[A]
	Identity() A
}

type associative[A any] struct {
	combine func(A, A) A
}

func (s associative[A]) Combine(l, r A) A { return s.combine(l, r) }

type identity[A any] struct {
	associative[A]
	identity A
}

func (m identity[A]) Identity() A { return m.identity }

// MakeAssociative returns an Associative backed by combine.
// Associativity is not checked.
func MakeAssociative[A any](combine func(l, r A) A) Associative[A] {
	return associative[A]{combine: combine}
}

// MakeIdentity returns an Identity with the given identity element and combine.
// Neither the identity nor the associativity laws are checked; see package laws.
func MakeIdentity[A any](identityElement A, combine func(l, r A) A) Identity[A] {
	return identity[A]{associative: associative[A]{combine: combine}, identity: identityElement}
}

// InvmapAssociative transports s along an isomorphism between A and B.
func InvmapAssociative[A, B any](s Associative[A], to func(A) B, from func(B) A) Associative[B] {
	return MakeAssociative(func(l, r B) B {
		return to(s.Combine(from(l), from(r)))
	})
}

// InvmapIdentity transports m along an isomorphism between A and B.
func InvmapIdentity[A, B any](m Identity[A], to func(A) B, from func(B) A) Identity[B] {
	return MakeIdentity(to(m.Identity()), func(l, r B) B {
		return to(m.Combine(from(l), from(r)))
	})
}

// CombineAll folds values with m, starting from the identity.
func CombineAll[A any](m Identity[A], values ...A) A {
	acc := m.Identity()
	for _, v := range values {
		acc = m.Combine(acc, v)
	}
	return acc
}

// CombineNonEmpty folds values with s. ok is false if values is empty.
func CombineNonEmpty[A any](s Associative[A], values ...A) (acc A, ok bool) {
	if len(values) == 0 {
		return acc, false
	}
	acc = values[0]
	for _, v := range values[1:] {
		acc = s.Combine(acc, v)
	}
	return acc, true
}

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

import "github.com/wdamron/prelude"

// Associativity: Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
func Associativity[A any]() Law[prelude.Associative[A], A] {
	return New("associativity", 3, func(s prelude.Associative[A], eq prelude.Equal[A], v []A) (bool, string) {
		a, b, c := v[0], v[1], v[2]
		return equalOrExplain(eq, s.Combine(s.Combine(a, b), c), s.Combine(a, s.Combine(b, c)))
	})
}

// LeftIdentity: Combine(Identity(), a) == a
func LeftIdentity[A any]() Law[prelude.Identity[A], A] {
	return New("leftIdentity", 1, func(m prelude.Identity[A], eq prelude.Equal[A], v []A) (bool, string) {
		return equalOrExplain(eq, m.Combine(m.Identity(), v[0]), v[0])
	})
}

// RightIdentity: Combine(a, Identity()) == a
func RightIdentity[A any]() Law[prelude.Identity[A], A] {
	return New("rightIdentity", 1, func(m prelude.Identity[A], eq prelude.Equal[A], v []A) (bool, string) {
		return equalOrExplain(eq, m.Combine(v[0], m.Identity()), v[0])
	})
}

func AssociativeLaws[A any]() LawSet[prelude.Associative[A], A] {
	return Of(Associativity[A]())
}

// IdentityLaws are the left and right identity laws together with the laws
// every Associative obeys.
func IdentityLaws[A any]() LawSet[prelude.Identity[A], A] {
	inherited := RefineSet(AssociativeLaws[A](), func(m prelude.Identity[A]) prelude.Associative[A] { return m })
	return Of(LeftIdentity[A](), RightIdentity[A]()).Combine(inherited)
}

// Equal laws are stated for the instance under test; the reference equality
// passed to Check is unused.

func Reflexivity[A any]() Law[prelude.Equal[A], A] {
	return New("reflexivity", 1, func(e prelude.Equal[A], _ prelude.Equal[A], v []A) (bool, string) {
		if e.Equal(v[0], v[0]) {
			return true, ""
		}
		return false, "a != a"
	})
}

func Symmetry[A any]() Law[prelude.Equal[A], A] {
	return New("symmetry", 2, func(e prelude.Equal[A], _ prelude.Equal[A], v []A) (bool, string) {
		if e.Equal(v[0], v[1]) == e.Equal(v[1], v[0]) {
			return true, ""
		}
		return false, "Equal(a, b) != Equal(b, a)"
	})
}

func Transitivity[A any]() Law[prelude.Equal[A], A] {
	return New("transitivity", 3, func(e prelude.Equal[A], _ prelude.Equal[A], v []A) (bool, string) {
		if !e.Equal(v[0], v[1]) || !e.Equal(v[1], v[2]) || e.Equal(v[0], v[2]) {
			return true, ""
		}
		return false, "a == b and b == c but a != c"
	})
}

func EqualLaws[A any]() LawSet[prelude.Equal[A], A] {
	return Of(Reflexivity[A](), Symmetry[A](), Transitivity[A]())
}

// CovariantIdentity: Map(id)(fa) == fa
func CovariantIdentity[A, FA any]() Law[prelude.Covariant[A, A, FA, FA], FA] {
	return New("covariantIdentity", 1, func(c prelude.Covariant[A, A, FA, FA], eq prelude.Equal[FA], v []FA) (bool, string) {
		return equalOrExplain(eq, c.Map(func(a A) A { return a })(v[0]), v[0])
	})
}

// CovariantComposition: Map(g . f)(fa) == Map(g)(Map(f)(fa))
func CovariantComposition[A, FA any](f, g func(A) A) Law[prelude.Covariant[A, A, FA, FA], FA] {
	return New("covariantComposition", 1, func(c prelude.Covariant[A, A, FA, FA], eq prelude.Equal[FA], v []FA) (bool, string) {
		composed := c.Map(func(a A) A { return g(f(a)) })(v[0])
		return equalOrExplain(eq, composed, c.Map(g)(c.Map(f)(v[0])))
	})
}

func CovariantLaws[A, FA any](f, g func(A) A) LawSet[prelude.Covariant[A, A, FA, FA], FA] {
	return Of(CovariantIdentity[A, FA](), CovariantComposition[A, FA](f, g))
}

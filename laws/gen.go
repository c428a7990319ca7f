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
	"math/rand/v2"

	"github.com/wdamron/prelude/tuple"
)

// Gen draws a sample value from rng.
type Gen[A any] func(rng *rand.Rand) A

// Int draws from [-1000, 1000].
func Int() Gen[int] { return IntRange(-1000, 1000) }

// IntRange draws from [lo, hi].
func IntRange(lo, hi int) Gen[int] {
	return func(rng *rand.Rand) int { return lo + rng.IntN(hi-lo+1) }
}

// String draws printable ASCII strings of length [0, 8].
func String() Gen[string] {
	return func(rng *rand.Rand) string {
		b := make([]byte, rng.IntN(9))
		for i := range b {
			b[i] = byte(rng.IntN(95) + 32)
		}
		return string(b)
	}
}

func Bool() Gen[bool] {
	return func(rng *rand.Rand) bool { return rng.IntN(2) == 1 }
}

func Const[A any](a A) Gen[A] {
	return func(*rand.Rand) A { return a }
}

func Map[A, B any](g Gen[A], f func(A) B) Gen[B] {
	return func(rng *rand.Rand) B { return f(g(rng)) }
}

// OneOf picks one of gs uniformly, then draws from it.
func OneOf[A any](gs ...Gen[A]) Gen[A] {
	return func(rng *rand.Rand) A { return gs[rng.IntN(len(gs))](rng) }
}

// SliceOf draws slices of length [0, maxLen].
func SliceOf[A any](g Gen[A], maxLen int) Gen[[]A] {
	return func(rng *rand.Rand) []A {
		out := make([]A, rng.IntN(maxLen+1))
		for i := range out {
			out[i] = g(rng)
		}
		return out
	}
}

func Tuple2Of[A1, A2 any](g1 Gen[A1], g2 Gen[A2]) Gen[tuple.Tuple2[A1, A2]] {
	return func(rng *rand.Rand) tuple.Tuple2[A1, A2] { return tuple.Of2(g1(rng), g2(rng)) }
}

func Tuple3Of[A1, A2, A3 any](g1 Gen[A1], g2 Gen[A2], g3 Gen[A3]) Gen[tuple.Tuple3[A1, A2, A3]] {
	return func(rng *rand.Rand) tuple.Tuple3[A1, A2, A3] { return tuple.Of3(g1(rng), g2(rng), g3(rng)) }
}

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

// Package tuple provides fixed-size heterogeneous products.
//
// Tuple2 through Tuple22 are generated by cmd/tuplegen. Every TupleN exposes its
// slots in order through Values, and FromN rebuilds a TupleN from such a slice,
// so algorithms written once over []any can be reused for every arity.
package tuple

import (
	"fmt"
	"reflect"
)

//go:generate go run ../cmd/tuplegen --max 22 --tuple tuple_gen.go --derive ../derive_gen.go

// Unit is the empty product. It has exactly one value.
type Unit struct{}

func (Unit) Arity() int    { return 0 }
func (Unit) Values() []any { return []any{} }
func FromUnit([]any) Unit  { return Unit{} }

// slot returns vs[i] as an A. A nil slot yields the zero value of A, so
// interface-typed slots survive a round trip through []any. Any other value not
// of type A panics.
func slot[A any](vs []any, i int) A {
	a, ok := vs[i].(A)
	if !ok && vs[i] != nil {
		panic(fmt.Sprintf("tuple: slot %d holds %T, want %v", i+1, vs[i], reflect.TypeFor[A]()))
	}
	return a
}

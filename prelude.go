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

// prelude provides algebraic capabilities for Go values, the laws they obey, and
// derivations that build capabilities for composite types from those of their parts.
//
// Capabilities are ordinary interfaces passed explicitly (dictionary-passing style):
//
//   * Associative: an associative Combine
//   * Identity: an Associative with an identity element
//   * Equal: an equivalence relation
//   * Covariant, IdentityBoth, DeriveEqual: capabilities of a type constructor,
//     expressed over its instantiations (F[A], F[B], ...)
//   * Applicative: the composite of Covariant, IdentityBoth and DeriveEqual
//
// Product derivation: DeriveProduct combines an ordered sequence of slot instances
// into one instance over the product, slot by slot. IdentityTuple2 through
// IdentityTuple22 (and the Associative and Equal counterparts) are generated
// wrappers that only translate between tuple.TupleN and the slot sequence.
//
// Resolution: instances may also be stored in an immutable typeclass.Registry and
// resolved by (class, type) with the Summon functions. Registration is explicit;
// refinement lets an Identity instance satisfy an Associative lookup.
//
// Laws are data, defined in package laws, and checked against any instance by
// sampling. Constructors never validate laws.
package prelude

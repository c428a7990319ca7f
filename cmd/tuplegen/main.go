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

// Command tuplegen emits the fixed-arity product boilerplate: the tuple.TupleN
// types and the IdentityTupleN, AssociativeTupleN and EqualTupleN wrappers
// around the generic product derivation.
//
// Usage:
//
//	go run ./cmd/tuplegen --max 22 --tuple tuple/tuple_gen.go --derive derive_gen.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
)

// license is copied to the top of every generated file.
const license = `// The MIT License (MIT)
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
`

const tupleTemplate = `{{.License}}
// Code generated by tuplegen. DO NOT EDIT.

package tuple
{{range .Arities}}
// Tuple{{.N}} is a product of {{.N}} values.
type Tuple{{.N}}[{{.Params}} any] struct {
{{range .Slots}}	V{{.I}} A{{.I}}
{{end}}}

// Of{{.N}} builds a Tuple{{.N}}.
func Of{{.N}}[{{.Params}} any]({{.Args}}) Tuple{{.N}}[{{.Params}}] {
	return Tuple{{.N}}[{{.Params}}]{ {{- .Fields}}}
}

// From{{.N}} rebuilds a Tuple{{.N}} from its ordered slots.
func From{{.N}}[{{.Params}} any](vs []any) Tuple{{.N}}[{{.Params}}] {
	return Tuple{{.N}}[{{.Params}}]{ {{- .Slotted}}}
}

// Arity returns {{.N}}.
func (Tuple{{.N}}[{{.Params}}]) Arity() int { return {{.N}} }

// Values returns the slots of t in order.
func (t Tuple{{.N}}[{{.Params}}]) Values() []any {
	return []any{ {{- .Values}}}
}
{{end}}`

const deriveTemplate = `{{.License}}
// Code generated by tuplegen. DO NOT EDIT.

package prelude

import "github.com/wdamron/prelude/tuple"
{{range .Arities}}
// IdentityTuple{{.N}} derives the slot-wise Identity of tuple.Tuple{{.N}}.
func IdentityTuple{{.N}}[{{.Params}} any]({{.Instances "i" "Identity"}}) Identity[tuple.Tuple{{.N}}[{{.Params}}]] {
	return InvmapIdentity(DeriveProduct({{.Erased "i" "EraseIdentity"}}), tuple.From{{.N}}[{{.Params}}], tuple.Tuple{{.N}}[{{.Params}}].Values)
}

// AssociativeTuple{{.N}} derives the slot-wise Associative of tuple.Tuple{{.N}}.
func AssociativeTuple{{.N}}[{{.Params}} any]({{.Instances "s" "Associative"}}) Associative[tuple.Tuple{{.N}}[{{.Params}}]] {
	return InvmapAssociative(DeriveAssociativeProduct({{.Erased "s" "EraseAssociative"}}), tuple.From{{.N}}[{{.Params}}], tuple.Tuple{{.N}}[{{.Params}}].Values)
}

// EqualTuple{{.N}} derives the slot-wise Equal of tuple.Tuple{{.N}}.
func EqualTuple{{.N}}[{{.Params}} any]({{.Instances "e" "Equal"}}) Equal[tuple.Tuple{{.N}}[{{.Params}}]] {
	return ContramapEqual(DeriveEqualProduct({{.Erased "e" "EraseEqual"}}), tuple.Tuple{{.N}}[{{.Params}}].Values)
}
{{end}}`

type slot struct{ I int }

// arity describes the TupleN being generated; its methods render comma-separated lists.
type arity struct {
	N     int
	Slots []slot
}

func newArity(n int) arity {
	a := arity{N: n, Slots: make([]slot, n)}
	for i := range a.Slots {
		a.Slots[i] = slot{I: i + 1}
	}
	return a
}

func (a arity) join(f func(i int) string) string {
	parts := make([]string, a.N)
	for i := 1; i <= a.N; i++ {
		parts[i-1] = f(i)
	}
	return strings.Join(parts, ", ")
}

func (a arity) Params() string {
	return a.join(func(i int) string { return "A" + strconv.Itoa(i) })
}

func (a arity) Args() string {
	return a.join(func(i int) string { return fmt.Sprintf("v%d A%d", i, i) })
}

func (a arity) Fields() string {
	return a.join(func(i int) string { return fmt.Sprintf("V%d: v%d", i, i) })
}

func (a arity) Slotted() string {
	return a.join(func(i int) string { return fmt.Sprintf("V%d: slot[A%d](vs, %d)", i, i, i-1) })
}

func (a arity) Values() string {
	return a.join(func(i int) string { return fmt.Sprintf("t.V%d", i) })
}

func (a arity) Instances(prefix, capability string) string {
	return a.join(func(i int) string { return fmt.Sprintf("%s%d %s[A%d]", prefix, i, capability, i) })
}

func (a arity) Erased(prefix, eraser string) string {
	return a.join(func(i int) string { return fmt.Sprintf("%s(%s%d)", eraser, prefix, i) })
}

type options struct {
	max    int
	tuple  string
	derive string
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "tuplegen",
		Short:         "Generate fixed-arity tuple types and product derivations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().IntVar(&opts.max, "max", 22, "largest tuple arity to generate")
	cmd.Flags().StringVar(&opts.tuple, "tuple", "tuple/tuple_gen.go", "output path for tuple types")
	cmd.Flags().StringVar(&opts.derive, "derive", "derive_gen.go", "output path for derivations")
	return cmd
}

func run(opts options) error {
	if opts.max < 2 {
		return fmt.Errorf("--max must be at least 2, got %d", opts.max)
	}
	data := struct {
		License string
		Arities []arity
	}{License: license}
	for n := 2; n <= opts.max; n++ {
		data.Arities = append(data.Arities, newArity(n))
	}
	if err := render(opts.tuple, tupleTemplate, data); err != nil {
		return err
	}
	return render(opts.derive, deriveTemplate, data)
}

func render(path, text string, data interface{}) error {
	tmpl, err := template.New(path).Parse(text)
	if err != nil {
		return fmt.Errorf("parse template for %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template for %s: %w", path, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tuplegen:", err)
		os.Exit(1)
	}
}

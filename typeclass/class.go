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

package typeclass

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCyclicRefinement is returned when a refinement would make a class its own super-class.
var ErrCyclicRefinement = errors.New("typeclass: cyclic refinement")

// Class is a named capability. A class refines its super-classes: an instance of
// a sub-class satisfies every (transitive) super-class.
type Class struct {
	// Id should be unique
	Id int
	// Name should be unique
	Name  string
	Super map[int]*Class
	Sub   map[int]*Class
}

// Create a new named class with no refinements.
func NewClass(id int, name string) *Class {
	return &Class{Id: id, Name: name}
}

func (c *Class) String() string { return c.Name }

// Add a super-class to the class. This is an alias for `super.AddSubClass(sub)`.
func (sub *Class) AddSuperClass(super *Class) error { return super.AddSubClass(sub) }

// Add a sub-class to the class. Refinement is kept acyclic; adding an existing
// edge is a no-op.
func (super *Class) AddSubClass(sub *Class) error {
	if super.Sub != nil && super.Sub[sub.Id] != nil {
		return nil
	}
	if super.Id == sub.Id || super.HasSuperClass(sub) {
		return fmt.Errorf("%w: %s refines %s", ErrCyclicRefinement, super.Name, sub.Name)
	}
	if sub.Super == nil {
		sub.Super = make(map[int]*Class)
	}
	if super.Sub == nil {
		super.Sub = make(map[int]*Class)
	}
	sub.Super[super.Id] = super
	super.Sub[sub.Id] = sub
	return nil
}

// Refine declares supers as super-classes of c, panicking on a cycle.
// Intended for package-level hierarchy declarations.
func (c *Class) Refine(supers ...*Class) *Class {
	for _, super := range supers {
		if err := c.AddSuperClass(super); err != nil {
			panic(err)
		}
	}
	return c
}

// Check if a class is declared as a (transitive) sub-class of another class.
func (c *Class) HasSuperClass(super *Class) bool {
	seen := make(map[int]bool, 8)
	return c.hasSuperClass(seen, super.Id)
}

func (c *Class) hasSuperClass(seen map[int]bool, id int) bool {
	seen[c.Id] = true
	for superId, super := range c.Super {
		switch {
		case superId == id:
			return true
		case seen[superId]:
			continue
		case super.hasSuperClass(seen, id):
			return true
		}
	}
	return false
}

// Satisfies reports whether an instance of c also satisfies want.
func (c *Class) Satisfies(want *Class) bool {
	return c.Id == want.Id || c.HasSuperClass(want)
}

// Supers returns the direct super-classes of c, ordered by id.
func (c *Class) Supers() []*Class { return sortedClasses(c.Super) }

// Subs returns the direct sub-classes of c, ordered by id.
func (c *Class) Subs() []*Class { return sortedClasses(c.Sub) }

// Visit c and all of its transitive sub-classes, breadth-first, each once.
// If visit returns false, the walk is stopped.
func (c *Class) Walk(visit func(*Class) bool) {
	seen := map[int]bool{c.Id: true}
	queue := []*Class{c}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if !visit(next) {
			return
		}
		for _, sub := range next.Subs() {
			if !seen[sub.Id] {
				seen[sub.Id] = true
				queue = append(queue, sub)
			}
		}
	}
}

func sortedClasses(m map[int]*Class) []*Class {
	out := make([]*Class, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}

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
	"fmt"
	"strings"

	"github.com/wdamron/prelude/internal/util"
)

// Order returns classes sorted so that every super-class precedes its sub-classes.
// Only refinements between members of classes are considered. An error wrapping
// ErrCyclicRefinement is returned if the hierarchy is not a strict partial order.
func Order(classes []*Class) ([]*Class, error) {
	vertex := make(map[int]int, len(classes))
	for i, c := range classes {
		vertex[c.Id] = i
	}
	g := util.NewGraph(len(classes))
	for i, c := range classes {
		for superId := range c.Super {
			if j, ok := vertex[superId]; ok {
				g.AddEdge(j, i)
			}
		}
	}
	order, cycle, ok := g.TopoSort()
	if !ok {
		names := make([]string, len(cycle))
		for i, v := range cycle {
			names[i] = classes[v].Name
		}
		return nil, fmt.Errorf("%w: %s", ErrCyclicRefinement, strings.Join(names, ", "))
	}
	out := make([]*Class, len(order))
	for i, v := range order {
		out[i] = classes[v]
	}
	return out, nil
}

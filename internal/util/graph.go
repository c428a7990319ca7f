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

package util

// Graph is an adjacency list over vertices 0..len(g)-1.
type Graph [][]int

func NewGraph(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool {
	for _, succ := range g[from] {
		if succ == to {
			return true
		}
	}
	return false
}

// SCC returns the strongly connected components of g in topological order:
// if there is an edge u -> v between different components, u's component comes first.
func (g Graph) SCC() [][]int {
	s := tarjan{
		index:   make([]int, len(g)),
		low:     make([]int, len(g)),
		onStack: make([]bool, len(g)),
	}
	for v := range g {
		if s.index[v] == 0 {
			g.visit(&s, v)
		}
	}
	// Tarjan emits components in reverse topological order.
	for i, j := 0, len(s.sccs)-1; i < j; i, j = i+1, j-1 {
		s.sccs[i], s.sccs[j] = s.sccs[j], s.sccs[i]
	}
	return s.sccs
}

// TopoSort orders the vertices of g so that every edge points forward.
// ok is false if g contains a cycle (including a self-loop); cycle then holds
// the vertices of the first cyclic component found.
func (g Graph) TopoSort() (order []int, cycle []int, ok bool) {
	order = make([]int, 0, len(g))
	for _, c := range g.SCC() {
		if len(c) > 1 || g.HasEdge(c[0], c[0]) {
			return nil, c, false
		}
		order = append(order, c[0])
	}
	return order, nil, true
}

type tarjan struct {
	counter int
	index   []int
	low     []int
	onStack []bool
	stack   []int
	sccs    [][]int
}

// Tarjan's SCC algorithm, based on https://github.com/gonum/gonum/blob/master/graph/topo/tarjan.go
func (g Graph) visit(s *tarjan, v int) {
	s.counter++
	s.index[v] = s.counter
	s.low[v] = s.counter
	s.stack = append(s.stack, v)
	s.onStack[v] = true

	for _, succ := range g[v] {
		switch {
		case s.index[succ] == 0:
			g.visit(s, succ)
			s.low[v] = min(s.low[v], s.low[succ])
		case s.onStack[succ]:
			s.low[v] = min(s.low[v], s.index[succ])
		}
	}

	if s.low[v] != s.index[v] {
		return
	}
	var c []int
	for {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.onStack[top] = false
		c = append(c, top)
		if top == v {
			break
		}
	}
	s.sccs = append(s.sccs, c)
}

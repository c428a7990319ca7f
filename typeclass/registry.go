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
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/benbjohnson/immutable"
)

// Key tags the type (or types) an instance governs. Keys of distinct types are
// distinct even when the types print the same, e.g. two local `type ID int`.
type Key struct {
	name  string
	ident string
}

// String returns the printed types, e.g. `int` or `[]int,[]string`.
func (k Key) String() string { return k.name }

// KeyOf builds a Key from the governed Go types, in order.
func KeyOf(types ...reflect.Type) Key {
	var name, ident strings.Builder
	for i, t := range types {
		if i > 0 {
			name.WriteByte(',')
			ident.WriteByte(',')
		}
		if t == nil {
			name.WriteString("<nil>")
			ident.WriteByte('0')
			continue
		}
		name.WriteString(t.String())
		ident.WriteString(strconv.FormatUint(typeIdent(t), 10))
	}
	return Key{name: name.String(), ident: ident.String()}
}

var typeIdents struct {
	sync.Mutex
	next uint64
	m    map[reflect.Type]uint64
}

// typeIdent numbers each distinct type from 1, in order of first use.
func typeIdent(t reflect.Type) uint64 {
	typeIdents.Lock()
	defer typeIdents.Unlock()
	if id, ok := typeIdents.m[t]; ok {
		return id
	}
	if typeIdents.m == nil {
		typeIdents.m = make(map[reflect.Type]uint64)
	}
	typeIdents.next++
	typeIdents.m[t] = typeIdents.next
	return typeIdents.next
}

// Instance is a witness that the types tagged by Key satisfy Class.
type Instance struct {
	Class *Class
	Key   Key
	Value interface{}
}

type entryKey struct {
	class int
	key   Key
}

type entryComparer struct{}

func (entryComparer) Compare(a, b interface{}) int {
	x, y := a.(entryKey), b.(entryKey)
	switch {
	case x.class < y.class:
		return -1
	case x.class > y.class:
		return 1
	}
	if c := strings.Compare(x.key.name, y.key.name); c != 0 {
		return c
	}
	return strings.Compare(x.key.ident, y.key.ident)
}

var emptyEntries = immutable.NewSortedMap(entryComparer{})

// Registry is an immutable mapping from (class, key) pairs to instances.
// The zero value is an empty registry.
type Registry struct {
	m *immutable.SortedMap
}

func NewRegistry() Registry { return Registry{emptyEntries} }

func (r Registry) entries() *immutable.SortedMap {
	if r.m == nil {
		return emptyEntries
	}
	return r.m
}

// Add returns a registry in which value is the instance of class for key.
// An instance previously registered for the same pair is replaced.
func (r Registry) Add(class *Class, key Key, value interface{}) Registry {
	inst := Instance{Class: class, Key: key, Value: value}
	return Registry{r.entries().Set(entryKey{class.Id, key}, inst)}
}

// Lookup returns the instance registered for exactly (class, key).
func (r Registry) Lookup(class *Class, key Key) (Instance, bool) {
	v, ok := r.entries().Get(entryKey{class.Id, key})
	if !ok {
		return Instance{}, false
	}
	return v.(Instance), true
}

// Find returns the instance registered for (class, key), or else the first
// instance for key registered under a transitive sub-class of class, nearest first.
func (r Registry) Find(class *Class, key Key) (inst Instance, ok bool) {
	class.Walk(func(c *Class) bool {
		inst, ok = r.Lookup(c, key)
		return !ok
	})
	return inst, ok
}

// Get the number of instances in the registry.
func (r Registry) Len() int { return r.entries().Len() }

// Iterate over instances ordered by class id, then printed key.
// If f returns false, iteration will be stopped.
func (r Registry) Range(f func(Instance) bool) {
	iter := r.entries().Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		if !f(v.(Instance)) {
			return
		}
	}
}

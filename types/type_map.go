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

package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptyTypeMap = TypeMap{emptyMap}

// TypeMap contains immutable mappings from labels to types, sorted by label.
type TypeMap struct {
	m *immutable.SortedMap
}

func NewTypeMap() TypeMap { return TypeMap{emptyMap} }

// Create a TypeMap with a single entry.
func SingletonTypeMap(label string, t Type) TypeMap {
	return TypeMap{emptyMap.Set(label, t)}
}

// Create a TypeMap from a Go map.
func NewFlatTypeMap(m map[string]Type) TypeMap {
	b := NewTypeMapBuilder()
	for label, t := range m {
		b.Set(label, t)
	}
	return b.Build()
}

func (m TypeMap) imm() *immutable.SortedMap {
	if m.m == nil {
		return emptyMap
	}
	return m.m
}

// Get the number of entries in the map.
func (m TypeMap) Len() int { return m.imm().Len() }

// Get the type for a label.
func (m TypeMap) Get(label string) (Type, bool) {
	t, ok := m.imm().Get(label)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set returns a copy of the map with label bound to t.
func (m TypeMap) Set(label string, t Type) TypeMap {
	return TypeMap{m.imm().Set(label, t)}
}

// Labels returns the labels in the map, in sorted order.
func (m TypeMap) Labels() []string {
	labels := make([]string, 0, m.Len())
	m.Range(func(label string, _ Type) bool {
		labels = append(labels, label)
		return true
	})
	return labels
}

// Iterate over entries in the map, sorted by label.
// If f returns false, iteration will be stopped.
func (m TypeMap) Range(f func(string, Type) bool) {
	iter := m.imm().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Convert the map to a builder for modification, without mutating the existing map.
func (m TypeMap) Builder() *TypeMapBuilder {
	return &TypeMapBuilder{m.imm()}
}

// TypeMapBuilder accumulates updates to a map before finalization.
type TypeMapBuilder struct {
	m *immutable.SortedMap
}

func NewTypeMapBuilder() *TypeMapBuilder {
	return &TypeMapBuilder{emptyMap}
}

// Get the number of entries in the builder.
func (b *TypeMapBuilder) Len() int { return b.m.Len() }

// Get the type for a label in the builder.
func (b *TypeMapBuilder) Get(label string) (Type, bool) {
	t, ok := b.m.Get(label)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set the type for the given label in the builder.
func (b *TypeMapBuilder) Set(label string, t Type) *TypeMapBuilder {
	b.m = b.m.Set(label, t)
	return b
}

// Delete the given label from the builder.
func (b *TypeMapBuilder) Delete(label string) *TypeMapBuilder {
	b.m = b.m.Delete(label)
	return b
}

// Finalize the builder into an immutable map.
func (b *TypeMapBuilder) Build() TypeMap { return TypeMap{b.m} }

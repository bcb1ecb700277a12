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

package util_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/wdamron/polyml/internal/util"
)

func withVertices(n int) Graph {
	var g Graph
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	return g
}

func TestSCCTopologicalOrder(t *testing.T) {
	g := withVertices(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(2, 3)

	sccs := g.SCC()
	require.Len(t, sccs, 3)
	assert.Equal(t, []int{0}, sccs[0])
	mid := append([]int(nil), sccs[1]...)
	sort.Ints(mid)
	assert.Equal(t, []int{1, 2}, mid)
	assert.Equal(t, []int{3}, sccs[2])
}

func TestAddVertexAndCycle(t *testing.T) {
	var g Graph
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	require.Equal(t, []int{0, 1, 2}, []int{a, b, c})

	g.AddEdge(a, b)
	g.AddEdge(b, c)
	_, cyclic := g.Cycle(a)
	assert.False(t, cyclic)

	g.AddEdge(c, a)
	cycle, cyclic := g.Cycle(b)
	require.True(t, cyclic)
	sort.Ints(cycle)
	assert.Equal(t, []int{0, 1, 2}, cycle)
}

func TestSelfLoopIsCycle(t *testing.T) {
	g := withVertices(2)
	g.AddEdge(1, 1)
	_, cyclic := g.Cycle(0)
	assert.False(t, cyclic)
	cycle, cyclic := g.Cycle(1)
	require.True(t, cyclic)
	assert.Equal(t, []int{1}, cycle)
}

func TestAddEdgeDeduplicates(t *testing.T) {
	g := withVertices(2)
	g.AddEdge(0, 1)
	g.AddEdge(0, 1)
	assert.Equal(t, []int{1}, g[0])
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))
}

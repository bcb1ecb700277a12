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
	"strconv"
)

// Type-variable, identified by name.
type Var struct {
	Name string
	Pos  Pos
}

// Create a type-variable with the given name.
func NewVar(name string) *Var { return &Var{Name: name} }

// Pump allocates fresh type-variables for a single inference run. Variables are
// named `V1`, `V2`, ... in allocation order.
//
// A pump cannot be used concurrently.
type Pump struct {
	next int
}

// Create a pump which will allocate `V1` first.
func NewPump() *Pump { return &Pump{} }

// Fresh allocates a new type-variable.
func (p *Pump) Fresh() *Var {
	p.next++
	return &Var{Name: "V" + strconv.Itoa(p.next)}
}

// FreshAt allocates a new type-variable carrying a source position.
func (p *Pump) FreshAt(pos Pos) *Var {
	tv := p.Fresh()
	tv.Pos = pos
	return tv
}

// Count returns the number of type-variables allocated so far.
func (p *Pump) Count() int { return p.next }

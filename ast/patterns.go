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

package ast

// Pattern is the base for all patterns.
type Pattern interface {
	PatternName() string
	Position() Pos
}

var (
	_ Pattern = (*PWildcard)(nil)
	_ Pattern = (*PVar)(nil)
	_ Pattern = (*PLiteral)(nil)
	_ Pattern = (*PTuple)(nil)
	_ Pattern = (*PRecord)(nil)
	_ Pattern = (*PConstructor)(nil)
)

// Wildcard: `_`
type PWildcard struct {
	Pos Pos
}

func (p *PWildcard) PatternName() string { return "PWildcard" }
func (p *PWildcard) Position() Pos       { return p.Pos }

// Variable binding: `x`
type PVar struct {
	Name string
	Pos  Pos
}

func (p *PVar) PatternName() string { return "PVar" }
func (p *PVar) Position() Pos       { return p.Pos }

// Literal: `10`
type PLiteral struct {
	Literal Literal
}

func (p *PLiteral) PatternName() string { return "PLiteral" }
func (p *PLiteral) Position() Pos       { return p.Literal.Pos }

// Tuple: `(a, b)`
type PTuple struct {
	Elems []Pattern
	Pos   Pos
}

func (p *PTuple) PatternName() string { return "PTuple" }
func (p *PTuple) Position() Pos       { return p.Pos }

// Record: `{a: p}` (closed) or `{a: p | _}` (open). Open patterns ignore unlisted fields.
type PRecord struct {
	Fields []PField
	Open   bool
	Pos    Pos
}

func (p *PRecord) PatternName() string { return "PRecord" }
func (p *PRecord) Position() Pos       { return p.Pos }

// Paired label and pattern
type PField struct {
	Label   string
	Pattern Pattern
}

// Constructor: `Cons x xs`, `List.Nil`
type PConstructor struct {
	Qualifier string
	Name      string
	Args      []Pattern
	Pos       Pos
}

func (p *PConstructor) PatternName() string { return "PConstructor" }
func (p *PConstructor) Position() Pos       { return p.Pos }

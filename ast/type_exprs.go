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

// TypeExpr is the base for type annotations and declared types.
type TypeExpr interface {
	TypeExprName() string
	Position() Pos
}

var (
	_ TypeExpr = (*TVar)(nil)
	_ TypeExpr = (*TCon)(nil)
	_ TypeExpr = (*TFunc)(nil)
	_ TypeExpr = (*TTuple)(nil)
	_ TypeExpr = (*TRecord)(nil)
)

// Type-variable: `a`
type TVar struct {
	Name string
	Pos  Pos
}

func (t *TVar) TypeExprName() string { return "TVar" }
func (t *TVar) Position() Pos        { return t.Pos }

// Named type, optionally qualified and applied to arguments: `Int`, `List a`, `M.Tree Int`
type TCon struct {
	Qualifier string
	Name      string
	Args      []TypeExpr
	Pos       Pos
}

func (t *TCon) TypeExprName() string { return "TCon" }
func (t *TCon) Position() Pos        { return t.Pos }

// Function type: `a -> b`
type TFunc struct {
	From TypeExpr
	To   TypeExpr
	Pos  Pos
}

func (t *TFunc) TypeExprName() string { return "TFunc" }
func (t *TFunc) Position() Pos        { return t.Pos }

// Tuple type: `(a, b)`
type TTuple struct {
	Elems []TypeExpr
	Pos   Pos
}

func (t *TTuple) TypeExprName() string { return "TTuple" }
func (t *TTuple) Position() Pos        { return t.Pos }

// Record type: `{a : Int}` (closed) or `{a : Int | _}` (open)
type TRecord struct {
	Fields []TField
	Open   bool
	Pos    Pos
}

func (t *TRecord) TypeExprName() string { return "TRecord" }
func (t *TRecord) Position() Pos        { return t.Pos }

// Paired label and type
type TField struct {
	Label string
	Type  TypeExpr
}

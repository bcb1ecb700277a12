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

import (
	"github.com/wdamron/polyml/types"
)

// Pos is a source position.
type Pos = types.Pos

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Position of the expression in source.
	Position() Pos
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Constructor)(nil)
	_ Expr = (*Apply)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*Match)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*RecordExtend)(nil)
	_ Expr = (*RecordSelect)(nil)
	_ Expr = (*BinOp)(nil)
)

// Kind of a literal value
type LitKind int

const (
	UnitLit LitKind = iota
	IntLit
	BoolLit
	StringLit
	CharLit
)

// Literal value: `10`, `true`, `"abc"`, `'c'`, `()`
type Literal struct {
	Kind LitKind
	Int  int64
	Bool bool
	Str  string
	Char rune
	Pos  Pos
}

// "Literal"
func (e *Literal) ExprName() string { return "Literal" }
func (e *Literal) Position() Pos    { return e.Pos }

// Variable, optionally qualified by an import alias: `x`, `List.map`
type Var struct {
	Qualifier string
	Name      string
	Pos       Pos
}

// "Var"
func (e *Var) ExprName() string { return "Var" }
func (e *Var) Position() Pos    { return e.Pos }

// Data constructor, optionally qualified by an import alias: `Nil`, `List.Cons`
type Constructor struct {
	Qualifier string
	Name      string
	Pos       Pos
}

// "Constructor"
func (e *Constructor) ExprName() string { return "Constructor" }
func (e *Constructor) Position() Pos    { return e.Pos }

// Application: `f x`
type Apply struct {
	Func Expr
	Arg  Expr
	Pos  Pos
}

// "Apply"
func (e *Apply) ExprName() string { return "Apply" }
func (e *Apply) Position() Pos    { return e.Pos }

// Abstraction: `\x = x`, `\(x : Int) : Int = x`
//
// ParamType and ReturnType are optional annotations.
type Lambda struct {
	Param      string
	ParamType  TypeExpr
	ReturnType TypeExpr
	Body       Expr
	Pos        Pos
}

// "Lambda"
func (e *Lambda) ExprName() string { return "Lambda" }
func (e *Lambda) Position() Pos    { return e.Pos }

// Conditional: `if c t else e`
type If struct {
	Guard Expr
	Then  Expr
	Else  Expr
	Pos   Pos
}

// "If"
func (e *If) ExprName() string { return "If" }
func (e *If) Position() Pos    { return e.Pos }

// Let-bindings: `let a = 1 ; b = 2 in e`, `let rec f = ... in e`
//
// A let without a body declares its bindings in the enclosing top-level scope.
type Let struct {
	Rec   bool
	Decls []Decl
	Body  Expr
	Pos   Pos
}

// "Let"
func (e *Let) ExprName() string { return "Let" }
func (e *Let) Position() Pos    { return e.Pos }

// IsDeclaration reports whether the let has no body.
func (e *Let) IsDeclaration() bool { return e.Body == nil }

// Declaration within a let: `pub f : Int -> Int = \x = x`
type Decl struct {
	Name       string
	Visibility Visibility
	// Type is an optional annotation.
	Type  TypeExpr
	Value Expr
	Pos   Pos
}

// Pattern-matching: `match e with p1 -> e1 | p2 -> e2`
type Match struct {
	Value Expr
	Cases []Case
	Pos   Pos
}

// "Match"
func (e *Match) ExprName() string { return "Match" }
func (e *Match) Position() Pos    { return e.Pos }

// Case within Match: `p -> e`
type Case struct {
	Pattern Pattern
	Body    Expr
}

// Tuple: `(a, b)`. The empty tuple is unit.
type Tuple struct {
	Elems []Expr
	Pos   Pos
}

// "Tuple"
func (e *Tuple) ExprName() string { return "Tuple" }
func (e *Tuple) Position() Pos    { return e.Pos }

// Record literal or extension: `{a: 1, b: 2}`, `{a: 1 | r}`
//
// A nil Record denotes a closed record literal.
type RecordExtend struct {
	Fields []Field
	Record Expr
	Pos    Pos
}

// "RecordExtend"
func (e *RecordExtend) ExprName() string { return "RecordExtend" }
func (e *RecordExtend) Position() Pos    { return e.Pos }

// Paired label and value
type Field struct {
	Label string
	Value Expr
}

// Selecting value of label: `r.a`
type RecordSelect struct {
	Record Expr
	Label  string
	Pos    Pos
}

// "RecordSelect"
func (e *RecordSelect) ExprName() string { return "RecordSelect" }
func (e *RecordSelect) Position() Pos    { return e.Pos }

// Binary operator
type Op string

const (
	OpAdd    Op = "+"
	OpSub    Op = "-"
	OpMul    Op = "*"
	OpDiv    Op = "/"
	OpEq     Op = "=="
	OpNeq    Op = "/="
	OpLt     Op = "<"
	OpLe     Op = "<="
	OpGt     Op = ">"
	OpGe     Op = ">="
	OpAnd    Op = "&&"
	OpOr     Op = "||"
	OpConcat Op = "++"
)

// Binary operation: `a + b`
type BinOp struct {
	Op    Op
	Left  Expr
	Right Expr
	Pos   Pos
}

// "BinOp"
func (e *BinOp) ExprName() string { return "BinOp" }
func (e *BinOp) Position() Pos    { return e.Pos }

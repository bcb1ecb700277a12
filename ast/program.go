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

// Visibility of a top-level declaration
type Visibility int

const (
	Unspecified Visibility = iota
	Private
	Public
	// Opaque data types are exported without their constructors.
	Opaque
)

// Exported reports whether a declaration is visible to importing modules.
func (v Visibility) Exported() bool { return v == Public || v == Opaque }

func (v Visibility) String() string {
	switch v {
	case Private:
		return "private"
	case Public:
		return "pub"
	case Opaque:
		return "opaque"
	}
	return ""
}

// Program is a parsed module: an ordered sequence of top-level elements.
type Program []Element

// Element is the base for top-level elements.
type Element interface {
	ElementName() string
	Position() Pos
}

var (
	_ Element = (*ExprElement)(nil)
	_ Element = (*DataElement)(nil)
	_ Element = (*AliasElement)(nil)
	_ Element = (*ImportElement)(nil)
)

// Top-level expression or let-declaration
type ExprElement struct {
	Expr Expr
}

func (el *ExprElement) ElementName() string { return "ExprElement" }
func (el *ExprElement) Position() Pos       { return el.Expr.Position() }

// Group of mutually-recursive data type declarations
type DataElement struct {
	Decls []DataDecl
	Pos   Pos
}

func (el *DataElement) ElementName() string { return "DataElement" }
func (el *DataElement) Position() Pos       { return el.Pos }

// Data type declaration: `pub data List a = Nil | Cons a (List a)`
type DataDecl struct {
	Name         string
	Params       []string
	Constructors []ConstructorDecl
	Visibility   Visibility
	Pos          Pos
}

// Constructor declaration: `Cons a (List a)`
type ConstructorDecl struct {
	Name string
	Args []TypeExpr
	Pos  Pos
}

// Type alias declaration: `pub type Point = {x : Int, y : Int}`
type AliasElement struct {
	Name       string
	Params     []string
	Type       TypeExpr
	Visibility Visibility
	Pos        Pos
}

func (el *AliasElement) ElementName() string { return "AliasElement" }
func (el *AliasElement) Position() Pos       { return el.Pos }

// Import statement.
//
//	import * from "./list"           (All)
//	import * as L from "./list"      (All, As)
//	import {map, pub List as L} from "./list"
type ImportElement struct {
	Module string
	All    bool
	As     string
	Names  []ImportName
	Pos    Pos
}

func (el *ImportElement) ElementName() string { return "ImportElement" }
func (el *ImportElement) Position() Pos       { return el.Pos }

// Named import, with an optional local name. Public named imports are re-exported.
type ImportName struct {
	Name       string
	As         string
	Visibility Visibility
	Pos        Pos
}

// LocalName returns the name bound in the importing module.
func (n ImportName) LocalName() string {
	if n.As != "" {
		return n.As
	}
	return n.Name
}

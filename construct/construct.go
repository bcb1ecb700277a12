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

package construct

import (
	"github.com/wdamron/polyml/ast"
	"github.com/wdamron/polyml/types"
)

// Types

// Type-variable: `a`
func TVar(name string) *types.Var {
	return types.NewVar(name)
}

// Function type: `Int -> Int`
func TArrow(from, to types.Type) *types.Arrow {
	return &types.Arrow{From: from, To: to}
}

// Curried function type: `Int -> Int -> Int`
func TArrows(ts ...types.Type) types.Type {
	t := ts[len(ts)-1]
	for i := len(ts) - 2; i >= 0; i-- {
		t = &types.Arrow{From: ts[i], To: t}
	}
	return t
}

// Tuple type: `(Int, Bool)`
func TTuple(elems ...types.Type) *types.Tuple {
	return &types.Tuple{Elems: elems}
}

// Data type: `List Int`
func TData(def *types.DataDef, args ...types.Type) *types.Data {
	return &types.Data{Def: def, Args: args}
}

// Closed record type: `{a : Int, b : Bool}`
func TRecord(fields map[string]types.Type) types.Type {
	return types.NewRow(types.NewFlatTypeMap(fields), &types.RowEmpty{})
}

// Open record type: `{a : Int | r}`
func TOpenRecord(fields map[string]types.Type, tail string) types.Type {
	return types.NewRow(types.NewFlatTypeMap(fields), types.NewVar(tail))
}

// Data type definition: `data Maybe a = Nothing | Just a`
func DataDef(module, name string, params []string, ctors ...types.ConstructorDef) *types.DataDef {
	return &types.DataDef{Module: module, Name: name, Params: params, Constructors: ctors}
}

// Constructor definition within DataDef: `Just a`
func Ctor(name string, args ...types.Type) types.ConstructorDef {
	return types.ConstructorDef{Name: name, Args: args}
}

// Literals:

func Int(i int64) *ast.Literal { return &ast.Literal{Kind: ast.IntLit, Int: i} }

func Bool(b bool) *ast.Literal { return &ast.Literal{Kind: ast.BoolLit, Bool: b} }

func Str(s string) *ast.Literal { return &ast.Literal{Kind: ast.StringLit, Str: s} }

func Char(c rune) *ast.Literal { return &ast.Literal{Kind: ast.CharLit, Char: c} }

// Unit: `()`
func Unit() *ast.Literal { return &ast.Literal{Kind: ast.UnitLit} }

// Expressions:

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Qualified variable: `M.x`
func QVar(qualifier, name string) *ast.Var {
	return &ast.Var{Qualifier: qualifier, Name: name}
}

// Data constructor: `Cons`
func Con(name string) *ast.Constructor {
	return &ast.Constructor{Name: name}
}

// Qualified data constructor: `M.Cons`
func QCon(qualifier, name string) *ast.Constructor {
	return &ast.Constructor{Qualifier: qualifier, Name: name}
}

// Application: `f x y`
func Apply(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Apply{Func: f, Arg: arg}
	}
	return f
}

// Abstraction: `\x = body`
func Lambda(param string, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Param: param, Body: body}
}

// Curried abstraction: `\x = \y = body`
func Lambdas(params []string, body ast.Expr) ast.Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = &ast.Lambda{Param: params[i], Body: body}
	}
	return body
}

// Conditional: `if guard then else otherwise`
func If(guard, then, otherwise ast.Expr) *ast.If {
	return &ast.If{Guard: guard, Then: then, Else: otherwise}
}

// Let-binding: `let a = 1 in e`
func Let(name string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Decls: []ast.Decl{{Name: name, Value: value}}, Body: body}
}

// Recursive let-bindings: `let rec f = ... ; g = ... in e`
func LetRec(decls []ast.Decl, body ast.Expr) *ast.Let {
	return &ast.Let{Rec: true, Decls: decls, Body: body}
}

// Grouped let-bindings: `let a = 1 ; b = 2 in e`
func LetGroup(decls []ast.Decl, body ast.Expr) *ast.Let {
	return &ast.Let{Decls: decls, Body: body}
}

// Declaration within a let-group
func Decl(name string, value ast.Expr) ast.Decl {
	return ast.Decl{Name: name, Value: value}
}

// Public top-level declaration: `pub let name = value`
func PubDecl(name string, value ast.Expr) ast.Decl {
	return ast.Decl{Name: name, Visibility: ast.Public, Value: value}
}

// Pattern-matching: `match value with p1 -> e1 | p2 -> e2`
func Match(value ast.Expr, cases ...ast.Case) *ast.Match {
	return &ast.Match{Value: value, Cases: cases}
}

// Case within Match: `p -> body`
func Case(pattern ast.Pattern, body ast.Expr) ast.Case {
	return ast.Case{Pattern: pattern, Body: body}
}

// Tuple: `(a, b)`
func Tuple(elems ...ast.Expr) *ast.Tuple {
	return &ast.Tuple{Elems: elems}
}

// Record literal: `{a: 1, b: 2}`
func Record(fields ...ast.Field) *ast.RecordExtend {
	return &ast.RecordExtend{Fields: fields}
}

// Extending record: `{a: 1 | r}`
func RecordExtend(record ast.Expr, fields ...ast.Field) *ast.RecordExtend {
	return &ast.RecordExtend{Fields: fields, Record: record}
}

// Paired label and value
func Field(label string, value ast.Expr) ast.Field {
	return ast.Field{Label: label, Value: value}
}

// Selecting value of label: `r.a`
func RecordSelect(record ast.Expr, label string) *ast.RecordSelect {
	return &ast.RecordSelect{Record: record, Label: label}
}

// Binary operator: `a + b`
func BinOp(op ast.Op, left, right ast.Expr) *ast.BinOp {
	return &ast.BinOp{Op: op, Left: left, Right: right}
}

// Patterns:

// Wildcard: `_`
func PWild() *ast.PWildcard { return &ast.PWildcard{} }

func PVar(name string) *ast.PVar { return &ast.PVar{Name: name} }

// Literal pattern: `10`
func PLit(lit *ast.Literal) *ast.PLiteral { return &ast.PLiteral{Literal: *lit} }

func PTuple(elems ...ast.Pattern) *ast.PTuple { return &ast.PTuple{Elems: elems} }

// Closed record pattern: `{a: p}`
func PRecord(fields ...ast.PField) *ast.PRecord { return &ast.PRecord{Fields: fields} }

// Open record pattern: `{a: p | _}`
func POpenRecord(fields ...ast.PField) *ast.PRecord {
	return &ast.PRecord{Fields: fields, Open: true}
}

func PField(label string, pattern ast.Pattern) ast.PField {
	return ast.PField{Label: label, Pattern: pattern}
}

// Constructor pattern: `Cons x xs`
func PCon(name string, args ...ast.Pattern) *ast.PConstructor {
	return &ast.PConstructor{Name: name, Args: args}
}

// Qualified constructor pattern: `M.Cons x xs`
func PQCon(qualifier, name string, args ...ast.Pattern) *ast.PConstructor {
	return &ast.PConstructor{Qualifier: qualifier, Name: name, Args: args}
}

// Type expressions:

func TEVar(name string) *ast.TVar { return &ast.TVar{Name: name} }

// Named type: `List a`
func TECon(name string, args ...ast.TypeExpr) *ast.TCon { return &ast.TCon{Name: name, Args: args} }

// Qualified named type: `M.List a`
func TEQCon(qualifier, name string, args ...ast.TypeExpr) *ast.TCon {
	return &ast.TCon{Qualifier: qualifier, Name: name, Args: args}
}

func TEFunc(from, to ast.TypeExpr) *ast.TFunc { return &ast.TFunc{From: from, To: to} }

func TETuple(elems ...ast.TypeExpr) *ast.TTuple { return &ast.TTuple{Elems: elems} }

// Record type expression: `{a : Int}`, or `{a : Int | ..}` when open
func TERecord(open bool, fields ...ast.TField) *ast.TRecord {
	return &ast.TRecord{Fields: fields, Open: open}
}

func TEField(label string, t ast.TypeExpr) ast.TField { return ast.TField{Label: label, Type: t} }

// Top-level elements:

func ExprEl(e ast.Expr) *ast.ExprElement { return &ast.ExprElement{Expr: e} }

// Top-level declarations: `let a = 1 ; b = 2`
func Decls(decls ...ast.Decl) *ast.ExprElement {
	return &ast.ExprElement{Expr: &ast.Let{Decls: decls}}
}

// Recursive top-level declarations: `let rec f = ... ; g = ...`
func RecDecls(decls ...ast.Decl) *ast.ExprElement {
	return &ast.ExprElement{Expr: &ast.Let{Rec: true, Decls: decls}}
}

// Data declaration group: `data T = ... and U = ...`
func Data(decls ...ast.DataDecl) *ast.DataElement { return &ast.DataElement{Decls: decls} }

// Data declaration within a group
func DataDecl(vis ast.Visibility, name string, params []string, ctors ...ast.ConstructorDecl) ast.DataDecl {
	return ast.DataDecl{Name: name, Params: params, Constructors: ctors, Visibility: vis}
}

// Constructor declaration: `Cons a (List a)`
func CtorDecl(name string, args ...ast.TypeExpr) ast.ConstructorDecl {
	return ast.ConstructorDecl{Name: name, Args: args}
}

// Type alias: `type Point = {x : Int, y : Int}`
func Alias(vis ast.Visibility, name string, params []string, t ast.TypeExpr) *ast.AliasElement {
	return &ast.AliasElement{Name: name, Params: params, Type: t, Visibility: vis}
}

// Import everything: `import "m" as M`
func ImportAll(module, as string) *ast.ImportElement {
	return &ast.ImportElement{Module: module, All: true, As: as}
}

// Import named: `import "m" (a, b as c)`
func ImportNames(module string, names ...ast.ImportName) *ast.ImportElement {
	return &ast.ImportElement{Module: module, Names: names}
}

// Named import: `b as c`
func ImportName(name, as string) ast.ImportName { return ast.ImportName{Name: name, As: as} }

// Program
func Program(els ...ast.Element) ast.Program { return ast.Program(els) }

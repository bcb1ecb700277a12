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
	"strconv"
	"strings"
)

// ExprString returns a string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// PatternString returns a string representation of a pattern.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, false, p)
	return sb.String()
}

// TypeExprString returns a string representation of a type expression.
func TypeExprString(t TypeExpr) string {
	var sb strings.Builder
	typeExprString(&sb, false, t)
	return sb.String()
}

func literalString(sb *strings.Builder, lit *Literal) {
	switch lit.Kind {
	case UnitLit:
		sb.WriteString("()")
	case IntLit:
		sb.WriteString(strconv.FormatInt(lit.Int, 10))
	case BoolLit:
		sb.WriteString(strconv.FormatBool(lit.Bool))
	case StringLit:
		sb.WriteString(strconv.Quote(lit.Str))
	case CharLit:
		sb.WriteString(strconv.QuoteRune(lit.Char))
	}
}

func qualified(sb *strings.Builder, qualifier, name string) {
	if qualifier != "" {
		sb.WriteString(qualifier)
		sb.WriteByte('.')
	}
	sb.WriteString(name)
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *Literal:
		literalString(sb, et)

	case *Var:
		qualified(sb, et.Qualifier, et.Name)

	case *Constructor:
		qualified(sb, et.Qualifier, et.Name)

	case *Apply:
		if simple {
			sb.WriteByte('(')
		}
		if _, curried := et.Func.(*Apply); curried {
			exprString(sb, false, et.Func)
		} else {
			exprString(sb, true, et.Func)
		}
		sb.WriteByte(' ')
		exprString(sb, true, et.Arg)
		if simple {
			sb.WriteByte(')')
		}

	case *Lambda:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteByte('\\')
		if et.ParamType != nil {
			sb.WriteByte('(')
			sb.WriteString(et.Param)
			sb.WriteString(" : ")
			typeExprString(sb, false, et.ParamType)
			sb.WriteByte(')')
		} else {
			sb.WriteString(et.Param)
		}
		if et.ReturnType != nil {
			sb.WriteString(" : ")
			typeExprString(sb, false, et.ReturnType)
		}
		sb.WriteString(" = ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *If:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("if ")
		exprString(sb, true, et.Guard)
		sb.WriteByte(' ')
		exprString(sb, true, et.Then)
		sb.WriteString(" else ")
		exprString(sb, false, et.Else)
		if simple {
			sb.WriteByte(')')
		}

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		if et.Rec {
			sb.WriteString("rec ")
		}
		for i, d := range et.Decls {
			if i > 0 {
				sb.WriteString(" ; ")
			}
			if d.Visibility != Unspecified {
				sb.WriteString(d.Visibility.String())
				sb.WriteByte(' ')
			}
			sb.WriteString(d.Name)
			if d.Type != nil {
				sb.WriteString(" : ")
				typeExprString(sb, false, d.Type)
			}
			sb.WriteString(" = ")
			exprString(sb, false, d.Value)
		}
		if et.Body != nil {
			sb.WriteString(" in ")
			exprString(sb, false, et.Body)
		}
		if simple {
			sb.WriteByte(')')
		}

	case *Match:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("match ")
		exprString(sb, false, et.Value)
		sb.WriteString(" with")
		for i, c := range et.Cases {
			if i > 0 {
				sb.WriteString(" |")
			}
			sb.WriteByte(' ')
			patternString(sb, false, c.Pattern)
			sb.WriteString(" -> ")
			exprString(sb, false, c.Body)
		}
		if simple {
			sb.WriteByte(')')
		}

	case *Tuple:
		sb.WriteByte('(')
		for i, el := range et.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, el)
		}
		sb.WriteByte(')')

	case *RecordExtend:
		sb.WriteByte('{')
		for i, f := range et.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Label)
			sb.WriteString(": ")
			exprString(sb, false, f.Value)
		}
		if et.Record != nil {
			sb.WriteString(" | ")
			exprString(sb, false, et.Record)
		}
		sb.WriteByte('}')

	case *RecordSelect:
		exprString(sb, true, et.Record)
		sb.WriteByte('.')
		sb.WriteString(et.Label)

	case *BinOp:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Left)
		sb.WriteByte(' ')
		sb.WriteString(string(et.Op))
		sb.WriteByte(' ')
		exprString(sb, true, et.Right)
		if simple {
			sb.WriteByte(')')
		}
	}
}

func patternString(sb *strings.Builder, simple bool, p Pattern) {
	switch pt := p.(type) {
	case *PWildcard:
		sb.WriteByte('_')

	case *PVar:
		sb.WriteString(pt.Name)

	case *PLiteral:
		literalString(sb, &pt.Literal)

	case *PTuple:
		sb.WriteByte('(')
		for i, el := range pt.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			patternString(sb, false, el)
		}
		sb.WriteByte(')')

	case *PRecord:
		sb.WriteByte('{')
		for i, f := range pt.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Label)
			sb.WriteString(": ")
			patternString(sb, false, f.Pattern)
		}
		if pt.Open {
			sb.WriteString(" | _")
		}
		sb.WriteByte('}')

	case *PConstructor:
		if simple && len(pt.Args) > 0 {
			sb.WriteByte('(')
		}
		qualified(sb, pt.Qualifier, pt.Name)
		for _, arg := range pt.Args {
			sb.WriteByte(' ')
			patternString(sb, true, arg)
		}
		if simple && len(pt.Args) > 0 {
			sb.WriteByte(')')
		}
	}
}

func typeExprString(sb *strings.Builder, simple bool, t TypeExpr) {
	switch tt := t.(type) {
	case *TVar:
		sb.WriteString(tt.Name)

	case *TCon:
		if simple && len(tt.Args) > 0 {
			sb.WriteByte('(')
		}
		qualified(sb, tt.Qualifier, tt.Name)
		for _, arg := range tt.Args {
			sb.WriteByte(' ')
			typeExprString(sb, true, arg)
		}
		if simple && len(tt.Args) > 0 {
			sb.WriteByte(')')
		}

	case *TFunc:
		if simple {
			sb.WriteByte('(')
		}
		typeExprString(sb, true, tt.From)
		sb.WriteString(" -> ")
		typeExprString(sb, false, tt.To)
		if simple {
			sb.WriteByte(')')
		}

	case *TTuple:
		sb.WriteByte('(')
		for i, el := range tt.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			typeExprString(sb, false, el)
		}
		sb.WriteByte(')')

	case *TRecord:
		sb.WriteByte('{')
		for i, f := range tt.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Label)
			sb.WriteString(" : ")
			typeExprString(sb, false, f.Type)
		}
		if tt.Open {
			sb.WriteString(" | _")
		}
		sb.WriteByte('}')
	}
}

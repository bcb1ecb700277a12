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

package eval

import (
	"github.com/wdamron/polyml/ast"
)

func evalBinOp(env *Env, e *ast.BinOp) (Value, error) {
	left, err := Eval(env, e.Left)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.OpAnd, ast.OpOr:
		l, ok := left.(Bool)
		if !ok {
			return nil, &TypeError{Expected: "Bool", Value: left, Pos: e.Left.Position()}
		}
		if (e.Op == ast.OpAnd && !bool(l)) || (e.Op == ast.OpOr && bool(l)) {
			return l, nil
		}
		right, err := Eval(env, e.Right)
		if err != nil {
			return nil, err
		}
		if _, ok := right.(Bool); !ok {
			return nil, &TypeError{Expected: "Bool", Value: right, Pos: e.Right.Position()}
		}
		return right, nil
	}

	right, err := Eval(env, e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.OpEq, ast.OpNeq:
		eq, err := Equal(left, right)
		if err != nil {
			if ee, ok := err.(*EqualityError); ok {
				ee.Pos = e.Pos
			}
			return nil, err
		}
		return Bool(eq == (e.Op == ast.OpEq)), nil

	case ast.OpConcat:
		l, ok := left.(Str)
		if !ok {
			return nil, &TypeError{Expected: "String", Value: left, Pos: e.Left.Position()}
		}
		r, ok := right.(Str)
		if !ok {
			return nil, &TypeError{Expected: "String", Value: right, Pos: e.Right.Position()}
		}
		return l + r, nil
	}

	l, ok := left.(Int)
	if !ok {
		return nil, &TypeError{Expected: "Int", Value: left, Pos: e.Left.Position()}
	}
	r, ok := right.(Int)
	if !ok {
		return nil, &TypeError{Expected: "Int", Value: right, Pos: e.Right.Position()}
	}
	switch e.Op {
	case ast.OpAdd:
		return l + r, nil
	case ast.OpSub:
		return l - r, nil
	case ast.OpMul:
		return l * r, nil
	case ast.OpDiv:
		if r == 0 {
			return nil, &DivisionByZeroError{Pos: e.Pos}
		}
		return l / r, nil
	case ast.OpLt:
		return Bool(l < r), nil
	case ast.OpLe:
		return Bool(l <= r), nil
	case ast.OpGt:
		return Bool(l > r), nil
	case ast.OpGe:
		return Bool(l >= r), nil
	}
	return nil, &UnboundError{Name: string(e.Op), Pos: e.Pos}
}

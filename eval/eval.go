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

// Package eval is a tree-walking evaluator for type-checked expressions.
package eval

import (
	"github.com/wdamron/polyml/ast"
	"github.com/wdamron/polyml/types"
)

// Eval evaluates expr within env. Evaluation is strict and proceeds left to right.
func Eval(env *Env, expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e), nil

	case *ast.Var:
		v, err := env.LookupQualified(e.Qualifier, e.Name)
		if err != nil {
			return nil, withPos(err, e.Pos)
		}
		return v, nil

	case *ast.Constructor:
		v, err := env.Constructor(e.Qualifier, e.Name)
		if err != nil {
			return nil, withPos(err, e.Pos)
		}
		return v, nil

	case *ast.Apply:
		fn, err := Eval(env, e.Func)
		if err != nil {
			return nil, err
		}
		arg, err := Eval(env, e.Arg)
		if err != nil {
			return nil, err
		}
		return apply(fn, arg, e.Pos)

	case *ast.Lambda:
		return &Closure{Env: env, Param: e.Param, Body: e.Body}, nil

	case *ast.If:
		guard, err := Eval(env, e.Guard)
		if err != nil {
			return nil, err
		}
		b, ok := guard.(Bool)
		if !ok {
			return nil, &TypeError{Expected: "Bool", Value: guard, Pos: e.Guard.Position()}
		}
		if b {
			return Eval(env, e.Then)
		}
		return Eval(env, e.Else)

	case *ast.Let:
		bodyEnv, last, err := EvalDecls(env, e)
		if err != nil {
			return nil, err
		}
		if e.Body == nil {
			return last, nil
		}
		return Eval(bodyEnv, e.Body)

	case *ast.Match:
		v, err := Eval(env, e.Value)
		if err != nil {
			return nil, err
		}
		for _, c := range e.Cases {
			caseEnv, ok, err := Match(env, c.Pattern, v)
			if err != nil {
				return nil, err
			}
			if ok {
				return Eval(caseEnv, c.Body)
			}
		}
		return nil, &MatchFailureError{Value: v, Pos: e.Pos}

	case *ast.Tuple:
		if len(e.Elems) == 0 {
			return Unit{}, nil
		}
		elems := make([]Value, len(e.Elems))
		for i, el := range e.Elems {
			v, err := Eval(env, el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &Tuple{Elems: elems}, nil

	case *ast.RecordExtend:
		rec := &Record{}
		if e.Record != nil {
			v, err := Eval(env, e.Record)
			if err != nil {
				return nil, err
			}
			base, ok := v.(*Record)
			if !ok {
				return nil, &TypeError{Expected: "record", Value: v, Pos: e.Record.Position()}
			}
			rec = base
		}
		for _, f := range e.Fields {
			v, err := Eval(env, f.Value)
			if err != nil {
				return nil, err
			}
			rec = rec.Extend(f.Label, v)
		}
		return rec, nil

	case *ast.RecordSelect:
		v, err := Eval(env, e.Record)
		if err != nil {
			return nil, err
		}
		rec, ok := v.(*Record)
		if !ok {
			return nil, &TypeError{Expected: "record", Value: v, Pos: e.Pos}
		}
		field, ok := rec.Get(e.Label)
		if !ok {
			return nil, &UnboundError{Name: e.Label, Pos: e.Pos}
		}
		return field, nil

	case *ast.BinOp:
		return evalBinOp(env, e)
	}

	return nil, &UnboundError{Name: expr.ExprName(), Pos: expr.Position()}
}

// EvalDecls evaluates a group of let-bound declarations, returning env extended with
// each declaration along with the value of the last declaration.
//
// Closures bound by a recursive group capture the environment containing every
// declaration of the group.
func EvalDecls(env *Env, let *ast.Let) (*Env, Value, error) {
	var last Value = Unit{}
	if !let.Rec {
		for _, d := range let.Decls {
			v, err := Eval(env, d.Value)
			if err != nil {
				return env, nil, err
			}
			if c, ok := v.(*Closure); ok && c.Name == "" {
				c.Name = d.Name
			}
			env, last = env.Bind(d.Name, v), v
		}
		return env, last, nil
	}

	recEnv := env
	var closures []*Closure
	for _, d := range let.Decls {
		if lam, ok := d.Value.(*ast.Lambda); ok {
			c := &Closure{Param: lam.Param, Body: lam.Body, Name: d.Name}
			closures = append(closures, c)
			recEnv = recEnv.Bind(d.Name, c)
		}
	}
	bindClosures(closures, recEnv)
	// Values are evaluated in source order. A value may call any function of the
	// group, but refers only to the values declared before it.
	for _, d := range let.Decls {
		if _, ok := d.Value.(*ast.Lambda); ok {
			continue
		}
		v, err := Eval(recEnv, d.Value)
		if err != nil {
			return env, nil, err
		}
		recEnv = recEnv.Bind(d.Name, v)
		bindClosures(closures, recEnv)
	}
	if n := len(let.Decls); n > 0 {
		last, _ = recEnv.Lookup(let.Decls[n-1].Name)
	}
	return recEnv, last, nil
}

func bindClosures(closures []*Closure, env *Env) {
	for _, c := range closures {
		c.Env = env
	}
}

// Apply applies a function value to an argument.
func Apply(fn, arg Value) (Value, error) { return apply(fn, arg, types.Pos{}) }

func apply(fn, arg Value, pos types.Pos) (Value, error) {
	switch fn := fn.(type) {
	case *Closure:
		return Eval(fn.Env.Bind(fn.Param, arg), fn.Body)
	case *Builtin:
		args := make([]Value, len(fn.Args), len(fn.Args)+1)
		copy(args, fn.Args)
		args = append(args, arg)
		if len(args) < fn.Arity {
			return &Builtin{Name: fn.Name, Arity: fn.Arity, Args: args, Fn: fn.Fn}, nil
		}
		return fn.Fn(args)
	}
	return nil, &NotAFunctionError{Value: fn, Pos: pos}
}

func literalValue(lit *ast.Literal) Value {
	switch lit.Kind {
	case ast.IntLit:
		return Int(lit.Int)
	case ast.BoolLit:
		return Bool(lit.Bool)
	case ast.StringLit:
		return Str(lit.Str)
	case ast.CharLit:
		return Char(lit.Char)
	}
	return Unit{}
}

func withPos(err error, pos types.Pos) error {
	if e, ok := err.(*UnboundError); ok && !e.Pos.IsValid() {
		e.Pos = pos
	}
	return err
}

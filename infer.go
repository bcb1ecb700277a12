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

package polyml

import (
	"github.com/wdamron/polyml/ast"
	"github.com/wdamron/polyml/types"
)

// InferExpr generates constraints for expr within env and returns its unsolved type.
//
// Constraints are solved only where let-bound declarations are generalized; all other
// constraints are left in the context to be solved after the walk.
func (ctx *InferenceContext) InferExpr(env *TypeEnv, expr ast.Expr) (types.Type, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalType(e.Kind), nil

	case *ast.Var:
		sc, err := env.LookupQualified(e.Qualifier, e.Name)
		if err != nil {
			return nil, positioned(err, e.Pos)
		}
		return sc.Instantiate(ctx.pump), nil

	case *ast.Constructor:
		def, c, err := env.LookupConstructor(e.Qualifier, e.Name)
		if err != nil {
			return nil, positioned(err, e.Pos)
		}
		return def.ConstructorScheme(c).Instantiate(ctx.pump), nil

	case *ast.Apply:
		ft, err := ctx.InferExpr(env, e.Func)
		if err != nil {
			return nil, err
		}
		at, err := ctx.InferExpr(env, e.Arg)
		if err != nil {
			return nil, err
		}
		rt := ctx.pump.FreshAt(e.Pos)
		ctx.constrain(ft, &types.Arrow{From: at, To: rt}, e.Pos)
		return rt, nil

	case *ast.Lambda:
		scope := newTypeScope("")
		var pt types.Type
		if e.ParamType != nil {
			var err error
			if pt, err = ctx.translate(env, scope, e.ParamType); err != nil {
				return nil, err
			}
		} else {
			pt = ctx.pump.FreshAt(e.Pos)
		}
		bt, err := ctx.InferExpr(env.Extend(e.Param, types.Mono(pt)), e.Body)
		if err != nil {
			return nil, err
		}
		if e.ReturnType != nil {
			rt, err := ctx.translate(env, scope, e.ReturnType)
			if err != nil {
				return nil, err
			}
			ctx.constrain(bt, rt, e.ReturnType.Position())
		}
		return &types.Arrow{From: pt, To: bt, Pos: e.Pos}, nil

	case *ast.If:
		gt, err := ctx.InferExpr(env, e.Guard)
		if err != nil {
			return nil, err
		}
		ctx.constrain(gt, types.BoolType, e.Guard.Position())
		tt, err := ctx.InferExpr(env, e.Then)
		if err != nil {
			return nil, err
		}
		et, err := ctx.InferExpr(env, e.Else)
		if err != nil {
			return nil, err
		}
		ctx.constrain(tt, et, e.Pos)
		return tt, nil

	case *ast.Let:
		bodyEnv, last, err := ctx.inferLet(env, e)
		if err != nil {
			return nil, err
		}
		if e.Body == nil {
			return last, nil
		}
		return ctx.InferExpr(bodyEnv, e.Body)

	case *ast.Match:
		vt, err := ctx.InferExpr(env, e.Value)
		if err != nil {
			return nil, err
		}
		rt := ctx.pump.FreshAt(e.Pos)
		for _, c := range e.Cases {
			caseEnv, pt, err := ctx.InferPattern(env, c.Pattern)
			if err != nil {
				return nil, err
			}
			ctx.constrain(pt, vt, c.Pattern.Position())
			bt, err := ctx.InferExpr(caseEnv, c.Body)
			if err != nil {
				return nil, err
			}
			ctx.constrain(bt, rt, c.Body.Position())
		}
		return rt, nil

	case *ast.Tuple:
		if len(e.Elems) == 0 {
			return types.UnitType, nil
		}
		elems := make([]types.Type, len(e.Elems))
		for i, el := range e.Elems {
			t, err := ctx.InferExpr(env, el)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return &types.Tuple{Elems: elems, Pos: e.Pos}, nil

	case *ast.RecordExtend:
		var tail types.Type = &types.RowEmpty{Pos: e.Pos}
		if e.Record != nil {
			rt, err := ctx.InferExpr(env, e.Record)
			if err != nil {
				return nil, err
			}
			tail = rt
		}
		fields := types.NewTypeMapBuilder()
		for _, f := range e.Fields {
			t, err := ctx.InferExpr(env, f.Value)
			if err != nil {
				return nil, err
			}
			fields.Set(f.Label, t)
		}
		return types.NewRow(fields.Build(), tail), nil

	case *ast.RecordSelect:
		rt, err := ctx.InferExpr(env, e.Record)
		if err != nil {
			return nil, err
		}
		field, tail := ctx.pump.FreshAt(e.Pos), ctx.pump.FreshAt(e.Pos)
		ctx.constrain(rt, &types.RowExtend{Label: e.Label, Field: field, Row: tail}, e.Pos)
		return field, nil

	case *ast.BinOp:
		return ctx.inferBinOp(env, e)
	}

	return nil, &UnknownNameError{Name: expr.ExprName(), Pos: expr.Position()}
}

func literalType(kind ast.LitKind) types.Type {
	switch kind {
	case ast.IntLit:
		return types.IntType
	case ast.BoolLit:
		return types.BoolType
	case ast.StringLit:
		return types.StringType
	case ast.CharLit:
		return types.CharType
	}
	return types.UnitType
}

// Operand and result types of operators with a fixed signature:
var operatorTypes = map[ast.Op][3]types.Type{
	ast.OpAdd:    {types.IntType, types.IntType, types.IntType},
	ast.OpSub:    {types.IntType, types.IntType, types.IntType},
	ast.OpMul:    {types.IntType, types.IntType, types.IntType},
	ast.OpDiv:    {types.IntType, types.IntType, types.IntType},
	ast.OpLt:     {types.IntType, types.IntType, types.BoolType},
	ast.OpLe:     {types.IntType, types.IntType, types.BoolType},
	ast.OpGt:     {types.IntType, types.IntType, types.BoolType},
	ast.OpGe:     {types.IntType, types.IntType, types.BoolType},
	ast.OpAnd:    {types.BoolType, types.BoolType, types.BoolType},
	ast.OpOr:     {types.BoolType, types.BoolType, types.BoolType},
	ast.OpConcat: {types.StringType, types.StringType, types.StringType},
}

func (ctx *InferenceContext) inferBinOp(env *TypeEnv, e *ast.BinOp) (types.Type, error) {
	lt, err := ctx.InferExpr(env, e.Left)
	if err != nil {
		return nil, err
	}
	rt, err := ctx.InferExpr(env, e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case ast.OpEq, ast.OpNeq:
		operand := ctx.pump.FreshAt(e.Pos)
		ctx.constrain(lt, operand, e.Left.Position())
		ctx.constrain(rt, operand, e.Right.Position())
		return types.BoolType, nil
	}
	sig, ok := operatorTypes[e.Op]
	if !ok {
		return nil, &UnknownNameError{Name: string(e.Op), Pos: e.Pos}
	}
	ctx.constrain(lt, sig[0], e.Left.Position())
	ctx.constrain(rt, sig[1], e.Right.Position())
	return sig[2], nil
}

// inferLet binds each declaration of a let-group in env. The type of the last
// declaration is returned along with the extended environment.
func (ctx *InferenceContext) inferLet(env *TypeEnv, let *ast.Let) (*TypeEnv, types.Type, error) {
	if let.Rec {
		return ctx.inferLetRec(env, let)
	}
	var last types.Type = types.UnitType
	for i := range let.Decls {
		d := &let.Decls[i]
		t, err := ctx.InferExpr(env, d.Value)
		if err != nil {
			return env, nil, err
		}
		if err = ctx.annotate(env, d, t); err != nil {
			return env, nil, err
		}
		// Later declarations must see a generalized type, so solve before binding.
		s, err := ctx.Solve()
		if err != nil {
			return env, nil, err
		}
		env, t = env.Apply(s), s.Apply(t)
		env = env.Extend(d.Name, env.Generalize(t))
		last = t
	}
	return env, last, nil
}

// inferLetRec binds every declaration of a recursive let-group simultaneously. Each
// declaration is monomorphic within the group and generalized after the group is solved.
func (ctx *InferenceContext) inferLetRec(env *TypeEnv, let *ast.Let) (*TypeEnv, types.Type, error) {
	bound := make([]types.Type, len(let.Decls))
	recEnv := env
	for i, d := range let.Decls {
		tv := ctx.pump.FreshAt(d.Pos)
		bound[i] = tv
		recEnv = recEnv.Extend(d.Name, types.Mono(tv))
	}
	values := make([]types.Type, len(let.Decls))
	for i := range let.Decls {
		d := &let.Decls[i]
		t, err := ctx.InferExpr(recEnv, d.Value)
		if err != nil {
			return env, nil, err
		}
		if err = ctx.annotate(env, d, bound[i]); err != nil {
			return env, nil, err
		}
		values[i] = t
	}
	ctx.constrain(&types.Tuple{Elems: bound}, &types.Tuple{Elems: values}, let.Pos)

	s, err := ctx.Solve()
	if err != nil {
		return env, nil, err
	}
	env = env.Apply(s)
	var last types.Type = types.UnitType
	for i, d := range let.Decls {
		t := s.Apply(bound[i])
		env = env.Extend(d.Name, env.Generalize(t))
		last = t
	}
	return env, last, nil
}

// annotate constrains t to the type annotation of d, if d is annotated.
func (ctx *InferenceContext) annotate(env *TypeEnv, d *ast.Decl, t types.Type) error {
	if d.Type == nil {
		return nil
	}
	at, err := ctx.translate(env, newTypeScope(""), d.Type)
	if err != nil {
		return err
	}
	ctx.constrain(t, at, d.Type.Position())
	return nil
}

// InferPattern generates constraints for pat within env. The environment extended with
// the variables bound by pat is returned with the type of pat.
func (ctx *InferenceContext) InferPattern(env *TypeEnv, pat ast.Pattern) (*TypeEnv, types.Type, error) {
	switch p := pat.(type) {
	case *ast.PWildcard:
		return env, ctx.pump.FreshAt(p.Pos), nil

	case *ast.PVar:
		tv := ctx.pump.FreshAt(p.Pos)
		return env.Extend(p.Name, types.Mono(tv)), tv, nil

	case *ast.PLiteral:
		return env, literalType(p.Literal.Kind), nil

	case *ast.PTuple:
		if len(p.Elems) == 0 {
			return env, types.UnitType, nil
		}
		elems := make([]types.Type, len(p.Elems))
		for i, el := range p.Elems {
			var err error
			if env, elems[i], err = ctx.InferPattern(env, el); err != nil {
				return env, nil, err
			}
		}
		return env, &types.Tuple{Elems: elems, Pos: p.Pos}, nil

	case *ast.PRecord:
		fields := types.NewTypeMapBuilder()
		for _, f := range p.Fields {
			var t types.Type
			var err error
			if env, t, err = ctx.InferPattern(env, f.Pattern); err != nil {
				return env, nil, err
			}
			fields.Set(f.Label, t)
		}
		var tail types.Type = &types.RowEmpty{Pos: p.Pos}
		if p.Open {
			tail = ctx.pump.FreshAt(p.Pos)
		}
		return env, types.NewRow(fields.Build(), tail), nil

	case *ast.PConstructor:
		def, c, err := env.LookupConstructor(p.Qualifier, p.Name)
		if err != nil {
			return env, nil, positioned(err, p.Pos)
		}
		if len(p.Args) != len(c.Args) {
			return env, nil, &ArityMismatchError{Name: qualifiedName(p.Qualifier, p.Name), Expected: len(c.Args), Actual: len(p.Args), Pos: p.Pos}
		}
		dt, params := def.Instantiate(ctx.pump)
		for i, arg := range p.Args {
			var t types.Type
			if env, t, err = ctx.InferPattern(env, arg); err != nil {
				return env, nil, err
			}
			ctx.constrain(t, params.Apply(c.Args[i]), arg.Position())
		}
		return env, dt, nil
	}

	return env, nil, &UnknownNameError{Name: pat.PatternName(), Pos: pat.Position()}
}

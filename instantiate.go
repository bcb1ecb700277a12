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

// typeScope maps the type-variable names of one annotation site to types.
//
// Within a data or alias declaration (decl is set), only the declared parameters may
// be referenced; elsewhere an unseen name is instantiated with a fresh type-variable.
type typeScope struct {
	decl string
	vars map[string]types.Type
}

func newTypeScope(decl string) *typeScope {
	return &typeScope{decl: decl, vars: make(map[string]types.Type)}
}

func newParamScope(decl string, params []string) *typeScope {
	scope := newTypeScope(decl)
	for _, name := range params {
		scope.vars[name] = types.NewVar(name)
	}
	return scope
}

// translate converts a type annotation to a type, resolving type names through env.
func (ctx *InferenceContext) translate(env *TypeEnv, scope *typeScope, texpr ast.TypeExpr) (types.Type, error) {
	switch te := texpr.(type) {
	case *ast.TVar:
		if t, ok := scope.vars[te.Name]; ok {
			return t, nil
		}
		if scope.decl != "" {
			return nil, &UnknownTypeNameError{Name: te.Name, Pos: te.Pos}
		}
		tv := ctx.pump.FreshAt(te.Pos)
		scope.vars[te.Name] = tv
		return tv, nil

	case *ast.TCon:
		args := make([]types.Type, len(te.Args))
		for i, arg := range te.Args {
			t, err := ctx.translate(env, scope, arg)
			if err != nil {
				return nil, err
			}
			args[i] = t
		}
		lookup := env
		if te.Qualifier != "" {
			imported, err := env.GetImport(te.Qualifier)
			if err != nil {
				return nil, positioned(err, te.Pos)
			}
			lookup = imported
		}
		if def, ok := lookup.Data(te.Name); ok {
			if len(args) != len(def.Params) {
				return nil, &ArityMismatchError{Name: qualifiedName(te.Qualifier, te.Name), Expected: len(def.Params), Actual: len(args), Pos: te.Pos}
			}
			return &types.Data{Def: def, Args: args, Pos: te.Pos}, nil
		}
		if sc, ok := lookup.Alias(te.Name); ok {
			if len(args) != len(sc.Vars) {
				return nil, &ArityMismatchError{Name: qualifiedName(te.Qualifier, te.Name), Expected: len(sc.Vars), Actual: len(args), Pos: te.Pos}
			}
			return &types.Alias{Name: te.Name, Args: args, Scheme: sc, Pos: te.Pos}, nil
		}
		return nil, &UnknownTypeNameError{Qualifier: te.Qualifier, Name: te.Name, Pos: te.Pos}

	case *ast.TFunc:
		from, err := ctx.translate(env, scope, te.From)
		if err != nil {
			return nil, err
		}
		to, err := ctx.translate(env, scope, te.To)
		if err != nil {
			return nil, err
		}
		return &types.Arrow{From: from, To: to, Pos: te.Pos}, nil

	case *ast.TTuple:
		if len(te.Elems) == 0 {
			return types.UnitType, nil
		}
		elems := make([]types.Type, len(te.Elems))
		for i, el := range te.Elems {
			t, err := ctx.translate(env, scope, el)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return &types.Tuple{Elems: elems, Pos: te.Pos}, nil

	case *ast.TRecord:
		fields := types.NewTypeMapBuilder()
		for _, f := range te.Fields {
			t, err := ctx.translate(env, scope, f.Type)
			if err != nil {
				return nil, err
			}
			fields.Set(f.Label, t)
		}
		var tail types.Type = &types.RowEmpty{Pos: te.Pos}
		if te.Open {
			if scope.decl != "" {
				return nil, &OpenRowError{Name: scope.decl, Pos: te.Pos}
			}
			tail = ctx.pump.FreshAt(te.Pos)
		}
		return types.NewRow(fields.Build(), tail), nil
	}

	return nil, &UnknownTypeNameError{Name: texpr.TypeExprName(), Pos: texpr.Position()}
}

// DeclareData adds a group of data types to env. Data types within a group may refer
// to one another. The declared data types are returned with the extended environment.
func (ctx *InferenceContext) DeclareData(env *TypeEnv, el *ast.DataElement) (*TypeEnv, []*types.DataDef, error) {
	defs := make([]*types.DataDef, len(el.Decls))
	seen, seenCtors := make(map[string]bool), make(map[string]bool)
	scopeEnv := env
	for i, decl := range el.Decls {
		if seen[decl.Name] {
			return env, nil, &DuplicateDataError{Name: decl.Name, Pos: decl.Pos}
		}
		seen[decl.Name] = true
		defs[i] = &types.DataDef{Module: env.Module, Name: decl.Name, Params: decl.Params}
		scopeEnv = scopeEnv.AddData(defs[i])
	}

	for i, decl := range el.Decls {
		def := defs[i]
		def.Constructors = make([]types.ConstructorDef, len(decl.Constructors))
		for j, c := range decl.Constructors {
			if seenCtors[c.Name] {
				return env, nil, &DuplicateDataError{Name: c.Name, Pos: c.Pos}
			}
			seenCtors[c.Name] = true
			scope := newParamScope(decl.Name, decl.Params)
			args := make([]types.Type, len(c.Args))
			for k, arg := range c.Args {
				t, err := ctx.translate(scopeEnv, scope, arg)
				if err != nil {
					return env, nil, err
				}
				args[k] = t
			}
			def.Constructors[j] = types.ConstructorDef{Name: c.Name, Args: args}
		}
	}

	for _, def := range defs {
		env = env.AddData(def)
	}
	return env, defs, nil
}

// DeclareAlias adds a type alias to env. The alias is returned as a scheme quantified
// over its parameters, along with the extended environment.
func (ctx *InferenceContext) DeclareAlias(env *TypeEnv, el *ast.AliasElement) (*TypeEnv, *types.Scheme, error) {
	t, err := ctx.translate(env, newParamScope(el.Name, el.Params), el.Type)
	if err != nil {
		return env, nil, err
	}
	sc := &types.Scheme{Vars: el.Params, Type: t}
	return env.AddAlias(el.Name, sc), sc, nil
}

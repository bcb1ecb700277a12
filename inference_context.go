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
	"fmt"

	"github.com/wdamron/polyml/ast"
	"github.com/wdamron/polyml/types"
)

// InferenceContext is a reusable context for type inference. It owns the pump which
// allocates fresh type-variables and the accumulator of generated constraints.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	pump        *types.Pump
	constraints Constraints
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext { return &InferenceContext{pump: types.NewPump()} }

// Reset the pump and discard accumulated constraints. Type-variable names allocated
// after a reset restart from V1.
func (ctx *InferenceContext) Reset() {
	ctx.pump = types.NewPump()
	ctx.constraints.truncate(0)
}

// Fresh allocates a type-variable which has not been used in the current inference run.
func (ctx *InferenceContext) Fresh() *types.Var { return ctx.pump.Fresh() }

// Constraints returns a copy of the constraints accumulated since the last reset.
func (ctx *InferenceContext) Constraints() []Constraint { return ctx.constraints.List() }

// Solve the constraints accumulated since the last reset. The constraints are kept,
// so solving may be repeated as more constraints are generated.
func (ctx *InferenceContext) Solve() (types.Subst, error) {
	return Solve(ctx.constraints.list)
}

func (ctx *InferenceContext) constrain(left, right types.Type, pos types.Pos) {
	ctx.constraints.Add(left, right, pos)
}

// Infer the type of expr within env. The context is reset, every generated constraint
// is solved, and the solved type is returned without generalization.
func (ctx *InferenceContext) Infer(env *TypeEnv, expr ast.Expr) (types.Type, error) {
	ctx.Reset()
	if err := checkVisibility(expr, false); err != nil {
		return nil, err
	}
	t, err := ctx.InferExpr(env, expr)
	if err != nil {
		return nil, err
	}
	s, err := ctx.Solve()
	if err != nil {
		return nil, err
	}
	return s.Apply(t), nil
}

// InferDecls infers the types of a group of top-level declarations. The context is
// reset, and env is returned extended with the generalized type of each declaration.
// The type of the last declaration is returned along with the extended environment.
func (ctx *InferenceContext) InferDecls(env *TypeEnv, let *ast.Let) (*TypeEnv, *types.Scheme, error) {
	ctx.Reset()
	if err := checkVisibility(let, true); err != nil {
		return env, nil, err
	}
	extended, _, err := ctx.inferLet(env, let)
	if err != nil {
		return env, nil, err
	}
	if len(let.Decls) == 0 {
		return extended, types.Mono(types.UnitType), nil
	}
	sc, _ := extended.Lookup(let.Decls[len(let.Decls)-1].Name)
	return extended, sc, nil
}

// InferElement type-checks one top-level element without evaluating it. Expressions
// yield their generalized type, declaration groups the type of their last declaration
// and aliases their definition; data declarations yield no scheme. Imports need a
// Session to load the imported module and are rejected.
func (ctx *InferenceContext) InferElement(env *TypeEnv, el ast.Element) (*TypeEnv, *types.Scheme, error) {
	switch el := el.(type) {
	case *ast.ExprElement:
		if let, ok := el.Expr.(*ast.Let); ok && let.IsDeclaration() {
			return ctx.InferDecls(env, let)
		}
		t, err := ctx.Infer(env, el.Expr)
		if err != nil {
			return env, nil, err
		}
		return env, env.Generalize(t), nil

	case *ast.DataElement:
		ctx.Reset()
		extended, _, err := ctx.DeclareData(env, el)
		return extended, nil, err

	case *ast.AliasElement:
		ctx.Reset()
		return ctx.DeclareAlias(env, el)
	}
	return env, nil, fmt.Errorf("%s: cannot infer %s without a session", el.Position(), el.ElementName())
}

// Infer the type of expr within env, using a new inference context.
func Infer(env *TypeEnv, expr ast.Expr) (types.Type, error) {
	return NewContext().Infer(env, expr)
}

// checkVisibility rejects visibility modifiers on declarations which are not at the top
// level of a module. The declarations of root are top-level when topLevel is set.
func checkVisibility(root ast.Expr, topLevel bool) error {
	var err error
	ast.WalkExpr(root, func(e ast.Expr) {
		let, ok := e.(*ast.Let)
		if !ok || err != nil || (topLevel && e == root) {
			return
		}
		for _, d := range let.Decls {
			if d.Visibility != ast.Unspecified {
				err = &VisibilityModifierError{Name: d.Name, Visibility: d.Visibility, Pos: d.Pos}
				return
			}
		}
	})
	return err
}

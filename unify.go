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
	"github.com/wdamron/polyml/types"
)

// Constraint is an equality obligation between two types, recorded at the position
// of the expression which produced it.
type Constraint struct {
	Left  types.Type
	Right types.Type
	Pos   types.Pos
}

func (c Constraint) String() string {
	return types.TypeString(c.Left) + " ~ " + types.TypeString(c.Right)
}

// Constraints accumulates equality obligations in the order they are generated.
type Constraints struct {
	list []Constraint
}

// Add appends the obligation left ~ right.
func (cs *Constraints) Add(left, right types.Type, pos types.Pos) {
	cs.list = append(cs.list, Constraint{Left: left, Right: right, Pos: pos})
}

// Len returns the number of accumulated constraints.
func (cs *Constraints) Len() int { return len(cs.list) }

// List returns a copy of the accumulated constraints.
func (cs *Constraints) List() []Constraint {
	out := make([]Constraint, len(cs.list))
	copy(out, cs.list)
	return out
}

func (cs *Constraints) truncate(n int) { cs.list = cs.list[:n] }

// Solve unifies each constraint in order, returning the accumulated substitution.
//
// After each step the local substitution is applied to every remaining constraint,
// including residual constraints produced by row unification, which are solved
// before the rest of the queue. The input is not modified.
func Solve(constraints []Constraint) (types.Subst, error) {
	queue := make([]Constraint, len(constraints))
	copy(queue, constraints)
	subst := types.NewSubst()
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		local, residuals, err := Unify(c.Left, c.Right)
		if err != nil {
			return subst, positioned(err, c.Pos)
		}
		if len(residuals) > 0 {
			for i := range residuals {
				residuals[i].Pos = c.Pos
			}
			queue = append(residuals, queue...)
		}
		if local.Len() > 0 {
			for i := range queue {
				queue[i].Left, queue[i].Right = local.Apply(queue[i].Left), local.Apply(queue[i].Right)
			}
			subst = local.Compose(subst)
		}
	}
	return subst, nil
}

func mismatch(a, b types.Type, reason string) error {
	return &MismatchError{Kind: StructuralMismatch, Left: a, Right: b, Reason: reason}
}

// Unify computes a substitution which makes a and b equal.
//
// Record rows are not unified eagerly: field types common to both rows are returned
// as residual constraints, to be solved with the rest of the queue. Type-variables
// are bound without an occurs-check, so self-referential types are not rejected.
func Unify(a, b types.Type) (types.Subst, []Constraint, error) {
	if a == b {
		return types.NewSubst(), nil, nil
	}

	// unify type variables:

	if av, ok := a.(*types.Var); ok {
		return bindVar(av, b)
	}
	if bv, ok := b.(*types.Var); ok {
		return bindVar(bv, a)
	}

	// unify aliased types:

	if alias, ok := a.(*types.Alias); ok {
		return Unify(alias.Expand(), b)
	}
	if alias, ok := b.(*types.Alias); ok {
		return Unify(a, alias.Expand())
	}

	// unify types:

	switch a := a.(type) {
	case *types.Arrow:
		if b, ok := b.(*types.Arrow); ok {
			return unifyMany([]types.Type{a.From, a.To}, []types.Type{b.From, b.To})
		}

	case *types.Tuple:
		if b, ok := b.(*types.Tuple); ok {
			if len(a.Elems) != len(b.Elems) {
				return types.NewSubst(), nil, mismatch(a, b, "tuples differ in size")
			}
			return unifyMany(a.Elems, b.Elems)
		}

	case *types.Data:
		if b, ok := b.(*types.Data); ok {
			if a.Def.Name == b.Def.Name && a.Def.Module != b.Def.Module {
				return types.NewSubst(), nil, &MismatchError{Kind: ModuleMismatch, Left: a, Right: b}
			}
			if !a.Def.SameType(b.Def) {
				break
			}
			if len(a.Args) != len(b.Args) {
				return types.NewSubst(), nil, mismatch(a, b, "type arguments differ in number")
			}
			return unifyMany(a.Args, b.Args)
		}

	case *types.RowEmpty, *types.RowExtend:
		if types.IsRow(b) {
			return unifyRows(a, b)
		}
	}

	return types.NewSubst(), nil, mismatch(a, b, "")
}

func bindVar(v *types.Var, t types.Type) (types.Subst, []Constraint, error) {
	if tv, ok := t.(*types.Var); ok && tv.Name == v.Name {
		return types.NewSubst(), nil, nil
	}
	return types.SingletonSubst(v.Name, t), nil, nil
}

// unifyMany unifies pairs of types in order, applying the substitution from each
// pair to the pairs which follow.
func unifyMany(as, bs []types.Type) (types.Subst, []Constraint, error) {
	s := types.NewSubst()
	var residuals []Constraint
	for i := range as {
		local, rs, err := Unify(s.Apply(as[i]), s.Apply(bs[i]))
		if err != nil {
			return s, nil, err
		}
		residuals = append(residuals, rs...)
		s = local.Compose(s)
	}
	return s, residuals, nil
}

func unifyRows(a, b types.Type) (types.Subst, []Constraint, error) {
	fa, ta, ok := types.FlattenRow(a)
	if !ok {
		return types.NewSubst(), nil, mismatch(a, b, "invalid row tail")
	}
	fb, tb, ok := types.FlattenRow(b)
	if !ok {
		return types.NewSubst(), nil, mismatch(a, b, "invalid row tail")
	}

	openA, openB := types.IsOpenRow(ta), types.IsOpenRow(tb)
	switch {
	case openA && openB:
		// fields present on only one side are left to the tails
	case openA:
		if label, ok := missingLabel(fa, fb); ok {
			return types.NewSubst(), nil, mismatch(a, b, "closed record has no field "+label)
		}
	case openB:
		if label, ok := missingLabel(fb, fa); ok {
			return types.NewSubst(), nil, mismatch(a, b, "closed record has no field "+label)
		}
	default:
		if label, ok := missingLabel(fa, fb); ok {
			return types.NewSubst(), nil, mismatch(a, b, "missing field "+label)
		}
		if label, ok := missingLabel(fb, fa); ok {
			return types.NewSubst(), nil, mismatch(a, b, "missing field "+label)
		}
	}

	var residuals []Constraint
	fa.Range(func(label string, t types.Type) bool {
		if u, ok := fb.Get(label); ok {
			residuals = append(residuals, Constraint{Left: t, Right: u})
		}
		return true
	})
	return types.NewSubst(), residuals, nil
}

// missingLabel returns the first label of from (in sorted order) which is not present in to.
func missingLabel(from, to types.TypeMap) (string, bool) {
	missing, found := "", false
	from.Range(func(label string, _ types.Type) bool {
		if _, ok := to.Get(label); !ok {
			missing, found = label, true
			return false
		}
		return true
	})
	return missing, found
}

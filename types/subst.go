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

package types

import (
	"github.com/benbjohnson/immutable"
)

// Subst is an immutable mapping from type-variable names to types.
//
// The zero value is an empty substitution.
type Subst struct {
	m *immutable.SortedMap
}

// Create an empty substitution.
func NewSubst() Subst { return Subst{emptyMap} }

// Create a substitution with a single binding.
func SingletonSubst(name string, t Type) Subst {
	return Subst{emptyMap.Set(name, t)}
}

func (s Subst) imm() *immutable.SortedMap {
	if s.m == nil {
		return emptyMap
	}
	return s.m
}

// Len returns the number of bindings in the substitution.
func (s Subst) Len() int { return s.imm().Len() }

// Lookup returns the type bound to a type-variable name.
func (s Subst) Lookup(name string) (Type, bool) {
	t, ok := s.imm().Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Bind returns a copy of the substitution with name bound to t.
func (s Subst) Bind(name string, t Type) Subst {
	return Subst{s.imm().Set(name, t)}
}

// Without returns a copy of the substitution with the given names removed.
func (s Subst) Without(names ...string) Subst {
	m := s.imm()
	for _, name := range names {
		m = m.Delete(name)
	}
	return Subst{m}
}

// Iterate over bindings, sorted by name.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(string, Type) bool) {
	iter := s.imm().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Compose returns a substitution equivalent to applying other, then s.
//
// s is applied to every type bound in other, then bindings in s take precedence
// over bindings of the same name in other. Composition is not commutative.
func (s Subst) Compose(other Subst) Subst {
	m := emptyMap
	other.Range(func(name string, t Type) bool {
		m = m.Set(name, s.Apply(t))
		return true
	})
	s.Range(func(name string, t Type) bool {
		m = m.Set(name, t)
		return true
	})
	return Subst{m}
}

// Apply rewrites every type-variable in t which is bound in the substitution.
// Unbound type-variables resolve to themselves. Bound types are not re-applied.
func (s Subst) Apply(t Type) Type {
	if s.Len() == 0 {
		return t
	}
	return s.apply(t)
}

func (s Subst) apply(t Type) Type {
	switch t := t.(type) {
	case *Var:
		if bound, ok := s.Lookup(t.Name); ok {
			return bound
		}
		return t

	case *Arrow:
		return &Arrow{From: s.apply(t.From), To: s.apply(t.To), Pos: t.Pos}

	case *Tuple:
		if len(t.Elems) == 0 {
			return t
		}
		return &Tuple{Elems: s.applyList(t.Elems), Pos: t.Pos}

	case *Data:
		if len(t.Args) == 0 {
			return t
		}
		return &Data{Def: t.Def, Args: s.applyList(t.Args), Pos: t.Pos}

	case *Alias:
		if len(t.Args) == 0 {
			return t
		}
		return &Alias{Name: t.Name, Args: s.applyList(t.Args), Scheme: t.Scheme, Pos: t.Pos}

	case *RowExtend:
		return &RowExtend{Label: t.Label, Field: s.apply(t.Field), Row: s.apply(t.Row), Pos: t.Pos}
	}
	return t
}

func (s Subst) applyList(ts []Type) []Type {
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = s.apply(t)
	}
	return out
}

// ApplyList applies the substitution to each type in ts.
func (s Subst) ApplyList(ts []Type) []Type {
	if s.Len() == 0 {
		return ts
	}
	return s.applyList(ts)
}

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
	set "github.com/hashicorp/go-set/v3"
)

// Scheme is a type universally quantified over a set of type-variable names:
// `forall a b. a -> b`. Free type-variables of the body which are not quantified
// remain free.
type Scheme struct {
	Vars []string
	Type Type
}

// Mono creates a scheme with no quantified type-variables.
func Mono(t Type) *Scheme { return &Scheme{Type: t} }

// IsMono reports whether no type-variables are quantified.
func (sc *Scheme) IsMono() bool { return len(sc.Vars) == 0 }

// FreeVars returns the type-variables of the body which are not quantified.
func (sc *Scheme) FreeVars() *set.Set[string] {
	fv := FreeVars(sc.Type)
	for _, name := range sc.Vars {
		fv.Remove(name)
	}
	return fv
}

// Apply applies s to the body of the scheme. Quantified names are removed from s
// before it is applied, so bound type-variables are never captured.
func (sc *Scheme) Apply(s Subst) *Scheme {
	if s.Len() == 0 {
		return sc
	}
	return &Scheme{Vars: sc.Vars, Type: s.Without(sc.Vars...).Apply(sc.Type)}
}

// Instantiate replaces every quantified type-variable with a fresh type-variable
// allocated from p.
func (sc *Scheme) Instantiate(p *Pump) Type {
	if len(sc.Vars) == 0 {
		return sc.Type
	}
	s := NewSubst()
	for _, name := range sc.Vars {
		s = s.Bind(name, p.Fresh())
	}
	return s.Apply(sc.Type)
}

// FreeVars returns the names of all type-variables occurring in t.
func FreeVars(t Type) *set.Set[string] {
	fv := set.New[string](8)
	walkVars(t, func(name string) { fv.Insert(name) })
	return fv
}

// OrderedFreeVars returns the names of all type-variables occurring in t, in order of
// first occurrence.
func OrderedFreeVars(t Type) []string {
	seen := set.New[string](8)
	var names []string
	walkVars(t, func(name string) {
		if seen.Insert(name) {
			names = append(names, name)
		}
	})
	return names
}

func walkVars(t Type, f func(string)) {
	switch t := t.(type) {
	case *Var:
		f(t.Name)
	case *Arrow:
		walkVars(t.From, f)
		walkVars(t.To, f)
	case *Tuple:
		for _, el := range t.Elems {
			walkVars(el, f)
		}
	case *Data:
		for _, arg := range t.Args {
			walkVars(arg, f)
		}
	case *Alias:
		for _, arg := range t.Args {
			walkVars(arg, f)
		}
	case *RowExtend:
		walkVars(t.Field, f)
		walkVars(t.Row, f)
	}
}

// Generalize quantifies every type-variable of t which is not contained in bound.
// Quantified names are ordered by first occurrence in t.
func Generalize(t Type, bound *set.Set[string]) *Scheme {
	var vars []string
	for _, name := range OrderedFreeVars(t) {
		if bound == nil || !bound.Contains(name) {
			vars = append(vars, name)
		}
	}
	return &Scheme{Vars: vars, Type: t}
}

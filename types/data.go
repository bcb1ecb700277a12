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
	"strings"
)

// BuiltinModule is the declaring module of the predeclared data types.
const BuiltinModule = "builtin"

// DataDef is an algebraic data type declared in a module:
//
//	data List a = Nil | Cons a (List a)
//
// Two data types are the same type only if both name and declaring module match.
type DataDef struct {
	Module       string
	Name         string
	Params       []string
	Constructors []ConstructorDef
}

// Constructor of a data type. Argument types may refer to the parameters of the data
// type as type-variables.
type ConstructorDef struct {
	Name string
	Args []Type
}

// Predeclared data types:
var (
	IntDef    = &DataDef{Module: BuiltinModule, Name: "Int"}
	BoolDef   = &DataDef{Module: BuiltinModule, Name: "Bool"}
	StringDef = &DataDef{Module: BuiltinModule, Name: "String"}
	CharDef   = &DataDef{Module: BuiltinModule, Name: "Char"}

	IntType    = &Data{Def: IntDef}
	BoolType   = &Data{Def: BoolDef}
	StringType = &Data{Def: StringDef}
	CharType   = &Data{Def: CharDef}
)

// BuiltinData lists the predeclared data types.
func BuiltinData() []*DataDef {
	return []*DataDef{IntDef, BoolDef, StringDef, CharDef}
}

// QualifiedName returns the name of the data type prefixed by its declaring module.
func (d *DataDef) QualifiedName() string { return d.Module + "." + d.Name }

// SameType reports whether d and other declare the same type.
func (d *DataDef) SameType(other *DataDef) bool {
	if d == other {
		return true
	}
	return d.Name == other.Name && d.Module == other.Module
}

// Constructor looks up a constructor of the data type by name.
func (d *DataDef) Constructor(name string) (*ConstructorDef, bool) {
	for i := range d.Constructors {
		if d.Constructors[i].Name == name {
			return &d.Constructors[i], true
		}
	}
	return nil, false
}

// Opaque returns a copy of the data type with its constructors hidden. The copy is
// the same type as d.
func (d *DataDef) Opaque() *DataDef {
	return &DataDef{Module: d.Module, Name: d.Name, Params: d.Params}
}

// Instantiate allocates a fresh type-variable for each parameter of the data type.
// The returned substitution maps parameter names to the fresh type-variables.
func (d *DataDef) Instantiate(p *Pump) (*Data, Subst) {
	s := NewSubst()
	args := make([]Type, len(d.Params))
	for i, name := range d.Params {
		tv := p.Fresh()
		args[i] = tv
		s = s.Bind(name, tv)
	}
	return &Data{Def: d, Args: args}, s
}

// ConstructorScheme returns the curried function type of a constructor, quantified
// over the parameters of the data type: `forall a. a -> List a -> List a`
func (d *DataDef) ConstructorScheme(c *ConstructorDef) *Scheme {
	args := make([]Type, len(d.Params))
	for i, name := range d.Params {
		args[i] = &Var{Name: name}
	}
	var t Type = &Data{Def: d, Args: args}
	for i := len(c.Args) - 1; i >= 0; i-- {
		t = &Arrow{From: c.Args[i], To: t}
	}
	return &Scheme{Vars: d.Params, Type: t}
}

// Describe returns a structural description of the data type.
func (d *DataDef) Describe() string {
	var sb strings.Builder
	sb.WriteString("data ")
	sb.WriteString(d.Name)
	for _, param := range d.Params {
		sb.WriteByte(' ')
		sb.WriteString(param)
	}
	for i, c := range d.Constructors {
		if i == 0 {
			sb.WriteString(" = ")
		} else {
			sb.WriteString(" | ")
		}
		sb.WriteString(c.Name)
		for _, arg := range c.Args {
			sb.WriteByte(' ')
			sb.WriteString(typeStringSimple(arg))
		}
	}
	return sb.String()
}

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
	"strconv"
)

// Pos is a source position attached to types and syntax for diagnostics.
// Positions never participate in type identity.
type Pos struct {
	Source string
	Line   int
	Column int
}

// IsValid reports whether the position refers to a source location.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		if p.Source != "" {
			return p.Source
		}
		return "-"
	}
	s := strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
	if p.Source != "" {
		s = p.Source + ":" + s
	}
	return s
}

// Type is the base interface for all types.
type Type interface {
	TypeName() string
	Position() Pos
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*Tuple)(nil)
	_ Type = (*Data)(nil)
	_ Type = (*Alias)(nil)
	_ Type = (*RowEmpty)(nil)
	_ Type = (*RowExtend)(nil)
)

func (t *Var) TypeName() string       { return "Var" }
func (t *Arrow) TypeName() string     { return "Arrow" }
func (t *Tuple) TypeName() string     { return "Tuple" }
func (t *Data) TypeName() string      { return "Data" }
func (t *Alias) TypeName() string     { return "Alias" }
func (t *RowEmpty) TypeName() string  { return "RowEmpty" }
func (t *RowExtend) TypeName() string { return "RowExtend" }

func (t *Var) Position() Pos       { return t.Pos }
func (t *Arrow) Position() Pos     { return t.Pos }
func (t *Tuple) Position() Pos     { return t.Pos }
func (t *Data) Position() Pos      { return t.Pos }
func (t *Alias) Position() Pos     { return t.Pos }
func (t *RowEmpty) Position() Pos  { return t.Pos }
func (t *RowExtend) Position() Pos { return t.Pos }

// Function type: `Int -> Int`
type Arrow struct {
	From Type
	To   Type
	Pos  Pos
}

// Tuple type: `(Int, Bool)`. The empty tuple is the unit type.
type Tuple struct {
	Elems []Type
	Pos   Pos
}

// Algebraic data type applied to arguments: `List Int`
type Data struct {
	Def  *DataDef
	Args []Type
	Pos  Pos
}

// Reference to a type alias: `Point`. Scheme quantifies over the alias parameters.
type Alias struct {
	Name   string
	Args   []Type
	Scheme *Scheme
	Pos    Pos
}

// Expand returns the aliased type with the alias parameters replaced by its arguments.
func (t *Alias) Expand() Type {
	s := NewSubst()
	for i, name := range t.Scheme.Vars {
		if i < len(t.Args) {
			s = s.Bind(name, t.Args[i])
		}
	}
	return s.Apply(t.Scheme.Type)
}

// Empty row: `{}`
type RowEmpty struct {
	Pos Pos
}

// Row extension: `{label : field | row}`
type RowExtend struct {
	Label string
	Field Type
	Row   Type
	Pos   Pos
}

// The unit type `()`.
var UnitType = &Tuple{}

// NewRow builds a row chain for fields, sorted by label, ending in tail.
func NewRow(fields TypeMap, tail Type) Type {
	row := tail
	labels := fields.Labels()
	for i := len(labels) - 1; i >= 0; i-- {
		t, _ := fields.Get(labels[i])
		row = &RowExtend{Label: labels[i], Field: t, Row: row}
	}
	return row
}

// IsRow reports whether t is a row type (an empty row or a row extension).
func IsRow(t Type) bool {
	switch t.(type) {
	case *RowEmpty, *RowExtend:
		return true
	}
	return false
}

// FlattenRow collects the fields of a row chain into a single map, along with the
// tail of the chain. Aliases in tail position are expanded. When a label occurs more
// than once, the outermost field is kept. ok is false if t is not a row.
func FlattenRow(t Type) (fields TypeMap, tail Type, ok bool) {
	mb := NewTypeMapBuilder()
	for {
		switch rt := t.(type) {
		case *RowExtend:
			if _, exists := mb.Get(rt.Label); !exists {
				mb.Set(rt.Label, rt.Field)
			}
			t = rt.Row
			continue
		case *Alias:
			t = rt.Expand()
			continue
		case *RowEmpty, *Var:
			return mb.Build(), rt, true
		}
		return mb.Build(), t, false
	}
}

// IsOpenRow reports whether the tail of a row is a type-variable.
func IsOpenRow(tail Type) bool {
	_, ok := tail.(*Var)
	return ok
}

// Equal reports whether a and b are structurally identical. Positions are ignored,
// type-variables are compared by name and data types by declaring module and name.
func Equal(a, b Type) bool {
	if a == b {
		return true
	}
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.From, b.From) && Equal(a.To, b.To)
	case *Tuple:
		b, ok := b.(*Tuple)
		return ok && equalLists(a.Elems, b.Elems)
	case *Data:
		b, ok := b.(*Data)
		return ok && a.Def.SameType(b.Def) && equalLists(a.Args, b.Args)
	case *Alias:
		b, ok := b.(*Alias)
		return ok && a.Name == b.Name && equalLists(a.Args, b.Args)
	case *RowEmpty:
		_, ok := b.(*RowEmpty)
		return ok
	case *RowExtend:
		b, ok := b.(*RowExtend)
		return ok && a.Label == b.Label && Equal(a.Field, b.Field) && Equal(a.Row, b.Row)
	}
	return false
}

func equalLists(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

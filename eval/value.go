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
	"strconv"
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/polyml/ast"
)

// Value is a runtime value. The set of values is closed:
//
//	Unit | Bool | Int | Str | Char | *Tuple | *Record | *Constructor | *Closure | *Builtin
type Value interface {
	// Kind returns the name of the value's variant.
	Kind() string
}

// The unit value `()`
type Unit struct{}

type Bool bool

type Int int64

type Str string

type Char rune

// Tuple value: `(a, b)`
type Tuple struct {
	Elems []Value
}

// Record value: `{a: 1, b: true}`
type Record struct {
	fields *immutable.SortedMap // string -> Value
}

// Value built by a data constructor: `Cons 1 Nil`
type Constructor struct {
	Tag  string
	Args []Value
}

// Closure is a function value. Env is the environment captured when the closure was
// created; bindings added to an enclosing environment afterwards are not visible.
type Closure struct {
	Env   *Env
	Param string
	Body  ast.Expr
	// Name of the declaration which bound the closure, if any
	Name string
}

// Builtin is a native function of fixed arity, applied one argument at a time.
// Fn is called once Arity arguments have been collected.
type Builtin struct {
	Name  string
	Arity int
	Args  []Value
	Fn    func(args []Value) (Value, error)
}

func (Unit) Kind() string         { return "Unit" }
func (Bool) Kind() string         { return "Bool" }
func (Int) Kind() string          { return "Int" }
func (Str) Kind() string          { return "Str" }
func (Char) Kind() string         { return "Char" }
func (*Tuple) Kind() string       { return "Tuple" }
func (*Record) Kind() string      { return "Record" }
func (*Constructor) Kind() string { return "Constructor" }
func (*Closure) Kind() string     { return "Closure" }
func (*Builtin) Kind() string     { return "Builtin" }

var emptyMap = immutable.NewSortedMap(nil)

// NewRecord creates a record value with the given fields.
func NewRecord(fields map[string]Value) *Record {
	b := immutable.NewSortedMapBuilder(emptyMap)
	for label, v := range fields {
		b.Set(label, v)
	}
	return &Record{fields: b.Map()}
}

func (r *Record) imm() *immutable.SortedMap {
	if r.fields == nil {
		return emptyMap
	}
	return r.fields
}

// Len returns the number of fields in the record.
func (r *Record) Len() int { return r.imm().Len() }

// Get the value of a field.
func (r *Record) Get(label string) (Value, bool) {
	v, ok := r.imm().Get(label)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// Extend returns a copy of the record with label bound to v.
func (r *Record) Extend(label string, v Value) *Record {
	return &Record{fields: r.imm().Set(label, v)}
}

// Iterate over fields of the record, sorted by label.
// If f returns false, iteration will be stopped.
func (r *Record) Range(f func(string, Value) bool) {
	iter := r.imm().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Value)) {
			return
		}
	}
}

// Equal reports whether a and b are structurally equal. Functions cannot be compared.
func Equal(a, b Value) (bool, error) {
	switch a := a.(type) {
	case Unit:
		_, ok := b.(Unit)
		return ok, nil
	case Bool, Int, Str, Char:
		return a == b, nil

	case *Tuple:
		b, ok := b.(*Tuple)
		if !ok || len(a.Elems) != len(b.Elems) {
			return false, nil
		}
		return equalLists(a.Elems, b.Elems)

	case *Record:
		b, ok := b.(*Record)
		if !ok || a.Len() != b.Len() {
			return false, nil
		}
		eq, err := true, error(nil)
		a.Range(func(label string, av Value) bool {
			bv, ok := b.Get(label)
			if !ok {
				eq = false
				return false
			}
			eq, err = Equal(av, bv)
			return eq && err == nil
		})
		return eq, err

	case *Constructor:
		b, ok := b.(*Constructor)
		if !ok || a.Tag != b.Tag || len(a.Args) != len(b.Args) {
			return false, nil
		}
		return equalLists(a.Args, b.Args)

	case *Closure, *Builtin:
		return false, &EqualityError{Value: a}
	}
	return false, nil
}

func equalLists(a, b []Value) (bool, error) {
	for i := range a {
		eq, err := Equal(a[i], b[i])
		if !eq || err != nil {
			return false, err
		}
	}
	return true, nil
}

// String renders a value in source syntax. Functions are rendered as opaque placeholders.
func String(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v, false)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value, nested bool) {
	switch v := v.(type) {
	case Unit:
		sb.WriteString("()")
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(v)))
	case Int:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case Str:
		sb.WriteString(strconv.Quote(string(v)))
	case Char:
		sb.WriteString(strconv.QuoteRune(rune(v)))
	case *Tuple:
		sb.WriteByte('(')
		for i, el := range v.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, el, false)
		}
		sb.WriteByte(')')
	case *Record:
		sb.WriteByte('{')
		first := true
		v.Range(func(label string, field Value) bool {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			sb.WriteString(label)
			sb.WriteString(": ")
			writeValue(sb, field, false)
			return true
		})
		sb.WriteByte('}')
	case *Constructor:
		if nested && len(v.Args) > 0 {
			sb.WriteByte('(')
		}
		sb.WriteString(v.Tag)
		for _, arg := range v.Args {
			sb.WriteByte(' ')
			writeValue(sb, arg, true)
		}
		if nested && len(v.Args) > 0 {
			sb.WriteByte(')')
		}
	case *Closure:
		if v.Name != "" {
			sb.WriteString("<closure " + v.Name + ">")
		} else {
			sb.WriteString("<closure>")
		}
	case *Builtin:
		sb.WriteString("<builtin " + v.Name + ">")
	}
}

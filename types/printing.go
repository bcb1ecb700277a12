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
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	sb strings.Builder
}

// Printing precedence:
const (
	precTop = iota
	precArrowFrom
	precArg
)

// TypeString returns a string representation of a Type.
func TypeString(t Type) string {
	p := newTypePrinter()
	p.typeString(precTop, t)
	s := p.sb.String()
	p.Release()
	return s
}

// SchemeString returns a string representation of a Scheme: `forall V1. V1 -> V1`
func SchemeString(sc *Scheme) string {
	if len(sc.Vars) == 0 {
		return TypeString(sc.Type)
	}
	p := newTypePrinter()
	p.sb.WriteString("forall")
	for _, name := range sc.Vars {
		p.sb.WriteByte(' ')
		p.sb.WriteString(name)
	}
	p.sb.WriteString(". ")
	p.typeString(precTop, sc.Type)
	s := p.sb.String()
	p.Release()
	return s
}

func typeStringSimple(t Type) string {
	p := newTypePrinter()
	p.typeString(precArg, t)
	s := p.sb.String()
	p.Release()
	return s
}

func (p *typePrinter) typeString(prec int, t Type) {
	switch t := t.(type) {
	case *Var:
		p.sb.WriteString(t.Name)

	case *Arrow:
		if prec > precTop {
			p.sb.WriteByte('(')
		}
		p.typeString(precArrowFrom, t.From)
		p.sb.WriteString(" -> ")
		p.typeString(precTop, t.To)
		if prec > precTop {
			p.sb.WriteByte(')')
		}

	case *Tuple:
		p.sb.WriteByte('(')
		for i, el := range t.Elems {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.typeString(precTop, el)
		}
		p.sb.WriteByte(')')

	case *Data:
		p.applied(prec, t.Def.Name, t.Args)

	case *Alias:
		p.applied(prec, t.Name, t.Args)

	case *RowEmpty:
		p.sb.WriteString("{}")

	case *RowExtend:
		fields, tail, ok := FlattenRow(t)
		if !ok {
			p.sb.WriteString("<INVALID-ROW>")
			return
		}
		p.sb.WriteByte('{')
		i := 0
		fields.Range(func(label string, ft Type) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(label)
			p.sb.WriteString(" : ")
			p.typeString(precTop, ft)
			i++
			return true
		})
		if _, isEmpty := tail.(*RowEmpty); !isEmpty {
			p.sb.WriteString(" | ")
			p.typeString(precTop, tail)
		}
		p.sb.WriteByte('}')

	case nil:
		p.sb.WriteString("<nil>")
	}
}

func (p *typePrinter) applied(prec int, name string, args []Type) {
	if len(args) == 0 {
		p.sb.WriteString(name)
		return
	}
	if prec >= precArg {
		p.sb.WriteByte('(')
	}
	p.sb.WriteString(name)
	for _, arg := range args {
		p.sb.WriteByte(' ')
		p.typeString(precArg, arg)
	}
	if prec >= precArg {
		p.sb.WriteByte(')')
	}
}

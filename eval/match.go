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
	"github.com/wdamron/polyml/ast"
)

// Match matches v against pat. If v matches, env is returned extended with the
// variables bound by pat.
//
// Record patterns match on the listed fields only when the pattern is open.
func Match(env *Env, pat ast.Pattern, v Value) (*Env, bool, error) {
	switch p := pat.(type) {
	case *ast.PWildcard:
		return env, true, nil

	case *ast.PVar:
		return env.Bind(p.Name, v), true, nil

	case *ast.PLiteral:
		eq, err := Equal(literalValue(&p.Literal), v)
		return env, eq, err

	case *ast.PTuple:
		if len(p.Elems) == 0 {
			_, ok := v.(Unit)
			return env, ok, nil
		}
		t, ok := v.(*Tuple)
		if !ok || len(t.Elems) != len(p.Elems) {
			return env, false, nil
		}
		return matchList(env, p.Elems, t.Elems)

	case *ast.PRecord:
		rec, ok := v.(*Record)
		if !ok || (!p.Open && rec.Len() != len(p.Fields)) {
			return env, false, nil
		}
		for _, f := range p.Fields {
			field, ok := rec.Get(f.Label)
			if !ok {
				return env, false, nil
			}
			var err error
			if env, ok, err = Match(env, f.Pattern, field); !ok || err != nil {
				return env, false, err
			}
		}
		return env, true, nil

	case *ast.PConstructor:
		c, ok := v.(*Constructor)
		if !ok || c.Tag != p.Name || len(c.Args) != len(p.Args) {
			return env, false, nil
		}
		return matchList(env, p.Args, c.Args)
	}

	return env, false, &UnboundError{Name: pat.PatternName(), Pos: pat.Position()}
}

func matchList(env *Env, pats []ast.Pattern, vs []Value) (*Env, bool, error) {
	for i, p := range pats {
		var ok bool
		var err error
		if env, ok, err = Match(env, p, vs[i]); !ok || err != nil {
			return env, false, err
		}
	}
	return env, true, nil
}

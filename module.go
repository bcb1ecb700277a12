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
	"errors"
	"sort"

	"github.com/wdamron/polyml/ast"
	"github.com/wdamron/polyml/eval"
	"github.com/wdamron/polyml/types"
)

// Package holds the exported bindings of a loaded module.
type Package struct {
	ID     string
	Types  *TypeEnv
	Values *eval.Env
}

// Exports returns the names of exported values, data types and aliases, sorted.
func (p *Package) Exports() []string {
	var names []string
	p.Types.RangeValues(func(name string, _ *types.Scheme) bool {
		names = append(names, name)
		return true
	})
	p.Types.RangeData(func(name string, _ *types.DataDef) bool {
		names = append(names, name)
		return true
	})
	p.Types.RangeAliases(func(name string, _ *types.Scheme) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// exporter copies bindings from the environment of an executed module into a package.
type exporter struct {
	from Env
	to   Env
}

func (x *exporter) value(name, local string) bool {
	sc, ok := x.from.Types.Lookup(name)
	if !ok {
		return false
	}
	v, _ := x.from.Values.Lookup(name)
	x.to.Types = x.to.Types.Extend(local, sc)
	x.to.Values = x.to.Values.Bind(local, v)
	return true
}

func (x *exporter) data(name, local string, opaque bool) bool {
	def, ok := x.from.Types.Data(name)
	if !ok {
		return false
	}
	if opaque {
		x.to.Types = x.to.Types.AddDataAs(local, def.Opaque())
		return true
	}
	x.to.Types = x.to.Types.AddDataAs(local, def)
	for _, ctor := range def.Constructors {
		if v, err := x.from.Values.Constructor("", ctor.Name); err == nil {
			x.to.Values = x.to.Values.AddConstructor(ctor.Name, v)
		}
	}
	return true
}

func (x *exporter) alias(name, local string) bool {
	sc, ok := x.from.Types.Alias(name)
	if !ok {
		return false
	}
	x.to.Types = x.to.Types.AddAlias(local, sc)
	return true
}

// named copies every binding of name, reporting whether any was found.
func (x *exporter) named(name, local string, opaque bool) bool {
	found := x.value(name, local)
	found = x.data(name, local, opaque) || found
	return x.alias(name, local) || found
}

// extract collects the exported bindings of an executed module. Opaque data types
// are exported without their constructors.
func extract(id string, prog ast.Program, env Env) (*Package, error) {
	x := &exporter{from: env, to: Env{Types: NewTypeEnv(id), Values: eval.NewEnv()}}
	for _, el := range prog {
		switch el := el.(type) {
		case *ast.ExprElement:
			let, ok := el.Expr.(*ast.Let)
			if !ok || !let.IsDeclaration() {
				continue
			}
			for _, d := range let.Decls {
				if d.Visibility.Exported() {
					x.value(d.Name, d.Name)
				}
			}

		case *ast.DataElement:
			for _, decl := range el.Decls {
				if decl.Visibility.Exported() {
					x.data(decl.Name, decl.Name, decl.Visibility == ast.Opaque)
				}
			}

		case *ast.AliasElement:
			if el.Visibility.Exported() {
				x.alias(el.Name, el.Name)
			}

		case *ast.ImportElement:
			for _, n := range el.Names {
				if !n.Visibility.Exported() {
					continue
				}
				local := n.LocalName()
				if !x.named(local, local, n.Visibility == ast.Opaque) {
					return nil, &UnknownImportNameError{Module: el.Module, Name: n.Name, Pos: n.Pos}
				}
			}
		}
	}
	return &Package{ID: id, Types: x.to.Types, Values: x.to.Values}, nil
}

// importElement brings the exports of an imported module into env.
func (s *Session) importElement(el *ast.ImportElement, env Env) (Env, error) {
	pkg, err := s.Import(el.Module, env.Types.Module)
	if err != nil {
		var cycle *ImportCycleError
		if errors.As(err, &cycle) && !cycle.Pos.IsValid() {
			cycle.Pos = el.Pos
		}
		return env, err
	}
	from := Env{Types: pkg.Types, Values: pkg.Values}

	if el.All {
		if el.As != "" {
			if env.Types.HasImport(el.As) {
				return env, &ImportNameAlreadyDeclaredError{Name: el.As, Pos: el.Pos}
			}
			return Env{Types: env.Types.AddImport(el.As, pkg.Types), Values: env.Values.AddImport(el.As, pkg.Values)}, nil
		}
		x := &exporter{from: from, to: env}
		for _, name := range pkg.Exports() {
			x.named(name, name, false)
		}
		return x.to, nil
	}

	seen := make(map[string]bool, len(el.Names))
	x := &exporter{from: from, to: env}
	for _, n := range el.Names {
		local := n.LocalName()
		if seen[local] {
			return env, &ImportNameAlreadyDeclaredError{Name: local, Pos: n.Pos}
		}
		seen[local] = true
		if !x.named(n.Name, local, false) {
			return env, &UnknownImportNameError{Module: el.Module, Name: n.Name, Pos: n.Pos}
		}
	}
	return x.to, nil
}

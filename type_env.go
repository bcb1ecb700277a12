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
	"github.com/benbjohnson/immutable"
	set "github.com/hashicorp/go-set/v3"

	"github.com/wdamron/polyml/types"
)

var emptyMap = immutable.NewSortedMap(nil)

// TypeEnv is a persistent type-environment containing mappings from identifiers to
// type schemes, the data types and aliases in scope, and the environments of
// qualified imports.
//
// Every update returns a new environment which shares structure with the original;
// the original is never modified.
type TypeEnv struct {
	// Identity of the module which owns the environment
	Module string

	values  *immutable.SortedMap // string -> *types.Scheme
	data    *immutable.SortedMap // string -> *types.DataDef
	ctors   *immutable.SortedMap // constructor name -> *types.DataDef
	aliases *immutable.SortedMap // string -> *types.Scheme
	imports *immutable.SortedMap // qualifier -> *TypeEnv
}

// Create an empty type-environment for a module.
func NewTypeEnv(module string) *TypeEnv {
	return &TypeEnv{
		Module:  module,
		values:  emptyMap,
		data:    emptyMap,
		ctors:   emptyMap,
		aliases: emptyMap,
		imports: emptyMap,
	}
}

func (e *TypeEnv) clone() *TypeEnv {
	c := *e
	return &c
}

// Extend returns a new environment with name bound to sc.
func (e *TypeEnv) Extend(name string, sc *types.Scheme) *TypeEnv {
	c := e.clone()
	c.values = e.values.Set(name, sc)
	return c
}

// Lookup the scheme bound to an identifier.
func (e *TypeEnv) Lookup(name string) (*types.Scheme, bool) {
	sc, ok := e.values.Get(name)
	if !ok {
		return nil, false
	}
	return sc.(*types.Scheme), true
}

// LookupQualified looks up an identifier, through the import registered for
// qualifier when qualifier is not empty.
func (e *TypeEnv) LookupQualified(qualifier, name string) (*types.Scheme, error) {
	scope := e
	if qualifier != "" {
		imported, err := e.GetImport(qualifier)
		if err != nil {
			return nil, err
		}
		scope = imported
	}
	sc, ok := scope.Lookup(name)
	if !ok {
		return nil, &UnknownNameError{Qualifier: qualifier, Name: name}
	}
	return sc, nil
}

// Iterate over bound identifiers, sorted by name.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) RangeValues(f func(string, *types.Scheme) bool) {
	iter := e.values.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*types.Scheme)) {
			return
		}
	}
}

// AddData returns a new environment with a data type and its constructors in scope.
// A data type of the same name is replaced.
func (e *TypeEnv) AddData(d *types.DataDef) *TypeEnv { return e.AddDataAs(d.Name, d) }

// AddDataAs returns a new environment with a data type in scope under a local name.
func (e *TypeEnv) AddDataAs(name string, d *types.DataDef) *TypeEnv {
	c := e.clone()
	if prev, ok := e.Data(name); ok {
		for _, ctor := range prev.Constructors {
			if owner, ok := c.ctors.Get(ctor.Name); ok && owner.(*types.DataDef) == prev {
				c.ctors = c.ctors.Delete(ctor.Name)
			}
		}
	}
	c.data = c.data.Set(name, d)
	for _, ctor := range d.Constructors {
		c.ctors = c.ctors.Set(ctor.Name, d)
	}
	return c
}

// Data looks up a data type by its local name.
func (e *TypeEnv) Data(name string) (*types.DataDef, bool) {
	d, ok := e.data.Get(name)
	if !ok {
		return nil, false
	}
	return d.(*types.DataDef), true
}

// GetData looks up a data type, through the import registered for qualifier when
// qualifier is not empty.
func (e *TypeEnv) GetData(qualifier, name string) (*types.DataDef, error) {
	scope := e
	if qualifier != "" {
		imported, err := e.GetImport(qualifier)
		if err != nil {
			return nil, err
		}
		scope = imported
	}
	d, ok := scope.Data(name)
	if !ok {
		return nil, &UnknownDataNameError{Qualifier: qualifier, Name: name}
	}
	return d, nil
}

// Iterate over data types in scope, sorted by local name.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) RangeData(f func(string, *types.DataDef) bool) {
	iter := e.data.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*types.DataDef)) {
			return
		}
	}
}

// LookupConstructor finds the data type which declares a constructor, through the
// import registered for qualifier when qualifier is not empty.
func (e *TypeEnv) LookupConstructor(qualifier, name string) (*types.DataDef, *types.ConstructorDef, error) {
	scope := e
	if qualifier != "" {
		imported, err := e.GetImport(qualifier)
		if err != nil {
			return nil, nil, err
		}
		scope = imported
	}
	if d, ok := scope.ctors.Get(name); ok {
		def := d.(*types.DataDef)
		if c, ok := def.Constructor(name); ok {
			return def, c, nil
		}
	}
	return nil, nil, &UnknownConstructorError{Qualifier: qualifier, Name: name}
}

// AddAlias returns a new environment with a type alias in scope. The scheme quantifies
// over the parameters of the alias.
func (e *TypeEnv) AddAlias(name string, sc *types.Scheme) *TypeEnv {
	c := e.clone()
	c.aliases = e.aliases.Set(name, sc)
	return c
}

// Alias looks up a type alias by name.
func (e *TypeEnv) Alias(name string) (*types.Scheme, bool) {
	sc, ok := e.aliases.Get(name)
	if !ok {
		return nil, false
	}
	return sc.(*types.Scheme), true
}

// Iterate over type aliases in scope, sorted by name.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) RangeAliases(f func(string, *types.Scheme) bool) {
	iter := e.aliases.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*types.Scheme)) {
			return
		}
	}
}

// AddImport returns a new environment where qualifier refers to an imported environment.
func (e *TypeEnv) AddImport(qualifier string, imported *TypeEnv) *TypeEnv {
	c := e.clone()
	c.imports = e.imports.Set(qualifier, imported)
	return c
}

// GetImport returns the environment registered for a qualifier.
func (e *TypeEnv) GetImport(qualifier string) (*TypeEnv, error) {
	imported, ok := e.imports.Get(qualifier)
	if !ok {
		return nil, &UnknownQualifierError{Qualifier: qualifier}
	}
	return imported.(*TypeEnv), nil
}

// HasImport reports whether a qualifier is registered.
func (e *TypeEnv) HasImport(qualifier string) bool {
	_, ok := e.imports.Get(qualifier)
	return ok
}

// Apply returns a new environment with s applied to every bound scheme.
func (e *TypeEnv) Apply(s types.Subst) *TypeEnv {
	if s.Len() == 0 {
		return e
	}
	values := e.values
	e.RangeValues(func(name string, sc *types.Scheme) bool {
		if applied := sc.Apply(s); applied != sc {
			values = values.Set(name, applied)
		}
		return true
	})
	c := e.clone()
	c.values = values
	return c
}

// FreeVars returns the free type-variables of every bound scheme.
func (e *TypeEnv) FreeVars() *set.Set[string] {
	fv := set.New[string](8)
	e.RangeValues(func(_ string, sc *types.Scheme) bool {
		fv.InsertSet(sc.FreeVars())
		return true
	})
	return fv
}

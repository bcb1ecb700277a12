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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/polyml/types"
)

// Env is a persistent runtime environment containing bound values, data constructors
// and the environments of qualified imports.
//
// Every update returns a new environment which shares structure with the original;
// closures capture an environment by reference without copying.
type Env struct {
	values  *immutable.SortedMap // string -> Value
	ctors   *immutable.SortedMap // string -> Value
	imports *immutable.SortedMap // qualifier -> *Env
}

// Create an empty runtime environment.
func NewEnv() *Env {
	return &Env{values: emptyMap, ctors: emptyMap, imports: emptyMap}
}

func (e *Env) clone() *Env {
	c := *e
	return &c
}

// Bind returns a new environment with name bound to v.
func (e *Env) Bind(name string, v Value) *Env {
	c := e.clone()
	c.values = e.values.Set(name, v)
	return c
}

// Lookup the value bound to name.
func (e *Env) Lookup(name string) (Value, bool) {
	v, ok := e.values.Get(name)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// LookupQualified looks up a value, through the import registered for qualifier when
// qualifier is not empty.
func (e *Env) LookupQualified(qualifier, name string) (Value, error) {
	scope, err := e.scope(qualifier)
	if err != nil {
		return nil, err
	}
	v, ok := scope.Lookup(name)
	if !ok {
		return nil, &UnboundError{Qualifier: qualifier, Name: name}
	}
	return v, nil
}

// Iterate over bound values, sorted by name.
// If f returns false, iteration will be stopped.
func (e *Env) RangeValues(f func(string, Value) bool) {
	iter := e.values.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Value)) {
			return
		}
	}
}

// AddConstructor returns a new environment with a constructor value bound to name.
func (e *Env) AddConstructor(name string, v Value) *Env {
	c := e.clone()
	c.ctors = e.ctors.Set(name, v)
	return c
}

// Constructor looks up a constructor value, through the import registered for qualifier
// when qualifier is not empty.
func (e *Env) Constructor(qualifier, name string) (Value, error) {
	scope, err := e.scope(qualifier)
	if err != nil {
		return nil, err
	}
	v, ok := scope.ctors.Get(name)
	if !ok {
		return nil, &UnboundError{Qualifier: qualifier, Name: name}
	}
	return v.(Value), nil
}

// Iterate over constructors, sorted by name.
// If f returns false, iteration will be stopped.
func (e *Env) RangeConstructors(f func(string, Value) bool) {
	iter := e.ctors.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Value)) {
			return
		}
	}
}

// DeclareData returns a new environment with a constructor value for each constructor
// of def. Nullary constructors are bound to constructed values; other constructors are
// bound to builtins which construct a value once every argument has been applied.
func (e *Env) DeclareData(def *types.DataDef) *Env {
	c := e.clone()
	for _, ctor := range def.Constructors {
		c.ctors = c.ctors.Set(ctor.Name, ConstructorValue(ctor.Name, len(ctor.Args)))
	}
	return c
}

// ConstructorValue returns the runtime value of a constructor with arity arguments.
func ConstructorValue(tag string, arity int) Value {
	if arity == 0 {
		return &Constructor{Tag: tag}
	}
	return &Builtin{Name: tag, Arity: arity, Fn: func(args []Value) (Value, error) {
		return &Constructor{Tag: tag, Args: args}, nil
	}}
}

// AddImport returns a new environment where qualifier refers to an imported environment.
func (e *Env) AddImport(qualifier string, imported *Env) *Env {
	c := e.clone()
	c.imports = e.imports.Set(qualifier, imported)
	return c
}

// GetImport returns the environment registered for a qualifier.
func (e *Env) GetImport(qualifier string) (*Env, error) {
	imported, ok := e.imports.Get(qualifier)
	if !ok {
		return nil, &UnboundError{Qualifier: qualifier}
	}
	return imported.(*Env), nil
}

func (e *Env) scope(qualifier string) (*Env, error) {
	if qualifier == "" {
		return e, nil
	}
	return e.GetImport(qualifier)
}

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
	"strconv"
	"strings"

	"github.com/wdamron/polyml/ast"
	"github.com/wdamron/polyml/types"
)

func qualifiedName(qualifier, name string) string {
	if qualifier == "" {
		return name
	}
	return qualifier + "." + name
}

func at(pos types.Pos, msg string) string {
	if !pos.IsValid() && pos.Source == "" {
		return msg
	}
	return pos.String() + ": " + msg
}

// UnknownNameError indicates a variable was not found in the type environment.
type UnknownNameError struct {
	Qualifier string
	Name      string
	Pos       types.Pos
}

func (e *UnknownNameError) Error() string {
	return at(e.Pos, "unknown name "+qualifiedName(e.Qualifier, e.Name))
}

// UnknownQualifierError indicates a qualifier does not name an import.
type UnknownQualifierError struct {
	Qualifier string
	Pos       types.Pos
}

func (e *UnknownQualifierError) Error() string {
	return at(e.Pos, "unknown qualifier "+e.Qualifier)
}

// UnknownDataNameError indicates a data type was not found in the type environment.
type UnknownDataNameError struct {
	Qualifier string
	Name      string
	Pos       types.Pos
}

func (e *UnknownDataNameError) Error() string {
	return at(e.Pos, "unknown data type "+qualifiedName(e.Qualifier, e.Name))
}

// UnknownTypeNameError indicates a type annotation refers to an undeclared type or
// type-variable.
type UnknownTypeNameError struct {
	Qualifier string
	Name      string
	Pos       types.Pos
}

func (e *UnknownTypeNameError) Error() string {
	return at(e.Pos, "unknown type "+qualifiedName(e.Qualifier, e.Name))
}

// MismatchKind distinguishes structural clashes from clashes between data types
// of the same name declared in different modules.
type MismatchKind int

const (
	StructuralMismatch MismatchKind = iota
	ModuleMismatch
)

// MismatchError indicates two types failed to unify.
type MismatchError struct {
	Kind   MismatchKind
	Left   types.Type
	Right  types.Type
	Reason string
	Pos    types.Pos
}

func (e *MismatchError) Error() string {
	var sb strings.Builder
	sb.WriteString("cannot unify ")
	sb.WriteString(types.TypeString(e.Left))
	sb.WriteString(" with ")
	sb.WriteString(types.TypeString(e.Right))
	if e.Kind == ModuleMismatch {
		l, r := e.Left.(*types.Data), e.Right.(*types.Data)
		sb.WriteString(": ")
		sb.WriteString(l.Def.Name)
		sb.WriteString(" declared in different packages (")
		sb.WriteString(l.Def.Module)
		sb.WriteString(", ")
		sb.WriteString(r.Def.Module)
		sb.WriteByte(')')
	} else if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	return at(e.Pos, sb.String())
}

// DuplicateDataError indicates a data type or constructor was declared twice in one group.
type DuplicateDataError struct {
	Name string
	Pos  types.Pos
}

func (e *DuplicateDataError) Error() string {
	return at(e.Pos, "duplicate data declaration "+e.Name)
}

// ImportNameAlreadyDeclaredError indicates an import would bind a local name or
// qualifier twice.
type ImportNameAlreadyDeclaredError struct {
	Name string
	Pos  types.Pos
}

func (e *ImportNameAlreadyDeclaredError) Error() string {
	return at(e.Pos, "import name "+e.Name+" is already declared")
}

// UnknownConstructorError indicates a constructor was not found in the type environment.
type UnknownConstructorError struct {
	Qualifier string
	Name      string
	Pos       types.Pos
}

func (e *UnknownConstructorError) Error() string {
	return at(e.Pos, "unknown constructor "+qualifiedName(e.Qualifier, e.Name))
}

// ArityMismatchError indicates a constructor pattern or type application was given the
// wrong number of arguments.
type ArityMismatchError struct {
	Name     string
	Expected int
	Actual   int
	Pos      types.Pos
}

func (e *ArityMismatchError) Error() string {
	return at(e.Pos, e.Name+" expects "+strconv.Itoa(e.Expected)+" arguments, got "+strconv.Itoa(e.Actual))
}

// VisibilityModifierError indicates a declaration which is not at the top level of a
// module was given a visibility modifier.
type VisibilityModifierError struct {
	Name       string
	Visibility ast.Visibility
	Pos        types.Pos
}

func (e *VisibilityModifierError) Error() string {
	return at(e.Pos, "visibility "+e.Visibility.String()+" is only allowed on top-level declarations ("+e.Name+")")
}

// UnknownImportNameError indicates a named import is not exported by the imported module.
type UnknownImportNameError struct {
	Module string
	Name   string
	Pos    types.Pos
}

func (e *UnknownImportNameError) Error() string {
	return at(e.Pos, "module "+e.Module+" does not export "+e.Name)
}

// ModuleNotFoundError indicates a module specifier could not be resolved.
type ModuleNotFoundError struct {
	Specifier string
	Referrer  string
}

func (e *ModuleNotFoundError) Error() string {
	return "module " + strconv.Quote(e.Specifier) + " not found from " + e.Referrer
}

// ImportCycleError indicates a module imports itself, directly or transitively.
type ImportCycleError struct {
	Cycle []string
	Pos   types.Pos
}

func (e *ImportCycleError) Error() string {
	return at(e.Pos, "import cycle: "+strings.Join(e.Cycle, " -> "))
}

// ImportDepthError indicates nested imports exceeded the configured maximum depth.
type ImportDepthError struct {
	Module string
	Depth  int
	Pos    types.Pos
}

func (e *ImportDepthError) Error() string {
	return at(e.Pos, "max import depth ("+strconv.Itoa(e.Depth)+") exceeded near "+e.Module)
}

// OpenRowError indicates an open record type was used in a data or alias declaration,
// where every type-variable must be a declared parameter.
type OpenRowError struct {
	Name string
	Pos  types.Pos
}

func (e *OpenRowError) Error() string {
	return at(e.Pos, "open record type in declaration of "+e.Name)
}

// positioned attaches pos to errors raised without a position, such as failures
// from the solver or from environment lookups.
func positioned(err error, pos types.Pos) error {
	if !pos.IsValid() {
		return err
	}
	switch e := err.(type) {
	case *MismatchError:
		if !e.Pos.IsValid() {
			e.Pos = pos
		}
	case *UnknownNameError:
		if !e.Pos.IsValid() {
			e.Pos = pos
		}
	case *UnknownQualifierError:
		if !e.Pos.IsValid() {
			e.Pos = pos
		}
	case *UnknownDataNameError:
		if !e.Pos.IsValid() {
			e.Pos = pos
		}
	case *UnknownConstructorError:
		if !e.Pos.IsValid() {
			e.Pos = pos
		}
	}
	return err
}

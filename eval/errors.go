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
	"github.com/wdamron/polyml/types"
)

func at(pos types.Pos, msg string) string {
	if !pos.IsValid() {
		return msg
	}
	return pos.String() + ": " + msg
}

// UnboundError indicates a name or qualifier has no binding in the runtime environment.
// Name is empty when the qualifier itself is unbound.
type UnboundError struct {
	Qualifier string
	Name      string
	Pos       types.Pos
}

func (e *UnboundError) Error() string {
	switch {
	case e.Name == "":
		return at(e.Pos, "unbound qualifier "+e.Qualifier)
	case e.Qualifier != "":
		return at(e.Pos, "unbound name "+e.Qualifier+"."+e.Name)
	}
	return at(e.Pos, "unbound name "+e.Name)
}

// MatchFailureError indicates no case of a match expression matched the scrutinee.
type MatchFailureError struct {
	Value Value
	Pos   types.Pos
}

func (e *MatchFailureError) Error() string {
	return at(e.Pos, "no case matched "+String(e.Value))
}

// DivisionByZeroError indicates an integer was divided by zero.
type DivisionByZeroError struct {
	Pos types.Pos
}

func (e *DivisionByZeroError) Error() string { return at(e.Pos, "division by zero") }

// EqualityError indicates functions were compared for equality.
type EqualityError struct {
	Value Value
	Pos   types.Pos
}

func (e *EqualityError) Error() string {
	return at(e.Pos, "cannot compare functions ("+String(e.Value)+")")
}

// NotAFunctionError indicates a value which is not a function was applied.
type NotAFunctionError struct {
	Value Value
	Pos   types.Pos
}

func (e *NotAFunctionError) Error() string {
	return at(e.Pos, String(e.Value)+" is not a function")
}

// TypeError indicates a value of an unexpected kind reached an operation. Programs
// which pass type inference never raise it.
type TypeError struct {
	Expected string
	Value    Value
	Pos      types.Pos
}

func (e *TypeError) Error() string {
	return at(e.Pos, "expected "+e.Expected+", got "+String(e.Value))
}

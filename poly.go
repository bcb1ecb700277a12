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

// polyml is the core of an interpreter for a small functional language with
// Hindley-Milner type inference, algebraic data types and row-polymorphic records.
//
// Inference generates equality constraints while walking an expression and solves
// them by unification afterwards. Declarations bound by let are solved and generalized
// as soon as they are inferred, so later declarations may use them polymorphically.
// Records are typed as rows of labeled fields ending in either the empty row (closed)
// or a type-variable (open).
//
// Type-checked programs are evaluated by a tree-walking evaluator (see package eval).
// A Session executes programs element by element and loads imported modules through
// a Loader, caching each module for the lifetime of the session.
//
// Supported Features:
//
//   * Let-polymorphism, with mutually-recursive let rec groups
//   * Mutually-recursive (generic) data types, with opaque exports
//   * Transparently aliased (generic) types
//   * Extensible records with open and closed rows
//   * Qualified and named imports, with re-exports
//
// Unification performs no occurs-check, so self-referential types are not rejected.
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Extensible Records with Scoped Labels (Leijen, 2005): https://www.microsoft.com/en-us/research/publication/extensible-records-with-scoped-labels/
package polyml

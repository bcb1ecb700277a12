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
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/wdamron/polyml/ast"
	"github.com/wdamron/polyml/eval"
	"github.com/wdamron/polyml/internal/util"
	"github.com/wdamron/polyml/types"
)

// Env pairs the type environment of a module with its runtime environment.
type Env struct {
	Types  *TypeEnv
	Values *eval.Env
}

// DefaultEnv returns the environment every module starts from: the builtin data types
// Int, Bool, String and Char, and the alias `Unit = ()`.
func DefaultEnv(module string) Env {
	tenv := NewTypeEnv(module)
	for _, def := range types.BuiltinData() {
		tenv = tenv.AddData(def)
	}
	tenv = tenv.AddAlias("Unit", types.Mono(types.UnitType))
	return Env{Types: tenv, Values: eval.NewEnv()}
}

// Result is the outcome of executing one top-level element. Expressions produce a
// value and its type; declarations of data types and aliases produce a description.
type Result struct {
	Value       eval.Value
	Type        *types.Scheme
	Description string
}

func (r Result) String() string {
	if r.Value == nil {
		return r.Description
	}
	return eval.String(r.Value) + " : " + types.SchemeString(r.Type)
}

// Session executes programs and caches the modules they import. Each module is loaded
// at most once per session.
//
// A session cannot be used concurrently.
type Session struct {
	loader Loader
	parser Parser
	config *Config
	logger *slog.Logger
	ctx    *InferenceContext

	packages map[string]*Package
	pending  map[string]bool
	loading  []string // modules being loaded, outermost first

	imports  util.Graph // importer -> imported
	vertices map[string]int
	ids      []string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for module resolution and execution records.
func WithLogger(logger *slog.Logger) Option { return func(s *Session) { s.logger = logger } }

// WithConfig sets the configuration of the session.
func WithConfig(cfg *Config) Option { return func(s *Session) { s.config = cfg } }

// NewSession creates a session which loads modules through loader and parser.
func NewSession(loader Loader, parser Parser, opts ...Option) *Session {
	s := &Session{
		loader:   loader,
		parser:   parser,
		ctx:      NewContext(),
		packages: make(map[string]*Package),
		pending:  make(map[string]bool),
		vertices: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Execute runs each element of prog in order, starting from env. The results of
// the executed elements are returned with the final environment.
//
// If an element fails, execution stops; the results of the preceding elements are
// returned along with the environment as it was before the failing element.
func (s *Session) Execute(prog ast.Program, env Env) ([]Result, Env, error) {
	results := make([]Result, 0, len(prog))
	for _, el := range prog {
		res, next, err := s.ExecuteElement(el, env)
		if err != nil {
			return results, env, err
		}
		results = append(results, res)
		env = next
	}
	return results, env, nil
}

// ExecuteElement infers and evaluates one top-level element within env. The original
// environment is unchanged if the element fails.
func (s *Session) ExecuteElement(el ast.Element, env Env) (Result, Env, error) {
	s.logger.Debug("executing element", "module", env.Types.Module, "kind", el.ElementName(), "pos", el.Position().String())
	switch el := el.(type) {
	case *ast.ExprElement:
		if let, ok := el.Expr.(*ast.Let); ok && let.IsDeclaration() {
			return s.executeDecls(let, env)
		}
		t, err := s.ctx.Infer(env.Types, el.Expr)
		if err != nil {
			return Result{}, env, err
		}
		v, err := eval.Eval(env.Values, el.Expr)
		if err != nil {
			return Result{}, env, err
		}
		return Result{Value: v, Type: env.Types.Generalize(t)}, env, nil

	case *ast.DataElement:
		s.ctx.Reset()
		tenv, defs, err := s.ctx.DeclareData(env.Types, el)
		if err != nil {
			return Result{}, env, err
		}
		venv := env.Values
		descriptions := make([]string, len(defs))
		for i, def := range defs {
			venv = venv.DeclareData(def)
			descriptions[i] = def.Describe()
		}
		return Result{Description: strings.Join(descriptions, "\n")}, Env{Types: tenv, Values: venv}, nil

	case *ast.AliasElement:
		tenv, sc, err := s.ctx.InferElement(env.Types, el)
		if err != nil {
			return Result{}, env, err
		}
		return Result{Description: describeAlias(el.Name, sc)}, Env{Types: tenv, Values: env.Values}, nil

	case *ast.ImportElement:
		next, err := s.importElement(el, env)
		if err != nil {
			return Result{}, env, err
		}
		return Result{Description: "import " + el.Module}, next, nil
	}
	return Result{}, env, fmt.Errorf("unsupported element %s", el.ElementName())
}

func (s *Session) executeDecls(let *ast.Let, env Env) (Result, Env, error) {
	tenv, sc, err := s.ctx.InferDecls(env.Types, let)
	if err != nil {
		return Result{}, env, err
	}
	venv, v, err := eval.EvalDecls(env.Values, let)
	if err != nil {
		return Result{}, env, err
	}
	return Result{Value: v, Type: sc}, Env{Types: tenv, Values: venv}, nil
}

func describeAlias(name string, sc *types.Scheme) string {
	var sb strings.Builder
	sb.WriteString("type ")
	sb.WriteString(name)
	for _, param := range sc.Vars {
		sb.WriteByte(' ')
		sb.WriteString(param)
	}
	sb.WriteString(" = ")
	sb.WriteString(types.TypeString(sc.Type))
	return sb.String()
}

func (s *Session) vertex(id string) int {
	if v, ok := s.vertices[id]; ok {
		return v
	}
	v := s.imports.AddVertex()
	s.vertices[id] = v
	s.ids = append(s.ids, id)
	return v
}

// Import loads the module named by specifier, as imported from referrer. Modules are
// loaded at most once per session; later imports of the same module share its package.
func (s *Session) Import(specifier, referrer string) (*Package, error) {
	id, err := s.loader.Resolve(specifier, referrer)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve import %q from %s: %w", specifier, referrer, err)
	}
	s.logger.Debug("resolved module", "specifier", specifier, "referrer", referrer, "id", id)
	s.imports.AddEdge(s.vertex(referrer), s.vertex(id))

	if pkg, ok := s.packages[id]; ok {
		s.logger.Debug("module cache hit", "id", id)
		return pkg, nil
	}
	if s.pending[id] {
		return nil, &ImportCycleError{Cycle: s.cycle(id)}
	}
	if len(s.loading) >= s.config.MaxImportDepth {
		return nil, &ImportDepthError{Module: id, Depth: s.config.MaxImportDepth}
	}

	s.pending[id] = true
	s.loading = append(s.loading, id)
	defer func() {
		delete(s.pending, id)
		s.loading = s.loading[:len(s.loading)-1]
	}()

	text, err := s.loader.Read(id)
	if err != nil {
		return nil, fmt.Errorf("cannot read module %s: %w", id, err)
	}
	prog, err := s.parser.Parse(id, text)
	if err != nil {
		return nil, fmt.Errorf("parsing error in %s: %w", id, err)
	}
	s.logger.Debug("loading module", "id", id, "elements", len(prog), "depth", len(s.loading))
	_, env, err := s.Execute(prog, DefaultEnv(id))
	if err != nil {
		return nil, fmt.Errorf("in module %s: %w", id, err)
	}
	pkg, err := extract(id, prog, env)
	if err != nil {
		return nil, fmt.Errorf("in module %s: %w", id, err)
	}
	s.packages[id] = pkg
	s.logger.Debug("loaded module", "id", id, "exports", len(pkg.Exports()))
	return pkg, nil
}

// cycle returns the chain of pending modules which leads back to id.
func (s *Session) cycle(id string) []string {
	scc, ok := s.imports.Cycle(s.vertex(id))
	members := make(map[int]bool, len(scc))
	for _, v := range scc {
		members[v] = true
	}
	var chain []string
	for i, pending := range s.loading {
		if pending != id {
			continue
		}
		for _, m := range s.loading[i:] {
			if !ok || members[s.vertices[m]] {
				chain = append(chain, m)
			}
		}
		break
	}
	return append(chain, id)
}

// Modules returns the identities of the modules loaded by the session, ordered so
// that every module follows the modules it imports.
func (s *Session) Modules() []string {
	sccs := s.imports.SCC()
	var ids []string
	for i := len(sccs) - 1; i >= 0; i-- {
		for _, v := range sccs[i] {
			if _, ok := s.packages[s.ids[v]]; ok {
				ids = append(ids, s.ids[v])
			}
		}
	}
	return ids
}

// Package returns a module loaded by the session.
func (s *Session) Package(id string) (*Package, bool) {
	pkg, ok := s.packages[id]
	return pkg, ok
}

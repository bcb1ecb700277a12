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
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/wdamron/polyml/ast"
)

// Loader resolves module specifiers to module identities and reads module source.
type Loader interface {
	// Resolve returns the identity of the module named by specifier, as imported
	// from the module identified by referrer.
	Resolve(specifier, referrer string) (string, error)
	// Read returns the source text of a resolved module.
	Read(id string) (string, error)
}

// Parser parses module source text into a program. Parsing is external to the
// interpreter core.
type Parser interface {
	Parse(source, text string) (ast.Program, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(source, text string) (ast.Program, error)

func (f ParserFunc) Parse(source, text string) (ast.Program, error) { return f(source, text) }

func isRelative(specifier string) bool {
	return strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}

// MapLoader loads modules from memory. Module identities are slash-separated paths;
// relative specifiers are resolved against the directory of the referrer.
type MapLoader map[string]string

func (m MapLoader) Resolve(specifier, referrer string) (string, error) {
	id := specifier
	if isRelative(specifier) {
		id = path.Join(path.Dir(referrer), specifier)
	}
	id = path.Clean(id)
	if _, ok := m[id]; !ok {
		return "", &ModuleNotFoundError{Specifier: specifier, Referrer: referrer}
	}
	return id, nil
}

func (m MapLoader) Read(id string) (string, error) {
	text, ok := m[id]
	if !ok {
		return "", &ModuleNotFoundError{Specifier: id}
	}
	return text, nil
}

// FileLoader loads modules from the filesystem. Relative specifiers are resolved
// against the directory of the referrer; other specifiers are searched for in each
// configured root, in order. Module identities are absolute paths.
type FileLoader struct {
	Roots     []string
	Extension string
}

// NewFileLoader creates a loader for the roots and extension of cfg.
func NewFileLoader(cfg *Config) *FileLoader {
	return &FileLoader{Roots: cfg.Roots, Extension: cfg.Extension}
}

func (l *FileLoader) Resolve(specifier, referrer string) (string, error) {
	name := filepath.FromSlash(specifier)
	if l.Extension != "" && filepath.Ext(name) == "" {
		name += l.Extension
	}
	var candidates []string
	switch {
	case filepath.IsAbs(name):
		candidates = []string{name}
	case isRelative(specifier):
		candidates = []string{filepath.Join(filepath.Dir(referrer), name)}
	default:
		for _, root := range l.Roots {
			candidates = append(candidates, filepath.Join(root, name))
		}
	}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", candidate, err)
		}
		return abs, nil
	}
	return "", &ModuleNotFoundError{Specifier: specifier, Referrer: referrer}
}

func (l *FileLoader) Read(id string) (string, error) {
	data, err := os.ReadFile(id)
	if err != nil {
		return "", fmt.Errorf("reading module %s: %w", id, err)
	}
	return string(data), nil
}

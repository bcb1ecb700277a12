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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/polyml/ast"
	. "github.com/wdamron/polyml/construct"
)

func TestMapLoaderResolve(t *testing.T) {
	m := MapLoader{
		"lib/list":     "list",
		"lib/util/map": "map",
		"main":         "main",
	}
	for _, tc := range []struct {
		specifier, referrer, id string
	}{
		{"lib/list", "main", "lib/list"},
		{"./list", "lib/util/map", "lib/util/list"},
		{"../list", "lib/util/map", "lib/list"},
		{"./util/map", "lib/list", "lib/util/map"},
		{"./main", "main", "main"},
	} {
		id, err := m.Resolve(tc.specifier, tc.referrer)
		if tc.id == "lib/util/list" {
			var notFound *ModuleNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tc.referrer, notFound.Referrer)
			continue
		}
		require.NoError(t, err, tc.specifier)
		assert.Equal(t, tc.id, id)
	}

	text, err := m.Read("lib/list")
	require.NoError(t, err)
	assert.Equal(t, "list", text)
	_, err = m.Read("nope")
	assert.Error(t, err)
}

func writeModule(t *testing.T, path, text string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib")
	vendor := filepath.Join(dir, "vendor")
	writeModule(t, filepath.Join(lib, "list.pml"), "list")
	writeModule(t, filepath.Join(vendor, "list.pml"), "vendored list")
	writeModule(t, filepath.Join(vendor, "map.pml"), "map")
	writeModule(t, filepath.Join(dir, "app", "main.pml"), "main")
	writeModule(t, filepath.Join(dir, "app", "util.pml"), "util")

	cfg := DefaultConfig()
	cfg.Roots = []string{lib, vendor}
	l := NewFileLoader(cfg)
	main := filepath.Join(dir, "app", "main.pml")

	id, err := l.Resolve("list", main)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(lib, "list.pml"), id)

	id, err = l.Resolve("map", main)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(vendor, "map.pml"), id)

	id, err = l.Resolve("./util", main)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "app", "util.pml"), id)
	text, err := l.Read(id)
	require.NoError(t, err)
	assert.Equal(t, "util", text)

	id, err = l.Resolve(filepath.Join(vendor, "list.pml"), main)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(vendor, "list.pml"), id)

	_, err = l.Resolve("./list", main)
	var notFound *ModuleNotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = l.Resolve("app", main)
	require.ErrorAs(t, err, &notFound)

	_, err = l.Read(filepath.Join(dir, "missing.pml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileLoaderSession(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, filepath.Join(dir, "lib", "nums.pml"), "nums")
	main := filepath.Join(dir, "main.pml")
	writeModule(t, main, "main")

	cfg := DefaultConfig()
	cfg.Roots = []string{filepath.Join(dir, "lib")}
	parser := ParserFunc(func(source, text string) (ast.Program, error) {
		switch text {
		case "nums":
			return Program(Decls(PubDecl("ten", Int(10)))), nil
		default:
			return Program(ImportAll("nums", "N"), ExprEl(BinOp(ast.OpAdd, QVar("N", "ten"), Int(1)))), nil
		}
	})
	s := NewSession(NewFileLoader(cfg), parser, WithConfig(cfg))

	prog, err := parser.Parse(main, "main")
	require.NoError(t, err)
	env := DefaultEnv(main)
	results, _, err := s.Execute(prog, env)
	require.NoError(t, err)
	assert.Equal(t, "11 : Int", results[1].String())
	assert.Equal(t, []string{filepath.Join(dir, "lib", "nums.pml")}, s.Modules())
}

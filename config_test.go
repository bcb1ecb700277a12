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
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultExtension, cfg.Extension)
	assert.Equal(t, DefaultMaxImportDepth, cfg.MaxImportDepth)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Empty(t, cfg.Roots)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
roots: [lib, vendor]
extension: .ml
max_import_depth: 8
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"lib", "vendor"}, cfg.Roots)
	assert.Equal(t, ".ml", cfg.Extension)
	assert.Equal(t, 8, cfg.MaxImportDepth)
	assert.Equal(t, slog.LevelDebug, cfg.Level())

	cfg, err = ParseConfig([]byte("roots: [lib]\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultExtension, cfg.Extension)
	assert.Equal(t, DefaultMaxImportDepth, cfg.MaxImportDepth)

	for _, bad := range []string{
		"max_import_depth: -1\n",
		"extension: pml\n",
		"log_level: loud\n",
		"roots: {\n",
	} {
		_, err := ParseConfig([]byte(bad))
		assert.Error(t, err, bad)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "polyml.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.Level())

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

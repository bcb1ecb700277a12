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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/wdamron/polyml/construct"
	"github.com/wdamron/polyml/types"
)

func TestTypeEnvIsPersistent(t *testing.T) {
	base := NewTypeEnv("main")
	extended := base.Extend("x", types.Mono(types.IntType))

	_, ok := base.Lookup("x")
	assert.False(t, ok)
	sc, ok := extended.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "Int", types.SchemeString(sc))

	shadowed := extended.Extend("x", types.Mono(types.BoolType))
	sc, _ = extended.Lookup("x")
	assert.Equal(t, "Int", types.SchemeString(sc))
	sc, _ = shadowed.Lookup("x")
	assert.Equal(t, "Bool", types.SchemeString(sc))
}

func TestTypeEnvImports(t *testing.T) {
	lib := NewTypeEnv("lib").Extend("one", types.Mono(types.IntType))
	env := NewTypeEnv("main").AddImport("L", lib)

	sc, err := env.LookupQualified("L", "one")
	require.NoError(t, err)
	assert.Equal(t, "Int", types.SchemeString(sc))

	_, err = env.LookupQualified("L", "two")
	var unknown *UnknownNameError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "L.two", qualifiedName(unknown.Qualifier, unknown.Name))

	_, err = env.GetImport("M")
	var qualifier *UnknownQualifierError
	require.ErrorAs(t, err, &qualifier)
	assert.True(t, env.HasImport("L"))
	assert.False(t, env.HasImport("M"))
}

func TestTypeEnvData(t *testing.T) {
	maybe := DataDef("main", "Maybe", []string{"a"}, Ctor("Nothing"), Ctor("Just", TVar("a")))
	env := NewTypeEnv("main").AddData(maybe)

	def, ctor, err := env.LookupConstructor("", "Just")
	require.NoError(t, err)
	assert.Same(t, maybe, def)
	assert.Equal(t, "Just", ctor.Name)

	_, err = env.GetData("", "Either")
	var unknownData *UnknownDataNameError
	require.ErrorAs(t, err, &unknownData)

	_, err = env.GetData("X", "Maybe")
	var qualifier *UnknownQualifierError
	require.ErrorAs(t, err, &qualifier)

	qualified := NewTypeEnv("other").AddImport("M", env)
	def, err = qualified.GetData("M", "Maybe")
	require.NoError(t, err)
	assert.Same(t, maybe, def)
	_, _, err = qualified.LookupConstructor("", "Just")
	var unknownCtor *UnknownConstructorError
	require.ErrorAs(t, err, &unknownCtor)
	_, _, err = qualified.LookupConstructor("M", "Nothing")
	require.NoError(t, err)

	// replacing a data type removes its stale constructors
	replaced := env.AddData(DataDef("main", "Maybe", nil, Ctor("None")))
	_, _, err = replaced.LookupConstructor("", "Just")
	require.ErrorAs(t, err, &unknownCtor)
	_, _, err = replaced.LookupConstructor("", "None")
	require.NoError(t, err)

	// opaque copies expose no constructors
	hidden := NewTypeEnv("main").AddDataAs("Maybe", maybe.Opaque())
	_, _, err = hidden.LookupConstructor("", "Just")
	require.ErrorAs(t, err, &unknownCtor)
	def, err = hidden.GetData("", "Maybe")
	require.NoError(t, err)
	assert.True(t, def.SameType(maybe))
}

func TestTypeEnvGeneralize(t *testing.T) {
	env := NewTypeEnv("main").Extend("y", types.Mono(TVar("b")))

	sc := env.Generalize(TArrows(TVar("a"), TVar("b"), TVar("a")))
	assert.Equal(t, []string{"a"}, sc.Vars)
	assert.Equal(t, "forall a. a -> b -> a", types.SchemeString(sc))

	applied := env.Apply(types.SingletonSubst("b", types.IntType))
	sc, _ = applied.Lookup("y")
	assert.Equal(t, "Int", types.SchemeString(sc))
	assert.Equal(t, 0, applied.FreeVars().Size())
	assert.Equal(t, 1, env.FreeVars().Size())

	sc = applied.Generalize(TArrow(TVar("b"), TVar("b")))
	assert.Equal(t, "forall b. b -> b", types.SchemeString(sc))
}

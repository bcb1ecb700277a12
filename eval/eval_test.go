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

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/polyml/ast"
	. "github.com/wdamron/polyml/construct"
	"github.com/wdamron/polyml/eval"
)

func evalExpr(t *testing.T, env *eval.Env, e ast.Expr) eval.Value {
	t.Helper()
	v, err := eval.Eval(env, e)
	require.NoError(t, err, ast.ExprString(e))
	return v
}

func listEnv() *eval.Env {
	list := DataDef("main", "List", []string{"a"}, Ctor("Nil"), Ctor("Cons", TVar("a"), TVar("a")))
	return eval.NewEnv().DeclareData(list)
}

func TestEvalBasics(t *testing.T) {
	env := eval.NewEnv()
	assert.Equal(t, eval.Int(7), evalExpr(t, env, BinOp(ast.OpAdd, Int(3), BinOp(ast.OpMul, Int(2), Int(2)))))
	assert.Equal(t, eval.Str("ab"), evalExpr(t, env, BinOp(ast.OpConcat, Str("a"), Str("b"))))
	assert.Equal(t, eval.Bool(true), evalExpr(t, env, BinOp(ast.OpNeq, Char('a'), Char('b'))))
	assert.Equal(t, eval.Unit{}, evalExpr(t, env, Tuple()))
	assert.Equal(t, eval.Int(2), evalExpr(t, env, If(BinOp(ast.OpLt, Int(1), Int(2)), Int(2), Int(3))))
	assert.Equal(t, eval.Int(-1), evalExpr(t, env, BinOp(ast.OpDiv, Int(-7), Int(7))))

	id := Lambda("x", Var("x"))
	assert.Equal(t, eval.Int(1), evalExpr(t, env, Apply(id, Int(1))))
	k := Lambdas([]string{"x", "y"}, Var("x"))
	assert.Equal(t, eval.Bool(true), evalExpr(t, env, Apply(k, Bool(true), Int(0))))
}

func TestEvalShortCircuit(t *testing.T) {
	env := eval.NewEnv()
	boom := BinOp(ast.OpEq, BinOp(ast.OpDiv, Int(1), Int(0)), Int(1))
	assert.Equal(t, eval.Bool(false), evalExpr(t, env, BinOp(ast.OpAnd, Bool(false), boom)))
	assert.Equal(t, eval.Bool(true), evalExpr(t, env, BinOp(ast.OpOr, Bool(true), boom)))

	_, err := eval.Eval(env, BinOp(ast.OpAnd, Bool(true), boom))
	var div *eval.DivisionByZeroError
	require.ErrorAs(t, err, &div)
}

func TestEvalClosureCapturesEnv(t *testing.T) {
	// let x = 1 in let f = \y -> x in let x = 2 in f ()
	e := Let("x", Int(1),
		Let("f", Lambda("y", Var("x")),
			Let("x", Int(2), Apply(Var("f"), Unit()))))
	assert.Equal(t, eval.Int(1), evalExpr(t, eval.NewEnv(), e))
}

func TestEvalDecls(t *testing.T) {
	env := eval.NewEnv()
	env, last, err := eval.EvalDecls(env, &ast.Let{Decls: []ast.Decl{
		Decl("one", Int(1)),
		Decl("inc", Lambda("n", BinOp(ast.OpAdd, Var("n"), Var("one")))),
	}})
	require.NoError(t, err)
	assert.Equal(t, "<closure inc>", eval.String(last))
	assert.Equal(t, eval.Int(2), evalExpr(t, env, Apply(Var("inc"), Int(1))))

	// mutually recursive closures see each other
	isEven := Lambda("n", If(BinOp(ast.OpEq, Var("n"), Int(0)), Bool(true), Apply(Var("isOdd"), BinOp(ast.OpSub, Var("n"), Int(1)))))
	isOdd := Lambda("n", If(BinOp(ast.OpEq, Var("n"), Int(0)), Bool(false), Apply(Var("isEven"), BinOp(ast.OpSub, Var("n"), Int(1)))))
	env, _, err = eval.EvalDecls(env, &ast.Let{Rec: true, Decls: []ast.Decl{
		Decl("isEven", isEven),
		Decl("isOdd", isOdd),
		Decl("ten", Int(10)),
	}})
	require.NoError(t, err)
	assert.Equal(t, eval.Bool(true), evalExpr(t, env, Apply(Var("isEven"), Var("ten"))))
	assert.Equal(t, eval.Bool(false), evalExpr(t, env, Apply(Var("isOdd"), Int(10))))

	_, _, err = eval.EvalDecls(env, &ast.Let{Decls: []ast.Decl{Decl("bad", Var("missing"))}})
	var unbound *eval.UnboundError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "missing", unbound.Name)
}

func TestEvalRecursiveValues(t *testing.T) {
	inc := Lambda("n", BinOp(ast.OpAdd, Var("n"), Int(1)))
	for _, decls := range [][]ast.Decl{
		{Decl("f", inc), Decl("x", Apply(Var("f"), Int(5)))},
		{Decl("x", Apply(Var("f"), Int(5))), Decl("f", inc)},
	} {
		env, _, err := eval.EvalDecls(eval.NewEnv(), &ast.Let{Rec: true, Decls: decls})
		require.NoError(t, err)
		x, ok := env.Lookup("x")
		require.True(t, ok)
		assert.Equal(t, eval.Int(6), x)
		assert.Equal(t, eval.Int(3), evalExpr(t, env, Apply(Var("f"), Int(2))))
	}

	// functions called while the group is evaluated see the values before them
	env, last, err := eval.EvalDecls(eval.NewEnv(), &ast.Let{Rec: true, Decls: []ast.Decl{
		Decl("base", Int(10)),
		Decl("g", Lambda("n", BinOp(ast.OpAdd, Var("n"), Var("base")))),
		Decl("y", Apply(Var("g"), Int(1))),
	}})
	require.NoError(t, err)
	assert.Equal(t, eval.Int(11), last)
	assert.Equal(t, eval.Int(12), evalExpr(t, env, Apply(Var("g"), Int(2))))

	pos := ast.Pos{Source: "main", Line: 2, Column: 9}
	_, _, err = eval.EvalDecls(eval.NewEnv(), &ast.Let{Rec: true, Decls: []ast.Decl{
		Decl("x", &ast.Var{Name: "y", Pos: pos}),
		Decl("y", Int(1)),
	}})
	var unbound *eval.UnboundError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "y", unbound.Name)
	assert.Equal(t, pos, unbound.Pos)

	_, _, err = eval.EvalDecls(eval.NewEnv(), &ast.Let{Rec: true, Decls: []ast.Decl{
		Decl("g", Lambda("n", Var("later"))),
		Decl("x", Apply(Var("g"), Int(0))),
		Decl("later", Int(1)),
	}})
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "later", unbound.Name)
}

func TestEvalRecords(t *testing.T) {
	env := eval.NewEnv()
	r := Record(Field("b", Int(2)), Field("a", Int(1)))
	v := evalExpr(t, env, r)
	assert.Equal(t, "{a: 1, b: 2}", eval.String(v))

	extended := evalExpr(t, env.Bind("r", v), RecordExtend(Var("r"), Field("c", Str("x"))))
	assert.Equal(t, `{a: 1, b: 2, c: "x"}`, eval.String(extended))
	assert.Equal(t, 2, v.(*eval.Record).Len())

	assert.Equal(t, eval.Int(1), evalExpr(t, env, RecordSelect(r, "a")))
}

func TestEvalConstructors(t *testing.T) {
	env := listEnv()
	cons, err := env.Constructor("", "Cons")
	require.NoError(t, err)
	partial, err := eval.Apply(cons, eval.Int(1))
	require.NoError(t, err)
	assert.Equal(t, "<builtin Cons>", eval.String(partial))

	nilValue, _ := env.Constructor("", "Nil")
	full, err := eval.Apply(partial, nilValue)
	require.NoError(t, err)
	assert.Equal(t, "Cons 1 Nil", eval.String(full))

	// partial applications are not shared
	other, err := eval.Apply(partial, eval.Int(2))
	require.NoError(t, err)
	assert.Equal(t, "Cons 1 2", eval.String(other))
	assert.Equal(t, "Cons 1 Nil", eval.String(full))

	_, err = eval.Apply(eval.Int(1), eval.Int(2))
	var notFn *eval.NotAFunctionError
	require.ErrorAs(t, err, &notFn)

	_, err = env.Constructor("M", "Cons")
	var unbound *eval.UnboundError
	require.ErrorAs(t, err, &unbound)
	assert.Empty(t, unbound.Name)
}

func TestMatch(t *testing.T) {
	env := listEnv()
	list := Apply(Con("Cons"), Int(1), Apply(Con("Cons"), Int(2), Con("Nil")))
	second := Match(list,
		Case(PCon("Cons", PWild(), PCon("Cons", PVar("x"), PWild())), Var("x")),
		Case(PWild(), Int(0)))
	assert.Equal(t, eval.Int(2), evalExpr(t, env, second))

	tuple := Match(Tuple(Int(1), Str("s")),
		Case(PTuple(PLit(Int(0)), PVar("s")), Str("zero")),
		Case(PTuple(PLit(Int(1)), PVar("s")), Var("s")))
	assert.Equal(t, eval.Str("s"), evalExpr(t, env, tuple))

	rec := Record(Field("a", Int(1)), Field("b", Int(2)))
	_, ok, err := eval.Match(env, PRecord(PField("a", PVar("a"))), evalExpr(t, env, rec))
	require.NoError(t, err)
	assert.False(t, ok, "closed record patterns match every field")
	bound, ok, err := eval.Match(env, POpenRecord(PField("a", PVar("a"))), evalExpr(t, env, rec))
	require.NoError(t, err)
	require.True(t, ok)
	a, _ := bound.Lookup("a")
	assert.Equal(t, eval.Int(1), a)

	_, err = eval.Eval(env, Match(Con("Nil"), Case(PCon("Cons", PWild(), PWild()), Int(1))))
	var failure *eval.MatchFailureError
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "Nil", eval.String(failure.Value))
}

func TestEqual(t *testing.T) {
	env := listEnv()
	eq := func(a, b ast.Expr) eval.Value { return evalExpr(t, env, BinOp(ast.OpEq, a, b)) }
	one := Apply(Con("Cons"), Int(1), Con("Nil"))
	assert.Equal(t, eval.Bool(true), eq(one, Apply(Con("Cons"), Int(1), Con("Nil"))))
	assert.Equal(t, eval.Bool(false), eq(one, Con("Nil")))
	assert.Equal(t, eval.Bool(true), eq(Tuple(Int(1), Str("a")), Tuple(Int(1), Str("a"))))
	assert.Equal(t, eval.Bool(true), eq(Record(Field("a", Int(1))), Record(Field("a", Int(1)))))
	assert.Equal(t, eval.Bool(false), eq(Record(Field("a", Int(1))), Record(Field("a", Int(2)))))
	assert.Equal(t, eval.Bool(true), eq(Unit(), Unit()))

	_, err := eval.Eval(env, BinOp(ast.OpEq, Lambda("x", Var("x")), Lambda("x", Var("x"))))
	var equality *eval.EqualityError
	require.ErrorAs(t, err, &equality)

	_, err = eval.Eval(env, BinOp(ast.OpEq, Tuple(Int(1), Con("Cons")), Tuple(Int(1), Con("Cons"))))
	require.ErrorAs(t, err, &equality)
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		v    eval.Value
		want string
	}{
		{eval.Unit{}, "()"},
		{eval.Bool(false), "false"},
		{eval.Int(-3), "-3"},
		{eval.Str("a\"b"), `"a\"b"`},
		{eval.Char('x'), "'x'"},
		{&eval.Tuple{Elems: []eval.Value{eval.Int(1), &eval.Constructor{Tag: "Nil"}}}, "(1, Nil)"},
		{&eval.Constructor{Tag: "Just", Args: []eval.Value{&eval.Constructor{Tag: "Just", Args: []eval.Value{eval.Int(1)}}}}, "Just (Just 1)"},
		{eval.NewRecord(map[string]eval.Value{"y": eval.Int(2), "x": eval.Int(1)}), "{x: 1, y: 2}"},
		{&eval.Closure{}, "<closure>"},
	} {
		assert.Equal(t, tc.want, eval.String(tc.v))
	}
}

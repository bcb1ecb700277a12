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
	"github.com/wdamron/polyml/ast"
	"github.com/wdamron/polyml/types"
)

func inferString(t *testing.T, env *TypeEnv, expr ast.Expr) string {
	t.Helper()
	ty, err := NewContext().Infer(env, expr)
	require.NoError(t, err, ast.ExprString(expr))
	return types.TypeString(ty)
}

func TestApplicationConstraints(t *testing.T) {
	ctx := NewContext()
	expr := Lambda("x", Apply(Var("x"), Int(10)))
	require.Equal(t, `\x = x 10`, ast.ExprString(expr))

	ty, err := ctx.InferExpr(NewTypeEnv("main"), expr)
	require.NoError(t, err)
	cs := ctx.Constraints()
	require.Len(t, cs, 1)
	assert.Equal(t, "V1 ~ Int -> V2", cs[0].String())
	assert.Equal(t, "V1 -> V2", types.TypeString(ty))
}

func TestRecursiveLet(t *testing.T) {
	env := DefaultEnv("main").Types
	ctx := NewContext()

	expr := Lambda("x", LetRec([]ast.Decl{
		Decl("f", Lambda("y", If(BinOp(ast.OpGt, Var("y"), Int(0)),
			Var("y"),
			Apply(Var("f"), BinOp(ast.OpAdd, Var("y"), Var("y")))))),
	}, Apply(Var("f"), Var("x"))))

	exprString := ast.ExprString(expr)
	require.Equal(t, `\x = let rec f = \y = if (y > 0) y else f (y + y) in f x`, exprString)
	t.Logf("expr: %s", exprString)

	// Infer twice to ensure state is properly reset between calls:

	first, err := ctx.Infer(env, expr)
	require.NoError(t, err)
	second, err := ctx.Infer(env, expr)
	require.NoError(t, err)

	assert.Equal(t, "Int -> Int", types.TypeString(second))
	assert.True(t, types.Equal(first, second))
	_, leaked := env.Lookup("f")
	assert.False(t, leaked, "expected unmodified type environment after inference")
}

func TestLetPolymorphism(t *testing.T) {
	env := DefaultEnv("main").Types

	expr := Let("id", Lambda("x", Var("x")),
		Tuple(Apply(Var("id"), Int(1)), Apply(Var("id"), Bool(true))))
	assert.Equal(t, "(Int, Bool)", inferString(t, env, expr))

	// later declarations of a group see generalized types of earlier ones
	group := LetGroup([]ast.Decl{
		Decl("id", Lambda("x", Var("x"))),
		Decl("pair", Tuple(Apply(Var("id"), Int(1)), Apply(Var("id"), Char('c')))),
	}, Var("pair"))
	assert.Equal(t, "(Int, Char)", inferString(t, env, group))

	// lambda-bound variables are monomorphic
	_, err := Infer(env, Lambda("f", Tuple(Apply(Var("f"), Int(1)), Apply(Var("f"), Bool(true)))))
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, StructuralMismatch, mismatch.Kind)
}

func TestMutualRecursion(t *testing.T) {
	env := DefaultEnv("main").Types
	expr := LetRec([]ast.Decl{
		Decl("even", Lambda("n", If(BinOp(ast.OpEq, Var("n"), Int(0)), Bool(true), Apply(Var("odd"), BinOp(ast.OpSub, Var("n"), Int(1)))))),
		Decl("odd", Lambda("n", If(BinOp(ast.OpEq, Var("n"), Int(0)), Bool(false), Apply(Var("even"), BinOp(ast.OpSub, Var("n"), Int(1)))))),
	}, Apply(Var("even"), Int(10)))
	assert.Equal(t, "Bool", inferString(t, env, expr))
}

func TestRecords(t *testing.T) {
	env := DefaultEnv("main").Types

	assert.Equal(t, "{a : V2 | V3} -> V2", inferString(t, env, Lambda("r", RecordSelect(Var("r"), "a"))))
	assert.Equal(t, "V1 -> {x : Int | V1}", inferString(t, env, Lambda("r", RecordExtend(Var("r"), Field("x", Int(1))))))
	assert.Equal(t, "{a : Int, b : Bool}", inferString(t, env, Record(Field("b", Bool(true)), Field("a", Int(1)))))
	assert.Equal(t, "Bool", inferString(t, env, RecordSelect(Record(Field("a", Int(1)), Field("b", Bool(true))), "b")))

	// selecting from a record passed to a function requiring more fields
	getB := Lambda("r", BinOp(ast.OpAdd, RecordSelect(Var("r"), "a"), RecordSelect(Var("r"), "b")))
	assert.Equal(t, "Int", inferString(t, env, Apply(getB, Record(Field("a", Int(1)), Field("b", Int(2)), Field("c", Unit())))))

	_, err := Infer(env, RecordSelect(Record(Field("a", Int(1))), "b"))
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, mismatch.Error(), "no field b")
}

func TestOperators(t *testing.T) {
	env := DefaultEnv("main").Types
	for _, tc := range []struct {
		expr ast.Expr
		want string
	}{
		{BinOp(ast.OpAdd, Int(1), Int(2)), "Int"},
		{BinOp(ast.OpDiv, Int(1), Int(2)), "Int"},
		{BinOp(ast.OpLe, Int(1), Int(2)), "Bool"},
		{BinOp(ast.OpOr, Bool(true), Bool(false)), "Bool"},
		{BinOp(ast.OpConcat, Str("a"), Str("b")), "String"},
		{BinOp(ast.OpEq, Char('a'), Char('b')), "Bool"},
		{BinOp(ast.OpNeq, Tuple(Int(1), Bool(true)), Tuple(Int(2), Bool(false))), "Bool"},
		{Lambda("x", BinOp(ast.OpEq, Var("x"), Var("x"))), "V2 -> Bool"},
	} {
		assert.Equal(t, tc.want, inferString(t, env, tc.expr), ast.ExprString(tc.expr))
	}

	for _, expr := range []ast.Expr{
		BinOp(ast.OpAnd, Bool(true), Int(1)),
		BinOp(ast.OpEq, Int(1), Bool(true)),
		BinOp(ast.OpConcat, Str("a"), Char('b')),
		If(Int(1), Int(2), Int(3)),
		If(Bool(true), Int(2), Bool(false)),
	} {
		_, err := Infer(env, expr)
		var mismatch *MismatchError
		assert.ErrorAs(t, err, &mismatch, ast.ExprString(expr))
	}
}

func TestUnknownNames(t *testing.T) {
	env := DefaultEnv("main").Types

	_, err := Infer(env, Var("nope"))
	var unknown *UnknownNameError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Name)

	_, err = Infer(env, QVar("M", "x"))
	var qualifier *UnknownQualifierError
	require.ErrorAs(t, err, &qualifier)
	assert.Equal(t, "M", qualifier.Qualifier)

	_, err = Infer(env, Con("Just"))
	var ctor *UnknownConstructorError
	require.ErrorAs(t, err, &ctor)
}

func TestAnnotations(t *testing.T) {
	env := DefaultEnv("main").Types

	lam := Lambda("x", Var("x"))
	lam.ParamType = TECon("Int")
	assert.Equal(t, "Int -> Int", inferString(t, env, lam))

	generic := Lambda("x", Var("x"))
	generic.ParamType, generic.ReturnType = TEVar("a"), TEVar("a")
	assert.Equal(t, "V1 -> V1", inferString(t, env, generic))

	wrong := Lambda("x", Int(1))
	wrong.ReturnType = TECon("Bool")
	_, err := Infer(env, wrong)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)

	unit := Lambda("x", Var("x"))
	unit.ParamType = TECon("Unit")
	assert.Equal(t, "Unit -> Unit", inferString(t, env, unit))

	unknown := Lambda("x", Var("x"))
	unknown.ParamType = TECon("Foo")
	_, err = Infer(env, unknown)
	var typeName *UnknownTypeNameError
	require.ErrorAs(t, err, &typeName)
	assert.Equal(t, "Foo", typeName.Name)

	arity := Lambda("x", Var("x"))
	arity.ParamType = TECon("Int", TECon("Bool"))
	_, err = Infer(env, arity)
	var arityErr *ArityMismatchError
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, 0, arityErr.Expected)

	decl := Decl("n", Int(1))
	decl.Type = TECon("Bool")
	_, _, err = NewContext().InferDecls(env, &ast.Let{Decls: []ast.Decl{decl}})
	require.ErrorAs(t, err, &mismatch)
}

func listData() *ast.DataElement {
	return Data(DataDecl(ast.Public, "List", []string{"a"},
		CtorDecl("Nil"),
		CtorDecl("Cons", TEVar("a"), TECon("List", TEVar("a")))))
}

func TestDataTypes(t *testing.T) {
	ctx := NewContext()
	env, defs, err := ctx.DeclareData(DefaultEnv("main").Types, listData())
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "data List a = Nil | Cons a (List a)", defs[0].Describe())
	assert.Equal(t, "main", defs[0].Module)

	assert.Equal(t, "V1 -> List V1 -> List V1", inferString(t, env, Con("Cons")))
	assert.Equal(t, "List Int", inferString(t, env, Apply(Con("Cons"), Int(1), Con("Nil"))))

	head := Lambda("l", Match(Var("l"),
		Case(PCon("Nil"), Int(0)),
		Case(PCon("Cons", PVar("x"), PWild()), Var("x"))))
	assert.Equal(t, "List Int -> Int", inferString(t, env, head))

	_, err = Infer(env, Lambda("l", Match(Var("l"), Case(PCon("Cons", PVar("x")), Var("x")))))
	var arity *ArityMismatchError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, 2, arity.Expected)
	assert.Equal(t, 1, arity.Actual)

	_, err = Infer(env, Apply(Con("Cons"), Int(1), Apply(Con("Cons"), Bool(true), Con("Nil"))))
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestMutuallyRecursiveData(t *testing.T) {
	el := Data(
		DataDecl(ast.Unspecified, "Tree", []string{"a"}, CtorDecl("Node", TEVar("a"), TECon("Forest", TEVar("a")))),
		DataDecl(ast.Unspecified, "Forest", []string{"a"}, CtorDecl("Leaf"), CtorDecl("Trees", TECon("Tree", TEVar("a")), TECon("Forest", TEVar("a")))),
	)
	env, _, err := NewContext().DeclareData(DefaultEnv("main").Types, el)
	require.NoError(t, err)
	assert.Equal(t, "Tree Int", inferString(t, env, Apply(Con("Node"), Int(1), Con("Leaf"))))
}

func TestDataDeclarationErrors(t *testing.T) {
	env := DefaultEnv("main").Types

	_, _, err := NewContext().DeclareData(env, Data(
		DataDecl(ast.Unspecified, "T", nil, CtorDecl("A")),
		DataDecl(ast.Unspecified, "T", nil, CtorDecl("B"))))
	var dup *DuplicateDataError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "T", dup.Name)

	_, _, err = NewContext().DeclareData(env, Data(DataDecl(ast.Unspecified, "Box", nil, CtorDecl("Box", TEVar("a")))))
	var unknown *UnknownTypeNameError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "a", unknown.Name)

	_, _, err = NewContext().DeclareData(env, Data(DataDecl(ast.Unspecified, "R", nil, CtorDecl("R", TERecord(true, TEField("x", TECon("Int")))))))
	var open *OpenRowError
	require.ErrorAs(t, err, &open)
}

func TestAliases(t *testing.T) {
	ctx := NewContext()
	point := Alias(ast.Public, "Point", nil, TERecord(false, TEField("x", TECon("Int")), TEField("y", TECon("Int"))))
	env, sc, err := ctx.DeclareAlias(DefaultEnv("main").Types, point)
	require.NoError(t, err)
	assert.Equal(t, "{x : Int, y : Int}", types.SchemeString(sc))

	getX := Lambda("p", RecordSelect(Var("p"), "x"))
	getX.ParamType = TECon("Point")
	assert.Equal(t, "Point -> Int", inferString(t, env, getX))
	assert.Equal(t, "Int", inferString(t, env, Apply(getX, Record(Field("x", Int(1)), Field("y", Int(2))))))

	pair := Alias(ast.Unspecified, "Pair", []string{"a"}, TETuple(TEVar("a"), TEVar("a")))
	env, _, err = ctx.DeclareAlias(env, pair)
	require.NoError(t, err)
	fst := Lambda("p", Match(Var("p"), Case(PTuple(PVar("a"), PWild()), Var("a"))))
	fst.ParamType = TECon("Pair", TECon("Bool"))
	assert.Equal(t, "Pair Bool -> Bool", inferString(t, env, fst))
}

func TestVisibilityModifiers(t *testing.T) {
	env := DefaultEnv("main").Types

	nested := &ast.Let{Decls: []ast.Decl{PubDecl("y", Int(1))}, Body: Var("y")}
	_, _, err := NewContext().InferDecls(env, &ast.Let{Decls: []ast.Decl{Decl("x", nested)}})
	var vis *VisibilityModifierError
	require.ErrorAs(t, err, &vis)
	assert.Equal(t, "y", vis.Name)

	_, err = Infer(env, nested)
	require.ErrorAs(t, err, &vis)

	top, sc, err := NewContext().InferDecls(env, &ast.Let{Decls: []ast.Decl{PubDecl("x", Int(1))}})
	require.NoError(t, err)
	assert.Equal(t, "Int", types.SchemeString(sc))
	_, ok := top.Lookup("x")
	assert.True(t, ok)
}

func TestInferDeclsGeneralizes(t *testing.T) {
	env, sc, err := NewContext().InferDecls(DefaultEnv("main").Types, &ast.Let{Decls: []ast.Decl{
		Decl("const", Lambdas([]string{"a", "b"}, Var("a"))),
	}})
	require.NoError(t, err)
	assert.Equal(t, "forall V1 V2. V1 -> V2 -> V1", types.SchemeString(sc))
	assert.Equal(t, "Int", inferString(t, env, Apply(Var("const"), Int(1), Bool(true))))
}

func TestInferElement(t *testing.T) {
	ctx := NewContext()
	env := DefaultEnv("main").Types

	env, sc, err := ctx.InferElement(env, listData())
	require.NoError(t, err)
	assert.Nil(t, sc)

	env, sc, err = ctx.InferElement(env, Decls(Decl("single", Lambda("x", Apply(Con("Cons"), Var("x"), Con("Nil"))))))
	require.NoError(t, err)
	require.Len(t, sc.Vars, 1)
	v := sc.Vars[0]
	assert.Equal(t, "forall "+v+". "+v+" -> List "+v, types.SchemeString(sc))

	_, sc, err = ctx.InferElement(env, ExprEl(Apply(Var("single"), Int(1))))
	require.NoError(t, err)
	assert.Equal(t, "List Int", types.SchemeString(sc))

	env, sc, err = ctx.InferElement(env, Alias(ast.Unspecified, "Ints", nil, TECon("List", TECon("Int"))))
	require.NoError(t, err)
	assert.Equal(t, "List Int", types.SchemeString(sc))
	_, ok := env.Alias("Ints")
	assert.True(t, ok)

	_, _, err = ctx.InferElement(env, ImportAll("lib", "L"))
	assert.Error(t, err)
}

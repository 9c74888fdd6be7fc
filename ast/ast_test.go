// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/go-jtree/evjson/ast"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestFind(t *testing.T) {
	v, err := ast.ParseSingle(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("ParseSingle: %v", err)
	}
	obj, ok := v.(*ast.Object)
	if !ok {
		t.Fatalf("got %T, want *ast.Object", v)
	}
	if obj.Len() != 4 {
		t.Errorf("Len() = %d, want 4", obj.Len())
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf("Find(nonesuch) = %v, want nil", m)
	}

	list := obj.Find("list")
	if list == nil {
		t.Fatal("Find(list) = nil")
	}
	arr, ok := list.Value.(*ast.Array)
	if !ok {
		t.Fatalf("list value is %T, want *ast.Array", list.Value)
	}
	if arr.Len() != 2 {
		t.Errorf("list Len() = %d, want 2", arr.Len())
	}
	first, ok := arr.Values[0].(*ast.Object)
	if !ok {
		t.Fatalf("list[0] is %T, want *ast.Object", arr.Values[0])
	}
	x := first.Find("x")
	if x == nil {
		t.Fatal("Find(x) = nil")
	}
	n, ok := x.Value.(*ast.UInteger)
	if !ok {
		t.Fatalf("x value is %T, want *ast.UInteger", x.Value)
	}
	if got := n.Uint64(); got != 1 {
		t.Errorf("x = %d, want 1", got)
	}
}

func TestConstructors(t *testing.T) {
	o := ast.NewObject([]*ast.Member{
		ast.NewMember("a", ast.NewInteger(1)),
		ast.NewMember("b", ast.NewBool(true)),
	})
	if o.Len() != 2 {
		t.Errorf("Len() = %d, want 2", o.Len())
	}
	m := o.Find("b")
	if m == nil {
		t.Fatal("Find(b) = nil")
	}
	b, ok := m.Value.(*ast.Bool)
	if !ok || !b.Value() {
		t.Errorf("Find(b).Value = %v, want true", m.Value)
	}

	arr := ast.NewArray([]ast.Value{ast.NewString("x"), ast.NewNull()})
	if arr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", arr.Len())
	}
	if s, ok := arr.Values[0].(*ast.String); !ok || s.Unescape() != "x" {
		t.Errorf("Values[0] = %v, want String(x)", arr.Values[0])
	}
}

func TestStringQuoted(t *testing.T) {
	s := ast.NewString("a\nb\"c")
	const want = `"a\nb\"c"`
	if got := s.Quoted(); got != want {
		t.Errorf("Quoted() = %q, want %q", got, want)
	}
}

func TestUInteger(t *testing.T) {
	const big = uint64(1) << 63 // overflows int64
	u := ast.NewUInteger(big)
	if got := u.Uint64(); got != big {
		t.Errorf("Uint64() = %d, want %d", got, big)
	}
}

func TestNumberPrecision(t *testing.T) {
	n := ast.NewNumber(3.5, 2)
	if got := n.Float64(); got != 3.5 {
		t.Errorf("Float64() = %v, want 3.5", got)
	}
	if got := n.Precision(); got != 2 {
		t.Errorf("Precision() = %d, want 2", got)
	}
}

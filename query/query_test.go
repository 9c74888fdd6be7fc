package query_test

import (
	"strings"
	"testing"

	"github.com/go-jtree/evjson/ast"
	"github.com/go-jtree/evjson/query"
)

const testShow = `{
  "title": "Firefly",
  "episodes": [
    {"title": "Serenity", "airDate": "2002-09-20"},
    {"title": "The Train Job", "airDate": "2002-09-20"},
    {"title": "Bushwhacked", "airDate": "2002-09-27"}
  ]
}`

func mustParseShow(t *testing.T) ast.Value {
	t.Helper()
	vals, err := ast.Parse(strings.NewReader(testShow))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	} else if len(vals) != 1 {
		t.Fatalf("Parse returned %d values, want 1", len(vals))
	}
	return vals[0]
}

func TestQuery(t *testing.T) {
	val := mustParseShow(t)

	t.Run("Path", func(t *testing.T) {
		const wantDate = "2002-09-20"

		v, err := query.Eval(val, query.Path("episodes", 0, "airDate"))
		if err != nil {
			t.Errorf("Eval failed: %v", err)
		} else if s, ok := v.(*ast.String); !ok {
			t.Errorf("Result: got %T, want string", v)
		} else if got := s.Unescape(); got != wantDate {
			t.Errorf("Result: got %q, want %q", got, wantDate)
		}
	})

	t.Run("Each", func(t *testing.T) {
		v, err := query.Eval(val, query.Path("episodes", query.Each("title")))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		a, ok := v.(*ast.Array)
		if !ok {
			t.Fatalf("Result: got %T, want array", v)
		}
		if a.Len() != 3 {
			t.Fatalf("Result has %d elements, want 3", a.Len())
		}
		for i, elt := range a.Values {
			t.Logf("Element %d: %v", i, elt.(*ast.String).Unescape())
		}
	})

	t.Run("Len", func(t *testing.T) {
		v, err := query.Eval(val, query.Path("episodes", query.Len()))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		n, ok := v.(*ast.Integer)
		if !ok || n.Int64() != 3 {
			t.Errorf("Result: got %v, want integer 3", v)
		}
	})

	t.Run("Recur", func(t *testing.T) {
		v, err := query.Eval(val, query.Recur("airDate"))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		a, ok := v.(*ast.Array)
		if !ok || a.Len() != 3 {
			t.Errorf("Result: got %v, want array of 3", v)
		}
	})
}

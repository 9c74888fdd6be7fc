// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package evjson_test

import (
	"testing"

	"github.com/go-jtree/evjson"
)

type fakeContext struct{ line, col int }

func (c fakeContext) Line() int   { return c.line }
func (c fakeContext) Column() int { return c.col }

func TestStrictPolicy(t *testing.T) {
	var p evjson.StrictPolicy
	if p.Error(evjson.ErrExtraComma, fakeContext{}) {
		t.Error("StrictPolicy.Error: got true, want false")
	}
	p.FatalError(evjson.ErrMaxDepthExceeded, fakeContext{}) // must not panic
}

func TestLenientPolicy(t *testing.T) {
	var p evjson.LenientPolicy
	if !p.Error(evjson.ErrExtraComma, fakeContext{}) {
		t.Error("LenientPolicy.Error: got false, want true")
	}
	p.FatalError(evjson.ErrMaxDepthExceeded, fakeContext{}) // must not panic
}

func TestRecordingPolicy(t *testing.T) {
	rec := evjson.NewRecordingPolicy(evjson.LenientPolicy{})

	if !rec.Error(evjson.ErrIllegalComment, fakeContext{line: 3, col: 5}) {
		t.Error("Error: got false, want true (wrapped LenientPolicy)")
	}
	rec.FatalError(evjson.ErrMaxDepthExceeded, fakeContext{line: 7, col: 1})

	want := []evjson.RecordedError{
		{Kind: evjson.ErrIllegalComment, Line: 3, Column: 5},
		{Kind: evjson.ErrMaxDepthExceeded, Line: 7, Column: 1, Fatal: true},
	}
	if len(rec.Errors) != len(want) {
		t.Fatalf("Errors = %+v, want %+v", rec.Errors, want)
	}
	for i, got := range rec.Errors {
		if got != want[i] {
			t.Errorf("Errors[%d] = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind evjson.ErrorKind
		want string
	}{
		{evjson.ErrUnexpectedEOF, "unexpected_eof"},
		{evjson.ErrExtraComma, "extra_comma"},
		{evjson.ErrIllegalSurrogateValue, "illegal_surrogate_value"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("%d.String() = %q, want %q", test.kind, got, test.want)
		}
	}
}

func TestParseErrorFormat(t *testing.T) {
	err := &evjson.ParseError{Kind: evjson.ErrExpectedColon, Line: 4, Column: 12}
	const want = "4:12: expected_colon"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

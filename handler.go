// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package evjson

// A Handler receives events from a Parser as it recognizes the structure of
// a JSON document. Methods are called in document order, as each token is
// recognized: the events for an object or array are delivered before its
// closing bracket has been seen, so a document that later turns out to be
// malformed may already have produced some events.
//
// A Handler method may return an error to abort parsing; the error is
// propagated back to the caller of Parse.
//
// The name and value byte slices passed to Name and String are valid only
// for the duration of the call: they may alias the parser's current source
// buffer or an internal scratch buffer that is reused on the next call. A
// Handler that needs to retain the bytes must copy them.
type Handler interface {
	// BeginDocument is called once, before the first event of the top-level
	// value.
	BeginDocument(ctx Context) error

	// EndDocument is called once, as soon as the top-level value is
	// complete. Input following that value is not examined before the call.
	EndDocument(ctx Context) error

	// BeginObject is called when an opening brace is recognized.
	BeginObject(ctx Context) error

	// EndObject is called when the matching closing brace is recognized.
	EndObject(ctx Context) error

	// BeginArray is called when an opening bracket is recognized.
	BeginArray(ctx Context) error

	// EndArray is called when the matching closing bracket is recognized.
	EndArray(ctx Context) error

	// Name is called with the unescaped text of an object member's key,
	// once the key itself has been consumed. The following colon and value
	// are reported separately.
	Name(ctx Context, name []byte) error

	// String is called with the unescaped text of a string value.
	String(ctx Context, value []byte) error

	// Int64 is called for a negative integer literal (leading '-') that fits
	// in a signed 64-bit value.
	Int64(ctx Context, value int64) error

	// Uint64 is called for a non-negative integer literal (no leading '-')
	// that fits in an unsigned 64-bit value.
	Uint64(ctx Context, value uint64) error

	// Float64 is called for a number literal that is not representable as
	// an integer (has a fraction or exponent, or a negative literal
	// overflows int64, or a non-negative literal overflows uint64).
	// Precision is the number of significant decimal digits recorded in the
	// source, for callers that need it to round-trip the value.
	Float64(ctx Context, value float64, precision int) error

	// Bool is called for a true or false literal.
	Bool(ctx Context, value bool) error

	// Null is called for a null literal.
	Null(ctx Context) error
}

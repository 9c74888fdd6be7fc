// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON values, and a
// parser that constructs syntax trees from JSON source.
package ast

import (
	"strconv"

	"github.com/go-jtree/evjson"
)

// A Value is an arbitrary JSON value.
type Value interface{ Span() evjson.Span }

// A Datum is a Value with a text representation.
type Datum interface {
	Value
	Text() string
}

func newSpan(pos, end int) evjson.Span { return evjson.Span{Pos: pos, End: end} }

// An Object is a collection of key-value members.
type Object struct {
	pos, end int
	Members  []*Member
}

// NewObject constructs an Object from members, with a zero span. It is
// intended for building synthetic values that were not produced directly
// by Parse, such as query results.
func NewObject(members []*Member) *Object { return &Object{Members: members} }

// Span satisfies the Value interface.
func (o *Object) Span() evjson.Span { return newSpan(o.pos, o.end) }

// Len returns the number of members in o.
func (o *Object) Len() int { return len(o.Members) }

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	pos, end int

	Key   string
	Value Value
}

// NewMember constructs a Member with a zero span.
func NewMember(key string, value Value) *Member { return &Member{Key: key, Value: value} }

// Span satisfies the Value interface.
func (m *Member) Span() evjson.Span { return newSpan(m.pos, m.end) }

// An Array is a sequence of values.
type Array struct {
	pos, end int

	Values []Value
}

// NewArray constructs an Array from values, with a zero span.
func NewArray(values []Value) *Array { return &Array{Values: values} }

// Span satisfies the Value interface.
func (a *Array) Span() evjson.Span { return newSpan(a.pos, a.end) }

// Len returns the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

type datum struct {
	pos, end int
	text     []byte
}

// Span satisfies the Value interface.
func (d datum) Span() evjson.Span { return newSpan(d.pos, d.end) }

// Text satisfies the Datum interface.
func (d datum) Text() string { return string(d.text) }

// An Integer is a signed integer value that fit in an int64. The parser
// produces it for negative integer literals.
type Integer struct{ datum }

// NewInteger constructs an Integer with a zero span from v's decimal text.
func NewInteger(v int64) *Integer {
	return &Integer{datum{text: []byte(strconv.FormatInt(v, 10))}}
}

// Int64 returns the value as a signed 64-bit integer.
func (z Integer) Int64() int64 {
	v, err := strconv.ParseInt(string(z.text), 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// A UInteger is an unsigned integer value that fit in a uint64 — any
// integer literal with no leading minus sign, however small.
type UInteger struct{ datum }

// NewUInteger constructs a UInteger with a zero span from v's decimal text.
func NewUInteger(v uint64) *UInteger {
	return &UInteger{datum{text: []byte(strconv.FormatUint(v, 10))}}
}

// Uint64 returns the value as an unsigned 64-bit integer.
func (z UInteger) Uint64() uint64 {
	v, err := strconv.ParseUint(string(z.text), 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// A Number is a floating-point value: a number literal with a fraction or
// exponent, or an integer literal that fits neither an Integer (negative)
// nor a UInteger (non-negative).
type Number struct {
	datum
	precision int
}

// NewNumber constructs a Number with a zero span from v's shortest decimal
// text and the given precision.
func NewNumber(v float64, precision int) *Number {
	return &Number{datum{text: []byte(strconv.FormatFloat(v, 'g', -1, 64))}, precision}
}

// Float64 returns the value as a 64-bit float.
func (n Number) Float64() float64 {
	v, err := strconv.ParseFloat(string(n.text), 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Precision reports the number of significant decimal digits recorded for
// this value when it was parsed.
func (n Number) Precision() int { return n.precision }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	datum
	value bool
}

// NewBool constructs a Bool with a zero span.
func NewBool(v bool) *Bool {
	text := "false"
	if v {
		text = "true"
	}
	return &Bool{datum{text: []byte(text)}, v}
}

// Value reports the Boolean value.
func (b Bool) Value() bool { return b.value }

// A String is a string value. Its text is already fully unescaped, since
// the parser resolves escape sequences before reporting a string event.
type String struct{ datum }

// NewString constructs a String with a zero span.
func NewString(s string) *String { return &String{datum{text: []byte(s)}} }

// Unescape returns the string's content. The name is kept for parity with
// the teacher's API; unlike the teacher's Scanner, the parser that builds
// this tree delivers already-unescaped text, so this is just Text.
func (s String) Unescape() string { return string(s.text) }

// Len returns the length in bytes of s's content.
func (s String) Len() int { return len(s.text) }

// Quoted returns the JSON source form of s: its content re-escaped and
// wrapped in double quotes.
func (s String) Quoted() string { return evjson.Quote(string(s.text)) }

// Null represents the null constant.
type Null struct{ datum }

// NewNull constructs a Null with a zero span.
func NewNull() *Null { return &Null{datum{text: []byte("null")}} }

// Len always returns 0 for Null.
func (Null) Len() int { return 0 }

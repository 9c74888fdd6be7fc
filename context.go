// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package evjson

// A Context is a narrow, read-only view of the parser's current position in
// the source text. It is passed by reference to every Handler and
// ErrorPolicy method instead of being attached by inheritance, so that a
// caller cannot retain or mutate parser state through it.
//
// A Context is only valid for the duration of the call that receives it; if
// a method needs the position after it returns, it must copy Line and
// Column.
type Context interface {
	// Line reports the current 1-based line number.
	Line() int

	// Column reports the current 1-based byte offset within the line.
	Column() int
}

// Line satisfies the Context interface.
func (p *Parser) Line() int { return p.line }

// Column satisfies the Context interface.
func (p *Parser) Column() int { return p.column }

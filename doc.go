// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package evjson implements a resumable, push-style event parser for JSON
// text (RFC 8259).
//
// # Parsing
//
// The Parser type implements the parser itself. Unlike a scanner built on
// top of a blocking io.Reader, a Parser never reads; the caller supplies
// input in whatever chunks happen to be available by calling SetSource,
// and calls Parse to consume as much of the current chunk as forms
// complete tokens. Parse returns as soon as the chunk runs out, mid-token
// if necessary, and resumes exactly where it left off the next time
// SetSource and Parse are called:
//
//	p := evjson.NewParser(handler, evjson.StrictPolicy{})
//	for {
//	  n, err := conn.Read(buf)
//	  if n > 0 {
//	    p.SetSource(buf[:n])
//	    if perr := p.Parse(); perr != nil {
//	      return perr
//	    }
//	  }
//	  if p.Done() {
//	    return p.CheckDone()
//	  }
//	  if err == io.EOF {
//	    return p.EndParse()
//	  } else if err != nil {
//	    return err
//	  }
//	}
//
// The Decoder type wraps exactly this loop around an io.Reader, for
// callers that are happy to block until a complete value is available.
//
// # Handlers
//
// The Handler interface accepts parser events. Its methods correspond to
// the syntax of JSON values:
//
//	JSON type | Methods                      | Description
//	--------- | ---------------------------- | -----------------------------
//	document  | BeginDocument, EndDocument   | the top-level value
//	object    | BeginObject, EndObject       | { ... }
//	array     | BeginArray, EndArray         | [ ... ]
//	member    | Name                         | "key":
//	value     | String, Int64, Uint64,       | true, false, null, number,
//	          | Float64, Bool, Null          | string
//
// Each method is passed a Context that reports the parser's current line
// and column. A Context is only valid for the duration of the call that
// receives it.
//
// # Error policy
//
// An ErrorPolicy decides, kind by kind, whether a malformed document
// should abort parsing or continue with a documented recovery.
// StrictPolicy aborts on everything; LenientPolicy recovers from every
// recoverable kind; RecordingPolicy wraps another policy and keeps an
// after-the-fact log of every error observed.
//
// # Satellite packages
//
// Package ast builds an in-memory value tree from parser events, for
// callers that want a traditional DOM rather than a stream of callbacks.
// Package ast/cursor provides a read-only navigation cursor over an
// ast.Value. Package query evaluates a small path-expression language
// against an ast.Value, and package jpath parses JSONPath expressions into
// a sequence of steps, which query.FromPath compiles into a query.Query.
package evjson

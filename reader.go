// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package evjson

import "io"

const defaultBufferSize = 4096

// A Decoder reads a single JSON value from an io.Reader, feeding it to a
// Parser in fixed-size chunks and hiding the SetSource/Parse resumption
// protocol behind a single blocking call. It plays the role of the
// teacher's NewScanner(io.Reader) convenience constructor, generalized to
// the push-style Parser.
type Decoder struct {
	r      io.Reader
	parser *Parser
	buf    []byte
}

// NewDecoder returns a Decoder that reads from r and delivers events to
// sink under policy. A nil policy is equivalent to StrictPolicy{}.
func NewDecoder(r io.Reader, sink Handler, policy ErrorPolicy) *Decoder {
	return &Decoder{
		r:      r,
		parser: NewParser(sink, policy),
		buf:    make([]byte, defaultBufferSize),
	}
}

// Parser returns the Decoder's underlying Parser, for callers that need to
// call SetMaxNestingDepth or similar configuration before decoding.
func (d *Decoder) Parser() *Parser { return d.parser }

// Decode reads and parses exactly one top-level JSON value, blocking until
// it is complete, and then consumes (and verifies) any trailing whitespace
// up to EOF. It returns a *ParseError if the document is malformed and the
// configured ErrorPolicy does not recover, or the underlying read error
// otherwise.
func (d *Decoder) Decode() error {
	d.parser.Reset()
	for {
		n, rerr := d.r.Read(d.buf)
		if n > 0 {
			d.parser.SetSource(d.buf[:n])
			if !d.parser.Done() {
				if err := d.parser.Parse(); err != nil {
					return err
				}
			}
			if d.parser.Done() {
				if err := d.parser.CheckDone(); err != nil {
					return err
				}
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				return d.parser.EndParse()
			}
			return rerr
		}
	}
}

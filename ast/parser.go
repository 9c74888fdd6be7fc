// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-jtree/evjson"
)

// Parse parses and returns the JSON values from r, in order. r may contain
// more than one whitespace-separated top-level value; Parse reads until
// io.EOF. In case of error, any complete values already parsed are
// returned along with the error.
func Parse(r io.Reader) ([]Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	h := new(parseHandler)
	p := evjson.NewParser(h, evjson.StrictPolicy{})
	p.SetSource(data)

	var vs []Value
	for {
		rest := p.Remaining()
		i := 0
		for i < len(rest) && isSpace(rest[i]) {
			i++
		}
		if i == len(rest) {
			return vs, nil
		}
		p.SetSource(rest[i:])
		if err := p.Parse(); err != nil {
			return vs, err
		}
		if !p.Done() {
			if err := p.EndParse(); err != nil {
				return vs, err
			}
		}
		if len(h.stk) != 1 {
			return vs, errors.New("incomplete value")
		}
		vs = append(vs, h.stk[0])
		h.stk = h.stk[:0]
		p.Restart()
	}
}

// ParseSingle parses exactly one JSON value from r. It is an error for r to
// contain more than one top-level value, or none at all.
func ParseSingle(r io.Reader) (Value, error) {
	vs, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if len(vs) != 1 {
		return nil, fmt.Errorf("got %d values, want 1", len(vs))
	}
	return vs[0], nil
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

// A parseHandler implements the evjson.Handler interface to construct
// abstract syntax trees for JSON values.
type parseHandler struct {
	stk []Value
}

func (h *parseHandler) push(v Value) { h.stk = append(h.stk, v) }

func (h *parseHandler) top() Value { return h.stk[len(h.stk)-1] }

func (h *parseHandler) pop() Value {
	last := h.top()
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

func (h *parseHandler) reduce() error {
	if len(h.stk) > 1 {
		return h.reduceValue(h.pop())
	}
	return nil
}

// reduceValue attaches v to whatever is now exposed at the top of the
// stack: nothing, if v is itself the top-level value; the pending Member
// waiting for its value; or the Array it belongs to.
func (h *parseHandler) reduceValue(v Value) error {
	if len(h.stk) == 0 {
		h.push(v)
		return nil
	}
	switch prev := h.top().(type) {
	case *Member:
		prev.Value = v
		h.pop() // the member is complete; the owning Object already has it
	case *Array:
		prev.Values = append(prev.Values, v)
	}
	return nil
}

func (h *parseHandler) BeginDocument(evjson.Context) error { return nil }
func (h *parseHandler) EndDocument(evjson.Context) error   { return nil }

func (h *parseHandler) BeginObject(evjson.Context) error {
	h.push(&Object{})
	return nil
}

func (h *parseHandler) EndObject(evjson.Context) error { return h.reduce() }

func (h *parseHandler) BeginArray(evjson.Context) error {
	h.push(&Array{})
	return nil
}

func (h *parseHandler) EndArray(evjson.Context) error { return h.reduce() }

func (h *parseHandler) Name(_ evjson.Context, name []byte) error {
	mem := &Member{Key: string(name)}
	obj := h.top().(*Object)
	obj.Members = append(obj.Members, mem)
	h.push(mem)
	return nil
}

func (h *parseHandler) String(_ evjson.Context, value []byte) error {
	return h.reduceValue(&String{datum{text: append([]byte(nil), value...)}})
}

func (h *parseHandler) Int64(_ evjson.Context, value int64) error {
	return h.reduceValue(&Integer{datum{text: []byte(strconv.FormatInt(value, 10))}})
}

func (h *parseHandler) Uint64(_ evjson.Context, value uint64) error {
	return h.reduceValue(&UInteger{datum{text: []byte(strconv.FormatUint(value, 10))}})
}

func (h *parseHandler) Float64(_ evjson.Context, value float64, precision int) error {
	return h.reduceValue(&Number{datum{text: []byte(strconv.FormatFloat(value, 'g', -1, 64))}, precision})
}

func (h *parseHandler) Bool(_ evjson.Context, value bool) error {
	text := "false"
	if value {
		text = "true"
	}
	return h.reduceValue(&Bool{datum{text: []byte(text)}, value})
}

func (h *parseHandler) Null(evjson.Context) error {
	return h.reduceValue(&Null{datum{text: []byte("null")}})
}

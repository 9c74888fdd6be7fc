package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-jtree/evjson/jpath"
)

// FromPath compiles a JSONPath expression, in the syntax accepted by
// jpath.Parse, into a Query. Script ("(...)") and filter ("?(...)") steps
// have no corresponding Query, since this package has no expression
// language of its own; compiling a path that uses one reports an error.
func FromPath(expr string) (Query, error) {
	e, err := jpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parse path: %w", err)
	}
	steps := make(Seq, len(e))
	for i, s := range e {
		q, err := compileStep(s)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps[i] = q
	}
	return steps, nil
}

func compileStep(s jpath.Step) (Query, error) {
	switch s.Op {
	case jpath.Member, jpath.Name, jpath.QName:
		if s.Arg1 == "*" {
			return Glob(), nil
		}
		return Path(s.Arg1), nil

	case jpath.Wildcard:
		return Glob(), nil

	case jpath.Recur:
		return Recur(s.Arg1), nil

	case jpath.Index:
		return compileIndex(s.Arg1)

	case jpath.Slice:
		return compileSlice(s.Arg1, s.Arg2)

	case jpath.Script, jpath.Filter:
		return nil, fmt.Errorf("%s steps are not supported", s.Op)

	default:
		return nil, fmt.Errorf("unsupported path step %v", s.Op)
	}
}

func compileIndex(arg string) (Query, error) {
	parts := strings.Split(arg, ",")
	if len(parts) == 1 {
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", arg, err)
		}
		return Path(n), nil
	}
	offs := make([]int, len(parts))
	for i, t := range parts {
		n, err := strconv.Atoi(t)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", t, err)
		}
		offs[i] = n
	}
	return Pick(offs...), nil
}

func compileSlice(loText, hiText string) (Query, error) {
	var lo, hi int
	if loText != "" {
		n, err := strconv.Atoi(loText)
		if err != nil {
			return nil, fmt.Errorf("invalid slice start %q: %w", loText, err)
		}
		lo = n
	}
	if hiText != "" {
		n, err := strconv.Atoi(hiText)
		if err != nil {
			return nil, fmt.Errorf("invalid slice end %q: %w", hiText, err)
		}
		hi = n
	}
	return Slice(lo, hi), nil
}

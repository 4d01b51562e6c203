// Package query evaluates JSONPath expressions against loaded documents.
package query

import (
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Match is one value selected by an expression.
type Match struct {
	// Location is the normalized JSONPath of the value, e.g. $.menu.file.
	Location string
	Value    any
}

// JSON renders the value compactly with sorted keys.
func (m Match) JSON() string {
	return oj.JSON(m.Value, &ojg.Options{Sort: true, HTMLUnsafe: true})
}

// Walker runs a parsed expression.
type Walker struct {
	expr jp.Expr
}

// Compile parses a JSONPath expression.
func Compile(selector string) (*Walker, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	return &Walker{expr: x}, nil
}

// Query returns every match in root, in document order.
func (w *Walker) Query(root any) []Match {
	locs := w.expr.Locate(root, 0)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{
			Location: loc.String(),
			Value:    loc.First(root),
		})
	}
	return matches
}

package store

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/agentic-research/lingo/internal/document"
	"github.com/ohler55/ojg/oj"
	"github.com/pkg/errors"
)

// Encode renders v in canonical form: two-space indent, keys sorted at every
// level, HTML characters left alone, terminated by a newline. Numbers are
// written with the text they were read with.
func Encode(v document.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(document.ToAny(v)); err != nil {
		return nil, errors.Wrap(err, "encoding json")
	}
	return buf.Bytes(), nil
}

// Decode parses data into a document value, keeping every number as text.
func Decode(data []byte) (document.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("parsing json: data after the top-level value")
	}
	v, err := document.FromAny(raw)
	if err != nil {
		return nil, errors.Wrap(err, "converting json")
	}
	return v, nil
}

// DecodeRaw parses data into the generic map/slice form used by JSONPath
// queries. Numbers come back as int64 or float64.
func DecodeRaw(data []byte) (any, error) {
	raw, err := oj.Parse(bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}
	return raw, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

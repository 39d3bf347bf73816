package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// DecodeJSON decodes JSON text into a document tree. Duplicate object keys
// and trailing data after the top-level value are rejected.
func DecodeJSON(data []byte, source string) (*Node, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	d := &jsonDecoder{
		data:   data,
		source: source,
		dec:    json.NewDecoder(bytes.NewReader(data)),
	}
	d.dec.UseNumber()
	d.indexLines()

	tok, loc, err := d.next()
	if errors.Is(err, io.EOF) {
		return nil, &SyntaxError{
			Encoding: EncodingJSON,
			Location: Location{File: source, Line: 1, Column: 1},
			Message:  "empty document",
		}
	}
	if err != nil {
		return nil, d.syntaxError(err)
	}

	root, err := d.value(tok, loc, 0)
	if err != nil {
		return nil, err
	}

	if _, loc, err := d.next(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, d.syntaxError(err)
		}
		return nil, &SyntaxError{Encoding: EncodingJSON, Location: loc, Message: "unexpected data after top-level value"}
	}

	return root, nil
}

type jsonDecoder struct {
	data       []byte
	source     string
	dec        *json.Decoder
	lineStarts []int
}

func (d *jsonDecoder) indexLines() {
	d.lineStarts = []int{0}
	for i, b := range d.data {
		if b == '\n' {
			d.lineStarts = append(d.lineStarts, i+1)
		}
	}
}

// locate converts a byte offset into a 1-based line and column.
func (d *jsonDecoder) locate(offset int) Location {
	line := sort.Search(len(d.lineStarts), func(i int) bool { return d.lineStarts[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return Location{File: d.source, Line: line + 1, Column: offset - d.lineStarts[line] + 1}
}

// next reads one token and reports where it starts. The decoder offset
// points just past the previous token, so separators are skipped to find
// the start of the next one.
func (d *jsonDecoder) next() (json.Token, Location, error) {
	start := int(d.dec.InputOffset())
	for start < len(d.data) {
		switch d.data[start] {
		case ' ', '\t', '\r', '\n', ',', ':':
			start++
			continue
		}
		break
	}
	tok, err := d.dec.Token()
	return tok, d.locate(start), err
}

func (d *jsonDecoder) syntaxError(err error) *SyntaxError {
	offset := len(d.data)
	var se *json.SyntaxError
	if errors.As(err, &se) {
		offset = int(se.Offset)
	}
	if offset >= len(d.data) && len(d.data) > 0 {
		offset = len(d.data) - 1
	}
	msg := err.Error()
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		msg = "unexpected end of document"
	}
	return &SyntaxError{Encoding: EncodingJSON, Location: d.locate(offset), Message: msg}
}

func (d *jsonDecoder) value(tok json.Token, loc Location, depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, &SyntaxError{
			Encoding: EncodingJSON,
			Location: loc,
			Message:  fmt.Sprintf("document nesting exceeds %d levels", MaxDepth),
		}
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return d.object(loc, depth)
		case '[':
			return d.array(loc, depth)
		default:
			return nil, &SyntaxError{Encoding: EncodingJSON, Location: loc, Message: fmt.Sprintf("unexpected %q", rune(v))}
		}
	case string:
		return &Node{Kind: KindString, Value: v, Location: loc}, nil
	case json.Number:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return nil, &SyntaxError{Encoding: EncodingJSON, Location: loc, Message: outOfRangeMessage(v.String())}
		}
		return &Node{Kind: KindNumber, Value: v.String(), Number: f, Location: loc}, nil
	case bool:
		return &Node{Kind: KindBool, Value: strconv.FormatBool(v), Bool: v, Location: loc}, nil
	case nil:
		return &Node{Kind: KindNull, Value: "null", Location: loc}, nil
	default:
		return nil, &SyntaxError{Encoding: EncodingJSON, Location: loc, Message: fmt.Sprintf("unexpected token %v", tok)}
	}
}

func (d *jsonDecoder) object(loc Location, depth int) (*Node, error) {
	out := &Node{Kind: KindMapping, Location: loc}
	seen := make(map[string]bool)

	for d.dec.More() {
		keyTok, keyLoc, err := d.next()
		if err != nil {
			return nil, d.syntaxError(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, &SyntaxError{Encoding: EncodingJSON, Location: keyLoc, Message: "object keys must be strings"}
		}
		if seen[key] {
			return nil, &SyntaxError{Encoding: EncodingJSON, Location: keyLoc, Message: fmt.Sprintf("duplicate key %q", key)}
		}
		seen[key] = true

		valueTok, valueLoc, err := d.next()
		if err != nil {
			return nil, d.syntaxError(err)
		}
		value, err := d.value(valueTok, valueLoc, depth+1)
		if err != nil {
			return nil, err
		}
		out.Pairs = append(out.Pairs, Pair{Key: key, KeyLocation: keyLoc, Value: value})
	}

	if _, _, err := d.next(); err != nil {
		return nil, d.syntaxError(err)
	}
	return out, nil
}

func (d *jsonDecoder) array(loc Location, depth int) (*Node, error) {
	out := &Node{Kind: KindSequence, Location: loc, Items: []*Node{}}

	for d.dec.More() {
		tok, itemLoc, err := d.next()
		if err != nil {
			return nil, d.syntaxError(err)
		}
		item, err := d.value(tok, itemLoc, depth+1)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, item)
	}

	if _, _, err := d.next(); err != nil {
		return nil, d.syntaxError(err)
	}
	return out, nil
}

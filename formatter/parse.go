package formatter

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/yllada/json-formatter/common"
)

// object is the in-memory form of a JSON object. Insertion order is the
// order keys were first seen in the input.
type object = orderedmap.OrderedMap[string, any]

const jsonWhitespace = " \t\r\n"

// parse validates input and builds its value tree. Leaves are string,
// json.Number, bool and nil; containers are *object and []any.
func parse(input string) (any, error) {
	if strings.TrimLeft(input, jsonWhitespace) == "" {
		syntaxErr := newSyntaxError(input, "expecting value", len(input))
		syntaxErr.cause = common.ErrEmptyInput
		return nil, syntaxErr
	}

	// Validation runs over the whole buffer first so error offsets come
	// from a single scanner and trailing data is rejected.
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		return nil, toSyntaxError(input, err)
	}

	p := &parser{input: input, dec: json.NewDecoder(strings.NewReader(input))}
	p.dec.UseNumber()

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	return p.value(tok)
}

// toSyntaxError converts an encoding/json error into a positioned SyntaxError.
func toSyntaxError(input string, err error) *SyntaxError {
	var jsonErr *json.SyntaxError
	if errors.As(err, &jsonErr) {
		offset := int(jsonErr.Offset)
		// Offset counts the offending byte itself unless the input ran out.
		if offset > 0 && !strings.HasPrefix(jsonErr.Error(), "unexpected end") {
			offset--
		}
		return newSyntaxError(input, jsonErr.Error(), offset)
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return newSyntaxError(input, "unexpected end of JSON input", len(input))
	}
	return newSyntaxError(input, err.Error(), 0)
}

type parser struct {
	input string
	dec   *json.Decoder
}

func (p *parser) next() (json.Token, error) {
	tok, err := p.dec.Token()
	if err != nil {
		return nil, toSyntaxError(p.input, err)
	}
	return tok, nil
}

func (p *parser) value(tok json.Token) (any, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		return p.object()
	case '[':
		return p.array()
	default:
		return nil, newSyntaxError(p.input, "unexpected "+delim.String(), int(p.dec.InputOffset())-1)
	}
}

func (p *parser) object() (*object, error) {
	obj := orderedmap.New[string, any]()
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return obj, nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, newSyntaxError(p.input, "expecting property name", int(p.dec.InputOffset()))
		}

		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		val, err := p.value(tok)
		if err != nil {
			return nil, err
		}
		// Set keeps the original position of a repeated key.
		obj.Set(key, val)
	}
}

func (p *parser) array() ([]any, error) {
	items := []any{}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return items, nil
		}

		val, err := p.value(tok)
		if err != nil {
			return nil, err
		}
		items = append(items, val)
	}
}

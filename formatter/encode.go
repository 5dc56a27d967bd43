package formatter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/yllada/json-formatter/common"
)

// encoder writes a value tree as indented JSON text.
type encoder struct {
	buf    strings.Builder
	indent string
}

func (e *encoder) newline(depth int) {
	e.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.buf.WriteString(e.indent)
	}
}

func (e *encoder) write(v any, depth int) {
	switch val := v.(type) {
	case nil:
		e.buf.WriteString("null")
	case bool:
		e.buf.WriteString(strconv.FormatBool(val))
	case json.Number:
		e.buf.WriteString(val.String())
	case string:
		writeString(&e.buf, val)
	case []any:
		if len(val) == 0 {
			e.buf.WriteString("[]")
			return
		}
		e.buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			e.write(item, depth+1)
		}
		e.newline(depth)
		e.buf.WriteByte(']')
	case *object:
		if val.Len() == 0 {
			e.buf.WriteString("{}")
			return
		}
		e.buf.WriteByte('{')
		for pair := val.Oldest(); pair != nil; pair = pair.Next() {
			if pair != val.Oldest() {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			writeString(&e.buf, pair.Key)
			e.buf.WriteString(": ")
			e.write(pair.Value, depth+1)
		}
		e.newline(depth)
		e.buf.WriteByte('}')
	default:
		// parse only produces the cases above
		panic(fmt.Sprintf("formatter: unexpected value type %T", v))
	}
}

// writeString quotes s, escaping only what JSON requires. Everything else,
// including non-ASCII text, is written as-is.
func writeString(buf *strings.Builder, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}

func encode(v any) string {
	e := &encoder{indent: common.IndentUnit}
	e.write(v, 0)
	return e.buf.String()
}

package formatter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yllada/json-formatter/common"
)

// SyntaxError describes why a document could not be parsed and where.
type SyntaxError struct {
	// Msg is the parser's description of the problem.
	Msg string
	// Offset is the byte offset of the problem in the input.
	Offset int
	// Line and Column are 1-based. Column counts characters, not bytes.
	Line   int
	Column int
	// Char is the 0-based character index of the problem.
	Char int

	cause error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: line %d column %d (char %d)", e.Msg, e.Line, e.Column, e.Char)
}

// Unwrap exposes common.ErrInvalidJSON, plus common.ErrEmptyInput for
// blank documents.
func (e *SyntaxError) Unwrap() []error {
	if e.cause != nil {
		return []error{common.ErrInvalidJSON, e.cause}
	}
	return []error{common.ErrInvalidJSON}
}

// newSyntaxError locates offset inside input.
func newSyntaxError(input, msg string, offset int) *SyntaxError {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}
	// never split a multi-byte character
	for offset > 0 && offset < len(input) && !utf8.RuneStart(input[offset]) {
		offset--
	}

	before := input[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1

	return &SyntaxError{
		Msg:    msg,
		Offset: offset,
		Line:   line,
		Column: utf8.RuneCountInString(before[lineStart:]) + 1,
		Char:   utf8.RuneCountInString(before),
	}
}

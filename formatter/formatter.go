package formatter

import "strings"

// ErrorPrefix starts the message shown for input that is not valid JSON.
const ErrorPrefix = "Invalid JSON: "

// Result is the outcome of formatting one document.
type Result struct {
	// Output is the formatted document, or the error message when Err is set.
	Output string
	// Err is a *SyntaxError when the input was not valid JSON.
	Err error
	// Lines is the number of lines in the formatted document, 0 on error.
	Lines int
}

// OK reports whether the input was valid JSON.
func (r Result) OK() bool {
	return r.Err == nil
}

// Format validates input and pretty-prints it with a four-space indent.
// It never panics; invalid input is reported through Result.Err and a
// readable message in Result.Output.
func Format(input string) Result {
	formatted, err := Indent(input)
	if err != nil {
		return Result{
			Output: ErrorPrefix + err.Error(),
			Err:    err,
		}
	}
	return Result{
		Output: formatted,
		Lines:  strings.Count(formatted, "\n") + 1,
	}
}

// Indent returns input re-serialized with a four-space indent, or a
// *SyntaxError.
func Indent(input string) (string, error) {
	tree, err := parse(input)
	if err != nil {
		return "", err
	}
	return encode(tree), nil
}

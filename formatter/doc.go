// Package formatter validates and pretty-prints JSON text for JSON Formatter.
//
// The formatter is a pure function of its input:
//
//   - Valid JSON is re-serialized with a four-space indent
//   - Object keys keep the order in which they appear in the input
//   - Non-ASCII characters are written literally, never as \u escapes
//   - Numbers keep their literal text (1.0 stays 1.0, 1e5 stays 1e5)
//
// Invalid input never panics. Format returns a Result whose Err is a
// *SyntaxError and whose Output is a human-readable message with the
// parser's description and the line and column of the problem.
//
// # Duplicate Keys
//
// When an object repeats a key, the key stays at the position of its first
// occurrence and takes the value of its last occurrence.
//
// # Invalid Unicode
//
// Input bytes that are not valid UTF-8, and \u escapes naming a lone
// surrogate such as "\ud800", are accepted and written out as U+FFFD. The
// Result does not flag the replacement.
//
// # Thread Safety
//
// Format holds no state and is safe for concurrent use.
package formatter

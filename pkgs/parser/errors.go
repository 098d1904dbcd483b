package parser

import (
	"fmt"
	"strings"
)

// ParseError represents a grammar mismatch: the input text does not conform
// to the shape expected for the kind of message being parsed. It is always
// recoverable; session state is never touched when one is returned.
type ParseError struct {
	Line    int    // The line number within the payload where the error occurred (1-based)
	Column  int    // The column number where the error occurred (0-based)
	Message string // The error message
	Context string // The line of text where the error occurred
}

// Error formats the parse error as a string with visual context
func (e *ParseError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}

	// Create a visual error indicator with arrow pointing to error position
	pointer := strings.Repeat(" ", e.Column) + "^"

	return fmt.Sprintf("line %d: %s\n%s\n%s",
		e.Line,
		e.Message,
		e.Context,
		pointer)
}

// NewParseError creates a new ParseError without context
func NewParseError(line int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewDetailedParseError creates a ParseError with context information
func NewDetailedParseError(line int, column int, context string, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Line:    line,
		Column:  column,
		Context: context,
		Message: fmt.Sprintf(format, args...),
	}
}

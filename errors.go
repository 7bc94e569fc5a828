package amarantine

import "fmt"

// RegexError reports a compile-time failure: an unclosed group, an
// incomplete escape, an invalid quantifier, or trailing garbage after the
// pattern. Pos is the byte offset into the pattern where the problem was
// detected.
type RegexError struct {
	Msg string
	Pos int
}

func (e *RegexError) Error() string {
	return fmt.Sprintf("amarantine: %s at position %d", e.Msg, e.Pos)
}

package lexer

import "github.com/joelvaneenwyk/powerquery-parser/position"

// LexerSnapshot is an immutable, point-in-time tokenization of a
// LexerState's full text: the flattened and stitched token and comment
// streams, each sorted by PositionStart and non-overlapping, plus the
// original text and every line's terminator. Once constructed, a
// LexerSnapshot is safe to share across goroutines by reference (spec §5).
type LexerSnapshot struct {
	Text            string
	Tokens          []Token
	Comments        []Comment
	LineTerminators []position.LineTerminator
}

// codeUnitLen returns the number of UTF-16 code units text would occupy.
func codeUnitLen(text string) int {
	n := 0
	for _, r := range text {
		n += utf16Width(r)
	}
	return n
}

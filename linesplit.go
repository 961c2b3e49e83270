package lexer

import "github.com/joelvaneenwyk/powerquery-parser/position"

// splitLines splits text into its constituent lines, recording each
// terminator verbatim. \r\n is recognized as a single terminator before a
// lone \r or \n. The final line's terminator is always "".
//
// Concatenating every returned (text, terminator) pair reproduces text
// exactly (spec §8 property 1).
func splitLines(text string) []rawLine {
	var lines []rawLine
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			term := position.CR
			end := i + 1
			if i+1 < len(text) && text[i+1] == '\n' {
				term = position.CRLF
				end = i + 2
			}
			lines = append(lines, rawLine{text: text[start:i], terminator: term})
			i = end - 1
			start = end
		case '\n':
			lines = append(lines, rawLine{text: text[start:i], terminator: position.LF})
			start = i + 1
		}
	}
	lines = append(lines, rawLine{text: text[start:], terminator: ""})
	return lines
}

// rawLine is the line splitter's output before line lexing has run.
type rawLine struct {
	text       string
	terminator string
}

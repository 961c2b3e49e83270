package lexer

// byteOffsetForCodeUnit converts a UTF-16 code-unit offset within text
// into the corresponding Go (UTF-8) byte offset, by walking runes and
// accumulating their code-unit width. A codeUnit past the end of text
// clamps to len(text).
func byteOffsetForCodeUnit(text string, codeUnit int) int {
	s := newScanner(text)
	for s.codeUnitPos < codeUnit && !s.atEnd() {
		s.advance()
	}
	return s.bytePos
}

package lexer

// scanLineComment consumes a "//" comment to the end of the line. It
// never produces an error and never changes mode: a line comment cannot
// span lines.
func scanLineComment(s *scanner) LineToken {
	m := s.mark()
	for !s.atEnd() {
		s.advance()
	}
	return s.token(LTKLineComment, m)
}

// scanMultilineCommentOpen consumes a "/*" comment starting at the
// scanner's current position. If the matching "*/" is found on the same
// line, it returns a complete LTKMultilineComment; otherwise it returns a
// LTKMultilineCommentStart fragment and ModeComment.
func scanMultilineCommentOpen(s *scanner) (LineToken, LexMode, *LexError, bool) {
	m := s.mark()
	s.advance() // '/'
	s.advance() // '*'
	closeStart, found := findMultilineCommentClose(s.text, s.bytePos)
	if found {
		advanceScannerTo(s, closeStart+2)
		return s.token(LTKMultilineComment, m), ModeDefault, nil, true
	}
	advanceScannerToEnd(s)
	return s.token(LTKMultilineCommentStart, m), ModeComment, nil, true
}

// continueMultilineComment resumes a multiline comment that was left open
// at the end of the previous line.
func continueMultilineComment(s *scanner) ([]LineToken, LexMode, *LexError) {
	m := s.mark()
	closeStart, found := findMultilineCommentClose(s.text, s.bytePos)
	if !found {
		advanceScannerToEnd(s)
		var tokens []LineToken
		if s.bytePos > m.bytePos {
			tokens = append(tokens, s.token(LTKMultilineCommentContent, m))
		}
		return tokens, ModeComment, nil
	}

	var tokens []LineToken
	if closeStart > m.bytePos {
		contentEnd := scannerAt(s.text, m, closeStart)
		tokens = append(tokens, LineToken{
			Kind:          LTKMultilineCommentContent,
			Data:          s.text[m.bytePos:closeStart],
			PositionStart: m.codeUnitPos,
			PositionEnd:   contentEnd.codeUnitPos,
		})
		endMark := contentEnd
		advanceScannerTo(s, closeStart+2)
		tokens = append(tokens, LineToken{
			Kind:          LTKMultilineCommentEnd,
			Data:          s.text[closeStart : closeStart+2],
			PositionStart: endMark.codeUnitPos,
			PositionEnd:   s.codeUnitPos,
		})
	} else {
		advanceScannerTo(s, closeStart+2)
		tokens = append(tokens, s.token(LTKMultilineCommentEnd, m))
	}
	return tokens, ModeDefault, nil
}

// findMultilineCommentClose returns the byte offset of the "*/" in text
// starting the search at from, and whether one was found.
func findMultilineCommentClose(text string, from int) (int, bool) {
	for i := from; i+1 < len(text); i++ {
		if text[i] == '*' && text[i+1] == '/' {
			return i, true
		}
	}
	return 0, false
}

// advanceScannerTo advances s's byte and code-unit positions to byteTarget
// by re-decoding runes, since the jump may skip multi-byte characters.
func advanceScannerTo(s *scanner, byteTarget int) {
	for s.bytePos < byteTarget {
		s.advance()
	}
}

func advanceScannerToEnd(s *scanner) {
	advanceScannerTo(s, len(s.text))
}

// scannerAt computes the mark that corresponds to byteTarget, starting
// the walk from an already-known mark m rather than the scanner's own
// current position, so callers can compute an intermediate position
// without mutating s.
func scannerAt(text string, from mark, byteTarget int) mark {
	tmp := &scanner{text: text, bytePos: from.bytePos, codeUnitPos: from.codeUnitPos}
	advanceScannerTo(tmp, byteTarget)
	return tmp.mark()
}

package lexer

// scanTextLiteralOpen consumes a text literal starting at the scanner's
// current '"'. If the matching terminator is found on the same line, it
// returns a complete LTKTextLiteral; otherwise it returns a
// LTKTextLiteralStart fragment and ModeText.
func scanTextLiteralOpen(s *scanner) (LineToken, LexMode, *LexError, bool) {
	m := s.mark()
	s.advance() // opening '"'
	closed := scanQuotedSpan(s)
	if closed {
		return s.token(LTKTextLiteral, m), ModeDefault, nil, true
	}
	return s.token(LTKTextLiteralStart, m), ModeText, nil, true
}

// continueTextLiteral resumes a text literal that was left open at the end
// of the previous line. It is called at the very start of a line whose
// modeStart is ModeText, before any other scanning on that line.
func continueTextLiteral(s *scanner) ([]LineToken, LexMode, *LexError) {
	return continueQuotedSpan(s, LTKTextLiteralContent, LTKTextLiteralEnd, ModeText)
}

// scanQuotedSpan consumes text from the scanner's current position (just
// past an opening delimiter) up to and including an un-doubled closing
// '"', treating a doubled "\"\"" as an embedded quote rather than a
// terminator. It reports whether a terminator was found before the line
// ended; this scan rule is identical for text literals and quoted
// identifiers (spec §4.B).
func scanQuotedSpan(s *scanner) bool {
	for !s.atEnd() {
		r, _ := s.peek()
		if r != '"' {
			s.advance()
			continue
		}
		if next, _ := s.peekAt(1); next == '"' {
			s.advance()
			s.advance()
			continue
		}
		s.advance() // the closing quote
		return true
	}
	return false
}

// continueQuotedSpan implements the shared Text/QuotedIdentifier
// continuation-mode algorithm: scan for an un-doubled '"'. If found, emit
// contentKind (only if content precedes it) then endKind, and return to
// Default mode. If not found, emit one contentKind fragment spanning the
// whole line and stay in mode.
func continueQuotedSpan(s *scanner, contentKind, endKind LineTokenKind, mode LexMode) ([]LineToken, LexMode, *LexError) {
	m := s.mark()
	closed := scanQuotedSpan(s)
	if !closed {
		var tokens []LineToken
		if s.bytePos > m.bytePos {
			tokens = append(tokens, s.token(contentKind, m))
		}
		return tokens, mode, nil
	}

	// Find the byte offset of the closing delimiter by re-scanning: the
	// content run is everything before the final un-doubled quote pair.
	closeStart := findClosingQuoteStart(s.text, m.bytePos)
	var tokens []LineToken
	if closeStart > m.bytePos {
		contentScanner := &scanner{text: s.text, bytePos: m.bytePos, codeUnitPos: m.codeUnitPos}
		for contentScanner.bytePos < closeStart {
			contentScanner.advance()
		}
		tokens = append(tokens, LineToken{
			Kind:          contentKind,
			Data:          s.text[m.bytePos:closeStart],
			PositionStart: m.codeUnitPos,
			PositionEnd:   contentScanner.codeUnitPos,
		})
		endStart := mark{bytePos: closeStart, codeUnitPos: contentScanner.codeUnitPos}
		tokens = append(tokens, LineToken{
			Kind:          endKind,
			Data:          s.text[closeStart:s.bytePos],
			PositionStart: endStart.codeUnitPos,
			PositionEnd:   s.codeUnitPos,
		})
	} else {
		tokens = append(tokens, s.token(endKind, m))
	}
	return tokens, ModeDefault, nil
}

// findClosingQuoteStart returns the byte offset of the terminating '"'
// that scanQuotedSpan consumed, by walking the same doubling rule forward
// from start.
func findClosingQuoteStart(text string, start int) int {
	i := start
	for i < len(text) {
		if text[i] != '"' {
			i++
			continue
		}
		if i+1 < len(text) && text[i+1] == '"' {
			i += 2
			continue
		}
		return i
	}
	return len(text)
}

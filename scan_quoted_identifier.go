package lexer

// scanQuotedIdentifierOpen consumes a quoted identifier starting at the
// scanner's current '#' (already confirmed by the caller to be followed
// by '"'). If the matching terminator is found on the same line, it
// returns a complete LTKIdentifier carrying the full "#\"...\"" form as
// Data; otherwise it returns a LTKQuotedIdentifierStart fragment and
// ModeQuotedIdentifier.
func scanQuotedIdentifierOpen(s *scanner) (LineToken, LexMode, *LexError, bool) {
	m := s.mark()
	s.advance() // '#'
	s.advance() // opening '"'
	closed := scanQuotedSpan(s)
	if closed {
		return s.token(LTKIdentifier, m), ModeDefault, nil, true
	}
	return s.token(LTKQuotedIdentifierStart, m), ModeQuotedIdentifier, nil, true
}

// continueQuotedIdentifier resumes a quoted identifier that was left open
// at the end of the previous line.
func continueQuotedIdentifier(s *scanner) ([]LineToken, LexMode, *LexError) {
	return continueQuotedSpan(s, LTKQuotedIdentifierContent, LTKQuotedIdentifierEnd, ModeQuotedIdentifier)
}

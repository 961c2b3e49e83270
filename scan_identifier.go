package lexer

import "unicode"

// isIdentifierStart reports whether r can begin an identifier: a Unicode
// letter or underscore. '#' is handled by the caller, since "#" alone can
// either begin a keyword (#table), a quoted identifier (#"x"), or (in the
// error case) nothing at all.
func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'
}

// scanIdentifierOrKeyword consumes a maximal identifier-shaped lexeme
// (starting at the scanner's current position, which the caller has
// already confirmed is a valid start character) and classifies it against
// the keyword table. Unrecognized lexemes are reported as Identifier,
// except those starting with '#', which yield an
// ExpectedKeywordOrIdentifier error.
func scanIdentifierOrKeyword(s *scanner) (LineToken, *LexError) {
	m := s.mark()
	s.advance() // the start character, already validated by the caller
	for {
		r, _ := s.peek()
		if !isIdentifierContinue(r) {
			break
		}
		s.advance()
	}
	lexeme := s.dataSince(m)
	if kind, ok := lookupKeyword(lexeme); ok {
		return s.token(kind, m), nil
	}
	if lexeme[0] == '#' {
		// "#" only ever introduces one of the fixed "#xxx" keywords or a
		// quoted identifier (#"..."), which the caller routes elsewhere;
		// anything else spelled with a leading "#" isn't valid M.
		return LineToken{}, &LexError{
			Kind:         LexErrorExpectedKeywordOrIdentifier,
			Suggestion:   suggestKeyword(lexeme),
			lineCodeUnit: m.codeUnitPos,
		}
	}
	return s.token(LTKIdentifier, m), nil
}

package lexer

// multiCharOperators lists every multi-character operator, longest lexemes
// first, so scanOperator can try them in order and take the first match.
// Single-character operators are tried last as the fallback.
var multiCharOperators = []struct {
	lexeme string
	kind   LineTokenKind
}{
	{"...", LTKEllipsis},
	{"..", LTKDotDot},
	{"=>", LTKFatArrow},
	{"<=", LTKLessThanEqualTo},
	{"<>", LTKNotEqual},
	{">=", LTKGreaterThanEqualTo},
}

var singleCharOperators = map[rune]LineTokenKind{
	'(': LTKLeftParenthesis,
	')': LTKRightParenthesis,
	'[': LTKLeftBracket,
	']': LTKRightBracket,
	'{': LTKLeftBrace,
	'}': LTKRightBrace,
	';': LTKSemicolon,
	',': LTKComma,
	'@': LTKAtSign,
	'?': LTKQuestionMark,
	'=': LTKEqual,
	'<': LTKLessThan,
	'>': LTKGreaterThan,
	'+': LTKPlus,
	'-': LTKMinus,
	'*': LTKAsterisk,
	'/': LTKDivision,
	'&': LTKAmpersand,
}

// scanOperator recognizes punctuation and operators by longest match. ok
// is false, with a nil error, only if this function is never called with
// a character that cannot start some operator — callers are expected to
// treat that combination as unreachable, since the Default-mode dispatch
// already routed every other recognizable start character elsewhere.
func scanOperator(s *scanner, r rune) (LineToken, LexMode, *LexError, bool) {
	m := s.mark()
	for _, op := range multiCharOperators {
		if matchesAt(s, op.lexeme) {
			for range op.lexeme {
				s.advance()
			}
			return s.token(op.kind, m), ModeDefault, nil, true
		}
	}
	if kind, ok := singleCharOperators[r]; ok {
		s.advance()
		return s.token(kind, m), ModeDefault, nil, true
	}
	return LineToken{}, ModeDefault, &LexError{
		Kind:         LexErrorUnexpectedRead,
		Read:         r,
		lineCodeUnit: s.codeUnitPos,
	}, false
}

// matchesAt reports whether lexeme occurs at the scanner's current
// position. lexeme must be entirely ASCII, which holds for every entry in
// multiCharOperators.
func matchesAt(s *scanner, lexeme string) bool {
	if s.bytePos+len(lexeme) > len(s.text) {
		return false
	}
	return s.text[s.bytePos:s.bytePos+len(lexeme)] == lexeme
}

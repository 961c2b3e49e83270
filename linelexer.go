package lexer

import "unicode/utf8"

// lineLexResult is what lexLine produces: the ordered token sequence for
// one line, the mode to carry into the next line, and at most one
// captured error (line lexing never returns more than one error per
// line — a line with an error stops scanning at the offending position).
type lineLexResult struct {
	tokens  []LineToken
	modeEnd LexMode
	err     *LexError
}

// scanner walks one line's text a rune at a time, tracking both the byte
// offset (to slice Data out of the original line text) and the UTF-16
// code-unit offset (the position unit the spec's data model uses for
// LineToken.PositionStart/PositionEnd).
type scanner struct {
	text         string
	bytePos      int
	codeUnitPos  int
}

func newScanner(text string) *scanner {
	return &scanner{text: text}
}

func (s *scanner) atEnd() bool {
	return s.bytePos >= len(s.text)
}

// peek returns the rune at the current position without advancing, and
// its UTF-8 byte width. It returns (utf8.RuneError, 0) at end of input.
func (s *scanner) peek() (rune, int) {
	if s.atEnd() {
		return utf8.RuneError, 0
	}
	r, size := utf8.DecodeRuneInString(s.text[s.bytePos:])
	return r, size
}

// peekAt looks ahead byteOffset bytes from the current position.
func (s *scanner) peekAt(byteOffset int) (rune, int) {
	pos := s.bytePos + byteOffset
	if pos >= len(s.text) {
		return utf8.RuneError, 0
	}
	r, size := utf8.DecodeRuneInString(s.text[pos:])
	return r, size
}

// advance consumes and returns the rune at the current position.
func (s *scanner) advance() rune {
	r, size := s.peek()
	if size == 0 {
		return utf8.RuneError
	}
	s.bytePos += size
	s.codeUnitPos += utf16Width(r)
	return r
}

// utf16Width returns how many UTF-16 code units r occupies: 2 for
// characters outside the Basic Multilingual Plane (requiring a surrogate
// pair), 1 otherwise.
func utf16Width(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// mark captures a resumable position, used to compute token spans and to
// backtrack when a multi-character lookahead (e.g. "0x" with no hex digits,
// or an exponent marker with no digits) fails.
type mark struct {
	bytePos     int
	codeUnitPos int
}

func (s *scanner) mark() mark {
	return mark{bytePos: s.bytePos, codeUnitPos: s.codeUnitPos}
}

func (s *scanner) reset(m mark) {
	s.bytePos = m.bytePos
	s.codeUnitPos = m.codeUnitPos
}

// dataSince returns the substring consumed since m, for use as a
// LineToken's Data.
func (s *scanner) dataSince(m mark) string {
	return s.text[m.bytePos:s.bytePos]
}

func (s *scanner) token(kind LineTokenKind, m mark) LineToken {
	return LineToken{
		Kind:          kind,
		Data:          s.dataSince(m),
		PositionStart: m.codeUnitPos,
		PositionEnd:   s.codeUnitPos,
	}
}

// lexLine classifies one line into an ordered sequence of LineTokens,
// given the lex mode the line was entered in. It is a pure function of
// (text, modeStart): two calls with equal inputs return structurally
// equal outputs (spec §8 property 6).
func lexLine(text string, modeStart LexMode) lineLexResult {
	s := newScanner(text)
	var tokens []LineToken

	switch modeStart {
	case ModeComment:
		tok, modeEnd, err := continueMultilineComment(s)
		tokens = append(tokens, tok...)
		if err != nil {
			return lineLexResult{tokens: tokens, modeEnd: modeEnd, err: err}
		}
		if modeEnd == ModeComment {
			return lineLexResult{tokens: tokens, modeEnd: modeEnd}
		}
		// The continuation consumed either the whole line (returned above)
		// or up to and including the closing fragment; in the latter case
		// the remainder of the line is lexed in Default mode below. The
		// same holds for the text and quoted-identifier cases.
	case ModeText:
		tok, modeEnd, err := continueTextLiteral(s)
		tokens = append(tokens, tok...)
		if err != nil {
			return lineLexResult{tokens: tokens, modeEnd: modeEnd, err: err}
		}
		if modeEnd == ModeText {
			return lineLexResult{tokens: tokens, modeEnd: modeEnd}
		}
	case ModeQuotedIdentifier:
		tok, modeEnd, err := continueQuotedIdentifier(s)
		tokens = append(tokens, tok...)
		if err != nil {
			return lineLexResult{tokens: tokens, modeEnd: modeEnd, err: err}
		}
		if modeEnd == ModeQuotedIdentifier {
			return lineLexResult{tokens: tokens, modeEnd: modeEnd}
		}
	}

	for !s.atEnd() {
		r, _ := s.peek()
		if r == ' ' || r == '\t' {
			s.advance()
			continue
		}

		tok, modeEnd, err, ok := scanDefaultToken(s, r)
		if err != nil {
			return lineLexResult{tokens: tokens, modeEnd: ModeDefault, err: err}
		}
		if !ok {
			continue
		}
		tokens = append(tokens, tok)
		if modeEnd != ModeDefault {
			return lineLexResult{tokens: tokens, modeEnd: modeEnd}
		}
	}

	return lineLexResult{tokens: tokens, modeEnd: ModeDefault}
}

// scanDefaultToken recognizes and consumes exactly one token starting at
// the scanner's current position in Default mode. ok is false only when no
// token could be recognized, and then the returned error is non-nil (the
// caller filters whitespace before calling, so whitespace never reaches
// here).
func scanDefaultToken(s *scanner, r rune) (LineToken, LexMode, *LexError, bool) {
	switch {
	case isIdentifierStart(r):
		tok, err := scanIdentifierOrKeyword(s)
		return tok, ModeDefault, err, true
	case r == '#' && peekIsQuote(s, 1):
		return scanQuotedIdentifierOpen(s)
	case r == '#':
		tok, err := scanIdentifierOrKeyword(s)
		return tok, ModeDefault, err, true
	case isDigit(r):
		tok, err := scanNumericLiteral(s)
		return tok, ModeDefault, err, true
	case r == '.' && isDigit(peekRuneAt(s, 1)):
		tok, err := scanNumericLiteral(s)
		return tok, ModeDefault, err, true
	case r == '"':
		return scanTextLiteralOpen(s)
	case r == '/' && peekRuneAt(s, 1) == '/':
		tok := scanLineComment(s)
		return tok, ModeDefault, nil, true
	case r == '/' && peekRuneAt(s, 1) == '*':
		return scanMultilineCommentOpen(s)
	default:
		tok, mode, err, ok := scanOperator(s, r)
		if err != nil {
			return LineToken{}, ModeDefault, err, false
		}
		return tok, mode, nil, ok
	}
}

func peekRuneAt(s *scanner, byteOffset int) rune {
	r, _ := s.peekAt(byteOffset)
	return r
}

func peekIsQuote(s *scanner, byteOffset int) bool {
	r, _ := s.peekAt(byteOffset)
	return r == '"'
}

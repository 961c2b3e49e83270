package lexer

import "github.com/joelvaneenwyk/powerquery-parser/position"

// LineToken is a token confined to a single physical line. Positions are
// line-relative code-unit offsets, not absolute ones; Snapshot building
// (component D) is responsible for translating them into absolute
// Positions.
type LineToken struct {
	Kind          LineTokenKind
	Data          string
	PositionStart int
	PositionEnd   int
}

// Token is a whole token as seen by the downstream parser, possibly
// spanning multiple lines (TextLiteral and Identifier are the only kinds
// that ever do). TokenKind has no fragment variants and no
// MultilineComment: comments are reported separately via Comment.
type Token struct {
	Kind          TokenKind
	Data          string
	PositionStart position.Position
	PositionEnd   position.Position
}

// Comment is a line (//...) or multiline (/*...*/) comment, reported
// out-of-band from the token stream.
type Comment struct {
	Kind            CommentKind
	Data            string
	ContainsNewline bool
	PositionStart   position.Position
	PositionEnd     position.Position
}

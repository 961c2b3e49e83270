package lexer

// LineStatus records why a Line's tokens are what they are, relative to
// the most recent edit.
type LineStatus int

const (
	// Untouched means this line was not re-lexed by the most recent edit
	// and carries no error.
	Untouched LineStatus = iota
	// Touched means this line was re-lexed by the most recent edit and
	// lexed cleanly.
	Touched
	// TouchedWithError means this line was re-lexed by the most recent
	// edit and line lexing captured an error.
	TouchedWithError
	// Error means this line carries an error from a previous edit that
	// the most recent edit did not re-lex.
	Error
)

func (s LineStatus) String() string {
	switch s {
	case Untouched:
		return "Untouched"
	case Touched:
		return "Touched"
	case TouchedWithError:
		return "TouchedWithError"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// Line is one physical line of source text together with its lex result:
// the tokens the line lexer produced for it, the terminator it was split
// on, and the modes it was entered and left in.
type Line struct {
	Kind           LineStatus
	Text           string
	LineTerminator string
	Tokens         []LineToken
	ModeStart      LexMode
	ModeEnd        LexMode
	Err            *LexError
}

func newLine(raw rawLine, modeStart LexMode, kind LineStatus) Line {
	result := lexLine(raw.text, modeStart)
	line := Line{
		Kind:           kind,
		Text:           raw.text,
		LineTerminator: raw.terminator,
		Tokens:         result.tokens,
		ModeStart:      modeStart,
		ModeEnd:        result.modeEnd,
		Err:            result.err,
	}
	if result.err != nil {
		switch kind {
		case Touched, TouchedWithError:
			line.Kind = TouchedWithError
		default:
			line.Kind = Error
		}
	}
	return line
}

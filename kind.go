package lexer

// LexMode is the automaton state carried across a line boundary: which
// multi-line construct, if any, is still open when the next line begins.
type LexMode int

const (
	ModeDefault LexMode = iota
	ModeComment
	ModeText
	ModeQuotedIdentifier
)

func (m LexMode) String() string {
	switch m {
	case ModeDefault:
		return "Default"
	case ModeComment:
		return "Comment"
	case ModeText:
		return "Text"
	case ModeQuotedIdentifier:
		return "QuotedIdentifier"
	default:
		return "Unknown"
	}
}

// LineTokenKind is the closed set of token kinds the line lexer (component
// B) can produce. Multi-line constructs appear as a Start/Content/End
// fragment triple; everything else is a single, complete kind.
type LineTokenKind int

const (
	LTKIdentifier LineTokenKind = iota
	LTKNumericLiteral
	LTKHexLiteral

	LTKKeywordAnd
	LTKKeywordAs
	LTKKeywordEach
	LTKKeywordElse
	LTKKeywordError
	LTKKeywordFalse
	LTKKeywordIf
	LTKKeywordIn
	LTKKeywordIs
	LTKKeywordLet
	LTKKeywordMeta
	LTKKeywordNot
	LTKKeywordNull
	LTKKeywordOr
	LTKKeywordOtherwise
	LTKKeywordSection
	LTKKeywordShared
	LTKKeywordThen
	LTKKeywordTrue
	LTKKeywordTry
	LTKKeywordType
	LTKKeywordHashBinary
	LTKKeywordHashDate
	LTKKeywordHashDateTime
	LTKKeywordHashDateTimeZone
	LTKKeywordHashDuration
	LTKKeywordHashInfinity
	LTKKeywordHashNan
	LTKKeywordHashSections
	LTKKeywordHashShared
	LTKKeywordHashTable
	LTKKeywordHashTime

	LTKLineComment
	LTKMultilineComment

	LTKMultilineCommentStart
	LTKMultilineCommentContent
	LTKMultilineCommentEnd

	LTKTextLiteral
	LTKTextLiteralStart
	LTKTextLiteralContent
	LTKTextLiteralEnd

	LTKQuotedIdentifierStart
	LTKQuotedIdentifierContent
	LTKQuotedIdentifierEnd

	LTKLeftParenthesis
	LTKRightParenthesis
	LTKLeftBracket
	LTKRightBracket
	LTKLeftBrace
	LTKRightBrace
	LTKSemicolon
	LTKComma
	LTKAtSign
	LTKQuestionMark
	LTKFatArrow
	LTKEqual
	LTKLessThan
	LTKLessThanEqualTo
	LTKNotEqual
	LTKGreaterThan
	LTKGreaterThanEqualTo
	LTKPlus
	LTKMinus
	LTKAsterisk
	LTKDivision
	LTKAmpersand
	LTKDotDot
	LTKEllipsis
)

// IsFragment reports whether k is one of the Start/Content/End fragment
// kinds emitted when a multi-line construct crosses a line boundary.
func (k LineTokenKind) IsFragment() bool {
	switch k {
	case LTKMultilineCommentStart, LTKMultilineCommentContent, LTKMultilineCommentEnd,
		LTKTextLiteralStart, LTKTextLiteralContent, LTKTextLiteralEnd,
		LTKQuotedIdentifierStart, LTKQuotedIdentifierContent, LTKQuotedIdentifierEnd:
		return true
	default:
		return false
	}
}

// IsStartFragment reports whether k opens a multi-line construct.
func (k LineTokenKind) IsStartFragment() bool {
	switch k {
	case LTKMultilineCommentStart, LTKTextLiteralStart, LTKQuotedIdentifierStart:
		return true
	default:
		return false
	}
}

func (k LineTokenKind) String() string {
	if s, ok := lineTokenKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

var lineTokenKindNames = map[LineTokenKind]string{
	LTKIdentifier:              "Identifier",
	LTKNumericLiteral:          "NumericLiteral",
	LTKHexLiteral:              "HexLiteral",
	LTKKeywordAnd:              "KeywordAnd",
	LTKKeywordAs:               "KeywordAs",
	LTKKeywordEach:             "KeywordEach",
	LTKKeywordElse:             "KeywordElse",
	LTKKeywordError:            "KeywordError",
	LTKKeywordFalse:            "KeywordFalse",
	LTKKeywordIf:               "KeywordIf",
	LTKKeywordIn:               "KeywordIn",
	LTKKeywordIs:               "KeywordIs",
	LTKKeywordLet:              "KeywordLet",
	LTKKeywordMeta:             "KeywordMeta",
	LTKKeywordNot:              "KeywordNot",
	LTKKeywordNull:             "KeywordNull",
	LTKKeywordOr:               "KeywordOr",
	LTKKeywordOtherwise:        "KeywordOtherwise",
	LTKKeywordSection:          "KeywordSection",
	LTKKeywordShared:           "KeywordShared",
	LTKKeywordThen:             "KeywordThen",
	LTKKeywordTrue:             "KeywordTrue",
	LTKKeywordTry:              "KeywordTry",
	LTKKeywordType:             "KeywordType",
	LTKKeywordHashBinary:       "KeywordHashBinary",
	LTKKeywordHashDate:         "KeywordHashDate",
	LTKKeywordHashDateTime:     "KeywordHashDateTime",
	LTKKeywordHashDateTimeZone: "KeywordHashDateTimeZone",
	LTKKeywordHashDuration:     "KeywordHashDuration",
	LTKKeywordHashInfinity:     "KeywordHashInfinity",
	LTKKeywordHashNan:          "KeywordHashNan",
	LTKKeywordHashSections:     "KeywordHashSections",
	LTKKeywordHashShared:       "KeywordHashShared",
	LTKKeywordHashTable:        "KeywordHashTable",
	LTKKeywordHashTime:         "KeywordHashTime",
	LTKLineComment:             "LineComment",
	LTKMultilineComment:        "MultilineComment",
	LTKMultilineCommentStart:   "MultilineCommentStart",
	LTKMultilineCommentContent: "MultilineCommentContent",
	LTKMultilineCommentEnd:     "MultilineCommentEnd",
	LTKTextLiteral:             "TextLiteral",
	LTKTextLiteralStart:        "TextLiteralStart",
	LTKTextLiteralContent:      "TextLiteralContent",
	LTKTextLiteralEnd:          "TextLiteralEnd",
	LTKQuotedIdentifierStart:   "QuotedIdentifierStart",
	LTKQuotedIdentifierContent: "QuotedIdentifierContent",
	LTKQuotedIdentifierEnd:     "QuotedIdentifierEnd",
	LTKLeftParenthesis:         "LeftParenthesis",
	LTKRightParenthesis:        "RightParenthesis",
	LTKLeftBracket:             "LeftBracket",
	LTKRightBracket:            "RightBracket",
	LTKLeftBrace:               "LeftBrace",
	LTKRightBrace:              "RightBrace",
	LTKSemicolon:               "Semicolon",
	LTKComma:                   "Comma",
	LTKAtSign:                  "AtSign",
	LTKQuestionMark:            "QuestionMark",
	LTKFatArrow:                "FatArrow",
	LTKEqual:                   "Equal",
	LTKLessThan:                "LessThan",
	LTKLessThanEqualTo:         "LessThanEqualTo",
	LTKNotEqual:                "NotEqual",
	LTKGreaterThan:             "GreaterThan",
	LTKGreaterThanEqualTo:      "GreaterThanEqualTo",
	LTKPlus:                    "Plus",
	LTKMinus:                   "Minus",
	LTKAsterisk:                "Asterisk",
	LTKDivision:                "Division",
	LTKAmpersand:               "Ampersand",
	LTKDotDot:                  "DotDot",
	LTKEllipsis:                "Ellipsis",
}

// TokenKind is the closed set of kinds a fully stitched Token can carry.
// It mirrors LineTokenKind's single-line subset, but has no fragment
// variants, no MultilineComment (comments are never tokens), and unifies
// the quoted-identifier forms into Identifier and the text-literal forms
// into TextLiteral.
type TokenKind int

const (
	TKIdentifier TokenKind = iota
	TKNumericLiteral
	TKHexLiteral
	TKTextLiteral

	TKKeywordAnd
	TKKeywordAs
	TKKeywordEach
	TKKeywordElse
	TKKeywordError
	TKKeywordFalse
	TKKeywordIf
	TKKeywordIn
	TKKeywordIs
	TKKeywordLet
	TKKeywordMeta
	TKKeywordNot
	TKKeywordNull
	TKKeywordOr
	TKKeywordOtherwise
	TKKeywordSection
	TKKeywordShared
	TKKeywordThen
	TKKeywordTrue
	TKKeywordTry
	TKKeywordType
	TKKeywordHashBinary
	TKKeywordHashDate
	TKKeywordHashDateTime
	TKKeywordHashDateTimeZone
	TKKeywordHashDuration
	TKKeywordHashInfinity
	TKKeywordHashNan
	TKKeywordHashSections
	TKKeywordHashShared
	TKKeywordHashTable
	TKKeywordHashTime

	TKLeftParenthesis
	TKRightParenthesis
	TKLeftBracket
	TKRightBracket
	TKLeftBrace
	TKRightBrace
	TKSemicolon
	TKComma
	TKAtSign
	TKQuestionMark
	TKFatArrow
	TKEqual
	TKLessThan
	TKLessThanEqualTo
	TKNotEqual
	TKGreaterThan
	TKGreaterThanEqualTo
	TKPlus
	TKMinus
	TKAsterisk
	TKDivision
	TKAmpersand
	TKDotDot
	TKEllipsis
)

func (k TokenKind) String() string {
	if s, ok := tokenKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

var tokenKindNames = map[TokenKind]string{
	TKIdentifier:              "Identifier",
	TKNumericLiteral:          "NumericLiteral",
	TKHexLiteral:              "HexLiteral",
	TKTextLiteral:             "TextLiteral",
	TKKeywordAnd:              "KeywordAnd",
	TKKeywordAs:               "KeywordAs",
	TKKeywordEach:             "KeywordEach",
	TKKeywordElse:             "KeywordElse",
	TKKeywordError:            "KeywordError",
	TKKeywordFalse:            "KeywordFalse",
	TKKeywordIf:               "KeywordIf",
	TKKeywordIn:               "KeywordIn",
	TKKeywordIs:               "KeywordIs",
	TKKeywordLet:              "KeywordLet",
	TKKeywordMeta:             "KeywordMeta",
	TKKeywordNot:              "KeywordNot",
	TKKeywordNull:             "KeywordNull",
	TKKeywordOr:               "KeywordOr",
	TKKeywordOtherwise:        "KeywordOtherwise",
	TKKeywordSection:          "KeywordSection",
	TKKeywordShared:           "KeywordShared",
	TKKeywordThen:             "KeywordThen",
	TKKeywordTrue:             "KeywordTrue",
	TKKeywordTry:              "KeywordTry",
	TKKeywordType:             "KeywordType",
	TKKeywordHashBinary:       "KeywordHashBinary",
	TKKeywordHashDate:         "KeywordHashDate",
	TKKeywordHashDateTime:     "KeywordHashDateTime",
	TKKeywordHashDateTimeZone: "KeywordHashDateTimeZone",
	TKKeywordHashDuration:     "KeywordHashDuration",
	TKKeywordHashInfinity:     "KeywordHashInfinity",
	TKKeywordHashNan:          "KeywordHashNan",
	TKKeywordHashSections:     "KeywordHashSections",
	TKKeywordHashShared:       "KeywordHashShared",
	TKKeywordHashTable:        "KeywordHashTable",
	TKKeywordHashTime:         "KeywordHashTime",
	TKLeftParenthesis:         "LeftParenthesis",
	TKRightParenthesis:        "RightParenthesis",
	TKLeftBracket:             "LeftBracket",
	TKRightBracket:            "RightBracket",
	TKLeftBrace:               "LeftBrace",
	TKRightBrace:              "RightBrace",
	TKSemicolon:               "Semicolon",
	TKComma:                   "Comma",
	TKAtSign:                  "AtSign",
	TKQuestionMark:            "QuestionMark",
	TKFatArrow:                "FatArrow",
	TKEqual:                   "Equal",
	TKLessThan:                "LessThan",
	TKLessThanEqualTo:         "LessThanEqualTo",
	TKNotEqual:                "NotEqual",
	TKGreaterThan:             "GreaterThan",
	TKGreaterThanEqualTo:      "GreaterThanEqualTo",
	TKPlus:                    "Plus",
	TKMinus:                   "Minus",
	TKAsterisk:                "Asterisk",
	TKDivision:                "Division",
	TKAmpersand:               "Ampersand",
	TKDotDot:                  "DotDot",
	TKEllipsis:                "Ellipsis",
}

// singleLineKindToTokenKind projects the single-line subset of
// LineTokenKind onto TokenKind by exhaustive match, per the spec's design
// note against reinterpreting the enum with an unsafe cast. It is called
// only for kinds that are neither fragments nor MultilineComment; callers
// must route those through their own stitching logic first.
func singleLineKindToTokenKind(k LineTokenKind) (TokenKind, bool) {
	switch k {
	case LTKIdentifier:
		return TKIdentifier, true
	case LTKNumericLiteral:
		return TKNumericLiteral, true
	case LTKHexLiteral:
		return TKHexLiteral, true
	case LTKTextLiteral:
		return TKTextLiteral, true
	case LTKKeywordAnd:
		return TKKeywordAnd, true
	case LTKKeywordAs:
		return TKKeywordAs, true
	case LTKKeywordEach:
		return TKKeywordEach, true
	case LTKKeywordElse:
		return TKKeywordElse, true
	case LTKKeywordError:
		return TKKeywordError, true
	case LTKKeywordFalse:
		return TKKeywordFalse, true
	case LTKKeywordIf:
		return TKKeywordIf, true
	case LTKKeywordIn:
		return TKKeywordIn, true
	case LTKKeywordIs:
		return TKKeywordIs, true
	case LTKKeywordLet:
		return TKKeywordLet, true
	case LTKKeywordMeta:
		return TKKeywordMeta, true
	case LTKKeywordNot:
		return TKKeywordNot, true
	case LTKKeywordNull:
		return TKKeywordNull, true
	case LTKKeywordOr:
		return TKKeywordOr, true
	case LTKKeywordOtherwise:
		return TKKeywordOtherwise, true
	case LTKKeywordSection:
		return TKKeywordSection, true
	case LTKKeywordShared:
		return TKKeywordShared, true
	case LTKKeywordThen:
		return TKKeywordThen, true
	case LTKKeywordTrue:
		return TKKeywordTrue, true
	case LTKKeywordTry:
		return TKKeywordTry, true
	case LTKKeywordType:
		return TKKeywordType, true
	case LTKKeywordHashBinary:
		return TKKeywordHashBinary, true
	case LTKKeywordHashDate:
		return TKKeywordHashDate, true
	case LTKKeywordHashDateTime:
		return TKKeywordHashDateTime, true
	case LTKKeywordHashDateTimeZone:
		return TKKeywordHashDateTimeZone, true
	case LTKKeywordHashDuration:
		return TKKeywordHashDuration, true
	case LTKKeywordHashInfinity:
		return TKKeywordHashInfinity, true
	case LTKKeywordHashNan:
		return TKKeywordHashNan, true
	case LTKKeywordHashSections:
		return TKKeywordHashSections, true
	case LTKKeywordHashShared:
		return TKKeywordHashShared, true
	case LTKKeywordHashTable:
		return TKKeywordHashTable, true
	case LTKKeywordHashTime:
		return TKKeywordHashTime, true
	case LTKLeftParenthesis:
		return TKLeftParenthesis, true
	case LTKRightParenthesis:
		return TKRightParenthesis, true
	case LTKLeftBracket:
		return TKLeftBracket, true
	case LTKRightBracket:
		return TKRightBracket, true
	case LTKLeftBrace:
		return TKLeftBrace, true
	case LTKRightBrace:
		return TKRightBrace, true
	case LTKSemicolon:
		return TKSemicolon, true
	case LTKComma:
		return TKComma, true
	case LTKAtSign:
		return TKAtSign, true
	case LTKQuestionMark:
		return TKQuestionMark, true
	case LTKFatArrow:
		return TKFatArrow, true
	case LTKEqual:
		return TKEqual, true
	case LTKLessThan:
		return TKLessThan, true
	case LTKLessThanEqualTo:
		return TKLessThanEqualTo, true
	case LTKNotEqual:
		return TKNotEqual, true
	case LTKGreaterThan:
		return TKGreaterThan, true
	case LTKGreaterThanEqualTo:
		return TKGreaterThanEqualTo, true
	case LTKPlus:
		return TKPlus, true
	case LTKMinus:
		return TKMinus, true
	case LTKAsterisk:
		return TKAsterisk, true
	case LTKDivision:
		return TKDivision, true
	case LTKAmpersand:
		return TKAmpersand, true
	case LTKDotDot:
		return TKDotDot, true
	case LTKEllipsis:
		return TKEllipsis, true
	default:
		return 0, false
	}
}

// CommentKind distinguishes a line comment ("//...") from a multiline
// comment ("/*...*/"), which may or may not actually contain a newline.
type CommentKind int

const (
	CommentKindLine CommentKind = iota
	CommentKindMultiline
)

func (k CommentKind) String() string {
	switch k {
	case CommentKindLine:
		return "Line"
	case CommentKindMultiline:
		return "Multiline"
	default:
		return "Unknown"
	}
}

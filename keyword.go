package lexer

// keywords maps the exact lexeme text of every reserved word to its
// LineTokenKind. #sections and #shared are kept as distinct keywords from
// each other and from plain section/shared, per the open question in the
// spec: the original source does not make clear whether they are
// synonyms, so they are preserved as distinct until a downstream parser
// spec pins this down.
var keywords = map[string]LineTokenKind{
	"and":            LTKKeywordAnd,
	"as":             LTKKeywordAs,
	"each":           LTKKeywordEach,
	"else":           LTKKeywordElse,
	"error":          LTKKeywordError,
	"false":          LTKKeywordFalse,
	"if":             LTKKeywordIf,
	"in":             LTKKeywordIn,
	"is":             LTKKeywordIs,
	"let":            LTKKeywordLet,
	"meta":           LTKKeywordMeta,
	"not":            LTKKeywordNot,
	"null":           LTKKeywordNull,
	"or":             LTKKeywordOr,
	"otherwise":      LTKKeywordOtherwise,
	"section":        LTKKeywordSection,
	"shared":         LTKKeywordShared,
	"then":           LTKKeywordThen,
	"true":           LTKKeywordTrue,
	"try":            LTKKeywordTry,
	"type":           LTKKeywordType,
	"#binary":        LTKKeywordHashBinary,
	"#date":          LTKKeywordHashDate,
	"#datetime":      LTKKeywordHashDateTime,
	"#datetimezone":  LTKKeywordHashDateTimeZone,
	"#duration":      LTKKeywordHashDuration,
	"#infinity":      LTKKeywordHashInfinity,
	"#nan":           LTKKeywordHashNan,
	"#sections":      LTKKeywordHashSections,
	"#shared":        LTKKeywordHashShared,
	"#table":         LTKKeywordHashTable,
	"#time":          LTKKeywordHashTime,
}

// keywordLexemes is the list of every reserved word, built once in map
// iteration order (unsorted), used as the candidate set for fuzzy "did you
// mean" suggestions.
var keywordLexemes = func() []string {
	lexemes := make([]string, 0, len(keywords))
	for lexeme := range keywords {
		lexemes = append(lexemes, lexeme)
	}
	return lexemes
}()

// lookupKeyword returns the LineTokenKind for lexeme if it names a
// keyword, and whether it does.
func lookupKeyword(lexeme string) (LineTokenKind, bool) {
	kind, ok := keywords[lexeme]
	return kind, ok
}

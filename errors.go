package lexer

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/joelvaneenwyk/powerquery-parser/position"
)

// LexErrorKind is the closed set of lex error kinds a line may be tagged
// with. These are user-facing, always carry a GraphemePosition, and are
// captured rather than thrown (see state.go, snapshot_builder.go).
type LexErrorKind int

const (
	LexErrorUnexpectedEof LexErrorKind = iota
	LexErrorUnexpectedRead
	LexErrorExpectedHexLiteral
	LexErrorExpectedKeywordOrIdentifier
	LexErrorExpectedNumericLiteral
	LexErrorUnterminatedMultilineToken
)

func (k LexErrorKind) String() string {
	switch k {
	case LexErrorUnexpectedEof:
		return "UnexpectedEof"
	case LexErrorUnexpectedRead:
		return "UnexpectedRead"
	case LexErrorExpectedHexLiteral:
		return "ExpectedHexLiteral"
	case LexErrorExpectedKeywordOrIdentifier:
		return "ExpectedKeywordOrIdentifier"
	case LexErrorExpectedNumericLiteral:
		return "ExpectedNumericLiteral"
	case LexErrorUnterminatedMultilineToken:
		return "UnterminatedMultilineToken"
	default:
		return "Unknown"
	}
}

// UnterminatedKind names which multi-line construct was left open when
// LexErrorUnterminatedMultilineToken is raised.
type UnterminatedKind int

const (
	UnterminatedMultilineComment UnterminatedKind = iota
	UnterminatedString
	UnterminatedQuotedIdentifier
)

func (k UnterminatedKind) String() string {
	switch k {
	case UnterminatedMultilineComment:
		return "MultilineComment"
	case UnterminatedString:
		return "String"
	case UnterminatedQuotedIdentifier:
		return "QuotedIdentifier"
	default:
		return "Unknown"
	}
}

// unterminatedKindForMode maps the lex mode a document was still in at its
// final line to the UnterminatedKind that describes what was left open.
func unterminatedKindForMode(mode LexMode) UnterminatedKind {
	switch mode {
	case ModeComment:
		return UnterminatedMultilineComment
	case ModeText:
		return UnterminatedString
	case ModeQuotedIdentifier:
		return UnterminatedQuotedIdentifier
	default:
		panicInvariant("unterminatedKindForMode called with a mode that isn't actually open", mode)
		panic("unreachable")
	}
}

// LexError is a single captured lex failure: malformed or unterminated
// input, always attributable to a specific source position.
type LexError struct {
	Kind         LexErrorKind
	GraphemePos  position.GraphemePosition
	Unterminated UnterminatedKind // meaningful only when Kind == LexErrorUnterminatedMultilineToken
	Suggestion   string           // best-effort "did you mean" detail, set only for LexErrorExpectedKeywordOrIdentifier
	Read         rune             // the offending character, set only for LexErrorUnexpectedRead

	// lineCodeUnit is the line-relative code-unit offset of the error
	// site, set by the scan_*.go functions that detect the failure. It is
	// consumed by finalizeLexError once the owning line's number and text
	// are known, and is not meaningful afterwards.
	lineCodeUnit int
}

// finalizeLexError fills in e's GraphemePos now that the caller knows
// which line e occurred on and that line's text. Line lexing itself only
// ever sees one line in isolation, so it cannot compute this earlier.
func finalizeLexError(e *LexError, lineNumber int, lineText string) {
	e.GraphemePos = position.NewGraphemePosition(
		position.Position{LineCodeUnit: e.lineCodeUnit, LineNumber: lineNumber},
		lineText,
	)
}

func (e *LexError) Error() string {
	switch e.Kind {
	case LexErrorUnterminatedMultilineToken:
		return fmt.Sprintf("unterminated %s starting at line %d column %d",
			e.Unterminated, e.GraphemePos.LineNumber, e.GraphemePos.ColumnNumber)
	case LexErrorUnexpectedRead:
		msg := fmt.Sprintf("unexpected character %q at line %d column %d",
			e.Read, e.GraphemePos.LineNumber, e.GraphemePos.ColumnNumber)
		return msg
	case LexErrorExpectedKeywordOrIdentifier:
		msg := fmt.Sprintf("expected keyword or identifier at line %d column %d",
			e.GraphemePos.LineNumber, e.GraphemePos.ColumnNumber)
		if e.Suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
		}
		return msg
	default:
		return fmt.Sprintf("%s at line %d column %d",
			e.Kind, e.GraphemePos.LineNumber, e.GraphemePos.ColumnNumber)
	}
}

// suggestKeyword returns the keyword lexeme that best fuzzy-matches
// candidate, for inclusion in a LexErrorExpectedKeywordOrIdentifier
// detail. A keyword matches if either it contains candidate's characters
// in order ("#tble" -> "#table") or candidate contains the keyword's
// characters in order ("lett" -> "let"); among matches, the one with the
// smallest Levenshtein distance wins. It returns "" if no keyword matches.
func suggestKeyword(candidate string) string {
	ranks := fuzzy.RankFindNormalizedFold(candidate, keywordLexemes)
	for _, lexeme := range keywordLexemes {
		for _, r := range fuzzy.RankFindNormalizedFold(lexeme, []string{candidate}) {
			ranks = append(ranks, fuzzy.Rank{Target: lexeme, Distance: r.Distance})
		}
	}
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}

// LexErrors aggregates every LexError captured across a LexerState's
// lines, surfaced when a Snapshot cannot be built (component D, step 2).
type LexErrors struct {
	Errors []*LexError
}

func (e *LexErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d lex errors, first: %s", len(e.Errors), e.Errors[0].Error())
}

// InvariantError signals that the lexer reached a state the algorithm
// guarantees should be impossible: a missing mode-chain link, a fragment
// without its matching terminator surviving past the line-status check, or
// similar. It is never returned as a normal error value - the spec
// requires invariant errors to terminate the operation rather than be
// swallowed by an outer Result envelope, so it is raised via panic.
type InvariantError struct {
	Message string
	Dump    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %s\n%s", e.Message, e.Dump)
}

// panicInvariant raises an InvariantError carrying a spew.Sdump of state
// for post-mortem debugging, mirroring the teacher's top-level crash
// handler, which dumps spew.Sdump(p) of its root struct before exiting.
func panicInvariant(message string, state interface{}) {
	panic(&InvariantError{
		Message: message,
		Dump:    spew.Sdump(state),
	})
}

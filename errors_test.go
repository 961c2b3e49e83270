package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/joelvaneenwyk/powerquery-parser/position"
)

func TestFinalizeLexErrorComputesGraphemePosition(t *testing.T) {
	e := &LexError{Kind: LexErrorUnexpectedRead, Read: '$', lineCodeUnit: 3}
	finalizeLexError(e, 2, "abc$def")
	assert.Equal(t, 2, e.GraphemePos.LineNumber)
	assert.Equal(t, 3, e.GraphemePos.LineCodeUnit)
	assert.Equal(t, 3, e.GraphemePos.ColumnNumber)
}

func TestLexErrorUnterminatedMultilineTokenMessage(t *testing.T) {
	e := &LexError{Kind: LexErrorUnterminatedMultilineToken, Unterminated: UnterminatedString}
	finalizeLexError(e, 5, "")
	assert.Contains(t, e.Error(), "unterminated String")
	assert.Contains(t, e.Error(), "line 5")
}

func TestLexErrorUnexpectedReadMessageIncludesCharacter(t *testing.T) {
	e := &LexError{Kind: LexErrorUnexpectedRead, Read: '$'}
	finalizeLexError(e, 0, "$")
	assert.Contains(t, e.Error(), "$")
}

func TestLexErrorExpectedKeywordOrIdentifierWithoutSuggestion(t *testing.T) {
	e := &LexError{Kind: LexErrorExpectedKeywordOrIdentifier}
	finalizeLexError(e, 0, "")
	assert.NotContains(t, e.Error(), "did you mean")
}

func TestLexErrorExpectedKeywordOrIdentifierWithSuggestion(t *testing.T) {
	e := &LexError{Kind: LexErrorExpectedKeywordOrIdentifier, Suggestion: "#table"}
	finalizeLexError(e, 0, "")
	assert.Contains(t, e.Error(), `did you mean "#table"?`)
}

func TestLexErrorDefaultMessageNamesTheKind(t *testing.T) {
	e := &LexError{Kind: LexErrorExpectedNumericLiteral}
	finalizeLexError(e, 0, "")
	assert.Contains(t, e.Error(), "ExpectedNumericLiteral")
}

func TestSuggestKeywordPicksClosestMatch(t *testing.T) {
	assert.Equal(t, "let", suggestKeyword("lett"))
	assert.Equal(t, "#table", suggestKeyword("#tble"))
}

func TestSuggestKeywordReturnsEmptyWhenNothingIsClose(t *testing.T) {
	assert.Equal(t, "", suggestKeyword("zzzzzzzzzzzzzzzzzzzzzzzz"))
}

func TestLexErrorsAggregatesSingleError(t *testing.T) {
	e := &LexError{Kind: LexErrorUnexpectedRead, Read: '$'}
	finalizeLexError(e, 0, "$")
	errs := &LexErrors{Errors: []*LexError{e}}
	assert.Equal(t, e.Error(), errs.Error())
}

func TestLexErrorsAggregatesMultipleErrorsWithCount(t *testing.T) {
	e1 := &LexError{Kind: LexErrorUnexpectedRead, Read: '$'}
	finalizeLexError(e1, 0, "$")
	e2 := &LexError{Kind: LexErrorUnexpectedRead, Read: '%'}
	finalizeLexError(e2, 1, "%")
	errs := &LexErrors{Errors: []*LexError{e1, e2}}
	assert.Contains(t, errs.Error(), "2 lex errors")
}

func TestPanicInvariantRaisesInvariantErrorWithDump(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r)
		invErr, ok := r.(*InvariantError)
		assert.True(t, ok)
		assert.Equal(t, "something impossible happened", invErr.Message)
		assert.NotEmpty(t, invErr.Dump)
		assert.Contains(t, invErr.Error(), "something impossible happened")
	}()
	panicInvariant("something impossible happened", position.Position{LineNumber: 1})
}

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanIdentifier(t *testing.T) {
	result := lexLine("myVariable", ModeDefault)
	assert.Nil(t, result.err)
	assert.Equal(t, ModeDefault, result.modeEnd)
	assert.Len(t, result.tokens, 1)
	assert.Equal(t, LTKIdentifier, result.tokens[0].Kind)
	assert.Equal(t, "myVariable", result.tokens[0].Data)
}

func TestScanIdentifierAllowsDotAndUnderscore(t *testing.T) {
	result := lexLine("_private.field", ModeDefault)
	assert.Nil(t, result.err)
	assert.Len(t, result.tokens, 1)
	assert.Equal(t, "_private.field", result.tokens[0].Data)
}

func TestScanKeyword(t *testing.T) {
	result := lexLine("let", ModeDefault)
	assert.Nil(t, result.err)
	assert.Equal(t, LTKKeywordLet, result.tokens[0].Kind)
}

func TestScanHashKeyword(t *testing.T) {
	result := lexLine("#table", ModeDefault)
	assert.Nil(t, result.err)
	assert.Len(t, result.tokens, 1)
	assert.Equal(t, LTKKeywordHashTable, result.tokens[0].Kind)
}

func TestScanHashSectionsAndHashSharedAreDistinctKeywords(t *testing.T) {
	sections := lexLine("#sections", ModeDefault)
	shared := lexLine("#shared", ModeDefault)
	assert.Equal(t, LTKKeywordHashSections, sections.tokens[0].Kind)
	assert.Equal(t, LTKKeywordHashShared, shared.tokens[0].Kind)
}

func TestScanUnrecognizedHashLexemeIsExpectedKeywordOrIdentifier(t *testing.T) {
	result := lexLine("#bogus", ModeDefault)
	assert.NotNil(t, result.err)
	assert.Equal(t, LexErrorExpectedKeywordOrIdentifier, result.err.Kind)
}

func TestScanUnrecognizedHashLexemeSuggestsClosestKeyword(t *testing.T) {
	result := lexLine("#tabl", ModeDefault)
	assert.NotNil(t, result.err)
	assert.Equal(t, "#table", result.err.Suggestion)
}

func TestScanQuotedIdentifierOpenTakesPrecedenceOverHashKeyword(t *testing.T) {
	result := lexLine(`#"my field"`, ModeDefault)
	assert.Nil(t, result.err)
	assert.Len(t, result.tokens, 1)
	assert.Equal(t, LTKIdentifier, result.tokens[0].Kind)
	assert.Equal(t, `#"my field"`, result.tokens[0].Data)
}

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanInteger(t *testing.T) {
	result := lexLine("123", ModeDefault)
	assert.Nil(t, result.err)
	assert.Equal(t, LTKNumericLiteral, result.tokens[0].Kind)
	assert.Equal(t, "123", result.tokens[0].Data)
}

func TestScanFraction(t *testing.T) {
	result := lexLine("3.14", ModeDefault)
	assert.Nil(t, result.err)
	assert.Equal(t, "3.14", result.tokens[0].Data)
}

func TestScanLeadingDotFraction(t *testing.T) {
	result := lexLine(".5", ModeDefault)
	assert.Nil(t, result.err)
	assert.Equal(t, LTKNumericLiteral, result.tokens[0].Kind)
	assert.Equal(t, ".5", result.tokens[0].Data)
}

func TestScanExponent(t *testing.T) {
	result := lexLine("1e10", ModeDefault)
	assert.Nil(t, result.err)
	assert.Equal(t, "1e10", result.tokens[0].Data)
}

func TestScanExponentWithSign(t *testing.T) {
	result := lexLine("2.5e-3", ModeDefault)
	assert.Nil(t, result.err)
	assert.Equal(t, "2.5e-3", result.tokens[0].Data)
}

func TestScanExponentWithoutDigitsIsNotConsumed(t *testing.T) {
	result := lexLine("1e", ModeDefault)
	assert.Nil(t, result.err)
	assert.Len(t, result.tokens, 2)
	assert.Equal(t, LTKNumericLiteral, result.tokens[0].Kind)
	assert.Equal(t, "1", result.tokens[0].Data)
	assert.Equal(t, LTKIdentifier, result.tokens[1].Kind)
	assert.Equal(t, "e", result.tokens[1].Data)
}

func TestScanHexLiteral(t *testing.T) {
	result := lexLine("0xFF", ModeDefault)
	assert.Nil(t, result.err)
	assert.Equal(t, LTKHexLiteral, result.tokens[0].Kind)
	assert.Equal(t, "0xFF", result.tokens[0].Data)
}

func TestScanHexLiteralLowercaseMarker(t *testing.T) {
	result := lexLine("0x1a2b", ModeDefault)
	assert.Nil(t, result.err)
	assert.Equal(t, LTKHexLiteral, result.tokens[0].Kind)
}

func TestScanZeroXWithNoHexDigitsFallsBackToDecimal(t *testing.T) {
	result := lexLine("0x", ModeDefault)
	assert.Nil(t, result.err)
	assert.Len(t, result.tokens, 2)
	assert.Equal(t, LTKNumericLiteral, result.tokens[0].Kind)
	assert.Equal(t, "0", result.tokens[0].Data)
	assert.Equal(t, LTKIdentifier, result.tokens[1].Kind)
	assert.Equal(t, "x", result.tokens[1].Data)
}

func TestScanTrailingDotWithoutDigitsIsNotConsumedByNumber(t *testing.T) {
	result := lexLine("5.", ModeDefault)
	assert.Len(t, result.tokens, 1)
	assert.Equal(t, "5", result.tokens[0].Data)
	assert.NotNil(t, result.err)
	assert.Equal(t, LexErrorUnexpectedRead, result.err.Kind)
	assert.Equal(t, '.', result.err.Read)
}

func TestScanDotDotIsNotAbsorbedByPrecedingNumber(t *testing.T) {
	result := lexLine("5..10", ModeDefault)
	assert.Nil(t, result.err)
	assert.Len(t, result.tokens, 3)
	assert.Equal(t, "5", result.tokens[0].Data)
	assert.Equal(t, LTKDotDot, result.tokens[1].Kind)
	assert.Equal(t, "10", result.tokens[2].Data)
}

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/joelvaneenwyk/powerquery-parser/position"
)

func TestFromTextSplitsAndThreadsMode(t *testing.T) {
	st := FromText("/* open\nmiddle\nclose */\nafter")
	assert.Equal(t, 4, st.LineCount())
	assert.Equal(t, ModeDefault, st.Line(0).ModeStart)
	assert.Equal(t, ModeComment, st.Line(0).ModeEnd)
	assert.Equal(t, ModeComment, st.Line(1).ModeStart)
	assert.Equal(t, ModeComment, st.Line(1).ModeEnd)
	assert.Equal(t, ModeComment, st.Line(2).ModeStart)
	assert.Equal(t, ModeDefault, st.Line(2).ModeEnd)
	assert.Equal(t, ModeDefault, st.Line(3).ModeStart)
	for _, line := range st.Lines() {
		assert.Equal(t, Touched, line.Kind)
	}
}

func TestAppendLineFixesUpPreviousTerminator(t *testing.T) {
	st := FromText("first")
	assert.Equal(t, "", st.Line(0).LineTerminator)
	st.AppendLine("second")
	assert.Equal(t, position.LF, st.Line(0).LineTerminator)
	assert.Equal(t, "", st.Line(1).LineTerminator)
	assert.Equal(t, 2, st.LineCount())
}

func TestAppendLineThreadsModeFromPreviousLine(t *testing.T) {
	st := FromText(`"open`)
	st.AppendLine(`close"`)
	assert.Equal(t, ModeText, st.Line(1).ModeStart)
	assert.Equal(t, ModeDefault, st.Line(1).ModeEnd)
}

func TestUpdateLinePreservesTerminatorAndRelexes(t *testing.T) {
	st := FromText("a\nb\n")
	st.UpdateLine(0, "let")
	assert.Equal(t, LTKKeywordLet, st.Line(0).Tokens[0].Kind)
	assert.Equal(t, position.LF, st.Line(0).LineTerminator)
}

func TestUpdateLineMarksEditedLineTouched(t *testing.T) {
	st := FromText("a\nb\n")
	st.UpdateLine(0, "@")
	assert.Equal(t, Touched, st.Line(0).Kind)
}

func TestCascadeStopsWhenModeConverges(t *testing.T) {
	st := FromText("/* open\nmiddle\nclose */\nafter")
	st.UpdateLine(1, "different middle text")
	// line 1's modeEnd is still ModeComment, same as before the edit, so the
	// cascade should not touch line 2 or line 3.
	assert.Equal(t, Touched, st.Line(1).Kind)
	assert.Equal(t, Untouched, st.Line(2).Kind)
	assert.Equal(t, Untouched, st.Line(3).Kind)
	assert.Equal(t, "close */", st.Line(2).Text)
}

func TestCascadePropagatesWhenModeDiverges(t *testing.T) {
	st := FromText("/* open\nmiddle\nclose */\nafter")
	// line 1 now closes the comment itself, so line 2 ("close */") is no
	// longer entered in ModeComment and must be relexed as plain code; line
	// 3 ("after") is still entered in ModeDefault either way, so the cascade
	// stops there instead of continuing further.
	st.UpdateLine(1, "middle */")
	assert.Equal(t, ModeDefault, st.Line(1).ModeEnd)
	assert.Equal(t, Touched, st.Line(2).Kind)
	assert.Equal(t, ModeDefault, st.Line(2).ModeStart)
	assert.Equal(t, LTKIdentifier, st.Line(2).Tokens[0].Kind)
	assert.Equal(t, Untouched, st.Line(3).Kind)
}

func TestCascadePropagatesAcrossMultipleLines(t *testing.T) {
	st := FromText("/* a\nb\nc */\nd")
	st.UpdateLine(0, "/* a") // no-op rewrite, still opens a comment
	assert.Equal(t, ModeComment, st.Line(0).ModeEnd)

	st.UpdateLine(0, "text") // no longer opens a comment at all
	assert.Equal(t, ModeDefault, st.Line(0).ModeEnd)
	assert.Equal(t, Touched, st.Line(1).Kind)
	assert.Equal(t, LTKIdentifier, st.Line(1).Tokens[0].Kind)
	assert.Equal(t, Touched, st.Line(2).Kind)
	assert.Equal(t, Untouched, st.Line(3).Kind)
	assert.Equal(t, LTKIdentifier, st.Line(3).Tokens[0].Kind)
}

func TestUpdateRangeWithinOneLineReconstructsSurroundingText(t *testing.T) {
	st := FromText("prefix middle suffix\nnext line")
	st.UpdateRange(EditRange{StartLine: 0, StartCol: 7, EndLine: 0, EndCol: 13}, "REPLACED")
	assert.Equal(t, "prefix REPLACED suffix", st.Line(0).Text)
	assert.Equal(t, "next line", st.Line(1).Text)
}

func TestUpdateRangeSpanningLinesPreservesFinalTerminator(t *testing.T) {
	st := FromText("aaa\nbbb\nccc\n")
	st.UpdateRange(EditRange{StartLine: 0, StartCol: 1, EndLine: 2, EndCol: 2}, "X\nY")
	assert.Equal(t, 3, st.LineCount())
	assert.Equal(t, "aX", st.Line(0).Text)
	assert.Equal(t, "Yc", st.Line(1).Text)
	assert.Equal(t, position.LF, st.Line(1).LineTerminator)
	assert.Equal(t, "", st.Line(2).LineTerminator)
}

func TestUpdateRangeCanOpenAMultilineConstructThatCascades(t *testing.T) {
	st := FromText("before closed after\nnext line\nthird line")
	st.UpdateRange(EditRange{StartLine: 0, StartCol: 7, EndLine: 0, EndCol: 13}, `"open`)
	assert.Equal(t, `before "open after`, st.Line(0).Text)
	assert.Equal(t, ModeText, st.Line(0).ModeEnd)
	assert.Equal(t, Touched, st.Line(1).Kind)
	assert.Equal(t, ModeText, st.Line(1).ModeStart)
}

func TestDeleteLineRemovesAndCascades(t *testing.T) {
	st := FromText("a\nb\nc")
	st.DeleteLine(1)
	assert.Equal(t, 2, st.LineCount())
	assert.Equal(t, "a", st.Line(0).Text)
	assert.Equal(t, "c", st.Line(1).Text)
}

func TestDeleteLastLineClearsNewLastLineTerminator(t *testing.T) {
	st := FromText("a\nb\n")
	assert.Equal(t, 3, st.LineCount())
	st.DeleteLine(2)
	assert.Equal(t, 2, st.LineCount())
	assert.Equal(t, "", st.Line(1).LineTerminator)
}

func TestDeleteLineThatWasHoldingOpenAModeCascades(t *testing.T) {
	st := FromText("/* open\nclose */\nafter")
	st.DeleteLine(1) // removes the line carrying "close */"
	assert.Equal(t, 2, st.LineCount())
	// line 1 ("after") is now entered directly from line 0's ModeComment.
	assert.Equal(t, ModeComment, st.Line(1).ModeStart)
}

func TestUntouchedLineCarriesOverPriorError(t *testing.T) {
	st := FromText("$\nfine")
	assert.NotNil(t, st.Line(0).Err)
	st.AppendLine("more")
	assert.Equal(t, Error, st.Line(0).Kind)
	assert.Equal(t, Untouched, st.Line(1).Kind)
	assert.Equal(t, Touched, st.Line(2).Kind)
}

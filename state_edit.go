package lexer

import "github.com/joelvaneenwyk/powerquery-parser/position"

// EditRange names a span to replace in UpdateRange, in line/column
// coordinates. Columns are UTF-16 code-unit offsets within their line,
// matching LineToken's position unit.
type EditRange struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// resetStatuses demotes every line's Kind to Untouched, or to Error if it
// still carries an unresolved LexError, before an edit begins. LineStatus
// is always relative to the most recently applied edit (spec §3), so every
// edit entry point must do this before lexing whatever it actually touches.
func (st *LexerState) resetStatuses() {
	for i := range st.lines {
		if st.lines[i].Err != nil {
			st.lines[i].Kind = Error
		} else {
			st.lines[i].Kind = Untouched
		}
	}
}

// AppendLine appends a new line lexed under the previous last line's
// modeEnd. If the state already has lines, the previous last line's
// terminator — which was "" because it used to be the final line — is set
// to "\n", since it is no longer the final line; this is the "cascade
// into the prior lines' terminator-absent tail" the edit operations must
// perform (spec §4.C).
func (st *LexerState) AppendLine(text string) {
	st.resetStatuses()
	mode := ModeDefault
	if n := len(st.lines); n > 0 {
		last := &st.lines[n-1]
		if last.LineTerminator == "" {
			last.LineTerminator = position.LF
		}
		mode = last.ModeEnd
	}
	st.lines = append(st.lines, newLine(rawLine{text: text, terminator: ""}, mode, Touched))
}

// UpdateLine replaces line i's text in place, preserving its terminator,
// then cascades the re-lex downstream until a line's recomputed modeStart
// matches its stored value.
func (st *LexerState) UpdateLine(i int, text string) {
	st.resetStatuses()
	terminator := st.lines[i].LineTerminator
	st.spliceAndRelex(i, i, []rawLine{{text: text, terminator: terminator}})
}

// UpdateRange replaces the text spanned by r with t, reconstructing
// whichever lines r touches from the surrounding, unedited text plus t,
// then behaves like a line-range UpdateLine: relex the reconstructed
// lines and cascade downstream until convergence.
func (st *LexerState) UpdateRange(r EditRange, t string) {
	st.resetStatuses()
	startLine := st.lines[r.StartLine]
	endLine := st.lines[r.EndLine]

	prefixByte := byteOffsetForCodeUnit(startLine.Text, r.StartCol)
	suffixByte := byteOffsetForCodeUnit(endLine.Text, r.EndCol)

	combined := startLine.Text[:prefixByte] + t + endLine.Text[suffixByte:]
	finalTerminator := endLine.LineTerminator

	raws := splitLines(combined)
	// splitLines always reports "" as the terminator of the last piece,
	// since it treats combined as if it were a whole file; the last piece
	// here is actually the tail of endLine, so it inherits endLine's real
	// terminator instead.
	raws[len(raws)-1].terminator = finalTerminator

	st.spliceAndRelex(r.StartLine, r.EndLine, raws)
}

// DeleteLine removes line i and relexes downstream until mode
// convergence. If i was the last line, the new last line's terminator is
// cleared to "" — it is now the final line.
func (st *LexerState) DeleteLine(i int) {
	st.resetStatuses()
	st.lines = append(st.lines[:i], st.lines[i+1:]...)
	if i == len(st.lines) && len(st.lines) > 0 {
		st.lines[len(st.lines)-1].LineTerminator = ""
	}
	if i < len(st.lines) {
		mode := ModeDefault
		if i > 0 {
			mode = st.lines[i-1].ModeEnd
		}
		st.cascadeFrom(i, mode)
	}
}

// spliceAndRelex replaces lines[startLine..endLine] (inclusive) with newRaws,
// lexes them in order threading modeEnd into the next modeStart, then
// cascades the re-lex into whatever now follows until a line's recomputed
// modeStart matches its stored value, proving the suffix is still valid.
func (st *LexerState) spliceAndRelex(startLine, endLine int, newRaws []rawLine) {
	mode := ModeDefault
	if startLine > 0 {
		mode = st.lines[startLine-1].ModeEnd
	}

	replacement := make([]Line, 0, len(newRaws))
	for _, raw := range newRaws {
		line := newLine(raw, mode, Touched)
		replacement = append(replacement, line)
		mode = line.ModeEnd
	}

	tail := append([]Line{}, st.lines[endLine+1:]...)
	st.lines = append(st.lines[:startLine], append(replacement, tail...)...)

	st.cascadeFrom(startLine+len(replacement), mode)
}

// cascadeFrom relexes lines starting at index i, whose entry mode is now
// mode, stopping at the first line whose newly computed modeStart equals
// its currently stored modeStart.
func (st *LexerState) cascadeFrom(i int, mode LexMode) {
	for i < len(st.lines) {
		if st.lines[i].ModeStart == mode {
			return
		}
		old := st.lines[i]
		relexed := newLine(rawLine{text: old.Text, terminator: old.LineTerminator}, mode, Touched)
		st.lines[i] = relexed
		mode = relexed.ModeEnd
		i++
	}
}

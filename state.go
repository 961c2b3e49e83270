package lexer

// LexerState holds the ordered sequence of lines with their tokens,
// terminators, and per-line entry/exit modes. It is mutable and must be
// externally synchronized by the caller — there is no internal locking
// (spec §5).
type LexerState struct {
	lines []Line
}

// FromText lexes text from scratch: splits it into lines and lexes each
// one, threading modeEnd into the next line's modeStart, with the first
// line entered in ModeDefault.
func FromText(text string) *LexerState {
	raws := splitLines(text)
	lines := make([]Line, 0, len(raws))
	mode := ModeDefault
	for _, raw := range raws {
		line := newLine(raw, mode, Touched)
		lines = append(lines, line)
		mode = line.ModeEnd
	}
	return &LexerState{lines: lines}
}

// Lines returns the state's current lines. The returned slice is a view
// into internal state and must not be mutated by the caller.
func (st *LexerState) Lines() []Line {
	return st.lines
}

// LineCount returns the number of lines currently held.
func (st *LexerState) LineCount() int {
	return len(st.lines)
}

// Line returns a copy of line i.
func (st *LexerState) Line(i int) Line {
	return st.lines[i]
}

package lexer

import "github.com/joelvaneenwyk/powerquery-parser/position"

// flatToken is one line token lifted out of its Line and given an
// absolute Position, tagged with the line it came from so the stitcher
// can reconstruct raw multi-line spans without re-walking LexerState.
type flatToken struct {
	flatIndex  int
	lineNumber int
	kind       LineTokenKind
	data       string
	posStart   position.Position
	posEnd     position.Position
}

// TryFrom builds an immutable LexerSnapshot from state's current lines:
// aggregate any captured line errors (returning early if there are any — a
// snapshot is either fully valid or not produced at all, per spec §7), then
// flatten every line's tokens into absolute positions, then stitch
// multi-line fragments into whole Token/Comment values.
func TryFrom(state *LexerState) (*LexerSnapshot, error) {
	lines := state.lines

	if errs := aggregateErrors(lines); errs != nil {
		return nil, errs
	}

	flat, lineTerminators, text := flatten(lines)

	tokens, comments := stitch(lines, flat)

	return &LexerSnapshot{
		Text:            text,
		Tokens:          tokens,
		Comments:        comments,
		LineTerminators: lineTerminators,
	}, nil
}

// aggregateErrors collects and finalizes every captured LexError across
// lines, including the case where the document's last line ends in a
// non-Default mode — an unterminated comment, text literal, or quoted
// identifier that simply ran off the end of the text rather than hitting a
// malformed character. It returns nil if there are no errors at all.
func aggregateErrors(lines []Line) *LexErrors {
	var errs []*LexError
	for lineNumber, line := range lines {
		if line.Err == nil {
			continue
		}
		finalizeLexError(line.Err, lineNumber, line.Text)
		errs = append(errs, line.Err)
	}
	if e := unterminatedAtEOF(lines); e != nil {
		errs = append(errs, e)
	}
	if len(errs) == 0 {
		return nil
	}
	return &LexErrors{Errors: errs}
}

// unterminatedAtEOF reports the still-open multi-line construct, if any,
// when the document's last line ends in a non-Default mode. Since mode
// threading never nests, at most one construct can be open at a time; this
// walks forward remembering the most recent *Start fragment on any line that
// ends in a non-Default mode. A *Start fragment is only emitted for a
// construct that stays open past its line, and closing it returns the mode
// to Default, so the last one seen is exactly the construct still open.
func unterminatedAtEOF(lines []Line) *LexError {
	if len(lines) == 0 {
		return nil
	}
	last := lines[len(lines)-1]
	if last.ModeEnd == ModeDefault {
		return nil
	}

	startLine := 0
	startCodeUnit := 0
	for lineNumber, line := range lines {
		if line.ModeEnd == ModeDefault {
			continue
		}
		for _, tok := range line.Tokens {
			if tok.Kind.IsStartFragment() {
				startLine = lineNumber
				startCodeUnit = tok.PositionStart
			}
		}
	}

	e := &LexError{
		Kind:         LexErrorUnterminatedMultilineToken,
		Unterminated: unterminatedKindForMode(last.ModeEnd),
		lineCodeUnit: startCodeUnit,
	}
	finalizeLexError(e, startLine, lines[startLine].Text)
	return e
}

// flatten concatenates every line's text and terminator, recording each
// LineTerminator's absolute offset, and lifts every LineToken into a
// flatToken with an absolute Position and a monotonic flatIndex.
func flatten(lines []Line) ([]flatToken, []position.LineTerminator, string) {
	var flat []flatToken
	var terminators []position.LineTerminator
	var text string

	absoluteCodeUnit := 0
	flatIndex := 0
	for lineNumber, line := range lines {
		text += line.Text + line.LineTerminator

		for _, tok := range line.Tokens {
			flat = append(flat, flatToken{
				flatIndex:  flatIndex,
				lineNumber: lineNumber,
				kind:       tok.Kind,
				data:       tok.Data,
				posStart: position.Position{
					CodeUnit:     absoluteCodeUnit + tok.PositionStart,
					LineCodeUnit: tok.PositionStart,
					LineNumber:   lineNumber,
				},
				posEnd: position.Position{
					CodeUnit:     absoluteCodeUnit + tok.PositionEnd,
					LineCodeUnit: tok.PositionEnd,
					LineNumber:   lineNumber,
				},
			})
			flatIndex++
		}

		lineCodeUnits := codeUnitLen(line.Text)
		terminators = append(terminators, position.LineTerminator{
			CodeUnit: absoluteCodeUnit + lineCodeUnits,
			Text:     line.LineTerminator,
		})
		absoluteCodeUnit += lineCodeUnits + codeUnitLen(line.LineTerminator)
	}

	return flat, terminators, text
}

// stitch walks the flattened tokens in document order, pairing every
// *Start fragment with its downstream *Content/*End run and re-emitting
// everything else as a Token or Comment directly.
func stitch(lines []Line, flat []flatToken) ([]Token, []Comment) {
	var tokens []Token
	var comments []Comment

	j := 0
	for j < len(flat) {
		tok := flat[j]
		switch tok.kind {
		case LTKLineComment:
			comments = append(comments, Comment{
				Kind:            CommentKindLine,
				Data:            tok.data,
				ContainsNewline: true,
				PositionStart:   tok.posStart,
				PositionEnd:     tok.posEnd,
			})
			j++

		case LTKMultilineComment:
			comments = append(comments, Comment{
				Kind:            CommentKindMultiline,
				Data:            tok.data,
				ContainsNewline: tok.posStart.LineNumber != tok.posEnd.LineNumber,
				PositionStart:   tok.posStart,
				PositionEnd:     tok.posEnd,
			})
			j++

		case LTKMultilineCommentStart:
			end, next := collectFragmentRun(flat, j, LTKMultilineCommentContent, LTKMultilineCommentEnd)
			if end == nil {
				panicInvariant("multiline comment start without a terminating end fragment reached the snapshot builder", tok)
			}
			comments = append(comments, Comment{
				Kind:            CommentKindMultiline,
				Data:            rawSpan(lines, tok.lineNumber, tok.posStart.LineCodeUnit, end.lineNumber, end.posEnd.LineCodeUnit),
				ContainsNewline: tok.lineNumber != end.lineNumber,
				PositionStart:   tok.posStart,
				PositionEnd:     end.posEnd,
			})
			j = next

		case LTKTextLiteralStart:
			end, next := collectFragmentRun(flat, j, LTKTextLiteralContent, LTKTextLiteralEnd)
			if end == nil {
				panicInvariant("text literal start without a terminating end fragment reached the snapshot builder", tok)
			}
			tokens = append(tokens, Token{
				Kind:          TKTextLiteral,
				Data:          rawSpan(lines, tok.lineNumber, tok.posStart.LineCodeUnit, end.lineNumber, end.posEnd.LineCodeUnit),
				PositionStart: tok.posStart,
				PositionEnd:   end.posEnd,
			})
			j = next

		case LTKQuotedIdentifierStart:
			end, next := collectFragmentRun(flat, j, LTKQuotedIdentifierContent, LTKQuotedIdentifierEnd)
			if end == nil {
				panicInvariant("quoted identifier start without a terminating end fragment reached the snapshot builder", tok)
			}
			tokens = append(tokens, Token{
				Kind:          TKIdentifier,
				Data:          rawSpan(lines, tok.lineNumber, tok.posStart.LineCodeUnit, end.lineNumber, end.posEnd.LineCodeUnit),
				PositionStart: tok.posStart,
				PositionEnd:   end.posEnd,
			})
			j = next

		case LTKMultilineCommentContent, LTKMultilineCommentEnd,
			LTKTextLiteralContent, LTKTextLiteralEnd,
			LTKQuotedIdentifierContent, LTKQuotedIdentifierEnd:
			panicInvariant("fragment continuation reached the snapshot builder without a preceding start fragment", tok)
			j++ // unreachable; keeps control flow explicit for readers

		default:
			kind, ok := singleLineKindToTokenKind(tok.kind)
			if !ok {
				panicInvariant("line token kind has no single-line Token projection", tok)
			}
			tokens = append(tokens, Token{
				Kind:          kind,
				Data:          tok.data,
				PositionStart: tok.posStart,
				PositionEnd:   tok.posEnd,
			})
			j++
		}
	}

	return tokens, comments
}

// collectFragmentRun walks forward from a *Start fragment at flat[start]
// through zero or more contentKind fragments and returns the single
// endKind fragment that terminates the run, along with the index just
// past it. If the run never terminates it returns nil, with the index of
// the first token that is neither contentKind nor endKind (or len(flat) if
// the tokens run out), which
// the caller surfaces as UnterminatedMultilineToken rather than reaching
// here — TryFrom's error aggregation pass runs first and would have caught
// any line whose mode never converged back to Default, so an unterminated
// run reaching this function is itself an invariant violation, not a
// normal lex error.
func collectFragmentRun(flat []flatToken, start int, contentKind, endKind LineTokenKind) (*flatToken, int) {
	j := start + 1
	for j < len(flat) {
		switch flat[j].kind {
		case contentKind:
			j++
		case endKind:
			end := flat[j]
			return &end, j + 1
		default:
			return nil, j
		}
	}
	return nil, j
}

// rawSpan reconstructs the verbatim source text from
// (startLine, startLineCodeUnit) to (endLine, endLineCodeUnit), inclusive
// of every terminator in between, directly from the owning Line structs —
// this is how §4.D's "raw substring from start to end" requirement is met
// without needing a separate absolute-codeUnit-to-byte index over the
// whole text.
func rawSpan(lines []Line, startLine, startCol, endLine, endCol int) string {
	if startLine == endLine {
		startByte := byteOffsetForCodeUnit(lines[startLine].Text, startCol)
		endByte := byteOffsetForCodeUnit(lines[startLine].Text, endCol)
		return lines[startLine].Text[startByte:endByte]
	}

	startByte := byteOffsetForCodeUnit(lines[startLine].Text, startCol)
	span := lines[startLine].Text[startByte:] + lines[startLine].LineTerminator

	for l := startLine + 1; l < endLine; l++ {
		span += lines[l].Text + lines[l].LineTerminator
	}

	endByte := byteOffsetForCodeUnit(lines[endLine].Text, endCol)
	span += lines[endLine].Text[:endByte]
	return span
}

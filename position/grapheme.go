package position

import "github.com/rivo/uniseg"

// GraphemePosition is a source position whose column is measured in
// extended grapheme clusters (Unicode Standard Annex #29) rather than code
// units, suitable for human-facing diagnostics. It is always derived from
// a Position plus the line it falls on; it is never produced directly by
// the lexer's hot path.
type GraphemePosition struct {
	LineNumber   int
	LineCodeUnit int
	ColumnNumber int
}

// NewGraphemePosition derives a GraphemePosition from pos by counting the
// extended grapheme clusters in lineText that precede pos.LineCodeUnit.
// lineText must be the text of the line containing pos, excluding its
// terminator.
func NewGraphemePosition(pos Position, lineText string) GraphemePosition {
	return GraphemePosition{
		LineNumber:   pos.LineNumber,
		LineCodeUnit: pos.LineCodeUnit,
		ColumnNumber: columnFromCodeUnit(lineText, pos.LineCodeUnit),
	}
}

// columnFromCodeUnit counts the grapheme clusters in text that begin before
// the UTF-16 code unit offset lineCodeUnit. An offset that falls inside a
// cluster therefore counts that cluster too. Combining marks and ZWJ
// sequences count as a single cluster, matching UAX #29.
func columnFromCodeUnit(text string, lineCodeUnit int) int {
	remaining := text
	codeUnitsSeen := 0
	column := 0
	for len(remaining) > 0 {
		if codeUnitsSeen >= lineCodeUnit {
			break
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(remaining, -1)
		if cluster == "" {
			break
		}
		codeUnitsSeen += utf16Len(cluster)
		column++
		remaining = rest
	}
	return column
}

// utf16Len returns the number of UTF-16 code units s would occupy.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

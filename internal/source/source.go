// Package source holds the immutable input buffer handed to the lexer and
// parser, and the lazy byte-offset-to-line/column locator used when
// rendering diagnostics.
package source

import "strings"

// Range is a half-open byte interval [Begin, End) into a Buffer's Text.
// All diagnostics carry ranges, never pre-resolved line/column pairs.
type Range struct {
	Begin uint32
	End   uint32
}

// Len returns the number of bytes spanned by r.
func (r Range) Len() uint32 { return r.End - r.Begin }

// Union returns the smallest range containing both r and other.
func (r Range) Union(other Range) Range {
	begin := r.Begin
	if other.Begin < begin {
		begin = other.Begin
	}
	end := r.End
	if other.End > end {
		end = other.End
	}
	return Range{Begin: begin, End: end}
}

// Buffer is an immutable UTF-8 byte span plus a display name used only for
// diagnostic rendering (never for semantics).
type Buffer struct {
	Path string
	Text string
}

// NewBuffer borrows text for the lifetime of a parse; it is never copied.
func NewBuffer(path string, text string) *Buffer {
	return &Buffer{Path: path, Text: text}
}

// Slice returns the bytes spanned by r.
func (b *Buffer) Slice(r Range) string {
	return b.Text[r.Begin:r.End]
}

// Position is a 1-based line and 0-based byte column, matching esbuild's
// logger.MsgLocation convention.
type Position struct {
	Line   int
	Column int
}

// Locator lazily maps byte offsets into a Buffer to (line, column) pairs.
// The line-start table is computed once, on first use, and reused for the
// rest of the parse.
type Locator struct {
	buf         *Buffer
	lineOffsets []uint32
}

// NewLocator constructs a Locator over buf. Computing the line table is
// deferred until the first call to Position.
func NewLocator(buf *Buffer) *Locator {
	return &Locator{buf: buf}
}

func (l *Locator) ensureLineOffsets() {
	if l.lineOffsets != nil {
		return
	}
	offsets := []uint32{0}
	text := l.buf.Text
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, uint32(i+1))
		}
	}
	l.lineOffsets = offsets
}

// Position converts a byte offset to a 1-based line and 0-based column.
func (l *Locator) Position(offset uint32) Position {
	l.ensureLineOffsets()
	// Binary search for the last line offset <= offset.
	lo, hi := 0, len(l.lineOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l.lineOffsets[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return Position{Line: lo + 1, Column: int(offset - l.lineOffsets[lo])}
}

// LineText returns the full source line containing offset, without its
// trailing newline.
func (l *Locator) LineText(offset uint32) string {
	l.ensureLineOffsets()
	pos := l.Position(offset)
	start := l.lineOffsets[pos.Line-1]
	text := l.buf.Text[start:]
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	return text
}

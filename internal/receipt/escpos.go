// Package receipt renders kitchen and customer tickets as raw ESC/POS
// byte sequences. Getting the bytes onto a physical printer is outside
// this package; a Printer just receives the finished buffer.
package receipt

import (
	"bytes"
	"context"
	"io"
	"strings"
)

// ESC/POS escape sequences understood by the thermal printers in use.
var (
	cmdInit        = []byte{0x1B, 0x40}             // ESC @
	cmdAlignLeft   = []byte{0x1B, 0x61, 0x00}       // ESC a 0
	cmdAlignCenter = []byte{0x1B, 0x61, 0x01}       // ESC a 1
	cmdBoldOn      = []byte{0x1B, 0x45, 0x01}       // ESC E 1
	cmdBoldOff     = []byte{0x1B, 0x45, 0x00}       // ESC E 0
	cmdDoubleOn    = []byte{0x1D, 0x21, 0x11}       // GS ! double width+height
	cmdDoubleOff   = []byte{0x1D, 0x21, 0x00}       // GS ! normal
	cmdCut         = []byte{0x1D, 0x56, 0x42, 0x00} // GS V partial cut
)

// Width of a 80mm ticket in normal-size characters.
const lineWidth = 48

// Builder accumulates an ESC/POS byte stream.
type Builder struct {
	buf bytes.Buffer
}

func NewBuilder() *Builder {
	b := &Builder{}
	b.buf.Write(cmdInit)
	return b
}

func (b *Builder) AlignLeft() *Builder   { b.buf.Write(cmdAlignLeft); return b }
func (b *Builder) AlignCenter() *Builder { b.buf.Write(cmdAlignCenter); return b }
func (b *Builder) Bold(on bool) *Builder {
	if on {
		b.buf.Write(cmdBoldOn)
	} else {
		b.buf.Write(cmdBoldOff)
	}
	return b
}
func (b *Builder) DoubleSize(on bool) *Builder {
	if on {
		b.buf.Write(cmdDoubleOn)
	} else {
		b.buf.Write(cmdDoubleOff)
	}
	return b
}

// Line writes text followed by a line feed, transliterated to the
// printer-safe ASCII subset.
func (b *Builder) Line(text string) *Builder {
	b.buf.WriteString(sanitize(text))
	b.buf.WriteByte('\n')
	return b
}

// Divider writes a full-width dashed rule.
func (b *Builder) Divider() *Builder {
	b.buf.WriteString(strings.Repeat("-", lineWidth))
	b.buf.WriteByte('\n')
	return b
}

// Columns writes left- and right-aligned text on one line, for
// description/price rows.
func (b *Builder) Columns(left, right string) *Builder {
	left = sanitize(left)
	right = sanitize(right)
	pad := lineWidth - len(left) - len(right)
	if pad < 1 {
		keep := lineWidth - len(right) - 1
		if keep < 0 {
			keep = 0
		}
		left = left[:keep]
		pad = 1
	}
	b.buf.WriteString(left)
	b.buf.WriteString(strings.Repeat(" ", pad))
	b.buf.WriteString(right)
	b.buf.WriteByte('\n')
	return b
}

func (b *Builder) Feed(lines int) *Builder {
	for i := 0; i < lines; i++ {
		b.buf.WriteByte('\n')
	}
	return b
}

// Cut feeds and cuts the paper.
func (b *Builder) Cut() *Builder {
	b.Feed(4)
	b.buf.Write(cmdCut)
	return b
}

func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

// sanitize maps accented characters onto the printer's plain-ASCII range
// and drops anything else non-printable.
func sanitize(s string) string {
	var out strings.Builder
	for _, r := range s {
		switch {
		case r < 0x20:
			continue
		case r < 0x7F:
			out.WriteRune(r)
		default:
			if repl, ok := accents[r]; ok {
				out.WriteRune(repl)
			} else {
				out.WriteByte('?')
			}
		}
	}
	return out.String()
}

var accents = map[rune]rune{
	'á': 'a', 'à': 'a', 'ã': 'a', 'â': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'õ': 'o', 'ô': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n',
	'Á': 'A', 'À': 'A', 'Ã': 'A', 'Â': 'A', 'Ä': 'A',
	'É': 'E', 'È': 'E', 'Ê': 'E', 'Ë': 'E',
	'Í': 'I', 'Ì': 'I', 'Î': 'I', 'Ï': 'I',
	'Ó': 'O', 'Ò': 'O', 'Õ': 'O', 'Ô': 'O', 'Ö': 'O',
	'Ú': 'U', 'Ù': 'U', 'Û': 'U', 'Ü': 'U',
	'Ç': 'C', 'Ñ': 'N',
}

// Printer receives a finished ticket.
type Printer interface {
	Print(ctx context.Context, ticket []byte) error
}

// Spool writes tickets to any io.Writer (a device file, a network spool, a
// simulator).
type Spool struct {
	W io.Writer
}

func (s Spool) Print(_ context.Context, ticket []byte) error {
	_, err := s.W.Write(ticket)
	return err
}

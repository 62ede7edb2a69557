package export

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/gogpu/fontatlas/text"
)

// WriteASCII prints bm with '#' for covered pixels and ' ' for empty ones,
// one line per row. Rows are cut at maxWidth columns when maxWidth > 0.
func WriteASCII(w io.Writer, bm *text.Bitmap, maxWidth int) error {
	bw := bufio.NewWriter(w)
	for line := range bm.Lines() {
		if maxWidth > 0 && len(line) > maxWidth {
			line = line[:maxWidth]
		}
		for _, px := range line {
			c := byte(' ')
			if px != 0 {
				c = '#'
			}
			if err := bw.WriteByte(c); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// TerminalWidth returns the column count of f if it is a terminal.
func TerminalWidth(f *os.File) (int, bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

package path

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// WriteTSV renders the path row-major, one point per line. Every value is
// followed by a tab and every line is newline-terminated.
func (p *Path) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := range p.Len() {
		if err := writeRow(bw, p.RawRow(i)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String returns the TSV rendering of the path.
func (p *Path) String() string {
	var sb strings.Builder
	_ = p.WriteTSV(&sb)
	return sb.String()
}

// WriteRowsTSV renders a plain matrix in the same format as Path.WriteTSV.
// Ragged input is rendered as-is.
func WriteRowsTSV(w io.Writer, rows [][]float64) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if err := writeRow(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRow(bw *bufio.Writer, row []float64) error {
	var buf [32]byte
	for _, v := range row {
		if _, err := bw.Write(strconv.AppendFloat(buf[:0], v, 'g', -1, 64)); err != nil {
			return err
		}
		if err := bw.WriteByte('\t'); err != nil {
			return err
		}
	}
	return bw.WriteByte('\n')
}

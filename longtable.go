package tex2pdf

import (
	"fmt"
	"strings"
)

// LongTable is a paginated table rendered with the xltabular environment.
// Columns are fixed at construction; rows may be appended afterwards, but
// not concurrently with a render of the same table.
type LongTable struct {
	label   string
	columns []Column
	Rows    []Row
}

// Column pairs a header name with a single-character column type. The
// type character selects a \newcolumntype layout rule declared in the
// document preamble.
type Column struct {
	Name string
	Type byte
}

// Row holds one value per table column.
type Row struct {
	Values []string
}

// NewRow creates a row from the given cell values.
func NewRow(values ...string) Row {
	return Row{Values: values}
}

// NewLongTable creates a table with a spanning label and a fixed column
// layout.
func NewLongTable(label string, columns ...Column) *LongTable {
	return &LongTable{label: label, columns: columns}
}

// Append adds rows to the table. Row widths are validated lazily while
// streaming, not here, so construction stays cheap.
func (t *LongTable) Append(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Reader returns a cursor over the table's lines: begin, label, header,
// one line per row, end. The row count is frozen at reader creation, so
// rows appended mid-stream do not shift the end of the sequence.
func (t *LongTable) Reader() LineReader {
	return &tableReader{source: t, rowCount: len(t.Rows)}
}

// Fixed fragments of the xltabular construct. The downstream compiler
// parses these positionally, so the begin, label, header, rows, end
// order must hold even for empty tables.
const (
	tableBegin = `\begin{xltabular}[l]{\textwidth}{%s}`
	tableLabel = `\multicolumn{%d}{l}{\hspace{-\tabcolsep}%s} \\ \hline`
	tableEnd   = `\end{xltabular}`

	rowStart = "    "
	rowEnd   = ` \\ \hline`

	columnSeparator     = " & "
	columnTypeSeparator = byte('|')
)

type tableReader struct {
	source   *LongTable
	rowCount int
	position int
}

func (r *tableReader) ReadLine() (string, error) {
	if r.AtEnd() {
		return "", nil
	}

	var line string
	switch {
	case r.position == 0:
		line = r.tableBegin()
	case r.position == 1:
		line = r.tableLabel()
	case r.position == 2:
		line = r.tableHeader()
	case r.position == r.rowCount+3:
		line = tableEnd
	default:
		row, err := r.rowLine(r.position - 3)
		if err != nil {
			return "", err
		}
		line = row
	}

	r.position++
	return line, nil
}

func (r *tableReader) AtEnd() bool {
	return r.position >= r.rowCount+4
}

func (r *tableReader) tableBegin() string {
	var cols strings.Builder
	cols.Grow(2*len(r.source.columns) + 1)
	cols.WriteByte(columnTypeSeparator)
	for _, c := range r.source.columns {
		cols.WriteByte(c.Type)
		cols.WriteByte(columnTypeSeparator)
	}
	return fmt.Sprintf(tableBegin, cols.String())
}

func (r *tableReader) tableLabel() string {
	return rowStart + fmt.Sprintf(tableLabel, len(r.source.columns), r.source.label)
}

func (r *tableReader) tableHeader() string {
	names := make([]string, len(r.source.columns))
	for i, c := range r.source.columns {
		names[i] = c.Name
	}
	return rowStart + strings.Join(names, columnSeparator) + rowEnd
}

func (r *tableReader) rowLine(index int) (string, error) {
	row := r.source.Rows[index]
	if len(row.Values) != len(r.source.columns) {
		return "", fmt.Errorf("%w: row %d has %d values, table has %d columns",
			ErrRowValues, index, len(row.Values), len(r.source.columns))
	}
	return rowStart + strings.Join(row.Values, columnSeparator) + rowEnd, nil
}

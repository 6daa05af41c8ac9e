package tex2pdf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Body wrapper markers and per-line indentation of the generated source.
const (
	documentBegin = `\begin{document}`
	documentEnd   = `\end{document}`
	lineStart     = "    "
)

// Document is an ordered sequence of elements plus a preamble. Elements
// are shared references: the same element may appear at several
// positions and renders independently at each.
type Document struct {
	preamble Preamble
	elements []Element
}

// NewDocument creates a document with the stock preamble.
func NewDocument(elements ...Element) *Document {
	return NewDocumentWithPreamble(StaticPreamble(DefaultPreamble), elements...)
}

// NewDocumentWithPreamble creates a document with a caller-supplied
// preamble strategy. A nil preamble falls back to the default.
func NewDocumentWithPreamble(preamble Preamble, elements ...Element) *Document {
	if preamble == nil {
		preamble = StaticPreamble(DefaultPreamble)
	}
	return &Document{preamble: preamble, elements: elements}
}

// Render writes the LaTeX source to w: preamble, \begin{document}, each
// element's lines indented by four spaces with a blank separator line
// after every element, then \end{document}. Output is a pure function
// of the preamble and element list.
func (d *Document) Render(w io.Writer) error {
	pre, err := d.preamble.Build()
	if err != nil {
		return fmt.Errorf("building preamble: %w", err)
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(pre)
	bw.WriteByte('\n')
	bw.WriteString(documentBegin)
	bw.WriteByte('\n')

	for i, element := range d.elements {
		reader := element.Reader()
		for !reader.AtEnd() {
			line, err := reader.ReadLine()
			if err != nil {
				return fmt.Errorf("rendering element %d: %w", i, err)
			}
			bw.WriteString(lineStart)
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}

	bw.WriteString(documentEnd)
	bw.WriteByte('\n')
	return bw.Flush()
}

// String renders the document to a string.
func (d *Document) String() (string, error) {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

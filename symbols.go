package tex2pdf

import "strings"

// LaTeX snippets useful when authoring element content.
const (
	// LineBreak forces a line break inside a paragraph or table cell.
	LineBreak = `\\`

	// TotalPages expands to the document's last page number. Requires the
	// lastpage package (included in DefaultPreamble) and a second compiler
	// pass to resolve.
	TotalPages = `\pageref{LastPage}`
)

// Escape returns s with LaTeX special characters escaped so the text
// renders literally. Content that is already LaTeX markup must not be
// passed through Escape.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&', '%', '$', '#', '_', '{', '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '~':
			b.WriteString(`\textasciitilde{}`)
		case '^':
			b.WriteString(`\textasciicircum{}`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

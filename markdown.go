package tex2pdf

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown is a CommonMark element converted to LaTeX lines: headings
// become sectioning commands, emphasis and code spans become their
// LaTeX equivalents, lists become itemize/enumerate environments, and
// fenced code blocks with a language tag are highlighted with Chroma.
//
// Unsupported constructs (raw HTML) are dropped; images render as their
// alt text.
type Markdown struct {
	Source string

	// HighlightStyle names the Chroma style for fenced code blocks.
	// Empty means the CodeBlock default.
	HighlightStyle string
}

// NewMarkdown creates a markdown element.
func NewMarkdown(source string) *Markdown {
	return &Markdown{Source: source}
}

// Reader returns a cursor over the converted LaTeX lines. Conversion
// happens once at reader creation.
func (m *Markdown) Reader() LineReader {
	lines, err := markdownToLaTeX([]byte(m.Source), m.HighlightStyle)
	if err != nil {
		return &errReader{err: err}
	}
	return &linesReader{lines: lines}
}

// headingCommands maps heading levels 1..5 to sectioning commands.
// Deeper levels clamp to \subparagraph.
var headingCommands = []string{
	`\section`, `\subsection`, `\subsubsection`, `\paragraph`, `\subparagraph`,
}

func markdownToLaTeX(source []byte, highlightStyle string) ([]string, error) {
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	c := &markdownConverter{source: source, style: highlightStyle}
	var out []string
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		c.lines = c.lines[:0]
		if err := c.block(n); err != nil {
			return nil, err
		}
		if len(c.lines) == 0 {
			continue
		}
		// Blank line between blocks so LaTeX starts a new paragraph.
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, c.lines...)
	}
	return out, nil
}

type markdownConverter struct {
	source []byte
	style  string
	lines  []string
}

func (c *markdownConverter) add(lines ...string) {
	c.lines = append(c.lines, lines...)
}

func (c *markdownConverter) block(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Heading:
		level := n.Level
		if level > len(headingCommands) {
			level = len(headingCommands)
		}
		c.add(headingCommands[level-1] + "{" + c.inline(n) + "}")

	case *ast.Paragraph, *ast.TextBlock:
		if line := c.inline(n); line != "" {
			c.add(line)
		}

	case *ast.Blockquote:
		c.add(`\begin{quote}`)
		for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
			if err := c.block(ch); err != nil {
				return err
			}
		}
		c.add(`\end{quote}`)

	case *ast.List:
		return c.list(n)

	case *ast.FencedCodeBlock:
		language := string(n.Language(c.source))
		code := c.rawLines(n)
		if language == "" {
			c.add(`\begin{verbatim}`)
			c.add(strings.Split(strings.TrimRight(code, "\n"), "\n")...)
			c.add(`\end{verbatim}`)
			return nil
		}
		highlighted, err := highlightCode(language, c.style, code)
		if err != nil {
			return err
		}
		c.add(highlighted...)

	case *ast.CodeBlock:
		c.add(`\begin{verbatim}`)
		c.add(strings.Split(strings.TrimRight(c.rawLines(n), "\n"), "\n")...)
		c.add(`\end{verbatim}`)

	case *ast.ThematicBreak:
		c.add(`\noindent\hrulefill`)

	case *ast.HTMLBlock:
		// raw HTML has no LaTeX rendering

	default:
		for ch := node.FirstChild(); ch != nil; ch = ch.NextSibling() {
			if err := c.block(ch); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *markdownConverter) list(n *ast.List) error {
	environment := "itemize"
	if n.IsOrdered() {
		environment = "enumerate"
	}
	c.add(`\begin{` + environment + `}`)
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		first := item.FirstChild()
		if first == nil {
			c.add(`\item`)
			continue
		}
		c.add(`\item ` + c.inline(first))
		for ch := first.NextSibling(); ch != nil; ch = ch.NextSibling() {
			if err := c.block(ch); err != nil {
				return err
			}
		}
	}
	c.add(`\end{` + environment + `}`)
	return nil
}

// inline renders the children of a block or inline container as one
// LaTeX fragment.
func (c *markdownConverter) inline(parent ast.Node) string {
	var b strings.Builder
	for ch := parent.FirstChild(); ch != nil; ch = ch.NextSibling() {
		switch n := ch.(type) {
		case *ast.Text:
			b.WriteString(Escape(string(n.Segment.Value(c.source))))
			if n.HardLineBreak() {
				b.WriteString(LineBreak + " ")
			} else if n.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.WriteString(Escape(string(n.Value)))
		case *ast.Emphasis:
			command := `\emph`
			if n.Level == 2 {
				command = `\textbf`
			}
			b.WriteString(command + "{" + c.inline(n) + "}")
		case *ast.CodeSpan:
			b.WriteString(`\texttt{` + Escape(c.rawText(n)) + `}`)
		case *ast.Link:
			b.WriteString(c.inline(n))
			b.WriteString(` (\texttt{` + Escape(string(n.Destination)) + `})`)
		case *ast.AutoLink:
			b.WriteString(`\texttt{` + Escape(string(n.URL(c.source))) + `}`)
		case *ast.Image:
			// no graphics support; keep the alt text
			b.WriteString(c.inline(n))
		case *ast.RawHTML:
			// dropped
		default:
			b.WriteString(c.inline(ch))
		}
	}
	return b.String()
}

// rawText concatenates the literal text segments under an inline node.
func (c *markdownConverter) rawText(n ast.Node) string {
	var b strings.Builder
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if t, ok := ch.(*ast.Text); ok {
			b.Write(t.Segment.Value(c.source))
		}
	}
	return b.String()
}

// rawLines concatenates the source lines of a code block node.
func (c *markdownConverter) rawLines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		b.Write(segment.Value(c.source))
	}
	return b.String()
}

package tex2pdf

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// defaultHighlightStyle is the Chroma style used when none is named.
const defaultHighlightStyle = "github"

// Fancyvrb environment with \, {, } as command characters, so color
// commands work inside otherwise-verbatim text. Requires the fancyvrb
// and xcolor packages (included by PreambleConfig).
const (
	verbatimBegin = `\begin{Verbatim}[commandchars=\\\{\}]`
	verbatimEnd   = `\end{Verbatim}`
)

// CodeBlock is a syntax-highlighted source listing. The language names
// a Chroma lexer ("go", "python", ...); unknown languages fall back to
// plain text. Style names a Chroma style; empty means github.
type CodeBlock struct {
	Language string
	Source   string
	Style    string
}

// NewCodeBlock creates a code block element.
func NewCodeBlock(language, source string) *CodeBlock {
	return &CodeBlock{Language: language, Source: source}
}

// Reader returns a cursor over the highlighted listing. Tokenization
// happens once at reader creation; a tokenizer failure surfaces on the
// first read.
func (c *CodeBlock) Reader() LineReader {
	lines, err := highlightCode(c.Language, c.Style, c.Source)
	if err != nil {
		return &errReader{err: err}
	}
	return &linesReader{lines: lines}
}

// highlightCode tokenizes source and renders a Verbatim block where
// each token carries its style's color commands.
func highlightCode(language, styleName, source string) ([]string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	if styleName == "" {
		styleName = defaultHighlightStyle
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("tokenizing %q source: %w", language, err)
	}

	var b strings.Builder
	for tok := it(); tok != chroma.EOF; tok = it() {
		entry := style.Get(tok.Type)
		// A token may span lines; each line's fragment is styled on its own
		// so color commands never cross line boundaries.
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if part == "" {
				continue
			}
			b.WriteString(styledFragment(entry, part))
		}
	}

	lines := []string{verbatimBegin}
	if content := strings.TrimRight(b.String(), "\n"); content != "" {
		lines = append(lines, strings.Split(content, "\n")...)
	}
	return append(lines, verbatimEnd), nil
}

// styledFragment wraps escaped text in the commands its style entry
// calls for.
func styledFragment(entry chroma.StyleEntry, text string) string {
	s := escapeVerbatim(text)
	if entry.Bold == chroma.Yes {
		s = `\textbf{` + s + `}`
	}
	if entry.Italic == chroma.Yes {
		s = `\textit{` + s + `}`
	}
	if entry.Colour.IsSet() {
		s = fmt.Sprintf(`\textcolor[HTML]{%s}{%s}`, strings.ToUpper(entry.Colour.String()[1:]), s)
	}
	return s
}

// escapeVerbatim escapes the three command characters active inside the
// Verbatim environment.
func escapeVerbatim(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '{':
			b.WriteString(`\{`)
		case '}':
			b.WriteString(`\}`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

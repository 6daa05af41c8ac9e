package tex2pdf

import (
	"reflect"
	"strings"
	"testing"
)

func markdownLines(t *testing.T, source string) []string {
	t.Helper()
	return drainReader(t, NewMarkdown(source).Reader())
}

func TestMarkdownHeadingsAndParagraphs(t *testing.T) {
	lines := markdownLines(t, "# Title\n\nHello *world*, **loudly**.\n\n## Part\n")

	want := []string{
		`\section{Title}`,
		``,
		`Hello \emph{world}, \textbf{loudly}.`,
		``,
		`\subsection{Part}`,
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestMarkdownDeepHeadingClamps(t *testing.T) {
	lines := markdownLines(t, "###### Deep\n")
	if len(lines) != 1 || lines[0] != `\subparagraph{Deep}` {
		t.Errorf("lines = %q, want a clamped \\subparagraph", lines)
	}
}

func TestMarkdownEscapesText(t *testing.T) {
	lines := markdownLines(t, "Profit & loss: 100% of $x_1\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0] != `Profit \& loss: 100\% of \$x\_1` {
		t.Errorf("line = %q", lines[0])
	}
}

func TestMarkdownCodeSpan(t *testing.T) {
	lines := markdownLines(t, "run `go_test` now\n")
	if len(lines) != 1 || lines[0] != `run \texttt{go\_test} now` {
		t.Errorf("lines = %q", lines)
	}
}

func TestMarkdownLists(t *testing.T) {
	lines := markdownLines(t, "- one\n- two\n\n1. first\n2. second\n")

	want := []string{
		`\begin{itemize}`,
		`\item one`,
		`\item two`,
		`\end{itemize}`,
		``,
		`\begin{enumerate}`,
		`\item first`,
		`\item second`,
		`\end{enumerate}`,
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestMarkdownBlockquote(t *testing.T) {
	lines := markdownLines(t, "> quoted text\n")

	want := []string{`\begin{quote}`, `quoted text`, `\end{quote}`}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestMarkdownLink(t *testing.T) {
	lines := markdownLines(t, "see [the docs](https://example.com/a_b)\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	want := `see the docs (\texttt{https://example.com/a\_b})`
	if lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
}

func TestMarkdownPlainFencedCode(t *testing.T) {
	lines := markdownLines(t, "```\nplain & raw\n```\n")

	want := []string{`\begin{verbatim}`, `plain & raw`, `\end{verbatim}`}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestMarkdownHighlightedFencedCode(t *testing.T) {
	lines := markdownLines(t, "```go\nreturn nil\n```\n")

	if lines[0] != verbatimBegin {
		t.Errorf("first line = %q, want highlighted verbatim begin", lines[0])
	}
	if lines[len(lines)-1] != verbatimEnd {
		t.Errorf("last line = %q, want verbatim end", lines[len(lines)-1])
	}
	body := strings.Join(lines[1:len(lines)-1], "\n")
	if !strings.Contains(body, "return") || !strings.Contains(body, "nil") {
		t.Errorf("highlighted body %q lost the code text", body)
	}
}

func TestMarkdownSoftBreakJoinsLine(t *testing.T) {
	lines := markdownLines(t, "first\nsecond\n")
	if len(lines) != 1 || lines[0] != "first second" {
		t.Errorf("lines = %q, want a single joined paragraph line", lines)
	}
}

func TestMarkdownReaderIsSnapshot(t *testing.T) {
	m := NewMarkdown("one paragraph\n")
	r := m.Reader()
	m.Source = "changed\n"

	lines := drainReader(t, r)
	if len(lines) != 1 || lines[0] != "one paragraph" {
		t.Errorf("reader observed a source mutation after creation: %q", lines)
	}
}

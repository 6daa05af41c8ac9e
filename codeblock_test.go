package tex2pdf

import (
	"strings"
	"testing"
)

func TestCodeBlockReader(t *testing.T) {
	code := NewCodeBlock("go", "func main() {\n\tprintln(1)\n}\n")
	lines := drainReader(t, code.Reader())

	if lines[0] != verbatimBegin {
		t.Errorf("first line = %q, want %q", lines[0], verbatimBegin)
	}
	if lines[len(lines)-1] != verbatimEnd {
		t.Errorf("last line = %q, want %q", lines[len(lines)-1], verbatimEnd)
	}
	// 3 source lines between the environment markers
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), strings.Join(lines, "\n"))
	}

	body := strings.Join(lines[1:4], "\n")
	if !strings.Contains(body, "func") || !strings.Contains(body, "println") {
		t.Errorf("highlighted body lost the code text:\n%s", body)
	}
	if !strings.Contains(body, `\textcolor[HTML]{`) && !strings.Contains(body, `\textbf{`) {
		t.Errorf("no styling commands emitted for Go keywords:\n%s", body)
	}
}

func TestCodeBlockEscapesCommandChars(t *testing.T) {
	lines := drainReader(t, NewCodeBlock("", `a{b}c\d`).Reader())

	body := strings.Join(lines[1:len(lines)-1], "\n")
	for _, want := range []string{`\{`, `\}`, `\textbackslash{}`} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q missing escape %q", body, want)
		}
	}
	if strings.Contains(body, `a{b`) {
		t.Errorf("body %q contains an unescaped brace", body)
	}
}

func TestCodeBlockUnknownLanguageFallsBack(t *testing.T) {
	lines := drainReader(t, NewCodeBlock("no-such-language", "plain text\n").Reader())

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "plain text") {
		t.Errorf("fallback lexer lost the text: %q", lines[1])
	}
}

func TestCodeBlockEmptySource(t *testing.T) {
	lines := drainReader(t, NewCodeBlock("go", "").Reader())

	want := []string{verbatimBegin, verbatimEnd}
	if len(lines) != 2 || lines[0] != want[0] || lines[1] != want[1] {
		t.Errorf("lines = %q, want just the environment markers", lines)
	}
}

func TestHighlightCodeMultilineToken(t *testing.T) {
	// A Python triple-quoted string is one token spanning lines; color
	// commands must not cross line boundaries.
	lines, err := highlightCode("python", "", "x = \"\"\"a\nb\"\"\"\n")
	if err != nil {
		t.Fatalf("highlightCode(): %v", err)
	}
	for i, line := range lines {
		if countUnbalancedBraces(line) != 0 {
			t.Errorf("line %d has unbalanced braces: %q", i, line)
		}
	}
}

// countUnbalancedBraces returns open minus close count of unescaped braces.
func countUnbalancedBraces(s string) int {
	depth := 0
	escaped := false
	for _, r := range s {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return depth
}

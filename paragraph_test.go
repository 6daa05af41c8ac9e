package tex2pdf

import "testing"

func TestParagraphReader(t *testing.T) {
	tests := []struct {
		name      string
		sentences []string
	}{
		{name: "empty paragraph", sentences: nil},
		{name: "single sentence", sentences: []string{"Hello world."}},
		{name: "several sentences", sentences: []string{"One.", "Two.", "Three."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParagraph(tt.sentences...)
			r := p.Reader()

			for i, want := range tt.sentences {
				if r.AtEnd() {
					t.Fatalf("AtEnd() = true before line %d", i)
				}
				got, err := r.ReadLine()
				if err != nil {
					t.Fatalf("ReadLine() line %d: unexpected error %v", i, err)
				}
				if got != want {
					t.Errorf("ReadLine() line %d = %q, want %q", i, got, want)
				}
			}

			if !r.AtEnd() {
				t.Error("AtEnd() = false after all lines read")
			}
		})
	}
}

func TestParagraphReaderExhausted(t *testing.T) {
	r := NewParagraph("only line").Reader()

	if _, err := r.ReadLine(); err != nil {
		t.Fatalf("ReadLine() unexpected error: %v", err)
	}

	// Reads past the end are idempotent: empty line, no error, AtEnd stays true.
	for i := 0; i < 3; i++ {
		if !r.AtEnd() {
			t.Fatalf("AtEnd() = false on extra read %d", i)
		}
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() past end: unexpected error %v", err)
		}
		if got != "" {
			t.Errorf("ReadLine() past end = %q, want empty", got)
		}
	}
}

func TestParagraphReaderSnapshot(t *testing.T) {
	p := NewParagraph("first")
	r := p.Reader()

	p.Sentences = append(p.Sentences, "appended after reader creation")

	if _, err := r.ReadLine(); err != nil {
		t.Fatalf("ReadLine(): %v", err)
	}
	if !r.AtEnd() {
		t.Error("reader observed a sentence appended after its creation")
	}

	// A fresh reader sees the appended sentence.
	r2 := p.Reader()
	lines := drainReader(t, r2)
	if len(lines) != 2 {
		t.Errorf("fresh reader yielded %d lines, want 2", len(lines))
	}
}

// drainReader pulls every line from a reader, failing the test on error.
func drainReader(t *testing.T, r LineReader) []string {
	t.Helper()
	var lines []string
	for !r.AtEnd() {
		line, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine(): %v", err)
		}
		lines = append(lines, line)
	}
	return lines
}

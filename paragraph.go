package tex2pdf

// Paragraph is an ordered sequence of sentence lines emitted verbatim.
// Sentences may be appended after construction, but not concurrently
// with a render of the same paragraph.
type Paragraph struct {
	Sentences []string
}

// NewParagraph creates a paragraph from the given sentence lines.
func NewParagraph(sentences ...string) *Paragraph {
	return &Paragraph{Sentences: sentences}
}

// Reader returns a cursor over the paragraph's sentences. The sentence
// count is frozen at reader creation.
func (p *Paragraph) Reader() LineReader {
	return &paragraphReader{source: p, count: len(p.Sentences)}
}

type paragraphReader struct {
	source   *Paragraph
	count    int
	position int
}

func (r *paragraphReader) ReadLine() (string, error) {
	if r.AtEnd() {
		return "", nil
	}
	line := r.source.Sentences[r.position]
	r.position++
	return line, nil
}

func (r *paragraphReader) AtEnd() bool {
	return r.position >= r.count
}

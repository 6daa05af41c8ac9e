package tex2pdf

// linesReader cursors over a precomputed line slice. Elements that
// derive their lines at reader creation (Markdown, CodeBlock) share it.
type linesReader struct {
	lines    []string
	position int
}

func (r *linesReader) ReadLine() (string, error) {
	if r.AtEnd() {
		return "", nil
	}
	line := r.lines[r.position]
	r.position++
	return line, nil
}

func (r *linesReader) AtEnd() bool {
	return r.position >= len(r.lines)
}

// errReader surfaces a line-derivation failure on the first read, then
// reports exhaustion so pull loops terminate.
type errReader struct {
	err  error
	done bool
}

func (r *errReader) ReadLine() (string, error) {
	if r.done {
		return "", nil
	}
	r.done = true
	return "", r.err
}

func (r *errReader) AtEnd() bool {
	return r.done
}

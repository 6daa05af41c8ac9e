package tex2pdf

// Element is one logical unit of document content. Implementations are
// immutable during a render and may be shared between documents; each
// render obtains its own readers.
type Element interface {
	// Reader returns a fresh single-pass cursor over the element's LaTeX
	// lines. Re-iterating requires a new reader.
	Reader() LineReader
}

// LineReader streams the LaTeX lines of one element. It is pull-based
// and single-goroutine: call AtEnd, then ReadLine, until AtEnd reports
// true. ReadLine past the end returns an empty line rather than failing.
//
// The non-nil error case is reserved for data integrity faults found
// mid-stream (see ErrRowValues); ordinary exhaustion is not an error.
type LineReader interface {
	ReadLine() (string, error)
	AtEnd() bool
}

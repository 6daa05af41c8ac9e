// Package tex2pdf builds LaTeX documents from an in-memory element model
// and renders them to PDF by driving a LaTeX compiler as a subprocess.
//
// # Quick Start
//
// Build a document from elements and render it:
//
//	doc := tex2pdf.NewDocument(
//	    tex2pdf.NewParagraph("Hello world.", "Total pages: "+tex2pdf.TotalPages),
//	    table,
//	)
//
//	r := tex2pdf.NewPDFRenderer()
//	if err := r.Render(ctx, doc, "report.pdf"); err != nil {
//	    log.Fatal(err)
//	}
//
// Use TeXRenderer instead to write the generated .tex source without
// invoking a compiler.
//
// # Elements
//
// A document is an ordered list of elements, each streaming its LaTeX
// lines through a single-pass LineReader:
//
//   - Paragraph: a plain sequence of sentence lines
//   - LongTable: a paginated xltabular table with label, header, and rows
//   - Markdown: CommonMark text converted to LaTeX via Goldmark
//   - CodeBlock: source code highlighted with Chroma
//
// The same element value may appear at several positions in a document;
// each render obtains fresh readers, so repeats are independent.
//
// # Rendering Pipeline
//
// PDFRenderer stages the document in a private temporary directory, runs
// an ordered list of compiler commands against it (by default two
// pdflatex passes: a -draftmode pass so cross-references such as
// \pageref{LastPage} stabilize, then the real pass), and atomically
// replaces the output path with the produced PDF. Any existing file at
// the output path is removed first. The temporary directory is removed
// on every exit path unless WithKeepScratch is set.
//
// Each stage runs with a bounded timeout; on timeout the whole process
// group is killed and the render fails with ErrCommandTimeout. A
// non-zero exit fails the render with ErrCommandFailed. The failing
// stage is named in the returned error.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r := tex2pdf.NewPDFRenderer(
//	    tex2pdf.WithCommands(tex2pdf.XeLaTeX()),
//	    tex2pdf.WithStageTimeout(time.Minute),
//	)
//
// The document preamble is pluggable: DefaultPreamble matches the
// engine's stock article setup, and PreambleConfig builds one from font,
// margin, and column-type settings.
//
// # Compiler Requirements
//
// PDF rendering requires a LaTeX toolchain on PATH (TeX Live or MiKTeX
// providing pdflatex/xelatex/lualatex, or Tectonic). The default
// preamble relies on the xltabular and lastpage packages.
package tex2pdf

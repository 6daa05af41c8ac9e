package tex2pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BorisFor317/go-tex2pdf/internal/fileutil"
)

// Renderer persists a document at an output path.
type Renderer interface {
	Render(ctx context.Context, doc *Document, outputPath string) error
}

// Compile-time interface checks
var (
	_ Renderer = (*TeXRenderer)(nil)
	_ Renderer = (*PDFRenderer)(nil)
)

// Names of the staged files inside the scratch directory. The compiler
// derives its artifact name from the input name, so these must agree.
const (
	scratchTeXName = "main.tex"
	scratchPDFName = "main.pdf"
)

// defaultStageTimeout bounds one compiler invocation.
const defaultStageTimeout = 30 * time.Second

// TeXRenderer writes the generated LaTeX source directly to the output
// path, truncating any existing file.
type TeXRenderer struct{}

func (TeXRenderer) Render(_ context.Context, doc *Document, outputPath string) error {
	text, err := doc.String()
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}

// PDFRenderer compiles a document to PDF by staging it in a temporary
// directory and running an ordered list of compiler commands against it.
// The zero value is not usable; construct with NewPDFRenderer.
//
// A PDFRenderer holds no per-render state, so a single instance may be
// used from multiple goroutines; each call gets its own scratch
// directory.
type PDFRenderer struct {
	commands    []RenderCommand
	runner      CommandRunner
	timeout     time.Duration
	keepScratch bool
	diagnostics io.Writer
}

// PDFOption configures a PDFRenderer.
type PDFOption func(*PDFRenderer)

// WithCommands replaces the compiler command list. Stages run in order
// and the first failure aborts the render.
func WithCommands(commands []RenderCommand) PDFOption {
	return func(r *PDFRenderer) {
		r.commands = commands
	}
}

// WithRunner replaces the command runner (used by tests).
func WithRunner(runner CommandRunner) PDFOption {
	return func(r *PDFRenderer) {
		r.runner = runner
	}
}

// WithStageTimeout bounds each compiler invocation.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithStageTimeout(d time.Duration) PDFOption {
	if d <= 0 {
		panic("tex2pdf: WithStageTimeout duration must be positive")
	}
	return func(r *PDFRenderer) {
		r.timeout = d
	}
}

// WithKeepScratch preserves the scratch directory after the render so
// compiler logs can be inspected.
func WithKeepScratch() PDFOption {
	return func(r *PDFRenderer) {
		r.keepScratch = true
	}
}

// WithDiagnostics forwards the compilers' merged output to w. By
// default the output is discarded.
func WithDiagnostics(w io.Writer) PDFOption {
	return func(r *PDFRenderer) {
		r.diagnostics = w
	}
}

// NewPDFRenderer creates a renderer running two pdflatex passes with a
// 30 second per-stage timeout. Use options to customize behavior.
func NewPDFRenderer(opts ...PDFOption) *PDFRenderer {
	r := &PDFRenderer{
		commands: PDFLaTeX(),
		runner:   &ExecRunner{},
		timeout:  defaultStageTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render compiles doc and publishes the PDF at outputPath. Publication
// replaces: an existing file at outputPath is removed first, and on any
// failure the path is left untouched. The error distinguishes data
// faults (ErrRowValues), stage failures (ErrCommandFailed,
// ErrCommandTimeout, with the failing stage named), and publish
// failures after a successful compile (ErrPublish).
func (r *PDFRenderer) Render(ctx context.Context, doc *Document, outputPath string) error {
	if len(r.commands) == 0 {
		return ErrNoCommands
	}

	scratch, err := os.MkdirTemp("", "tex2pdf-*")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	defer func() {
		if r.keepScratch {
			r.logf("scratch directory kept at %s\n", scratch)
			return
		}
		_ = os.RemoveAll(scratch)
	}()

	texPath := filepath.Join(scratch, scratchTeXName)
	if err := (TeXRenderer{}).Render(ctx, doc, texPath); err != nil {
		return err
	}

	for i, cmd := range r.commands {
		if err := r.runStage(ctx, cmd, scratch, texPath); err != nil {
			return fmt.Errorf("stage %d/%d (%s): %w", i+1, len(r.commands), cmd.Program, err)
		}
	}

	artifact := filepath.Join(scratch, scratchPDFName)
	if !fileutil.FileExists(artifact) {
		return fmt.Errorf("%w: compiler produced no %s", ErrPublish, scratchPDFName)
	}
	if err := fileutil.RemoveIfExists(outputPath); err != nil {
		return err
	}
	if err := os.Rename(artifact, outputPath); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}
	return nil
}

// runStage executes one compiler invocation with the per-stage timeout.
func (r *PDFRenderer) runStage(ctx context.Context, cmd RenderCommand, scratch, texPath string) error {
	stageCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	output, err := r.runner.Run(stageCtx, cmd.Program, cmd.argv(scratch, texPath)...)
	if output != "" {
		r.logf("%s", output)
	}
	return err
}

func (r *PDFRenderer) logf(format string, args ...any) {
	if r.diagnostics != nil {
		fmt.Fprintf(r.diagnostics, format, args...)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"

	tex2pdf "github.com/BorisFor317/go-tex2pdf"
	"github.com/BorisFor317/go-tex2pdf/internal/fileutil"
	"github.com/BorisFor317/go-tex2pdf/internal/manifest"
)

// Sentinel errors for CLI usage problems.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrNoInputs       = errors.New("no input manifests given")
	ErrOutputWithMany = errors.New("--output requires exactly one input")
)

// maxWorkers caps parallel compiler runs; each LaTeX pass is already
// CPU-bound and spawns its own subprocesses.
const maxWorkers = 8

// run renders every input manifest, bounded-parallel across inputs.
func run(ctx context.Context, flags *buildFlags, inputs []string) error {
	if flags.version {
		fmt.Println("tex2pdf", Version)
		return nil
	}
	if len(inputs) == 0 {
		return ErrNoInputs
	}
	if flags.output != "" && len(inputs) > 1 {
		return ErrOutputWithMany
	}

	renderer, err := newRenderer(flags)
	if err != nil {
		return err
	}

	workers := resolveWorkers(flags.workers, len(inputs))
	sem := make(chan struct{}, workers)
	results := make([]error, len(inputs))
	var wg sync.WaitGroup

	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = renderOne(ctx, renderer, flags, input)
		}(i, input)
	}
	wg.Wait()

	return errors.Join(results...)
}

// newRenderer builds the renderer selected by the flags and verifies
// the compiler is reachable before any work is staged.
func newRenderer(flags *buildFlags) (tex2pdf.Renderer, error) {
	if flags.texOnly {
		return tex2pdf.TeXRenderer{}, nil
	}

	commands, err := tex2pdf.EngineCommands(flags.engine)
	if err != nil {
		return nil, err
	}
	if _, err := exec.LookPath(commands[0].Program); err != nil {
		return nil, fmt.Errorf("engine %s: %w", flags.engine, err)
	}

	opts := []tex2pdf.PDFOption{
		tex2pdf.WithCommands(commands),
		tex2pdf.WithStageTimeout(flags.timeout),
	}
	if flags.keepScratch {
		opts = append(opts, tex2pdf.WithKeepScratch())
	}
	if flags.verbose {
		opts = append(opts, tex2pdf.WithDiagnostics(os.Stderr))
	}
	return tex2pdf.NewPDFRenderer(opts...), nil
}

// renderOne loads one manifest and renders it to its output path.
func renderOne(ctx context.Context, renderer tex2pdf.Renderer, flags *buildFlags, input string) error {
	file, err := manifest.Load(input)
	if err != nil {
		return err
	}
	doc, err := file.Document()
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	output := outputPath(flags, input)
	if !flags.quiet {
		fmt.Fprintf(os.Stderr, "%s -> %s\n", input, output)
	}
	if err := renderer.Render(ctx, doc, output); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	return nil
}

// outputPath derives where to publish the artifact for one input.
func outputPath(flags *buildFlags, input string) string {
	if flags.output != "" {
		return flags.output
	}
	ext := ".pdf"
	if flags.texOnly {
		ext = ".tex"
	}
	return fileutil.ReplaceExt(input, ext)
}

// resolveWorkers clamps the worker count to [1, maxWorkers] and never
// exceeds the number of inputs.
func resolveWorkers(requested, inputs int) int {
	workers := requested
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if workers > inputs {
		workers = inputs
	}
	return workers
}

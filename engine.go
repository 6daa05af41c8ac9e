package tex2pdf

import "fmt"

// defaultOutputDirFlag is the flag syntax TeX Live compilers use to
// redirect their outputs into the scratch directory.
const defaultOutputDirFlag = "-output-directory=%s"

// RenderCommand describes one external compiler invocation. The
// renderer appends the output-directory flag and the staged input file
// to Args when building the final argv.
type RenderCommand struct {
	Program string
	Args    []string

	// OutputDirFlag is a printf-style template for the flag pointing the
	// compiler at the scratch directory. Empty means the TeX Live syntax
	// (-output-directory=DIR).
	OutputDirFlag string
}

// argv assembles the full argument list for one invocation.
func (c RenderCommand) argv(scratchDir, inputPath string) []string {
	flag := c.OutputDirFlag
	if flag == "" {
		flag = defaultOutputDirFlag
	}
	args := make([]string, 0, len(c.Args)+2)
	args = append(args, c.Args...)
	args = append(args, fmt.Sprintf(flag, scratchDir), inputPath)
	return args
}

// twoPass builds the conventional draft-then-final command pair: the
// first pass runs in draft mode so cross-reference targets such as the
// total page count land in the .aux file, the second produces the PDF.
func twoPass(program string) []RenderCommand {
	return []RenderCommand{
		{Program: program, Args: []string{"-halt-on-error", "-draftmode"}},
		{Program: program, Args: []string{"-halt-on-error"}},
	}
}

// PDFLaTeX returns the two-pass pdflatex command list.
func PDFLaTeX() []RenderCommand {
	return twoPass("pdflatex")
}

// XeLaTeX returns the two-pass xelatex command list. xelatex has no
// true draft mode, so the first pass only suppresses PDF output via
// -no-pdf.
func XeLaTeX() []RenderCommand {
	return []RenderCommand{
		{Program: "xelatex", Args: []string{"-halt-on-error", "-no-pdf"}},
		{Program: "xelatex", Args: []string{"-halt-on-error"}},
	}
}

// LuaLaTeX returns the two-pass lualatex command list.
func LuaLaTeX() []RenderCommand {
	return twoPass("lualatex")
}

// Tectonic returns the single-pass tectonic command list. Tectonic
// reruns the compiler internally until references stabilize, so no
// draft pass is needed.
func Tectonic() []RenderCommand {
	return []RenderCommand{
		{Program: "tectonic", Args: []string{"--chatter", "minimal"}, OutputDirFlag: "--outdir=%s"},
	}
}

// EngineCommands resolves an engine name to its command list.
func EngineCommands(name string) ([]RenderCommand, error) {
	switch name {
	case "pdflatex":
		return PDFLaTeX(), nil
	case "xelatex":
		return XeLaTeX(), nil
	case "lualatex":
		return LuaLaTeX(), nil
	case "tectonic":
		return Tectonic(), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: pdflatex, xelatex, lualatex, tectonic)", ErrUnknownEngine, name)
	}
}

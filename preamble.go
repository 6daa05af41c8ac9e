package tex2pdf

import (
	"fmt"
	"strconv"
	"strings"
)

// Preamble produces the document header emitted before \begin{document}.
// Implementations must be deterministic: the same value always builds
// the same text.
type Preamble interface {
	Build() (string, error)
}

// StaticPreamble is a fixed preamble string used as-is.
type StaticPreamble string

func (p StaticPreamble) Build() (string, error) {
	return string(p), nil
}

// DefaultPreamble is the stock preamble: landscape A4 article with the
// xltabular table setup and the T/S/I/L/C column types.
const DefaultPreamble = `\documentclass[a4paper, 10pt]{article}

\usepackage[utf8]{inputenc}
\usepackage[T1,T2A]{fontenc}
\usepackage[russian, english]{babel}
\usepackage[landscape]{geometry}
\geometry{
    a4paper,
    total={210mm,297mm},
    left=20mm,
    right=20mm,
    top=20mm,
    bottom=20mm
}
\usepackage{indentfirst}
\setlength{\parindent}{0pt}
\usepackage{lastpage}
\usepackage{array}
\usepackage{xltabular}
\setlength{\tabcolsep}{2pt}
\newcolumntype{T}{>{\centering\arraybackslash}p{16.5mm}}
\newcolumntype{S}{>{\centering\arraybackslash}p{5mm}}
\newcolumntype{I}{>{\centering\arraybackslash}p{7.5mm}}
\newcolumntype{L}{>{\centering\arraybackslash}p{11mm}}
\newcolumntype{C}{>{\centering\arraybackslash}X}`

// Alignment constants for column type definitions.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// ColumnTypeDef declares one \newcolumntype rule. A fixed-width column
// uses WidthMM; an auto-fit column stretches to fill the remaining table
// width (xltabular's X column).
type ColumnTypeDef struct {
	Name    byte    // single ASCII letter referenced by LongTable columns
	Align   string  // "left", "center", "right"
	WidthMM float64 // fixed width in millimeters; ignored when AutoFit
	AutoFit bool
}

// Font size bounds. LaTeX's article class accepts exactly these base
// point sizes.
var validFontSizes = []int{10, 11, 12}

// PreambleConfig builds a preamble from layout settings. The zero value
// is not usable; fill the fields and let Build validate them.
//
// Font family names are emitted as fontspec declarations, which require
// a Unicode engine (xelatex or lualatex).
type PreambleConfig struct {
	FontSizePt  int
	MarginMM    float64
	ColumnSepPt float64 // \tabcolsep, half the gap between table columns
	MainFont    string
	SansFont    string
	MonoFont    string
	Landscape   bool
	ColumnTypes []ColumnTypeDef
}

// Validate checks that the configuration can produce a compilable
// preamble.
func (c *PreambleConfig) Validate() error {
	validSize := false
	for _, s := range validFontSizes {
		if c.FontSizePt == s {
			validSize = true
			break
		}
	}
	if !validSize {
		return fmt.Errorf("%w: %dpt (must be 10, 11, or 12)", ErrInvalidFontSize, c.FontSizePt)
	}

	if c.MarginMM <= 0 {
		return fmt.Errorf("%w: %.1fmm (must be positive)", ErrInvalidMargin, c.MarginMM)
	}

	if c.ColumnSepPt < 0 {
		return fmt.Errorf("%w: %.1fpt (must not be negative)", ErrInvalidColumnSep, c.ColumnSepPt)
	}

	for _, ct := range c.ColumnTypes {
		if !isASCIILetter(ct.Name) {
			return fmt.Errorf("%w: %q (must be a single ASCII letter)", ErrInvalidColumnType, string(ct.Name))
		}
		switch ct.Align {
		case AlignLeft, AlignCenter, AlignRight:
		default:
			return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidAlignment, ct.Align)
		}
		if !ct.AutoFit && ct.WidthMM <= 0 {
			return fmt.Errorf("%w: column %q: %.1fmm (must be positive unless auto-fit)",
				ErrInvalidColumnWidth, string(ct.Name), ct.WidthMM)
		}
	}

	return nil
}

// Build validates the configuration and assembles the preamble text.
func (c *PreambleConfig) Build() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\\documentclass[a4paper, %dpt]{article}\n\n", c.FontSizePt)

	if c.MainFont != "" || c.SansFont != "" || c.MonoFont != "" {
		b.WriteString("\\usepackage{fontspec}\n")
		if c.MainFont != "" {
			fmt.Fprintf(&b, "\\setmainfont{%s}\n", c.MainFont)
		}
		if c.SansFont != "" {
			fmt.Fprintf(&b, "\\setsansfont{%s}\n", c.SansFont)
		}
		if c.MonoFont != "" {
			fmt.Fprintf(&b, "\\setmonofont{%s}\n", c.MonoFont)
		}
	} else {
		b.WriteString("\\usepackage[utf8]{inputenc}\n")
		b.WriteString("\\usepackage[T1]{fontenc}\n")
	}

	if c.Landscape {
		b.WriteString("\\usepackage[landscape]{geometry}\n")
	} else {
		b.WriteString("\\usepackage{geometry}\n")
	}
	margin := formatMM(c.MarginMM)
	fmt.Fprintf(&b, "\\geometry{\n    a4paper,\n    left=%s,\n    right=%s,\n    top=%s,\n    bottom=%s\n}\n",
		margin, margin, margin, margin)

	b.WriteString("\\usepackage{indentfirst}\n")
	b.WriteString("\\setlength{\\parindent}{0pt}\n")
	b.WriteString("\\usepackage{lastpage}\n")
	b.WriteString("\\usepackage{array}\n")
	b.WriteString("\\usepackage{xltabular}\n")
	b.WriteString("\\usepackage{fancyvrb}\n")
	b.WriteString("\\usepackage{xcolor}\n")
	fmt.Fprintf(&b, "\\setlength{\\tabcolsep}{%spt}\n",
		strconv.FormatFloat(c.ColumnSepPt, 'f', -1, 64))

	for _, ct := range c.ColumnTypes {
		b.WriteString(columnTypeLine(ct))
		b.WriteByte('\n')
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// columnTypeLine renders one \newcolumntype declaration.
func columnTypeLine(ct ColumnTypeDef) string {
	var align string
	switch ct.Align {
	case AlignLeft:
		align = `\raggedright`
	case AlignRight:
		align = `\raggedleft`
	default:
		align = `\centering`
	}

	base := "X"
	if !ct.AutoFit {
		base = fmt.Sprintf("p{%s}", formatMM(ct.WidthMM))
	}
	return fmt.Sprintf(`\newcolumntype{%s}{>{%s\arraybackslash}%s}`, string(ct.Name), align, base)
}

// formatMM renders a millimeter length without trailing zeros.
func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "mm"
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Package manifest loads YAML document manifests and turns them into
// tex2pdf documents. A manifest declares an optional preamble and an
// ordered list of elements, each tagged by its kind:
//
//	preamble:
//	  fontSize: 10
//	  marginMM: 20
//	  landscape: true
//	  columnTypes:
//	    - {name: T, align: center, widthMM: 16.5}
//	    - {name: C, align: center, autoFit: true}
//	elements:
//	  - paragraph:
//	      sentences: ["Hello world."]
//	  - table:
//	      label: "Table 1337"
//	      columns:
//	        - {name: Time, type: T}
//	        - {name: Machine, type: C}
//	      rows:
//	        - ["2022-03-03 10:23:30", "PPRU"]
package manifest

import (
	"errors"
	"fmt"
	"os"

	tex2pdf "github.com/BorisFor317/go-tex2pdf"
	"github.com/BorisFor317/go-tex2pdf/internal/yamlutil"
)

// Sentinel errors for manifest operations.
var (
	ErrManifestNotFound = errors.New("manifest file not found")
	ErrManifestParse    = errors.New("failed to parse manifest")
	ErrNoElements       = errors.New("manifest has no elements")
	ErrEmptyElement     = errors.New("element specifies no type")
	ErrAmbiguousElement = errors.New("element specifies more than one type")
	ErrColumnType       = errors.New("table column type must be a single character")
)

// File is the top-level manifest structure.
type File struct {
	Preamble *PreambleSpec `yaml:"preamble"`
	Elements []ElementSpec `yaml:"elements"`
}

// PreambleSpec selects a preamble strategy. A non-empty Static wins and
// is used verbatim; otherwise the remaining fields feed a
// tex2pdf.PreambleConfig. A nil PreambleSpec means the stock preamble.
type PreambleSpec struct {
	Static      string           `yaml:"static"`
	FontSizePt  int              `yaml:"fontSize"`
	MarginMM    float64          `yaml:"marginMM"`
	ColumnSepPt float64          `yaml:"columnSepPt"`
	MainFont    string           `yaml:"mainFont"`
	SansFont    string           `yaml:"sansFont"`
	MonoFont    string           `yaml:"monoFont"`
	Landscape   bool             `yaml:"landscape"`
	ColumnTypes []ColumnTypeSpec `yaml:"columnTypes"`
}

// ColumnTypeSpec declares one named column type.
type ColumnTypeSpec struct {
	Name    string  `yaml:"name"`
	Align   string  `yaml:"align"`
	WidthMM float64 `yaml:"widthMM"`
	AutoFit bool    `yaml:"autoFit"`
}

// ElementSpec holds exactly one element variant.
type ElementSpec struct {
	Paragraph *ParagraphSpec `yaml:"paragraph"`
	Table     *TableSpec     `yaml:"table"`
	Markdown  *MarkdownSpec  `yaml:"markdown"`
	Code      *CodeSpec      `yaml:"code"`
}

// ParagraphSpec is a plain sequence of sentence lines.
type ParagraphSpec struct {
	Sentences []string `yaml:"sentences"`
}

// TableSpec describes a long table.
type TableSpec struct {
	Label   string       `yaml:"label"`
	Columns []ColumnSpec `yaml:"columns"`
	Rows    [][]string   `yaml:"rows"`
}

// ColumnSpec pairs a header name with a single-character type tag.
type ColumnSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// MarkdownSpec is CommonMark text.
type MarkdownSpec struct {
	Text           string `yaml:"text"`
	HighlightStyle string `yaml:"highlightStyle"`
}

// CodeSpec is a highlighted source listing.
type CodeSpec struct {
	Language string `yaml:"language"`
	Source   string `yaml:"source"`
	Style    string `yaml:"style"`
}

// Load reads and parses a manifest file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var f File
	if err := yamlutil.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestParse, path, err)
	}
	return &f, nil
}

// Document builds a renderable document from the manifest.
func (f *File) Document() (*tex2pdf.Document, error) {
	if len(f.Elements) == 0 {
		return nil, ErrNoElements
	}

	preamble, err := f.preamble()
	if err != nil {
		return nil, err
	}

	elements := make([]tex2pdf.Element, 0, len(f.Elements))
	for i, spec := range f.Elements {
		element, err := spec.element()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elements = append(elements, element)
	}

	return tex2pdf.NewDocumentWithPreamble(preamble, elements...), nil
}

func (f *File) preamble() (tex2pdf.Preamble, error) {
	if f.Preamble == nil {
		return nil, nil
	}
	if f.Preamble.Static != "" {
		return tex2pdf.StaticPreamble(f.Preamble.Static), nil
	}

	cfg := &tex2pdf.PreambleConfig{
		FontSizePt:  f.Preamble.FontSizePt,
		MarginMM:    f.Preamble.MarginMM,
		ColumnSepPt: f.Preamble.ColumnSepPt,
		MainFont:    f.Preamble.MainFont,
		SansFont:    f.Preamble.SansFont,
		MonoFont:    f.Preamble.MonoFont,
		Landscape:   f.Preamble.Landscape,
	}
	for _, ct := range f.Preamble.ColumnTypes {
		if len(ct.Name) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrColumnType, ct.Name)
		}
		cfg.ColumnTypes = append(cfg.ColumnTypes, tex2pdf.ColumnTypeDef{
			Name:    ct.Name[0],
			Align:   ct.Align,
			WidthMM: ct.WidthMM,
			AutoFit: ct.AutoFit,
		})
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("preamble: %w", err)
	}
	return cfg, nil
}

func (s *ElementSpec) element() (tex2pdf.Element, error) {
	variants := 0
	var element tex2pdf.Element

	if s.Paragraph != nil {
		variants++
		element = tex2pdf.NewParagraph(s.Paragraph.Sentences...)
	}
	if s.Table != nil {
		variants++
		table, err := s.Table.table()
		if err != nil {
			return nil, err
		}
		element = table
	}
	if s.Markdown != nil {
		variants++
		element = &tex2pdf.Markdown{Source: s.Markdown.Text, HighlightStyle: s.Markdown.HighlightStyle}
	}
	if s.Code != nil {
		variants++
		element = &tex2pdf.CodeBlock{Language: s.Code.Language, Source: s.Code.Source, Style: s.Code.Style}
	}

	switch variants {
	case 0:
		return nil, ErrEmptyElement
	case 1:
		return element, nil
	default:
		return nil, ErrAmbiguousElement
	}
}

func (t *TableSpec) table() (*tex2pdf.LongTable, error) {
	columns := make([]tex2pdf.Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		if len(c.Type) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrColumnType, c.Type)
		}
		columns = append(columns, tex2pdf.Column{Name: c.Name, Type: c.Type[0]})
	}

	table := tex2pdf.NewLongTable(t.Label, columns...)
	for _, values := range t.Rows {
		table.Append(tex2pdf.NewRow(values...))
	}
	return table, nil
}

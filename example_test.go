package tex2pdf_test

import (
	"fmt"

	tex2pdf "github.com/BorisFor317/go-tex2pdf"
)

func ExampleDocument_String() {
	par := tex2pdf.NewParagraph("Hello world.")

	table := tex2pdf.NewLongTable("Readings",
		tex2pdf.Column{Name: "Time", Type: 'T'},
		tex2pdf.Column{Name: "Value", Type: 'C'},
	)
	table.Append(tex2pdf.NewRow("08:00", "42"))

	doc := tex2pdf.NewDocumentWithPreamble(
		tex2pdf.StaticPreamble(`\documentclass{article}`),
		par, table,
	)

	text, err := doc.String()
	if err != nil {
		fmt.Println("render failed:", err)
		return
	}
	fmt.Print(text)
	// Output:
	// \documentclass{article}
	// \begin{document}
	//     Hello world.
	//
	//     \begin{xltabular}[l]{\textwidth}{|T|C|}
	//         \multicolumn{2}{l}{\hspace{-\tabcolsep}Readings} \\ \hline
	//         Time & Value \\ \hline
	//         08:00 & 42 \\ \hline
	//     \end{xltabular}
	//
	// \end{document}
}

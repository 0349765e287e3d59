package main

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// RenderSongPDF draws the same composition the HTML path produces
// directly into a PDF. The logical row drawing code is shared; only the
// canvas differs.
func RenderSongPDF(song *Song, fings *FingeringTable, opts PrintOptions, outPath string) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if err := song.Validate(); err != nil {
		return err
	}

	orient := "P"
	if opts.Orientation == "landscape" {
		orient = "L"
	}
	size := "Letter"
	if opts.PageSize == "a4" {
		size = "A4"
	}
	pdf := gofpdf.New(orient, "pt", size, "")
	pdf.SetMargins(0, 0, 0)

	geo, err := newRowGeometry(rowWidth, barsPerRow)
	if err != nil {
		return err
	}

	pageW, pageH := pdf.GetPageSize()
	margin := 30.0
	scale := (pageW - 2*margin) / geo.renderedWidth()
	rowGap := 8.0 * scale

	diagrams := collectDiagramFingerings(song, fings)

	for pageIdx, page := range song.Pages {
		if err := page.Validate(); err != nil {
			return fmt.Errorf("page %v: %v", pageIdx, err)
		}
		pdf.AddPage()
		y := margin

		if pageIdx == 0 && song.Title != "" {
			pdf.SetFont("courier", "B", 16)
			pdf.Text(margin, y+12, song.Title)
			y += 28
		}

		if pageIdx == 0 && opts.IncludeChordDiagrams && len(diagrams) > 0 {
			c := newPDFCanvas(pdf, margin, y, scale)
			x := rowMargin
			for _, f := range diagrams {
				if x+diagramWidth > geo.renderedWidth() {
					break
				}
				drawChordDiagram(c, bounds{0, x, diagramHeight, x + diagramWidth}, f)
				x += diagramWidth + 8
			}
			y += diagramHeight*scale + rowGap
		}

		for row := 0; row < rowsPerPage; row++ {
			beatChords := page.RowBeatChords(row)

			c := newPDFCanvas(pdf, margin, y, scale)
			drawChordRow(c, bounds{0, 0, chordRowHeight, geo.renderedWidth()},
				geo, page.RowLyrics(row), beatChords)
			y += chordRowHeight * scale

			if opts.IncludeNotation {
				c = newPDFCanvas(pdf, margin, y, scale)
				drawStaffRow(c, bounds{0, 0, staffRowHeight, geo.renderedWidth()},
					geo, beatChords)
				y += staffRowHeight * scale
			}

			if opts.IncludeTablature {
				c = newPDFCanvas(pdf, margin, y, scale)
				drawTablatureRow(c, bounds{0, 0, tabRowHeight, geo.renderedWidth()},
					geo, beatChords, fings)
				y += tabRowHeight * scale
			}
			y += rowGap
		}

		pdf.SetFont("courier", "", 9)
		footer := fmt.Sprintf("%v / %v", pageIdx+1, len(song.Pages))
		footerW := GetCourierFontWidth(9) * float64(len(footer))
		pdf.Text(pageW/2-footerW/2, pageH-margin/2, footer)
	}

	if !strings.HasSuffix(outPath, ".pdf") {
		outPath += ".pdf"
	}
	return pdf.OutputFileAndClose(outPath)
}

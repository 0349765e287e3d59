package main

import (
	"fmt"
	"strings"
)

// Row/page composition. A page's 16 bars split into 4 rows of 4 bars;
// each row invokes the staff and tablature renderers once over the whole
// row rather than once per bar, so bar-to-bar alignment comes for free
// from the shared coordinate space.

// renderPageHTML assembles one printable page. diagrams is non-nil only
// for the page that should carry the chord reference row (the first).
// Excluded sections are omitted entirely; no space is reserved for them.
func renderPageHTML(page *PageData, pageNumber, totalPages int,
	diagrams []Fingering, fings *FingeringTable, opts PrintOptions) (string, error) {

	if err := page.Validate(); err != nil {
		return "", err
	}
	geo, err := newRowGeometry(rowWidth, barsPerRow)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<section class=\"page\">\n")

	if opts.IncludeChordDiagrams && len(diagrams) > 0 {
		b.WriteString("<div class=\"diagrams\">\n")
		b.WriteString(renderChordDiagramsSVG(diagrams, geo.renderedWidth()))
		b.WriteString("</div>\n")
	}

	for row := 0; row < rowsPerPage; row++ {
		beatChords := page.RowBeatChords(row)
		b.WriteString("<div class=\"row\">\n")
		b.WriteString(renderChordRowSVG(geo, page.RowLyrics(row), beatChords))
		if opts.IncludeNotation {
			b.WriteString(renderStaffRowSVG(geo, beatChords))
		}
		if opts.IncludeTablature {
			b.WriteString(renderTablatureRowSVG(geo, beatChords, fings))
		}
		b.WriteString("</div>\n")
	}

	fmt.Fprintf(&b, "<footer>%v / %v</footer>\n", pageNumber, totalPages)
	b.WriteString("</section>\n")
	return b.String(), nil
}

// collectDiagramFingerings gathers the fingerings for every distinct
// chord used anywhere in the song, in first-use order, skipping chords
// the table doesn't know.
func collectDiagramFingerings(song *Song, fings *FingeringTable) []Fingering {
	var out []Fingering
	for _, name := range song.DistinctChords() {
		if f, ok := fings.Lookup(name); ok {
			out = append(out, f)
		}
	}
	return out
}

// RenderSongHTML produces the complete print-ready document: every page
// of the song as embedded SVG rows, with page CSS from the options. The
// chord reference row lands on the first page only.
func RenderSongHTML(song *Song, fings *FingeringTable, opts PrintOptions) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	if err := song.Validate(); err != nil {
		return "", err
	}

	diagrams := collectDiagramFingerings(song, fings)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", escapeXML(song.Title))
	fmt.Fprintf(&b, `<style>
@page { size: %s %s; margin: 0.4in; }
body { font-family: courier, monospace; margin: 0; }
h1 { font-size: 18px; margin: 4px 0 10px 16px; }
section.page { page-break-after: always; }
div.row { margin-bottom: 6px; }
footer { text-align: center; font-size: 10px; }
</style>
`, opts.PageSize, opts.Orientation)
	b.WriteString("</head>\n<body>\n")
	if song.Title != "" {
		fmt.Fprintf(&b, "<h1>%s</h1>\n", escapeXML(song.Title))
	}

	total := len(song.Pages)
	for i, page := range song.Pages {
		diags := diagrams
		if i != 0 {
			diags = nil
		}
		pageHTML, err := renderPageHTML(page, i+1, total, diags, fings, opts)
		if err != nil {
			return "", fmt.Errorf("page %v: %v", i, err)
		}
		b.WriteString(pageHTML)
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

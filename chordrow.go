package main

import (
	"strings"
	"unicode/utf8"
)

// The chord-box/lyric row sits directly above the notation and tablature
// rows. It is laid out independently of them but against the same
// rowGeometry, which is what keeps a chord name at beat i of bar j
// directly over that beat's note heads and fret numbers.

const chordRowHeight = 44.0

const (
	chordNameFontSize = 12.0
	lyricFontSize     = 11.0
)

func drawChordRow(c Canvas, bnd bounds, geo *rowGeometry, barLyrics []string, beatChords []string) {
	nameH := GetFontHeight(chordNameFontSize)
	nameW := GetCourierFontWidth(chordNameFontSize)
	c.SetFont("courier", "B", chordNameFontSize)
	yName := bnd.top + nameH + 2

	// one box per beat; empty boxes draw nothing at all so they disappear
	// rather than cluttering the page
	for flat, name := range beatChords {
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		x := geo.flatBeatCenter(flat)
		c.Text(x-nameW*float64(len(name))/2, yName, name)
	}

	// bar lyrics, centered per bar, ellipsized on overflow
	c.SetFont("courier", "", lyricFontSize)
	lyricH := GetFontHeight(lyricFontSize)
	lyricW := GetCourierFontWidth(lyricFontSize)
	yLyric := bnd.bottom - lyricH*0.4
	for bar, lyric := range barLyrics {
		lyric = strings.TrimSpace(lyric)
		if lyric == "" {
			continue
		}
		box := geo.measure(bar)
		maxChars := int(box.width*0.92/lyricW) - 1
		lyric = truncateWithEllipsis(lyric, maxChars)
		center := box.x + box.width/2
		c.Text(center-lyricW*float64(utf8.RuneCountInString(lyric))/2, yLyric, lyric)
	}
}

func truncateWithEllipsis(s string, maxChars int) string {
	if maxChars < 4 {
		maxChars = 4
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars-3]) + "..."
}

// renderChordRowSVG renders one row's chord boxes and lyrics as a
// self-contained SVG fragment.
func renderChordRowSVG(geo *rowGeometry, barLyrics []string, beatChords []string) string {
	c := newSVGCanvas(geo.renderedWidth(), chordRowHeight)
	bnd := bounds{0, 0, chordRowHeight, geo.renderedWidth()}
	drawChordRow(c, bnd, geo, barLyrics, beatChords)
	return c.String()
}

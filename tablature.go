package main

import (
	"strconv"
	"strings"
)

const tabRowHeight = 84.0

const (
	tabBandTop    = 0.12
	tabBandBottom = 0.88
)

// guitar string count; drawn lines run top-to-bottom from string 1
// (highest pitch) to string 6 (lowest)
const numStrings = 6

// drawTablatureRow draws one row of measures as six-string tablature.
// The string lines are always drawn in full. Fingerings are stored
// low-string-to-high-string and reversed for display, so the top drawn
// line carries the high-e entry.
func drawTablatureRow(c Canvas, bnd bounds, geo *rowGeometry, beatChords []string, fings *FingeringTable) {
	tabTop := bnd.top + bnd.Height()*tabBandTop
	tabBottom := bnd.top + bnd.Height()*tabBandBottom
	stringGap := (tabBottom - tabTop) / (numStrings - 1)

	// string lines
	c.SetLineWidth(staffLW)
	for i := 0; i < numStrings; i++ {
		y := tabTop + float64(i)*stringGap
		c.Line(bnd.left, y, bnd.right, y)
	}

	// barlines
	c.SetLineWidth(barlineLW)
	for i := 0; i < geo.measureCount(); i++ {
		box := geo.measure(i)
		c.Line(box.x, tabTop, box.x, tabBottom)
	}
	last := geo.measure(geo.measureCount() - 1)
	c.Line(last.x+last.width, tabTop, last.x+last.width, tabBottom)

	// TAB marker in the first measure's clef allowance
	labelSize := stringGap * 1.5
	c.SetFont("courier", "B", labelSize)
	labelX := geo.measure(0).x + clefAllowance/2 - GetCourierFontWidth(labelSize)/2
	for i, ch := range "TAB" {
		y := tabTop + float64(i+1)*stringGap + stringGap/2
		c.Text(labelX, y, string(ch))
	}

	fretSize := stringGap * 1.35
	fretH := GetFontHeight(fretSize)
	c.SetFont("courier", "", fretSize)

	for flat, name := range beatChords {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, ok := fings.Lookup(name)
		if !ok {
			// no fingering known, the bare string lines stand alone
			continue
		}

		x := geo.flatBeatCenter(flat)
		display := f.displayOrder()
		for s, entry := range display {
			label := fretLabel(entry, f.StartingFret)
			if label == "" {
				continue
			}
			y := tabTop + float64(s)*stringGap
			w := GetCourierFontWidth(fretSize) * float64(len(label))
			c.Text(x-w/2, y+fretH/2, label)
		}
	}
}

// fretLabel converts one fingering entry to its drawn text: "x" for a
// muted string, "0" for open, otherwise the absolute fret number at the
// chord's neck position.
func fretLabel(entry string, startingFret int) string {
	switch entry {
	case "x":
		return "x"
	case "0":
		return "0"
	}
	rel, err := strconv.Atoi(entry)
	if err != nil || rel <= 0 {
		return ""
	}
	if startingFret > 1 {
		rel += startingFret - 1
	}
	return strconv.Itoa(rel)
}

// renderTablatureRowSVG renders one row of beat chords as a self-contained
// SVG fragment.
func renderTablatureRowSVG(geo *rowGeometry, beatChords []string, fings *FingeringTable) string {
	c := newSVGCanvas(geo.renderedWidth(), tabRowHeight)
	bnd := bounds{0, 0, tabRowHeight, geo.renderedWidth()}
	drawTablatureRow(c, bnd, geo, beatChords, fings)
	return c.String()
}

package main

// Line weights for the structural parts of the staff and tablature rows.
const (
	staffLW   = 0.9
	barlineLW = 1.1
	stemLW    = 1.2
)

const staffRowHeight = 96.0

// staff band within the row height; the staff proper occupies a fixed
// vertical sub-region so note heads and stems have headroom above it
const (
	staffBandTop    = 0.30
	staffBandBottom = 0.82
)

// bottom staff line = E4
const bottomLineDiatonic = 4*7 + 2

// diatonicIndex numbers pitches by letter steps (C0 = 0), the unit the
// staff position function works in.
func diatonicIndex(p Pitch) int {
	return p.Octave*7 + letterIndex(p.Letter)
}

// drawStaffRow draws one row of measures as 5-line staff notation. The
// staff structure is always drawn in full, even for rows with no chord
// data. beatChords is the row-flattened beat sequence (measureCount x 4).
func drawStaffRow(c Canvas, bnd bounds, geo *rowGeometry, beatChords []string) {
	staffTop := bnd.top + bnd.Height()*staffBandTop
	staffBottom := bnd.top + bnd.Height()*staffBandBottom
	lineGap := (staffBottom - staffTop) / 4
	halfStep := lineGap / 2

	// staff lines
	c.SetLineWidth(staffLW)
	for i := 0; i < 5; i++ {
		y := staffTop + float64(i)*lineGap
		c.Line(bnd.left, y, bnd.right, y)
	}

	// barlines
	c.SetLineWidth(barlineLW)
	for i := 0; i < geo.measureCount(); i++ {
		box := geo.measure(i)
		c.Line(box.x, staffTop, box.x, staffBottom)
	}
	last := geo.measure(geo.measureCount() - 1)
	c.Line(last.x+last.width, staffTop, last.x+last.width, staffBottom)

	// time signature in the first measure's clef allowance
	sigSize := lineGap * 2.2
	c.SetFont("courier", "B", sigSize)
	sigX := geo.measure(0).x + clefAllowance/2 - GetCourierFontWidth(sigSize)/2
	c.Text(sigX, staffTop+lineGap*2-lineGap*0.3, "4")
	c.Text(sigX, staffTop+lineGap*4-lineGap*0.3, "4")

	headRx := lineGap * 0.62
	headRy := lineGap * 0.46
	clusterDX := headRx * 0.5
	stemHeight := lineGap * 3.2
	accSize := lineGap * 1.7

	for m := 0; m < geo.measureCount(); m++ {
		measureBeats := beatChords[m*beatsPerBar : (m+1)*beatsPerBar]
		for _, span := range inferDurations(measureBeats) {
			if span.ghost {
				continue
			}
			pitches := resolveChord(span.chord)
			if len(pitches) == 0 {
				// unresolvable name, no visual content for this beat
				continue
			}

			x := geo.beatCenter(m, span.startBeat)
			headStyle := "F"
			if span.value() != quarterNote {
				headStyle = "D"
			}

			topY := staffBottom
			for i, p := range pitches {
				steps := diatonicIndex(p) - bottomLineDiatonic
				y := staffBottom - float64(steps)*halfStep
				xi := x + float64(i)*clusterDX

				drawLedgerLines(c, xi, steps, staffTop, staffBottom, halfStep, headRx)

				c.SetLineWidth(staffLW)
				c.Ellipse(xi, y, headRx, headRy, -20, headStyle)
				if y < topY {
					topY = y
				}

				if p.Accidental != AccidentalNone {
					c.SetFont("courier", "", accSize)
					glyph := "#"
					if p.Accidental == AccidentalFlat {
						glyph = "b"
					}
					c.Text(xi-headRx-GetCourierFontWidth(accSize)*1.2, y+GetFontHeight(accSize)/2, glyph)
				}
			}

			if span.value() == dottedHalfNote {
				lastX := x + float64(len(pitches)-1)*clusterDX
				c.Circle(lastX+headRx*1.9, topY, lineGap*0.14, "F")
			}
			if span.value() != wholeNote {
				c.SetLineWidth(stemLW)
				stemX := x + headRx
				c.Line(stemX, topY, stemX, topY-stemHeight)
			}
		}
	}
}

// drawLedgerLines extends the staff for note heads that sit above or
// below the 5 drawn lines.
func drawLedgerLines(c Canvas, x float64, steps int, staffTop, staffBottom, halfStep, headRx float64) {
	c.SetLineWidth(staffLW)
	ext := headRx * 1.6
	for s := -2; s >= steps; s -= 2 {
		y := staffBottom - float64(s)*halfStep
		c.Line(x-ext, y, x+ext, y)
	}
	for s := 10; s <= steps; s += 2 {
		y := staffBottom - float64(s)*halfStep
		c.Line(x-ext, y, x+ext, y)
	}
}

// renderStaffRowSVG renders one row of beat chords as a self-contained
// SVG fragment.
func renderStaffRowSVG(geo *rowGeometry, beatChords []string) string {
	c := newSVGCanvas(geo.renderedWidth(), staffRowHeight)
	bnd := bounds{0, 0, staffRowHeight, geo.renderedWidth()}
	drawStaffRow(c, bnd, geo, beatChords)
	return c.String()
}

package main

import "strconv"

// Small chord-fingering diagram: vertical string grid, dots for fretted
// positions, x/o markers above the nut. These have no alignment
// constraints with the row renderers, only their own box.

const (
	diagramWidth  = 64.0
	diagramHeight = 88.0
	diagramFrets  = 4
)

func drawChordDiagram(c Canvas, bnd bounds, f Fingering) {
	nameSize := 11.0
	nameH := GetFontHeight(nameSize)
	markerZone := 10.0

	gridLeft := bnd.left + 8
	gridRight := bnd.right - 14
	gridTop := bnd.top + nameH + 4 + markerZone
	gridBottom := bnd.bottom - 4
	stringDX := (gridRight - gridLeft) / (numStrings - 1)
	fretDY := (gridBottom - gridTop) / diagramFrets

	// chord name, centered over the grid
	c.SetFont("courier", "", nameSize)
	nameW := GetCourierFontWidth(nameSize) * float64(len(f.Name))
	c.Text((gridLeft+gridRight)/2-nameW/2, bnd.top+nameH, f.Name)

	// nut is drawn heavier when the diagram starts at the first fret
	if f.StartingFret == 1 {
		c.SetLineWidth(2.2)
	} else {
		c.SetLineWidth(staffLW)
	}
	c.Line(gridLeft, gridTop, gridRight, gridTop)

	c.SetLineWidth(staffLW)
	for i := 1; i <= diagramFrets; i++ {
		y := gridTop + float64(i)*fretDY
		c.Line(gridLeft, y, gridRight, y)
	}
	for i := 0; i < numStrings; i++ {
		x := gridLeft + float64(i)*stringDX
		c.Line(x, gridTop, x, gridBottom)
	}

	if f.StartingFret > 1 {
		fretSize := 8.0
		c.SetFont("courier", "", fretSize)
		c.Text(gridRight+3, gridTop+fretDY/2+GetFontHeight(fretSize)/2,
			strconv.Itoa(f.StartingFret))
	}

	// entries are stored low-to-high; diagrams draw the low string on the
	// left, so no reversal here
	dotR := stringDX * 0.36
	for i, entry := range f.Fingering {
		x := gridLeft + float64(i)*stringDX
		switch entry {
		case "x":
			ext := 2.6
			y := gridTop - markerZone/2
			c.SetLineWidth(staffLW)
			c.Line(x-ext, y-ext, x+ext, y+ext)
			c.Line(x-ext, y+ext, x+ext, y-ext)
		case "0":
			c.SetLineWidth(staffLW)
			c.Circle(x, gridTop-markerZone/2, 2.6, "D")
		default:
			fret, err := strconv.Atoi(entry)
			if err != nil || fret < 1 {
				continue
			}
			if fret > diagramFrets {
				fret = diagramFrets
			}
			y := gridTop + (float64(fret)-0.5)*fretDY
			c.Circle(x, y, dotR, "F")
		}
	}
}

// renderChordDiagramsSVG lays the given fingerings out left to right as
// one reference-row fragment.
func renderChordDiagramsSVG(fings []Fingering, totalWidth float64) string {
	c := newSVGCanvas(totalWidth, diagramHeight)
	x := rowMargin
	for _, f := range fings {
		if x+diagramWidth > totalWidth {
			break
		}
		drawChordDiagram(c, bounds{0, x, diagramHeight, x + diagramWidth}, f)
		x += diagramWidth + 8
	}
	return c.String()
}


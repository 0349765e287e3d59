package main

import "fmt"

// Shared layout constants. Every consumer of row geometry (staff,
// tablature, chord boxes) goes through rowGeometry so the width-splitting
// arithmetic only exists once.
const (
	rowWidth      = 800.0 // logical row width, independent of physical page size
	rowMargin     = 16.0  // left margin before the first measure
	clefAllowance = 40.0  // extra width on the first measure for clef + time signature
)

type measureBox struct {
	x     float64
	width float64
}

// rowGeometry holds the pixel layout of one row of measures under a fixed
// total width. The clef allowance is additive: every measure gets an equal
// content width and the first measure is widened by the allowance, so the
// rendered width exceeds the nominal total by exactly the allowance.
type rowGeometry struct {
	totalWidth float64
	measures   []measureBox
}

// newRowGeometry lays out measureCount measures across totalWidth. Zero or
// negative inputs are caller bugs and fail loudly rather than producing
// NaN coordinates.
func newRowGeometry(totalWidth float64, measureCount int) (*rowGeometry, error) {
	if totalWidth <= 0 {
		return nil, fmt.Errorf("total width must be positive, have %v", totalWidth)
	}
	if measureCount < 1 {
		return nil, fmt.Errorf("measure count must be positive, have %v", measureCount)
	}

	content := totalWidth - rowMargin
	if content <= 0 {
		return nil, fmt.Errorf("total width %v leaves no room after the margin", totalWidth)
	}

	each := content / float64(measureCount)
	g := &rowGeometry{totalWidth: totalWidth}
	x := rowMargin
	for i := 0; i < measureCount; i++ {
		w := each
		if i == 0 {
			w += clefAllowance
		}
		g.measures = append(g.measures, measureBox{x: x, width: w})
		x += w
	}
	return g, nil
}

// renderedWidth is the actual drawn width: nominal width plus the additive
// clef allowance.
func (g *rowGeometry) renderedWidth() float64 {
	return g.totalWidth + clefAllowance
}

func (g *rowGeometry) measureCount() int {
	return len(g.measures)
}

func (g *rowGeometry) measure(i int) measureBox {
	return g.measures[i]
}

// beatCenter returns the horizontal center of beat b (0..3) of measure m.
// Beat i of a measure of width w sits at w/4*i + w/8 from the measure
// start, so beats 0 and 3 are symmetric around the measure center.
func (g *rowGeometry) beatCenter(m, b int) float64 {
	box := g.measures[m]
	return box.x + box.width/beatsPerBar*float64(b) + box.width/(2*beatsPerBar)
}

// flatBeatCenter addresses a beat by its index into the row-flattened
// beat sequence (measure*4 + beat).
func (g *rowGeometry) flatBeatCenter(flat int) float64 {
	return g.beatCenter(flat/beatsPerBar, flat%beatsPerBar)
}

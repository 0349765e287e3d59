package main

import (
	"fmt"
	"strings"
)

// Canvas is the narrow vector drawing surface shared by every renderer.
// Coordinates are logical units, y grows downward, text is drawn from its
// left baseline point. Styles follow the gofpdf convention: "F" fills,
// "D" (or "") strokes.
type Canvas interface {
	SetLineWidth(width float64)
	SetFont(familyStr, styleStr string, size float64)
	Line(x1, y1, x2, y2 float64)
	Text(x, y float64, txtStr string)
	Circle(x, y, r float64, styleStr string)
	Ellipse(x, y, rx, ry, degRotate float64, styleStr string)
}

// bounds of a drawing region
type bounds struct {
	top    float64
	left   float64
	bottom float64
	right  float64
}

func (b bounds) Width() float64 {
	return b.right - b.left
}

func (b bounds) Height() float64 {
	return b.bottom - b.top
}

// ---------------------

// svgCanvas accumulates a self-contained <svg> fragment with an explicit
// viewBox so it can be embedded in a larger document unscaled. Coordinates
// are written with fixed precision, so identical drawing sequences produce
// byte-identical markup.
type svgCanvas struct {
	width, height float64
	lineWidth     float64
	fontFamily    string
	fontStyle     string
	fontSize      float64
	body          strings.Builder
}

var _ Canvas = (*svgCanvas)(nil)

func newSVGCanvas(width, height float64) *svgCanvas {
	return &svgCanvas{
		width:      width,
		height:     height,
		lineWidth:  1,
		fontFamily: "courier",
		fontSize:   12,
	}
}

func (c *svgCanvas) SetLineWidth(width float64) {
	c.lineWidth = width
}

func (c *svgCanvas) SetFont(familyStr, styleStr string, size float64) {
	c.fontFamily = familyStr
	c.fontStyle = styleStr
	c.fontSize = size
}

func (c *svgCanvas) Line(x1, y1, x2, y2 float64) {
	fmt.Fprintf(&c.body,
		`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="black" stroke-width="%.2f"/>`+"\n",
		x1, y1, x2, y2, c.lineWidth)
}

func (c *svgCanvas) Text(x, y float64, txtStr string) {
	weight := ""
	if strings.Contains(strings.ToUpper(c.fontStyle), "B") {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(&c.body,
		`<text x="%.2f" y="%.2f" font-family="%s, monospace" font-size="%.2f"%s>%s</text>`+"\n",
		x, y, c.fontFamily, c.fontSize, weight, escapeXML(txtStr))
}

func (c *svgCanvas) Circle(x, y, r float64, styleStr string) {
	fmt.Fprintf(&c.body,
		`<circle cx="%.2f" cy="%.2f" r="%.2f" %s stroke-width="%.2f"/>`+"\n",
		x, y, r, fillStroke(styleStr), c.lineWidth)
}

func (c *svgCanvas) Ellipse(x, y, rx, ry, degRotate float64, styleStr string) {
	fmt.Fprintf(&c.body,
		`<ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" transform="rotate(%.2f %.2f %.2f)" %s stroke-width="%.2f"/>`+"\n",
		x, y, rx, ry, degRotate, x, y, fillStroke(styleStr), c.lineWidth)
}

// String closes the fragment.
func (c *svgCanvas) String() string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.2f" height="%.2f" viewBox="0 0 %.2f %.2f">`+"\n%s</svg>\n",
		c.width, c.height, c.width, c.height, c.body.String())
}

func fillStroke(styleStr string) string {
	if strings.Contains(strings.ToUpper(styleStr), "F") {
		return `fill="black" stroke="none"`
	}
	return `fill="none" stroke="black"`
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

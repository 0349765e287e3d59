package main

import "github.com/jung-kurt/gofpdf"

// pdfCanvas adapts a gofpdf document to the Canvas interface, scaling
// logical row coordinates onto a physical page region. The document unit
// must be "pt" so that font sizes scale with the geometry.
type pdfCanvas struct {
	pdf     *gofpdf.Fpdf
	scale   float64
	offsetX float64
	offsetY float64
}

var _ Canvas = (*pdfCanvas)(nil)

func newPDFCanvas(pdf *gofpdf.Fpdf, offsetX, offsetY, scale float64) *pdfCanvas {
	return &pdfCanvas{pdf: pdf, scale: scale, offsetX: offsetX, offsetY: offsetY}
}

func (c *pdfCanvas) tx(x float64) float64 { return c.offsetX + x*c.scale }
func (c *pdfCanvas) ty(y float64) float64 { return c.offsetY + y*c.scale }

func (c *pdfCanvas) SetLineWidth(width float64) {
	c.pdf.SetLineWidth(width * c.scale)
}

func (c *pdfCanvas) SetFont(familyStr, styleStr string, size float64) {
	c.pdf.SetFont(familyStr, styleStr, size*c.scale)
}

func (c *pdfCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(c.tx(x1), c.ty(y1), c.tx(x2), c.ty(y2))
}

func (c *pdfCanvas) Text(x, y float64, txtStr string) {
	c.pdf.Text(c.tx(x), c.ty(y), txtStr)
}

func (c *pdfCanvas) Circle(x, y, r float64, styleStr string) {
	c.pdf.Circle(c.tx(x), c.ty(y), r*c.scale, styleStr)
}

func (c *pdfCanvas) Ellipse(x, y, rx, ry, degRotate float64, styleStr string) {
	c.pdf.Ellipse(c.tx(x), c.ty(y), rx*c.scale, ry*c.scale, degRotate, styleStr)
}

package mdexport

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// canvas abstracts the drawing surface: page creation, absolutely positioned
// text runs, and raster image placement. The layout engine only draws through
// this interface; tests substitute a recording implementation.
type canvas interface {
	AddPage()
	SetFont(family, style string, size float64)
	Text(x, y float64, s string)
	Image(name string, r io.Reader, x, y, w, h float64) error
	Output(w io.Writer) error
}

// fpdfCanvas implements canvas on top of gofpdf. Automatic page breaks are
// disabled; pagination is owned entirely by the layout engine.
type fpdfCanvas struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

func newFpdfCanvas(cfg Config) *fpdfCanvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetAutoPageBreak(false, cfg.Margin)
	return &fpdfCanvas{
		pdf: pdf,
		// Core fonts are cp1252; the bullet glyph needs translating.
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *fpdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *fpdfCanvas) SetFont(family, style string, size float64) {
	c.pdf.SetFont(family, style, size)
}

func (c *fpdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, c.translate(s))
}

func (c *fpdfCanvas) Image(name string, r io.Reader, x, y, w, h float64) error {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	if c.pdf.GetImageInfo(name) == nil {
		c.pdf.RegisterImageOptionsReader(name, opts, r)
	}
	c.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return c.pdf.Error()
}

func (c *fpdfCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}

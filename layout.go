package mdexport

import (
	"bytes"
	"strings"
)

// monoCharWidthFactor estimates monospace glyph width as a fraction of the
// font size, used to compute the hard-split column for code lines.
const monoCharWidthFactor = 0.6

// listBullet is drawn at the margin before each list item's first line.
const listBullet = "•"

// blockRenderer is the set of drawing primitives the event reducer emits
// into. Implemented by renderer; tests substitute a recording implementation.
type blockRenderer interface {
	Heading(level int, text string)
	Paragraph(text string)
	List(items []string)
	CodeBlock(text string)
	Image(basePath, dest string) error
	Rule()
}

// fontSpec names one of the three logical fonts resolved at construction.
type fontSpec struct {
	family string
	style  string
}

type fontSet struct {
	regular fontSpec
	bold    fontSpec
	mono    fontSpec
}

// renderer is the page/cursor state machine. It owns the current page and a
// single vertical cursor measured from the top of the page downward, and
// turns block primitives into positioned text and image placements on the
// canvas. Every drawn line passes through ensureSpace, so any block may
// split across a page boundary.
type renderer struct {
	canvas canvas

	pageW          float64
	pageH          float64
	margin         float64
	maxImageHeight float64

	cursorY float64
	fonts   fontSet
}

func newRenderer(c canvas, cfg Config) *renderer {
	r := &renderer{
		canvas:         c,
		pageW:          cfg.PageWidth,
		pageH:          cfg.PageHeight,
		margin:         cfg.Margin,
		maxImageHeight: cfg.MaxImageHeight,
		fonts: fontSet{
			regular: fontSpec{family: "Helvetica"},
			bold:    fontSpec{family: "Helvetica", style: "B"},
			mono:    fontSpec{family: "Courier"},
		},
	}
	r.canvas.AddPage()
	r.cursorY = r.margin
	return r
}

// addPage starts a fresh page and resets the cursor to the top margin.
func (r *renderer) addPage() {
	r.canvas.AddPage()
	r.cursorY = r.margin
}

// ensureSpace starts a new page if height millimeters would not fit above
// the bottom margin. This is the sole pagination trigger.
func (r *renderer) ensureSpace(height float64) {
	if r.cursorY+height > r.pageH-r.margin {
		r.addPage()
	}
}

// maxTextWidth returns the content width in millimeters at the given indent.
func (r *renderer) maxTextWidth(indent float64) float64 {
	return r.pageW - 2*r.margin - indent
}

// writeLines draws pre-wrapped lines at the given indent, advancing the
// cursor one line height per line and breaking pages as needed. Text is
// placed on the baseline at the bottom of each line box.
func (r *renderer) writeLines(lines []string, font fontSpec, fontSize, indent float64) {
	r.canvas.SetFont(font.family, font.style, fontSize)
	lineHeight := lineHeightMM(fontSize)
	for _, line := range lines {
		r.ensureSpace(lineHeight)
		r.cursorY += lineHeight
		r.canvas.Text(r.margin+indent, r.cursorY, line)
	}
}

func (r *renderer) Heading(level int, text string) {
	fontSize := headingFontSize(level)
	lines := wrapText(text, fontSize, r.maxTextWidth(0))
	r.writeLines(lines, r.fonts.bold, fontSize, 0)
	r.cursorY += ptToMM(headingGapPt)
}

func (r *renderer) Paragraph(text string) {
	lines := wrapText(text, bodyFontSize, r.maxTextWidth(0))
	r.writeLines(lines, r.fonts.regular, bodyFontSize, 0)
	r.cursorY += ptToMM(paragraphGapPt)
}

func (r *renderer) List(items []string) {
	lineHeight := lineHeightMM(bodyFontSize)
	for _, item := range items {
		lines := wrapText(item, bodyFontSize, r.maxTextWidth(listIndentMM))
		r.canvas.SetFont(r.fonts.regular.family, r.fonts.regular.style, bodyFontSize)
		r.ensureSpace(lineHeight)
		r.cursorY += lineHeight
		r.canvas.Text(r.margin, r.cursorY, listBullet)
		r.canvas.Text(r.margin+listIndentMM, r.cursorY, lines[0])
		if len(lines) > 1 {
			r.writeLines(lines[1:], r.fonts.regular, bodyFontSize, listIndentMM)
		}
		r.cursorY += ptToMM(listItemGapPt)
	}
	r.cursorY += ptToMM(listGapPt)
}

// CodeBlock draws text verbatim in the monospace font, preserving source
// line breaks. Lines longer than the column budget are hard-split at the
// character boundary rather than word-wrapped.
func (r *renderer) CodeBlock(text string) {
	maxWidth := r.maxTextWidth(codeIndentMM)
	maxChars := int(mmToPt(maxWidth) / (codeFontSize * monoCharWidthFactor))
	if maxChars < 1 {
		maxChars = 1
	}

	r.canvas.SetFont(r.fonts.mono.family, r.fonts.mono.style, codeFontSize)
	lineHeight := lineHeightMM(codeFontSize)
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		runes := []rune(line)
		if len(runes) == 0 {
			r.ensureSpace(lineHeight)
			r.cursorY += lineHeight
			continue
		}
		for start := 0; start < len(runes); start += maxChars {
			end := start + maxChars
			if end > len(runes) {
				end = len(runes)
			}
			r.ensureSpace(lineHeight)
			r.cursorY += lineHeight
			r.canvas.Text(r.margin+codeIndentMM, r.cursorY, string(runes[start:end]))
		}
	}
	r.cursorY += ptToMM(codeGapPt)
}

// Image resolves dest against the markdown file at basePath and places the
// decoded image at the left margin, scaled to fit the content width and the
// maximum image height. Remote http(s) destinations are skipped silently.
func (r *renderer) Image(basePath, dest string) error {
	img, ok, err := loadImage(basePath, dest)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	width, height := imageSizeMM(img.widthPx, img.heightPx)
	width, height = fitImage(width, height, r.maxTextWidth(0), r.maxImageHeight)

	gap := ptToMM(imageGapPt)
	r.ensureSpace(height + gap)
	if err := r.canvas.Image(img.name, bytes.NewReader(img.png), r.margin, r.cursorY, width, height); err != nil {
		return err
	}
	r.cursorY += height + gap
	return nil
}

// Rule advances the cursor by a fixed gap; no mark is drawn.
func (r *renderer) Rule() {
	r.cursorY += ptToMM(ruleGapPt)
}

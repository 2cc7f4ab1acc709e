package mdexport

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// renderFiles renders each markdown file in order onto r, preceded by a
// level-2 heading carrying the file's name.
func renderFiles(files []string, r blockRenderer) error {
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrReadFile, file, err)
		}
		// Lossy decode: invalid UTF-8 bytes become replacement runes.
		raw = bytes.ToValidUTF8(raw, []byte("�"))

		r.Heading(2, "File: "+filepath.Base(file))
		if err := renderMarkdown(raw, file, r); err != nil {
			return err
		}
	}
	return nil
}

// renderPDF assembles the given markdown files into one paginated PDF and
// serializes it to w. Any failure leaves w incomplete; callers should write
// to a buffer and persist only on success.
func renderPDF(files []string, cfg Config, w io.Writer) error {
	c := newFpdfCanvas(cfg)
	r := newRenderer(c, cfg)
	if err := renderFiles(files, r); err != nil {
		return err
	}
	if err := c.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFWrite, err)
	}
	return nil
}

// Package mdexport converts collections of Markdown documents into a single
// paginated PDF.
//
// # Quick Start
//
// Create a service, process the input paths, and convert:
//
//	svc := mdexport.NewService()
//	defer svc.Close()
//
//	input, err := svc.ProcessInput([]string{"docs/"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := svc.Convert(input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath)
//
// Inputs may be single markdown files, directories (scanned recursively), or
// zip archives (extracted to a scratch directory for the duration of the
// conversion). The output is written to markdown_export.pdf in the deepest
// common ancestor of the input locations.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Input discovery (directory walk, zip extraction, common root)
//  2. Markdown parsing via Goldmark
//  3. Event reduction to block render commands
//  4. Layout onto fixed-size pages (word wrap, page breaks, image scaling)
//  5. PDF serialization via gofpdf
//
// # Layout Model
//
// Pages are A4 (210x297 mm) with 15 mm margins. The layout engine keeps a
// single vertical cursor per page and starts a new page whenever the next
// output line would cross the bottom margin, so paragraphs may split across
// pages mid-block. Text width is estimated with an average-character-width
// model rather than real font metrics. Local images are scaled down to the
// content width and capped at a maximum height, preserving aspect ratio;
// remote http(s) image references are skipped.
//
// # Configuration
//
// Page geometry and the output file name can be overridden with a YAML
// config file (see LoadConfig) or programmatically via WithConfig.
package mdexport

package mdexport

// Page geometry defaults in millimeters.
const (
	DefaultPageWidth      = 210.0
	DefaultPageHeight     = 297.0
	DefaultMargin         = 15.0
	DefaultMaxImageHeight = 120.0
)

// DefaultOutputName is the file name of the generated PDF.
const DefaultOutputName = "markdown_export.pdf"

// Font sizes in points.
const (
	bodyFontSize = 11.0
	codeFontSize = 9.5
)

// headingFontSize returns the point size for a heading level.
// Levels 4 and deeper share the smallest tier.
func headingFontSize(level int) float64 {
	switch level {
	case 1:
		return 24.0
	case 2:
		return 18.0
	case 3:
		return 14.0
	default:
		return 12.0
	}
}

// Block spacing in points and indents in millimeters.
const (
	paragraphGapPt = 6.0
	headingGapPt   = 8.0
	listItemGapPt  = 2.0
	listGapPt      = 4.0
	codeGapPt      = 6.0
	imageGapPt     = 6.0
	ruleGapPt      = 8.0

	listIndentMM = 6.0
	codeIndentMM = 4.0
)

// imageDPI is the reference resolution for converting pixel dimensions to
// physical size.
const imageDPI = 96.0

// ProcessedInput is the result of input discovery: the markdown files to
// render in order, the image files found alongside them (informational; the
// renderer resolves images through markdown references), and the directory
// that receives the output file.
type ProcessedInput struct {
	MarkdownFiles []string
	ImageFiles    []string
	Root          string
}

// ConvertResult reports where the generated PDF was written.
type ConvertResult struct {
	OutputPath string
}

// Option configures a Service.
type Option func(*Service)

// WithConfig replaces the service configuration. Zero-valued fields keep
// their defaults.
func WithConfig(cfg Config) Option {
	return func(s *Service) {
		applyConfig(&s.cfg, cfg)
	}
}

// WithOutputName overrides the output file name.
// Panics if name is empty (programmer error).
func WithOutputName(name string) Option {
	if name == "" {
		panic("mdexport: WithOutputName requires a non-empty name")
	}
	return func(s *Service) {
		s.cfg.OutputName = name
	}
}

package mdexport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Service orchestrates the discovery and conversion pipeline. It owns the
// scratch directories created by archive extraction; the mutex serializes
// concurrent callers around that shared state (a single conversion in flight
// is the supported scenario).
type Service struct {
	cfg Config

	mu      sync.Mutex
	scratch []string
}

// NewService creates a Service with default configuration.
// Use options to customize behavior (e.g., WithConfig, WithOutputName).
func NewService(opts ...Option) *Service {
	s := &Service{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessInput validates the input paths and discovers the markdown and
// image files beneath them. Zip archives are extracted to scratch
// directories that live until Convert succeeds or Close is called; scratch
// directories from a previous ProcessInput call are cleared first.
func (s *Service) ProcessInput(paths []string) (*ProcessedInput, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearScratchLocked()

	var scanRoots, outputRoots []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}

		switch {
		case !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".zip"):
			dir, err := extractZip(path)
			if err != nil {
				return nil, err
			}
			s.scratch = append(s.scratch, dir)
			scanRoots = append(scanRoots, dir)
			outputRoots = append(outputRoots, parentOrDot(path))
		case !info.IsDir():
			scanRoots = append(scanRoots, path)
			outputRoots = append(outputRoots, parentOrDot(path))
		default:
			scanRoots = append(scanRoots, path)
			outputRoots = append(outputRoots, path)
		}
	}

	markdownFiles, imageFiles, err := collectAssets(scanRoots)
	if err != nil {
		return nil, err
	}

	root := commonRoot(outputRoots)
	if root == "" {
		root = outputRoots[0]
	}

	return &ProcessedInput{
		MarkdownFiles: markdownFiles,
		ImageFiles:    imageFiles,
		Root:          root,
	}, nil
}

// Convert renders the discovered markdown files into a single PDF at
// <root>/<output name>. The document is rendered to memory first, so a
// failed conversion never leaves a partial output file. Scratch directories
// are cleared on success.
func (s *Service) Convert(input *ProcessedInput) (*ConvertResult, error) {
	if input == nil || len(input.MarkdownFiles) == 0 {
		return nil, ErrNoMarkdownFiles
	}

	var buf bytes.Buffer
	if err := renderPDF(input.MarkdownFiles, s.cfg, &buf); err != nil {
		return nil, err
	}

	outputPath := filepath.Join(input.Root, s.cfg.OutputName)
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPDFWrite, outputPath, err)
	}

	s.mu.Lock()
	s.clearScratchLocked()
	s.mu.Unlock()

	return &ConvertResult{OutputPath: outputPath}, nil
}

// Close removes any remaining scratch directories.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearScratchLocked()
	return nil
}

func (s *Service) clearScratchLocked() {
	for _, dir := range s.scratch {
		_ = os.RemoveAll(dir)
	}
	s.scratch = nil
}

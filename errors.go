package mdexport

import "errors"

// Sentinel errors for library operations.
var (
	// Input validation errors.
	ErrNoInput         = errors.New("no input paths provided")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
	ErrInputNotFound   = errors.New("input path does not exist")

	// File and archive errors.
	ErrReadFile       = errors.New("failed to read file")
	ErrArchiveExtract = errors.New("failed to extract archive")

	// Image errors.
	ErrImageNotFound = errors.New("image not found")
	ErrImageDecode   = errors.New("failed to decode image")

	// Output errors.
	ErrPDFWrite = errors.New("failed to write PDF")

	// Config errors.
	ErrReadConfig    = errors.New("failed to read config file")
	ErrInvalidConfig = errors.New("invalid config")
)

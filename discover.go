package mdexport

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// markdownExtensions and imageExtensions classify files during discovery.
var (
	markdownExtensions = map[string]bool{
		".md":       true,
		".markdown": true,
	}
	imageExtensions = map[string]bool{
		".png":  true,
		".jpg":  true,
		".jpeg": true,
		".gif":  true,
		".webp": true,
		".bmp":  true,
	}
)

func isMarkdownFile(path string) bool {
	return markdownExtensions[strings.ToLower(filepath.Ext(path))]
}

func isImageFile(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// collectAssets walks the scan roots and partitions regular files into
// markdown and image lists, in walk order.
func collectAssets(roots []string) (markdownFiles, imageFiles []string, err error) {
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrInputNotFound, root)
		}
		if !info.IsDir() {
			if isMarkdownFile(root) {
				markdownFiles = append(markdownFiles, root)
			}
			continue
		}

		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			switch {
			case isMarkdownFile(path):
				markdownFiles = append(markdownFiles, path)
			case isImageFile(path):
				imageFiles = append(imageFiles, path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, nil, fmt.Errorf("%w: scanning %s: %v", ErrReadFile, root, walkErr)
		}
	}
	return markdownFiles, imageFiles, nil
}

// extractZip unpacks an archive into a fresh scratch directory and returns
// the directory path. The caller owns cleanup.
func extractZip(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrArchiveExtract, path, err)
	}
	defer archive.Close()

	dir, err := os.MkdirTemp("", "mdexport-*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrArchiveExtract, err)
	}

	for _, entry := range archive.File {
		if err := extractZipEntry(dir, entry); err != nil {
			_ = os.RemoveAll(dir)
			return "", fmt.Errorf("%w: %s: %v", ErrArchiveExtract, entry.Name, err)
		}
	}
	return dir, nil
}

func extractZipEntry(dir string, entry *zip.File) error {
	// Reject entries that would escape the scratch directory.
	outPath := filepath.Join(dir, filepath.FromSlash(entry.Name))
	if outPath != dir && !strings.HasPrefix(outPath, dir+string(os.PathSeparator)) {
		return fmt.Errorf("illegal entry path %q", entry.Name)
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(outPath, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// commonRoot returns the deepest common ancestor of the given paths, or ""
// when none exists or the ancestor is the filesystem root (which has no
// parent to write into).
func commonRoot(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	first := splitPath(paths[0])
	commonLen := len(first)
	for _, path := range paths[1:] {
		parts := splitPath(path)
		if len(parts) < commonLen {
			commonLen = len(parts)
		}
		for i := 0; i < commonLen; i++ {
			if parts[i] != first[i] {
				commonLen = i
				break
			}
		}
	}
	if commonLen == 0 {
		return ""
	}

	root := filepath.Join(first[:commonLen]...)
	if parent := filepath.Dir(root); parent == root {
		return ""
	}
	return root
}

// splitPath breaks a cleaned path into components, keeping a leading
// separator as its own component so absolute paths rejoin correctly.
func splitPath(path string) []string {
	path = filepath.Clean(path)
	var parts []string
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]
	if strings.HasPrefix(rest, string(os.PathSeparator)) {
		parts = append(parts, vol+string(os.PathSeparator))
		rest = strings.TrimPrefix(rest, string(os.PathSeparator))
	} else if vol != "" {
		parts = append(parts, vol)
	}
	for _, part := range strings.Split(rest, string(os.PathSeparator)) {
		if part != "" && part != "." {
			parts = append(parts, part)
		}
	}
	return parts
}

// parentOrDot returns the containing directory of a file path, "." when the
// path has no directory component.
func parentOrDot(path string) string {
	dir := filepath.Dir(path)
	if dir == "" {
		return "."
	}
	return dir
}

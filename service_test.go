package mdexport

// Notes:
// - ProcessInput: validation, discovery, zip scratch dirs, output root
// - Convert: end-to-end PDF generation, failure atomicity
// - document assembly: file-boundary headings in input order

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func isPDF(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Fatalf("output does not start with a PDF header")
	}
}

// ---------------------------------------------------------------------------
// TestProcessInput
// ---------------------------------------------------------------------------

func TestProcessInputEmpty(t *testing.T) {
	t.Parallel()

	svc := NewService()
	defer svc.Close()

	if _, err := svc.ProcessInput(nil); !errors.Is(err, ErrNoInput) {
		t.Errorf("err = %v, want ErrNoInput", err)
	}
}

func TestProcessInputMissingPath(t *testing.T) {
	t.Parallel()

	svc := NewService()
	defer svc.Close()

	_, err := svc.ProcessInput([]string{filepath.Join(t.TempDir(), "nope")})
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("err = %v, want ErrInputNotFound", err)
	}
}

func TestProcessInputSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	md := filepath.Join(dir, "doc.md")
	writeFile(t, md, "# doc")

	svc := NewService()
	defer svc.Close()

	input, err := svc.ProcessInput([]string{md})
	if err != nil {
		t.Fatalf("ProcessInput: %v", err)
	}
	if !equalStrings(input.MarkdownFiles, []string{md}) {
		t.Errorf("markdown = %q", input.MarkdownFiles)
	}
	if input.Root != dir {
		t.Errorf("root = %q, want file's directory %q", input.Root, dir)
	}
}

func TestProcessInputDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# a")
	writeFile(t, filepath.Join(dir, "sub", "b.md"), "# b")
	writeFile(t, filepath.Join(dir, "sub", "pic.png"), "xx")

	svc := NewService()
	defer svc.Close()

	input, err := svc.ProcessInput([]string{dir})
	if err != nil {
		t.Fatalf("ProcessInput: %v", err)
	}
	if len(input.MarkdownFiles) != 2 {
		t.Errorf("markdown = %q, want 2 files", input.MarkdownFiles)
	}
	if len(input.ImageFiles) != 1 {
		t.Errorf("images = %q, want 1 file", input.ImageFiles)
	}
	if input.Root != dir {
		t.Errorf("root = %q, want %q", input.Root, dir)
	}
}

func TestProcessInputCommonRoot(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeFile(t, filepath.Join(base, "one", "a.md"), "# a")
	writeFile(t, filepath.Join(base, "two", "b.md"), "# b")

	svc := NewService()
	defer svc.Close()

	input, err := svc.ProcessInput([]string{
		filepath.Join(base, "one"),
		filepath.Join(base, "two"),
	})
	if err != nil {
		t.Fatalf("ProcessInput: %v", err)
	}
	if input.Root != base {
		t.Errorf("root = %q, want common ancestor %q", input.Root, base)
	}
}

func TestProcessInputZipArchive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := filepath.Join(dir, "bundle.zip")
	writeZip(t, archive, map[string]string{
		"readme.md":     "# from zip",
		"docs/notes.md": "notes",
	})

	svc := NewService()
	defer svc.Close()

	input, err := svc.ProcessInput([]string{archive})
	if err != nil {
		t.Fatalf("ProcessInput: %v", err)
	}
	if len(input.MarkdownFiles) != 2 {
		t.Errorf("markdown = %q, want 2 files from the archive", input.MarkdownFiles)
	}
	if input.Root != dir {
		t.Errorf("root = %q, want the archive's directory %q", input.Root, dir)
	}
	for _, f := range input.MarkdownFiles {
		if strings.HasPrefix(f, dir) {
			t.Errorf("markdown file %q should live in a scratch dir, not the input dir", f)
		}
	}
}

func TestCloseRemovesScratchDirs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := filepath.Join(dir, "bundle.zip")
	writeZip(t, archive, map[string]string{"a.md": "# a"})

	svc := NewService()
	input, err := svc.ProcessInput([]string{archive})
	if err != nil {
		t.Fatalf("ProcessInput: %v", err)
	}
	scratch := filepath.Dir(input.MarkdownFiles[0])

	if err := svc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(scratch); !os.IsNotExist(err) {
		t.Errorf("scratch dir %s still exists after Close", scratch)
	}
}

// ---------------------------------------------------------------------------
// TestConvert - End to End
// ---------------------------------------------------------------------------

func TestConvertEmptyInput(t *testing.T) {
	t.Parallel()

	svc := NewService()
	defer svc.Close()

	if _, err := svc.Convert(nil); !errors.Is(err, ErrNoMarkdownFiles) {
		t.Errorf("Convert(nil) = %v, want ErrNoMarkdownFiles", err)
	}
	if _, err := svc.Convert(&ProcessedInput{Root: "."}); !errors.Is(err, ErrNoMarkdownFiles) {
		t.Errorf("Convert(no files) = %v, want ErrNoMarkdownFiles", err)
	}
}

func TestConvertSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.md"), "# Title\n\nHello world\n")

	svc := NewService()
	defer svc.Close()

	input, err := svc.ProcessInput([]string{dir})
	if err != nil {
		t.Fatalf("ProcessInput: %v", err)
	}
	result, err := svc.Convert(input)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want := filepath.Join(dir, DefaultOutputName)
	if result.OutputPath != want {
		t.Errorf("output = %q, want %q", result.OutputPath, want)
	}
	isPDF(t, result.OutputPath)
}

func TestConvertAllConstructs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "pic.png"), 64, 32)
	writeFile(t, filepath.Join(dir, "doc.md"), strings.Join([]string{
		"# Heading One",
		"",
		"A paragraph with some text that should wrap when it gets long enough to need it.",
		"",
		"- first item",
		"- second item",
		"",
		"```",
		"code line",
		"```",
		"",
		"![pic](pic.png)",
		"",
		"---",
		"",
		"After the rule.",
		"",
	}, "\n"))

	svc := NewService()
	defer svc.Close()

	input, err := svc.ProcessInput([]string{dir})
	if err != nil {
		t.Fatalf("ProcessInput: %v", err)
	}
	result, err := svc.Convert(input)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	isPDF(t, result.OutputPath)
}

func TestConvertRemoteImageSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.md"), "![a](http://example.com/a.png)\n")

	svc := NewService()
	defer svc.Close()

	input, err := svc.ProcessInput([]string{dir})
	if err != nil {
		t.Fatalf("ProcessInput: %v", err)
	}
	if _, err := svc.Convert(input); err != nil {
		t.Errorf("Convert = %v, want nil (remote images are skipped)", err)
	}
}

func TestConvertMissingImageFailsAtomically(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.md"), "before\n\n![a](missing.png)\n")

	svc := NewService()
	defer svc.Close()

	input, err := svc.ProcessInput([]string{dir})
	if err != nil {
		t.Fatalf("ProcessInput: %v", err)
	}
	if _, err := svc.Convert(input); !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("Convert = %v, want ErrImageNotFound", err)
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultOutputName)); !os.IsNotExist(err) {
		t.Errorf("failed conversion left an output file")
	}
}

func TestConvertZipEndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := filepath.Join(dir, "bundle.zip")
	writeZip(t, archive, map[string]string{"readme.md": "# Zipped\n\ncontent\n"})

	svc := NewService()
	defer svc.Close()

	input, err := svc.ProcessInput([]string{archive})
	if err != nil {
		t.Fatalf("ProcessInput: %v", err)
	}
	result, err := svc.Convert(input)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if result.OutputPath != filepath.Join(dir, DefaultOutputName) {
		t.Errorf("output = %q, want it next to the archive", result.OutputPath)
	}
	isPDF(t, result.OutputPath)

	// Successful conversion clears the scratch extraction area.
	scratch := filepath.Dir(input.MarkdownFiles[0])
	if _, err := os.Stat(scratch); !os.IsNotExist(err) {
		t.Errorf("scratch dir %s still exists after Convert", scratch)
	}
}

func TestConvertCustomOutputName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.md"), "# a\n")

	svc := NewService(WithOutputName("export.pdf"))
	defer svc.Close()

	input, err := svc.ProcessInput([]string{dir})
	if err != nil {
		t.Fatalf("ProcessInput: %v", err)
	}
	result, err := svc.Convert(input)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if filepath.Base(result.OutputPath) != "export.pdf" {
		t.Errorf("output = %q, want export.pdf", result.OutputPath)
	}
}

// ---------------------------------------------------------------------------
// TestRenderFiles - Document Assembly
// ---------------------------------------------------------------------------

func TestRenderFilesEmitsFileHeadingsInOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.md")
	second := filepath.Join(dir, "second.md")
	writeFile(t, first, "alpha\n")
	writeFile(t, second, "beta\n")

	rec := &blockRecorder{}
	if err := renderFiles([]string{first, second}, rec); err != nil {
		t.Fatalf("renderFiles: %v", err)
	}

	var kinds, headings []string
	for _, b := range rec.blocks {
		kinds = append(kinds, b.kind)
		if b.kind == "heading" {
			if b.level != 2 {
				t.Errorf("file heading level = %d, want 2", b.level)
			}
			headings = append(headings, b.text)
		}
	}
	if !equalStrings(kinds, []string{"heading", "paragraph", "heading", "paragraph"}) {
		t.Fatalf("kinds = %q", kinds)
	}
	if !equalStrings(headings, []string{"File: first.md", "File: second.md"}) {
		t.Errorf("headings = %q", headings)
	}
}

func TestRenderFilesMissingFile(t *testing.T) {
	t.Parallel()

	err := renderFiles([]string{filepath.Join(t.TempDir(), "gone.md")}, &blockRecorder{})
	if !errors.Is(err, ErrReadFile) {
		t.Errorf("err = %v, want ErrReadFile", err)
	}
}

func TestRenderFilesLossyDecode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "latin1.md")
	if err := os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9, '\n'}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	rec := &blockRecorder{}
	if err := renderFiles([]string{path}, rec); err != nil {
		t.Fatalf("renderFiles: %v", err)
	}
	found := false
	for _, b := range rec.blocks {
		if b.kind == "paragraph" && strings.HasPrefix(b.text, "caf") {
			found = true
		}
	}
	if !found {
		t.Errorf("blocks = %+v, want a caf* paragraph despite invalid UTF-8", rec.blocks)
	}
}

package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// OCRSupport describes whether optical character recognition is available
// in the runtime environment. The capability is probed once at startup;
// callers branch on Available instead of suppressing errors at call sites.
type OCRSupport struct {
	rasterizerPath string
	tesseractPath  string
}

// DetectOCRSupport probes the PATH for the external tools OCR needs:
// pdftoppm (poppler) to rasterize PDF pages and tesseract to recognize
// text in the rendered images.
func DetectOCRSupport() OCRSupport {
	var s OCRSupport
	if p, err := exec.LookPath("pdftoppm"); err == nil {
		s.rasterizerPath = p
	}
	if p, err := exec.LookPath("tesseract"); err == nil {
		s.tesseractPath = p
	}
	return s
}

// Available reports whether both OCR tools were found.
func (s OCRSupport) Available() bool {
	return s.rasterizerPath != "" && s.tesseractPath != ""
}

// ImageText rasterizes the PDF pages at 300 DPI and runs text recognition
// over each rendered page, returning the recognized text joined with
// newlines.
func (s OCRSupport) ImageText(pdfData []byte) (string, error) {
	if !s.Available() {
		return "", fmt.Errorf("ocr tools not available")
	}

	dir, err := os.MkdirTemp("", "resume-ocr-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	rasterize := exec.Command(s.rasterizerPath, "-png", "-r", "300", "-", filepath.Join(dir, "page"))
	rasterize.Stdin = bytes.NewReader(pdfData)
	if err := rasterize.Run(); err != nil {
		return "", fmt.Errorf("failed to rasterize pdf: %w", err)
	}

	images, err := filepath.Glob(filepath.Join(dir, "page*.png"))
	if err != nil || len(images) == 0 {
		return "", fmt.Errorf("no pages rendered")
	}
	sort.Strings(images)

	var pages []string
	for _, image := range images {
		var out bytes.Buffer
		recognize := exec.Command(s.tesseractPath, image, "stdout")
		recognize.Stdout = &out
		if err := recognize.Run(); err != nil {
			return "", fmt.Errorf("failed to recognize %s: %w", filepath.Base(image), err)
		}
		pages = append(pages, out.String())
	}
	return strings.Join(pages, "\n"), nil
}

package ingestion

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Extractor reads uploaded document bytes and produces normalized text.
// OCR support is resolved once at construction so the degraded path is
// explicit rather than discovered per request.
type Extractor struct {
	ocr OCRSupport
}

// NewExtractor creates an Extractor, probing the environment for OCR
// capability.
func NewExtractor() *Extractor {
	return &Extractor{ocr: DetectOCRSupport()}
}

// ExtractText produces normalized text from raw document bytes. The format
// is inferred from the filename extension: .pdf and .docx get dedicated
// parsers, .html/.htm goes through the HTML reader, and anything else is
// treated as UTF-8 text with invalid bytes dropped. Extraction never
// returns an error; unreadable input yields an empty string.
func (e *Extractor) ExtractText(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return NormalizeText(e.pdfToText(data))
	case ".docx":
		return NormalizeText(docxToText(data))
	case ".html", ".htm":
		return NormalizeText(htmlToText(data))
	default:
		return NormalizeText(strings.ToValidUTF8(string(data), ""))
	}
}

// pdfToText attempts per-page native text extraction first and falls back
// to OCR when every page is empty and the capability is available.
func (e *Extractor) pdfToText(data []byte) string {
	text := nativePDFText(data)
	if strings.TrimSpace(text) != "" {
		return text
	}
	if e.ocr.Available() {
		// Best effort: scanned resumes with no text layer.
		if ocrText, err := e.ocr.ImageText(data); err == nil {
			return ocrText
		}
	}
	return ""
}

func nativePDFText(data []byte) string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n")
}

var (
	docxParagraphRx = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	docxRunRx       = regexp.MustCompile(`(?s)<w:t[^>]*>(.*?)</w:t>`)
)

// docxToText concatenates all non-empty paragraph texts with newline
// separators. The docx library exposes the raw document XML, so paragraph
// text is collected from the <w:t> runs of each <w:p> block.
func docxToText(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	var paragraphs []string
	for _, para := range docxParagraphRx.FindAllString(content, -1) {
		var runs []string
		for _, m := range docxRunRx.FindAllStringSubmatch(para, -1) {
			runs = append(runs, unescapeXML(m[1]))
		}
		text := strings.Join(runs, "")
		if strings.TrimSpace(text) != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return strings.Join(paragraphs, "\n")
}

var xmlEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

func unescapeXML(s string) string {
	return xmlEntityReplacer.Replace(s)
}

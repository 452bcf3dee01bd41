package ingestion

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlToText extracts the visible text of an HTML resume export. Script
// and style bodies are removed; block-level text nodes are joined with
// newlines so heading detection downstream still works.
func htmlToText(data []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	doc.Find("script, style, noscript").Remove()

	var lines []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div, span").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes: skip containers whose children are also
		// selected, otherwise text is duplicated.
		if s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(lines, "\n")
}

package loader

import (
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// minTextLayerChars is the smallest embedded text layer worth trusting.
// Scanner-generated PDFs often carry a few stray characters of metadata.
const minTextLayerChars = 50

// TextLayer probes a PDF for an embedded text layer. When a digitally
// generated document already carries selectable text, recognition can be
// skipped entirely and the text used as-is. Returns ("", false) for
// non-PDF inputs, scanned PDFs, and anything undecodable.
func TextLayer(path string) (string, bool) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "", false
	}

	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if len(text) < minTextLayerChars {
		return "", false
	}
	return text, true
}

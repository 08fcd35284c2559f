// Package pdftext pulls plain text out of PDF files for previews.
package pdftext

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Content is the extracted text of a PDF.
type Content struct {
	Text      string
	PageCount int
}

// Extract reads up to maxChars runes of text from the PDF at path, page by
// page. maxChars <= 0 reads everything. Pages that fail to decode are skipped.
func Extract(path string, maxChars int) (*Content, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	total := r.NumPage()

	for i := 1; i <= total; i++ {
		if maxChars > 0 && utf8.RuneCountInString(sb.String()) >= maxChars {
			break
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	return &Content{
		Text:      Truncate(Clean(sb.String()), maxChars),
		PageCount: total,
	}, nil
}

// Clean drops blank lines and surrounding whitespace.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

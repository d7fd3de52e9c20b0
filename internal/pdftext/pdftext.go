package pdftext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pfrederiksen/hindsight/internal/logger"
)

// ErrNoText is returned when no page of the PDF yields any text, which
// usually means a scanned document with no embedded text layer.
var ErrNoText = errors.New("no page text extracted")

// ExtractPages pulls text from every page of a PDF, one string per page.
// Pages that yield nothing are dropped.
func ExtractPages(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	for num := 1; num <= r.NumPage(); num++ {
		page := r.Page(num)
		if page.V.IsNull() {
			continue
		}
		text := pageText(page)
		if strings.TrimSpace(text) == "" {
			logger.Debug("page has no text", logger.Fields{"page": num})
			continue
		}
		pages = append(pages, text)
	}

	if len(pages) == 0 {
		return nil, ErrNoText
	}
	return pages, nil
}

// pageText prefers row-ordered extraction, which keeps each schedule entry
// on one line, and falls back to the flat text stream.
func pageText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err == nil && len(rows) > 0 {
		var b strings.Builder
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					b.WriteString(" ")
				}
				b.WriteString(word.S)
			}
			b.WriteString("\n")
		}
		return b.String()
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

// SelectPages filters extracted pages by a 1-based spec like "1-3,7".
// An empty spec keeps everything. Page numbers outside the document are
// ignored rather than treated as errors.
func SelectPages(pages []string, spec string) ([]string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return pages, nil
	}

	keep := make(map[int]bool)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			if start > end {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			for n := start; n <= end; n++ {
				keep[n] = true
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		keep[n] = true
	}

	var selected []string
	for i, text := range pages {
		if keep[i+1] {
			selected = append(selected, text)
		}
	}
	return selected, nil
}

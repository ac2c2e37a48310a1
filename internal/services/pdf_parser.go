package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

type PDFParserService interface {
	ExtractPages(data []byte) ([]string, error)
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractPages returns the plain text of every page in page order. Pages
// that cannot be decoded come back empty.
func (p *pdfParserService) ExtractPages(data []byte) (pages []string, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	totalPage := r.NumPage()
	pages = make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Debug().Err(err).Int("page", pageIndex).Msg("skipping unreadable PDF page")
			pages = append(pages, "")
			continue
		}

		pages = append(pages, text)
	}

	return pages, nil
}

// joinPages concatenates the non-empty pages, one line break after each, and
// trims the result. Whitespace-only pages are kept.
func joinPages(pages []string) string {
	var textBuilder strings.Builder
	for _, page := range pages {
		if page == "" {
			continue
		}
		textBuilder.WriteString(page)
		textBuilder.WriteString("\n")
	}
	return strings.TrimSpace(textBuilder.String())
}

package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"alfredoptarigan/ats-resume-checker/internal/models"
)

// DocumentExtractor turns one uploaded document into plain text.
type DocumentExtractor interface {
	Extract(ctx context.Context, doc models.Document) (string, error)
}

type DocumentKind string

const (
	KindPDF  DocumentKind = "pdf"
	KindDOCX DocumentKind = "docx"
	KindText DocumentKind = "text"
)

// SupportedExtensions lists the upload extensions the extractor understands.
var SupportedExtensions = map[string]DocumentKind{
	".pdf":  KindPDF,
	".docx": KindDOCX,
	".txt":  KindText,
}

type documentExtractor struct {
	pdfParser  PDFParserService
	docxParser DOCXParserService
	timeout    time.Duration
}

func NewDocumentExtractor(pdfParser PDFParserService, docxParser DOCXParserService, timeout time.Duration) DocumentExtractor {
	return &documentExtractor{
		pdfParser:  pdfParser,
		docxParser: docxParser,
		timeout:    timeout,
	}
}

type extractOutcome struct {
	text string
	err  error
}

// Extract implements DocumentExtractor. The parsers are not context aware, so
// the work runs in its own goroutine and is abandoned on timeout.
func (e *documentExtractor) Extract(ctx context.Context, doc models.Document) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	done := make(chan extractOutcome, 1)
	go func() {
		text, err := e.extract(doc)
		done <- extractOutcome{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", &ExtractionError{DocumentName: doc.Name, Cause: ctx.Err()}
	case out := <-done:
		if out.err != nil {
			return "", &ExtractionError{DocumentName: doc.Name, Cause: out.err}
		}
		return out.text, nil
	}
}

func (e *documentExtractor) extract(doc models.Document) (string, error) {
	var (
		parts []string
		err   error
	)

	switch DetectKind(doc) {
	case KindPDF:
		parts, err = e.pdfParser.ExtractPages(doc.Data)
	case KindDOCX:
		parts, err = e.docxParser.ExtractParagraphs(doc.Data)
	case KindText:
		if !utf8.Valid(doc.Data) {
			return "", fmt.Errorf("text file is not valid UTF-8")
		}
		parts = strings.Split(string(doc.Data), "\n")
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, doc.Name)
	}
	if err != nil {
		return "", err
	}

	text := joinPages(parts)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// DetectKind picks a parser from the file extension, then from the content.
func DetectKind(doc models.Document) DocumentKind {
	if kind, ok := SupportedExtensions[strings.ToLower(filepath.Ext(doc.Name))]; ok {
		return kind
	}

	switch {
	case bytes.HasPrefix(doc.Data, []byte("%PDF")):
		return KindPDF
	case bytes.HasPrefix(doc.Data, []byte("PK\x03\x04")):
		return KindDOCX
	case doc.ContentType == "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return KindDOCX
	case strings.HasPrefix(doc.ContentType, "text/plain"):
		return KindText
	}
	return ""
}

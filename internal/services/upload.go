package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"alfredoptarigan/ats-resume-checker/internal/models"
)

// CheckDocumentName rejects names with an extension the extractor cannot
// read. Names without an extension pass; their kind is sniffed from content.
func CheckDocumentName(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return nil
	}
	if _, ok := SupportedExtensions[ext]; !ok {
		return &InputValidationError{
			Field:  "resumes",
			Reason: fmt.Sprintf("%s has unsupported extension %q (allowed: .pdf, .docx, .txt)", name, ext),
		}
	}
	return nil
}

// ReadUpload validates one multipart file and reads it into memory. Nothing
// is written to disk.
func ReadUpload(file *multipart.FileHeader, maxFileSize int64) (models.Document, error) {
	if err := CheckDocumentName(file.Filename); err != nil {
		return models.Document{}, err
	}

	if maxFileSize > 0 && file.Size > maxFileSize {
		return models.Document{}, &InputValidationError{
			Field:  "resumes",
			Reason: fmt.Sprintf("%s is too large. Max size: %d bytes", file.Filename, maxFileSize),
		}
	}

	src, err := file.Open()
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return models.Document{
		Name:        file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// ReadUploads reads every file in upload order, stopping at the first one
// that fails validation.
func ReadUploads(files []*multipart.FileHeader, maxFileSize int64) ([]models.Document, error) {
	docs := make([]models.Document, 0, len(files))
	for _, file := range files {
		doc, err := ReadUpload(file, maxFileSize)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

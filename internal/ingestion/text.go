// Package ingestion extracts raw text from uploaded résumé documents.
// Uploads are written to a transient temp file for the converter and the
// file is removed on every exit path.
package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// ErrUnreadable indicates the uploaded document could not be read or
// converted to text.
type ErrUnreadable struct {
	Filename string
	Cause    error
}

func (e *ErrUnreadable) Error() string {
	return fmt.Sprintf("could not extract text from %s: %v", e.Filename, e.Cause)
}

func (e *ErrUnreadable) Unwrap() error {
	return e.Cause
}

// ExtractText converts an uploaded résumé into cleaned plain text.
// Supports PDF, DOCX, DOC, RTF, ODT and plain text uploads.
func ExtractText(filename string, reader io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "resume-*"+sanitizeExt(filename))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return "", &ErrUnreadable{Filename: filename, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &ErrUnreadable{Filename: filename, Cause: err}
	}

	text, err := extractPath(filename, path)
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}

func extractPath(filename, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", &ErrUnreadable{Filename: filename, Cause: err}
		}
		return res.Body, nil
	case ".txt", "":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", &ErrUnreadable{Filename: filename, Cause: err}
		}
		return string(content), nil
	default:
		return "", &ErrUnreadable{
			Filename: filename,
			Cause:    fmt.Errorf("unsupported file type %s", filepath.Ext(filename)),
		}
	}
}

// CleanText collapses all whitespace runs to single spaces.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// sanitizeExt keeps the original extension on the temp file so the
// converter can detect the format, dropping anything suspicious.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

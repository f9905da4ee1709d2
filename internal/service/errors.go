package service

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidID           = errors.New("invalid or missing document id")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrInvalidQuestion     = errors.New("question text is required")
	ErrEmptyFile           = errors.New("uploaded file is empty")
	ErrMetadataRequired    = errors.New("filename and content type are required")
	ErrUnsupportedFormat   = errors.New("unsupported media type")
	ErrExtractionFailed    = errors.New("text extraction failed")
	ErrEmptyContent        = errors.New("no text could be extracted from the document")
	ErrOriginalUnavailable = errors.New("original file is not archived")
)

// GenerationError wraps a failure reported by the text-generation service.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "error generating response: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// canonicalID accepts only the 36-character hyphenated UUID form, in any
// letter case, and returns it lowercased as the stores keep it.
func canonicalID(id string) (string, error) {
	if len(id) != 36 {
		return "", ErrInvalidID
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidID
	}
	return u.String(), nil
}

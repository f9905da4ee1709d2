package extract

import (
	"context"
	"errors"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("text document is not valid UTF-8")

// PlainText passes UTF-8 text documents through unchanged.
type PlainText struct{}

func (PlainText) Extract(_ context.Context, data []byte, _, _ string) (*Result, error) {
	if !utf8.Valid(data) {
		return nil, errInvalidUTF8
	}
	return &Result{Text: string(data)}, nil
}

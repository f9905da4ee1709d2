package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// PDF extracts the plain text layer of a PDF document.
type PDF struct{}

// Extract parses data as a PDF. The parser panics on some malformed inputs;
// those panics are reported as errors.
func (PDF) Extract(ctx context.Context, data []byte, _, _ string) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("parse pdf: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rd, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse pdf: %w", err)
	}
	txt, err := rd.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("read pdf text: %w", err)
	}
	b, err := io.ReadAll(txt)
	if err != nil {
		return nil, fmt.Errorf("read pdf text: %w", err)
	}

	return &Result{Text: string(b)}, nil
}

package extract

import (
	"context"
	_ "embed"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/sky.pdf
var skyPDF []byte

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Extract(context.Context, []byte, string, string) (*Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &Result{Text: s.text}, nil
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		filename  string
		mediaType string
		want      Format
	}{
		{"pdf media type", []byte("x"), "a.bin", "application/pdf", FormatPDF},
		{"pdf media type with params", []byte("x"), "a", "application/pdf; name=a.pdf", FormatPDF},
		{"pdf extension", []byte("x"), "Report.PDF", "application/octet-stream", FormatPDF},
		{"pdf magic", []byte("%PDF-1.7\n"), "upload", "application/octet-stream", FormatPDF},
		{"text media type", []byte("hello"), "a", "text/plain; charset=utf-8", FormatText},
		{"markdown extension", []byte("# hi"), "notes.md", "", FormatText},
		{"sniffed text", []byte("plain words"), "blob", "application/octet-stream", FormatText},
		{"binary", []byte{0x00, 0x01, 0x02, 0xff}, "blob", "application/octet-stream", ""},
		{"image", []byte("\x89PNG\r\n\x1a\n"), "a.png", "image/png", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.data, tt.filename, tt.mediaType))
		})
	}
}

func TestRouter_Extract(t *testing.T) {
	ctx := context.Background()
	r := NewRouter(map[Format]Extractor{
		FormatPDF:  stubExtractor{text: "from pdf"},
		FormatText: stubExtractor{err: errors.New("boom")},
	})

	res, err := r.Extract(ctx, []byte("%PDF-1.4"), "a.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "from pdf", res.Text)

	_, err = r.Extract(ctx, []byte("hello"), "a.txt", "text/plain")
	assert.EqualError(t, err, "boom")

	_, err = r.Extract(ctx, []byte{0x00, 0xff}, "a.png", "image/png")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestPlainText_Extract(t *testing.T) {
	res, err := PlainText{}.Extract(context.Background(), []byte("The sky is blue."), "sky.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "The sky is blue.", res.Text)

	_, err = PlainText{}.Extract(context.Background(), []byte{0xff, 0xfe, 0xfd}, "bad.txt", "text/plain")
	assert.ErrorIs(t, err, errInvalidUTF8)
}

func TestPDF_Extract(t *testing.T) {
	res, err := PDF{}.Extract(context.Background(), skyPDF, "sky.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "The sky is blue.")

	res, err = Default().Extract(context.Background(), skyPDF, "upload", "application/octet-stream")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "The sky is blue.")
}

func TestPDF_ExtractMalformed(t *testing.T) {
	res, err := PDF{}.Extract(context.Background(), []byte("%PDF-1.4\nnot really a pdf"), "bad.pdf", "application/pdf")
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestDefault_ExtractText(t *testing.T) {
	res, err := Default().Extract(context.Background(), []byte("The sky is blue."), "sky.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "The sky is blue.", res.Text)
}

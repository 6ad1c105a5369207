// Package extractor turns uploaded documents into plain text.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

//go:generate mockgen -source=extractor.go -destination=../mock/text_extractor_mock.go -package=mock

var (
	ErrNilReader   = errors.New("document content is nil")
	ErrOpeningPDF  = errors.New("failed to open PDF")
	ErrReadingPage = errors.New("failed to read PDF page")
)

// TextExtractor returns the plain text of a document.
type TextExtractor interface {
	Extract(ctx context.Context, content io.ReaderAt, size int64) (string, error)
}

// PDFExtractor reads every page with ledongthuc/pdf and joins the page
// texts with a newline.
type PDFExtractor struct{}

func NewPDFExtractor() TextExtractor {
	return &PDFExtractor{}
}

// Extract returns the trimmed text of all pages. Malformed input that makes
// the parser panic is reported as ErrOpeningPDF.
func (e *PDFExtractor) Extract(ctx context.Context, content io.ReaderAt, size int64) (text string, err error) {
	if content == nil {
		return "", ErrNilReader
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrOpeningPDF, r)
		}
	}()

	reader, err := pdf.NewReader(content, size)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpeningPDF, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		if err = ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w %d: %w", ErrReadingPage, i, err)
		}
		pages = append(pages, pageText)
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

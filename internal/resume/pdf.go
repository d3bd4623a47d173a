// Package resume turns an uploaded resume document into a normalized skill
// list, using the same extraction backend and keyword fallback as the job
// pipeline.
package resume

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

// TextDecoder turns an uploaded document into plain text.
type TextDecoder interface {
	DecodeText(r io.Reader) (string, error)
}

// PDFDecoder extracts text from PDF resumes page by page. Pages that fail
// to decode are skipped; the decoder only errors when no page yields text.
type PDFDecoder struct{}

func (PDFDecoder) DecodeText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	pdfReader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("failed to get page count: %w", err)
	}
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	var text strings.Builder
	extractedAny := false
	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			log.Printf("⚠️ Failed to get page %d: %v", i, err)
			continue
		}

		ex, err := extractor.New(page)
		if err != nil {
			log.Printf("⚠️ Failed to create extractor for page %d: %v", i, err)
			continue
		}

		pageText, err := ex.ExtractText()
		if err != nil {
			log.Printf("⚠️ Failed to extract text from page %d: %v", i, err)
			continue
		}

		if pageText != "" {
			text.WriteString(pageText)
			text.WriteString("\n")
			extractedAny = true
		}
	}

	if !extractedAny {
		return "", fmt.Errorf("no text could be extracted from any page")
	}
	return strings.TrimSpace(text.String()), nil
}

// PlainDecoder passes a text document through unchanged.
type PlainDecoder struct{}

func (PlainDecoder) DecodeText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

package services

import (
	"context"
	"log"
	"strings"
)

// TextExtractor turns a PDF into best-effort plain text using a two-tier
// strategy: embedded-text extraction first, image rasterization plus OCR
// second. Extract never fails; when both tiers come up empty the caller
// gets an empty string and must treat it as "no signal", not an error.
type TextExtractor interface {
	Extract(ctx context.Context, pdfPath string) string
}

type textExtractor struct {
	parser PDFParserService
	ocr    OCRService
}

func NewTextExtractor(parser PDFParserService, ocr OCRService) TextExtractor {
	return &textExtractor{
		parser: parser,
		ocr:    ocr,
	}
}

// Extract implements TextExtractor.
func (e *textExtractor) Extract(ctx context.Context, pdfPath string) string {
	text, err := e.parser.ExtractText(pdfPath)
	if err == nil {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed
		}
	}

	if err != nil {
		log.Printf("⚠️  Embedded text extraction failed, trying OCR: %v\n", err)
	} else {
		log.Println("🔍 No embedded text found, falling back to OCR")
	}

	if !e.ocr.Available() {
		log.Println("⚠️  OCR toolchain unavailable, returning empty extraction")
		return ""
	}
	recognized, err := e.ocr.RecognizeFile(ctx, pdfPath)
	if err != nil {
		log.Printf("⚠️  OCR extraction failed: %v\n", err)
		return ""
	}

	return strings.TrimSpace(recognized)
}

package services

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test doubles
// ==========================

type stubPDFParser struct {
	text string
	err  error
}

func (s *stubPDFParser) ExtractText(filePath string) (string, error) {
	return s.text, s.err
}

type stubOCR struct {
	available bool
	text      string
	err       error
	called    bool
}

func (s *stubOCR) Available() bool {
	return s.available
}

func (s *stubOCR) RecognizeFile(ctx context.Context, pdfPath string) (string, error) {
	s.called = true
	return s.text, s.err
}

// ==========================
// Tests
// ==========================

func TestTextExtractor_EmbeddedTextSkipsOCR(t *testing.T) {
	ocr := &stubOCR{available: true, text: "ocr text"}
	extractor := NewTextExtractor(&stubPDFParser{text: "  embedded resume text \n"}, ocr)

	got := extractor.Extract(context.Background(), "resume.pdf")

	assert.Equal(t, "embedded resume text", got)
	assert.False(t, ocr.called, "OCR must never run when embedded text exists")
}

func TestTextExtractor_FallsBackToOCR(t *testing.T) {
	ocr := &stubOCR{available: true, text: "recognized page one\nrecognized page two"}
	extractor := NewTextExtractor(&stubPDFParser{err: errors.New("no text content found in PDF")}, ocr)

	got := extractor.Extract(context.Background(), "scan.pdf")

	assert.True(t, ocr.called)
	assert.Equal(t, "recognized page one\nrecognized page two", got)
}

func TestTextExtractor_EmptyWhenOCRUnavailable(t *testing.T) {
	ocr := &stubOCR{available: false}
	extractor := NewTextExtractor(&stubPDFParser{err: errors.New("failed to open PDF")}, ocr)

	got := extractor.Extract(context.Background(), "scan.pdf")

	assert.Equal(t, "", got)
	assert.False(t, ocr.called)
}

func TestTextExtractor_EmptyWhenOCRFails(t *testing.T) {
	ocr := &stubOCR{available: true, err: errors.New("tesseract failed")}
	extractor := NewTextExtractor(&stubPDFParser{err: errors.New("failed to open PDF")}, ocr)

	got := extractor.Extract(context.Background(), "scan.pdf")

	assert.Equal(t, "", got)
	assert.True(t, ocr.called)
}

func TestTextExtractor_LogsDistinguishEmptyFromFailure(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	ocr := &stubOCR{available: false}

	// Tier-1 error: the log must report the failure, not claim the
	// document simply had no embedded text.
	extractor := NewTextExtractor(&stubPDFParser{err: errors.New("failed to open PDF")}, ocr)
	extractor.Extract(context.Background(), "broken.pdf")
	assert.Contains(t, buf.String(), "Embedded text extraction failed")
	assert.NotContains(t, buf.String(), "No embedded text found")

	// Whitespace-only embedded text: this one is genuinely empty.
	buf.Reset()
	extractor = NewTextExtractor(&stubPDFParser{text: "   \n\t  "}, ocr)
	extractor.Extract(context.Background(), "empty.pdf")
	assert.Contains(t, buf.String(), "No embedded text found")
}

func TestTextExtractor_WhitespaceOnlyEmbeddedTextFallsThrough(t *testing.T) {
	ocr := &stubOCR{available: true, text: "from ocr"}
	extractor := NewTextExtractor(&stubPDFParser{text: "   \n\t  "}, ocr)

	got := extractor.Extract(context.Background(), "resume.pdf")

	assert.True(t, ocr.called)
	assert.Equal(t, "from ocr", got)
}

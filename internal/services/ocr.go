package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"ats-resume-analyzer/internal/config"
)

// OCRService is the image-based fallback extraction tier: it rasterizes
// each PDF page with pdftoppm and recognizes the text with tesseract.
// Both binaries are resolved once at construction; when either is
// missing the service reports itself unavailable and the caller treats
// the document as having no signal.
type OCRService interface {
	Available() bool
	RecognizeFile(ctx context.Context, pdfPath string) (string, error)
}

type ocrService struct {
	pdftoppmPath  string
	tesseractPath string
	dpi           int
	concurrency   int
}

func NewOCRService(cfg config.OCRConfig) OCRService {
	s := &ocrService{
		dpi:         cfg.DPI,
		concurrency: cfg.Concurrency,
	}
	if s.dpi <= 0 {
		s.dpi = 300
	}
	if s.concurrency <= 0 {
		s.concurrency = 1
	}

	s.pdftoppmPath = resolvePdftoppm(cfg.PopplerPath)
	s.tesseractPath = resolveTesseract(cfg.TesseractCmd)

	return s
}

// Available implements OCRService.
func (s *ocrService) Available() bool {
	return s.pdftoppmPath != "" && s.tesseractPath != ""
}

// RecognizeFile implements OCRService. Pages are processed by a bounded
// pool and reassembled in page order; a failure on one page is logged
// and skipped, never aborting the remaining pages.
func (s *ocrService) RecognizeFile(ctx context.Context, pdfPath string) (string, error) {
	if !s.Available() {
		return "", fmt.Errorf("ocr toolchain not available")
	}

	pageCount, err := api.PageCountFile(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to count PDF pages: %w", err)
	}
	if pageCount == 0 {
		return "", nil
	}

	workDir, err := os.MkdirTemp("", "resume-ocr-")
	if err != nil {
		return "", fmt.Errorf("failed to create OCR work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	pageTexts := make([]string, pageCount)
	semaphore := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for page := 1; page <= pageCount; page++ {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			text, err := s.recognizePage(ctx, pdfPath, workDir, page)
			if err != nil {
				log.Printf("⚠️  OCR failed for page %d: %v\n", page, err)
				return
			}
			pageTexts[page-1] = text
		}(page)
	}

	wg.Wait()

	var nonEmpty []string
	for _, text := range pageTexts {
		if text != "" {
			nonEmpty = append(nonEmpty, text)
		}
	}

	return strings.Join(nonEmpty, "\n"), nil
}

func (s *ocrService) recognizePage(ctx context.Context, pdfPath, workDir string, page int) (string, error) {
	prefix := filepath.Join(workDir, fmt.Sprintf("page-%d", page))

	rasterize := exec.CommandContext(ctx, s.pdftoppmPath,
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
		"-r", strconv.Itoa(s.dpi),
		"-png", "-singlefile",
		pdfPath, prefix,
	)
	if out, err := rasterize.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm failed: %w (%s)", err, bytes.TrimSpace(out))
	}

	recognize := exec.CommandContext(ctx, s.tesseractPath, prefix+".png", "stdout")
	var stderr bytes.Buffer
	recognize.Stderr = &stderr
	out, err := recognize.Output()
	if err != nil {
		return "", fmt.Errorf("tesseract failed: %w (%s)", err, bytes.TrimSpace(stderr.Bytes()))
	}

	return strings.TrimSpace(string(out)), nil
}

// resolvePdftoppm locates the pdftoppm binary, preferring an explicit
// poppler directory hint over a PATH lookup.
func resolvePdftoppm(popplerPath string) string {
	if popplerPath != "" {
		candidate := filepath.Join(popplerPath, "pdftoppm")
		if resolved, err := exec.LookPath(candidate); err == nil {
			return resolved
		}
		log.Printf("⚠️  pdftoppm not found under POPPLER_PATH %q\n", popplerPath)
		return ""
	}
	resolved, err := exec.LookPath("pdftoppm")
	if err != nil {
		return ""
	}
	return resolved
}

// resolveTesseract locates the tesseract binary, honoring an explicit
// command override.
func resolveTesseract(tesseractCmd string) string {
	if tesseractCmd != "" {
		if resolved, err := exec.LookPath(tesseractCmd); err == nil {
			return resolved
		}
		log.Printf("⚠️  tesseract not found at TESSERACT_CMD %q\n", tesseractCmd)
		return ""
	}
	resolved, err := exec.LookPath("tesseract")
	if err != nil {
		return ""
	}
	return resolved
}

package util

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

var ErrUnsupportedDocument = errors.New("unsupported document type (use .pdf or .txt)")

// ExtractDocumentText returns the text of an uploaded bid document.
func ExtractDocumentText(filename string, data []byte, log *zap.Logger) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%s is not valid UTF-8 text", filename)
		}
		return strings.TrimSpace(string(data)), nil
	case ".pdf":
		return ExtractPDFText(data, log)
	default:
		return "", ErrUnsupportedDocument
	}
}

// ExtractPDFText reads the PDF text layer and falls back to OCR (Tesseract)
// for pages without one.
func ExtractPDFText(data []byte, log *zap.Logger) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	log.Debug("extracting pdf", zap.Int("pages", doc.NumPage()))

	var fullText bytes.Buffer
	var lastErr error
	tesseractChecked, tesseractOK := false, false

	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
			log.Warn("pdf text extraction failed", zap.Int("page", n+1), zap.Error(err))
		}
		pageText = strings.TrimSpace(pageText)

		if pageText == "" {
			if !tesseractChecked {
				tesseractChecked = true
				if err := checkTesseract(); err != nil {
					log.Warn("tesseract unavailable, skipping OCR", zap.Error(err))
				} else {
					tesseractOK = true
				}
			}
			if tesseractOK {
				pageText, err = ocrPage(doc, n)
				if err != nil {
					lastErr = err
					log.Warn("ocr failed", zap.Int("page", n+1), zap.Error(err))
					continue
				}
			}
		}

		if len(pageText) > 0 {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if len(result) == 0 {
		if lastErr != nil {
			return "", fmt.Errorf("failed to extract text from PDF: %w", lastErr)
		}
		return "", fmt.Errorf("no text extracted from PDF (PDF might be empty or images are unreadable)")
	}

	log.Debug("pdf extracted", zap.Int("chars", len(result)))
	return result, nil
}

func ocrPage(doc *fitz.Document, n int) (string, error) {
	img, err := doc.Image(n)
	if err != nil {
		return "", fmt.Errorf("page %d: failed to extract image: %w", n+1, err)
	}

	tmpFile, err := os.CreateTemp("", "page-*.png")
	if err != nil {
		return "", fmt.Errorf("page %d: failed to create temp file: %w", n+1, err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	if err := savePNG(tmpPath, img); err != nil {
		return "", fmt.Errorf("page %d: failed to save PNG: %w", n+1, err)
	}

	cmd := exec.Command("tesseract", tmpPath, "stdout", "-l", "eng")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("page %d: tesseract error: %w, output: %s", n+1, err, string(out))
	}
	return strings.TrimSpace(string(out)), nil
}

func checkTesseract() error {
	cmd := exec.Command("tesseract", "-v")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("tesseract not found or not executable: %w\nOutput: %s", err, string(out))
	}
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	return nil
}

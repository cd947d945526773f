package service

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tieubaoca/studybuddy-be/apperr"
	"github.com/tieubaoca/studybuddy-be/utils"
)

// DocumentExtractor turns a stored note into plain text.
type DocumentExtractor interface {
	ExtractText(ctx context.Context, fileURL string) (string, error)
}

var pdfinfoPagesRe = regexp.MustCompile(`Pages:\s+(\d+)`)

// PDFService fetches a PDF by URL, rasterizes each page with pdftoppm and
// runs tesseract OCR per page, concatenating the results in page order. The
// combined text is capped so it fits in a model prompt.
type PDFService struct {
	httpClient *http.Client
	maxChars   int

	// run executes an external command and returns its stdout. Swapped out
	// in tests.
	run func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func NewPDFService(fetchTimeout time.Duration, maxChars int) *PDFService {
	return &PDFService{
		httpClient: &http.Client{Timeout: fetchTimeout},
		maxChars:   maxChars,
		run:        runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out.Bytes(), nil
}

func (s *PDFService) ExtractText(ctx context.Context, fileURL string) (string, error) {
	pdfPath, cleanup, err := s.fetchToTempFile(ctx, fileURL)
	if err != nil {
		return "", apperr.External("fetch note", err)
	}
	defer cleanup()

	totalPages, err := s.numPages(ctx, pdfPath)
	if err != nil {
		return "", apperr.External("pdfinfo", err)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		text, err := s.ocrPage(ctx, pdfPath, pageNum)
		if err != nil {
			return "", apperr.External(fmt.Sprintf("ocr page %d", pageNum), err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return utils.TruncateText(cleanText(sb.String()), s.maxChars), nil
}

// fetchToTempFile downloads the note and writes it to a temp file for the
// poppler tools. The returned cleanup removes the whole temp directory.
func (s *PDFService) fetchToTempFile(ctx context.Context, fileURL string) (string, func(), error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("unexpected status %d fetching note", resp.StatusCode)
	}

	tempDir, err := os.MkdirTemp("", "studybuddy-note-")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { os.RemoveAll(tempDir) }

	pdfPath := filepath.Join(tempDir, "note.pdf")
	f, err := os.Create(pdfPath)
	if err != nil {
		cleanup()
		return "", nil, err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return pdfPath, cleanup, nil
}

func (s *PDFService) numPages(ctx context.Context, pdfPath string) (int, error) {
	out, err := s.run(ctx, "pdfinfo", pdfPath)
	if err != nil {
		return 0, err
	}
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if matches := pdfinfoPagesRe.FindStringSubmatch(scanner.Text()); len(matches) == 2 {
			return strconv.Atoi(matches[1])
		}
	}
	return 0, fmt.Errorf("unable to determine page count from pdfinfo")
}

// ocrPage rasterizes one page to PNG and runs tesseract over it.
func (s *PDFService) ocrPage(ctx context.Context, pdfPath string, pageNum int) (string, error) {
	pageDir := filepath.Join(filepath.Dir(pdfPath), fmt.Sprintf("page-%d", pageNum))
	if err := os.MkdirAll(pageDir, os.ModePerm); err != nil {
		return "", err
	}
	defer os.RemoveAll(pageDir)

	_, err := s.run(ctx, "pdftoppm",
		"-f", strconv.Itoa(pageNum),
		"-l", strconv.Itoa(pageNum),
		"-png", pdfPath, filepath.Join(pageDir, "page"))
	if err != nil {
		return "", err
	}

	images, err := filepath.Glob(filepath.Join(pageDir, "page-*.png"))
	if err != nil || len(images) == 0 {
		return "", fmt.Errorf("no rasterized image for page %d", pageNum)
	}
	sort.Strings(images)

	out, err := s.run(ctx, "tesseract",
		images[0],
		"stdout",
		"--oem", "3",
		"--psm", "3",
	)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func cleanText(text string) string {
	replacements := map[string]string{
		"\u0000": "",   // Null character
		"\ufffd": "",   // Unicode replacement character
		"\u001b": "",   // Escape character
		"\r":     "",   // Carriage return
		"\f":     "\n", // Form feed to newline
	}
	cleaned := text
	for from, to := range replacements {
		cleaned = strings.ReplaceAll(cleaned, from, to)
	}
	return strings.TrimSpace(cleaned)
}

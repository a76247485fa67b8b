package decode

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFText extracts the vector text of all pages, one page after
// another, preserving row structure so the line-oriented extraction
// strategies see one menu entry per line. Scanned PDFs without a text
// layer yield an empty string, not an error.
func PDFText(data []byte) (string, error) {
	path, cleanup, err := tempPDF(data)
	if err != nil {
		return "", err
	}
	defer cleanup()

	if err := api.ValidateFile(path, nil); err != nil {
		return "", fmt.Errorf("invalid pdf: %w", err)
	}

	reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		appendPageText(&sb, page)
	}
	return sb.String(), nil
}

// appendPageText writes a page's text row by row, falling back to the
// plain-text stream when row grouping is unavailable.
func appendPageText(sb *strings.Builder, page pdf.Page) {
	rows, err := page.GetTextByRow()
	if err == nil && len(rows) > 0 {
		for _, row := range rows {
			parts := make([]string, 0, len(row.Content))
			for _, txt := range row.Content {
				if t := strings.TrimSpace(txt.S); t != "" {
					parts = append(parts, t)
				}
			}
			if len(parts) > 0 {
				sb.WriteString(strings.Join(parts, " "))
				sb.WriteByte('\n')
			}
		}
		return
	}
	fonts := make(map[string]*pdf.Font)
	if plain, err := page.GetPlainText(fonts); err == nil {
		sb.WriteString(plain)
		sb.WriteByte('\n')
	}
}

// PDFPageCount returns the number of pages, primarily used to reject
// absurd uploads before text extraction.
func PDFPageCount(data []byte) (int, error) {
	path, cleanup, err := tempPDF(data)
	if err != nil {
		return 0, err
	}
	defer cleanup()

	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("pdf page count: %w", err)
	}
	return count, nil
}

// PDFImages extracts the images embedded in a PDF, typically the
// dish photos of a designed menu card. Placement on the page is not
// recoverable through this path, so the results carry their own
// bounds only.
func PDFImages(data []byte) ([]image.Image, error) {
	path, cleanup, err := tempPDF(data)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	outDir, err := os.MkdirTemp("", "menuscan-pdfimg-*")
	if err != nil {
		return nil, fmt.Errorf("temp image dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	if err := api.ExtractImagesFile(path, outDir, nil, nil); err != nil {
		return nil, fmt.Errorf("extract pdf images: %w", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("read extracted images: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var images []image.Image
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(outDir, e.Name()))
		if err != nil {
			continue
		}
		img, err := Image(raw)
		if err != nil {
			// Unsupported embedded codecs (JBIG2 etc.) are skipped.
			continue
		}
		images = append(images, img)
	}
	return images, nil
}

// tempPDF writes the upload to a temp file for the file-based pdfcpu
// and dslipak APIs.
func tempPDF(data []byte) (string, func(), error) {
	f, err := os.CreateTemp("", "menuscan-*.pdf")
	if err != nil {
		return "", nil, fmt.Errorf("temp pdf: %w", err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("write temp pdf: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close temp pdf: %w", err)
	}
	return path, cleanup, nil
}

// Package decode turns uploaded bytes into extraction input: a raster
// image, raw menu text from a PDF, or structured records from a
// spreadsheet. The heavy lifting is delegated to external decoders
// (image codecs, pdfcpu/dslipak, excelize); this package owns only
// the dispatch and the record normalization.
package decode

import (
	"errors"
	"path/filepath"
	"strings"
)

// Kind declares the input format of an upload.
type Kind string

const (
	KindImage       Kind = "image"
	KindPDF         Kind = "pdf"
	KindSpreadsheet Kind = "spreadsheet"
	KindCSV         Kind = "csv"
)

// ErrUnsupported marks an input that none of the decoders handle.
var ErrUnsupported = errors.New("unsupported input format")

var extKinds = map[string]Kind{
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".bmp":  KindImage,
	".tif":  KindImage,
	".tiff": KindImage,
	".gif":  KindImage,
	".webp": KindImage,
	".pdf":  KindPDF,
	".xlsx": KindSpreadsheet,
	".xlsm": KindSpreadsheet,
	".csv":  KindCSV,
}

// DetectKind infers the input kind from the filename extension,
// falling back to content sniffing of the leading bytes.
func DetectKind(filename string, data []byte) (Kind, error) {
	if k, ok := extKinds[strings.ToLower(filepath.Ext(filename))]; ok {
		return k, nil
	}
	return sniffKind(data)
}

// sniffKind recognizes formats by magic bytes; CSV has none, so plain
// text with separators is the last guess before giving up.
func sniffKind(data []byte) (Kind, error) {
	switch {
	case len(data) >= 5 && string(data[:5]) == "%PDF-":
		return KindPDF, nil
	case len(data) >= 4 && string(data[:4]) == "\x89PNG":
		return KindImage, nil
	case len(data) >= 3 && string(data[:3]) == "\xff\xd8\xff":
		return KindImage, nil
	case len(data) >= 2 && string(data[:2]) == "BM":
		return KindImage, nil
	case len(data) >= 4 && (string(data[:4]) == "II*\x00" || string(data[:4]) == "MM\x00*"):
		return KindImage, nil
	case len(data) >= 4 && string(data[:4]) == "PK\x03\x04":
		return KindSpreadsheet, nil
	case looksLikeDelimitedText(data):
		return KindCSV, nil
	}
	return "", ErrUnsupported
}

func looksLikeDelimitedText(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	sample := data
	if len(sample) > 512 {
		sample = sample[:512]
	}
	for _, b := range sample {
		if b == 0 {
			return false
		}
	}
	s := string(sample)
	return strings.ContainsAny(s, ",;\t") && strings.Contains(s, "\n") ||
		strings.ContainsAny(s, ",;\t")
}

// Record is one structured row from a spreadsheet or CSV import, kept
// as strings until validation.
type Record struct {
	Name     string
	Price    string
	Category string
}

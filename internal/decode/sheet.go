package decode

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Header aliases accepted for the structured import columns, all
// compared lowercase.
var (
	nameAliases     = []string{"name", "item", "item name", "product", "product name", "dish", "description"}
	priceAliases    = []string{"price", "rate", "amount", "cost", "mrp"}
	categoryAliases = []string{"category", "section", "type", "group"}
)

// ErrNoHeader marks a sheet whose first row holds no recognizable
// name and price columns.
var ErrNoHeader = errors.New("no name/price header row found")

// XLSX reads the first sheet of an Excel workbook into records using
// loose header aliasing on the first row.
func XLSX(data []byte) ([]Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rowsToRecords(rows)
}

// CSV reads delimited text into records. The delimiter is sniffed
// from the header row (comma or semicolon).
func CSV(data []byte) ([]Record, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rowsToRecords(rows)
}

func sniffDelimiter(data []byte) rune {
	head := data
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	if bytes.Count(head, []byte{';'}) > bytes.Count(head, []byte{','}) {
		return ';'
	}
	return ','
}

// rowsToRecords maps a header row plus data rows into records. Rows
// missing a name or price cell are skipped, not fatal.
func rowsToRecords(rows [][]string) ([]Record, error) {
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}
	nameCol := findColumn(rows[0], nameAliases)
	priceCol := findColumn(rows[0], priceAliases)
	catCol := findColumn(rows[0], categoryAliases)
	if nameCol < 0 || priceCol < 0 {
		return nil, ErrNoHeader
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if nameCol >= len(row) || priceCol >= len(row) {
			continue
		}
		rec := Record{
			Name:  strings.TrimSpace(row[nameCol]),
			Price: strings.TrimSpace(row[priceCol]),
		}
		if rec.Name == "" || rec.Price == "" {
			continue
		}
		if catCol >= 0 && catCol < len(row) {
			rec.Category = strings.TrimSpace(row[catCol])
		}
		records = append(records, rec)
	}
	return records, nil
}

func findColumn(header []string, aliases []string) int {
	for i, cell := range header {
		c := strings.ToLower(strings.TrimSpace(cell))
		for _, a := range aliases {
			if c == a {
				return i
			}
		}
	}
	return -1
}

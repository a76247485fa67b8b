package pipeline

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToJSON serializes a result to pretty JSON.
func ToJSON(res *Result) (string, error) {
	if res == nil {
		return "", errors.New("nil result")
	}
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToYAML serializes a result to YAML. The value goes through its
// JSON form first so field names and ID formatting match the JSON
// export exactly.
func ToYAML(res *Result) (string, error) {
	if res == nil {
		return "", errors.New("nil result")
	}
	jb, err := json.Marshal(res)
	if err != nil {
		return "", err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(jb, &doc); err != nil {
		return "", err
	}
	b, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToCSV exports the item list as CSV with a header row.
func ToCSV(res *Result) (string, error) {
	if res == nil {
		return "", errors.New("nil result")
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "price", "currency", "category", "confidence", "source", "needs_review"})
	for _, it := range res.Items {
		row := []string{
			strconv.Itoa(it.ID),
			it.Name,
			fmt.Sprintf("%.2f", it.Price),
			it.Currency,
			it.Category,
			strconv.Itoa(it.Confidence),
			it.Source,
			strconv.FormatBool(it.NeedsReview),
		}
		_ = w.Write(row)
	}
	w.Flush()
	return buf.String(), nil
}

// ToText renders a human-readable item list, one line per item.
func ToText(res *Result) (string, error) {
	if res == nil {
		return "", errors.New("nil result")
	}
	if len(res.Items) == 0 {
		return "no items found", nil
	}
	var sb strings.Builder
	for _, it := range res.Items {
		fmt.Fprintf(&sb, "%-40s %s%.2f  [%s, conf %d]", it.Name, it.Currency, it.Price, it.Category, it.Confidence)
		if it.NeedsReview {
			sb.WriteString("  (review)")
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%d item(s), overall confidence %d\n", len(res.Items), res.OverallConfidence)
	return sb.String(), nil
}

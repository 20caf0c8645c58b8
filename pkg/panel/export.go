package panel

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/exp/slices"
)

// WriteCSV writes one line per row. The header is the union of feature
// keys over all rows, sorted, after the fixed id and window columns;
// features a row lacks are left empty
func WriteCSV(w io.Writer, rows []Row) error {
	keySet := make(map[string]bool)
	for _, row := range rows {
		for k := range row.Features {
			keySet[k] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	cw := csv.NewWriter(w)
	header := append([]string{"sequence_id", "window_start", "window_end"}, keys...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := make([]string, 0, len(header))
		record = append(record, row.SequenceID, formatBound(row.WindowStart), formatBound(row.WindowEnd))
		for _, k := range keys {
			record = append(record, formatCell(row.Features[k]))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatBound(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

// Report is the JSON export shape, matching the HTTP response body
type Report struct {
	Results  []Row    `json:"results"`
	Metadata Metadata `json:"metadata"`
	Errors   []Error  `json:"errors,omitempty"`
}

func WriteJSON(w io.Writer, rows []Row, errs []Error, meta Metadata) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Report{Results: rows, Metadata: meta, Errors: errs})
}

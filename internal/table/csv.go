package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"chartviz/pkg/utils"
)

// LoadCSV reads a CSV document (header row required) into a MemTable,
// inferring a type per column from the parsed cells.
func LoadCSV(r io.Reader) (*MemTable, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := make([]string, len(headers))
	for i, h := range headers {
		clean := strings.TrimSpace(h)
		clean = strings.ReplaceAll(clean, `"`, "")
		columns[i] = clean
	}

	var records []map[string]interface{}
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}
		rec := make(map[string]interface{}, len(columns))
		for i, name := range columns {
			if i < len(record) {
				rec[name] = utils.ParseValue(record[i])
			}
		}
		records = append(records, rec)
	}

	return FromRecords(columns, records)
}

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"chartviz/internal/model"
	"chartviz/internal/table"
	"chartviz/internal/transform"
)

var db *sql.DB

// InitDB opens the sqlite database and creates tables if needed.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	datasetTable := `
	CREATE TABLE IF NOT EXISTS datasets (
		id TEXT PRIMARY KEY,
		name TEXT,
		columns TEXT,
		dtypes TEXT,
		rows TEXT,
		row_count INTEGER,
		created_at DATETIME
	);
	`
	chartLogTable := `
	CREATE TABLE IF NOT EXISTS chart_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset_id TEXT,
		chart_type TEXT,
		status TEXT,
		detail TEXT,
		duration_ms INTEGER,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(datasetTable); err != nil {
		return err
	}
	if _, err := db.Exec(chartLogTable); err != nil {
		return err
	}
	return nil
}

// SaveDataset persists a table under the given id. Rows are stored as
// JSON with every cell normalized to a JSON-safe scalar.
func SaveDataset(id, name string, t model.Table) error {
	columns := t.ColumnNames()
	dtypes := make([]string, len(columns))
	for i, col := range columns {
		dt, _ := t.ColumnType(col)
		dtypes[i] = dt.String()
	}

	rows := make([][]interface{}, 0, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		cells := make([]interface{}, len(columns))
		for i, col := range columns {
			v, err := t.Cell(row, col)
			if err != nil {
				return fmt.Errorf("failed to read cell: %w", err)
			}
			cells[i] = transform.Normalize(v)
		}
		rows = append(rows, cells)
	}

	columnsJSON, err := json.Marshal(columns)
	if err != nil {
		return err
	}
	dtypesJSON, err := json.Marshal(dtypes)
	if err != nil {
		return err
	}
	rowsJSON, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO datasets (id, name, columns, dtypes, rows, row_count, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, name, columnsJSON, dtypesJSON, rowsJSON, t.NumRows(), time.Now().UTC(),
	)
	return err
}

// GetDataset loads a persisted dataset back into an in-memory table.
func GetDataset(id string) (*table.MemTable, string, error) {
	var name, columnsJSON, dtypesJSON, rowsJSON string
	err := db.QueryRow(`SELECT name, columns, dtypes, rows FROM datasets WHERE id = ?`, id).
		Scan(&name, &columnsJSON, &dtypesJSON, &rowsJSON)
	if err != nil {
		return nil, "", err
	}

	var columns []string
	if err := json.Unmarshal([]byte(columnsJSON), &columns); err != nil {
		return nil, "", err
	}
	var dtypeNames []string
	if err := json.Unmarshal([]byte(dtypesJSON), &dtypeNames); err != nil {
		return nil, "", err
	}
	var rows [][]interface{}
	if err := json.Unmarshal([]byte(rowsJSON), &rows); err != nil {
		return nil, "", err
	}

	dtypes := make([]model.DataType, len(dtypeNames))
	for i, s := range dtypeNames {
		dt, ok := model.ParseDataType(s)
		if !ok {
			return nil, "", fmt.Errorf("unknown stored column type: %s", s)
		}
		dtypes[i] = dt
	}

	t, err := table.Reconstruct(columns, dtypes, rows)
	if err != nil {
		return nil, "", err
	}
	return t, name, nil
}

// ListDatasets returns all datasets with basic info.
func ListDatasets() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, name, columns, row_count, created_at FROM datasets ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []map[string]interface{}
	for rows.Next() {
		var id, name, columnsJSON string
		var rowCount int
		var createdAt time.Time
		if err := rows.Scan(&id, &name, &columnsJSON, &rowCount, &createdAt); err != nil {
			return nil, err
		}
		var columns []string
		if err := json.Unmarshal([]byte(columnsJSON), &columns); err != nil {
			return nil, err
		}
		datasets = append(datasets, map[string]interface{}{
			"id":        id,
			"name":      name,
			"rows":      rowCount,
			"columns":   len(columns),
			"createdAt": createdAt,
		})
	}
	return datasets, rows.Err()
}

// DeleteDataset removes a dataset and its chart log.
func DeleteDataset(id string) error {
	if _, err := db.Exec(`DELETE FROM chart_logs WHERE dataset_id = ?`, id); err != nil {
		return err
	}
	res, err := db.Exec(`DELETE FROM datasets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SaveChartLog records one chart request against a dataset.
func SaveChartLog(datasetID, chartType, status, detail string, duration time.Duration) error {
	_, err := db.Exec(
		`INSERT INTO chart_logs (dataset_id, chart_type, status, detail, duration_ms, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		datasetID, chartType, status, detail, duration.Milliseconds(), time.Now().UTC(),
	)
	return err
}

// GetChartLogs returns the most recent chart requests for a dataset.
func GetChartLogs(datasetID string, limit int) ([]map[string]interface{}, error) {
	rows, err := db.Query(
		`SELECT chart_type, status, detail, duration_ms, created_at FROM chart_logs
		 WHERE dataset_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		datasetID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []map[string]interface{}
	for rows.Next() {
		var chartType, status, detail string
		var durationMS int64
		var createdAt time.Time
		if err := rows.Scan(&chartType, &status, &detail, &durationMS, &createdAt); err != nil {
			return nil, err
		}
		logs = append(logs, map[string]interface{}{
			"chart_type":  chartType,
			"status":      status,
			"detail":      detail,
			"duration_ms": durationMS,
			"createdAt":   createdAt,
		})
	}
	return logs, rows.Err()
}

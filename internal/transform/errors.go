package transform

import (
	"errors"
	"fmt"
	"strings"

	"chartviz/internal/model"
)

// Shape is the (rows, columns) extent of the table a transform failed on.
type Shape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Error is the structured failure raised when a transform cannot complete.
// A call either fully succeeds or returns one of these; no partial results.
type Error struct {
	Message        string   `json:"message"`
	ChartType      string   `json:"chart_type,omitempty"`
	Shape          *Shape   `json:"shape,omitempty"`
	MissingColumns []string `json:"missing_columns,omitempty"`

	cause error
}

// Error renders the failure with its context fields.
func (e *Error) Error() string {
	details := []string{e.Message}
	if e.ChartType != "" {
		details = append(details, "Chart Type: "+e.ChartType)
	}
	if e.Shape != nil {
		details = append(details, fmt.Sprintf("Table Shape: (%d, %d)", e.Shape.Rows, e.Shape.Cols))
	}
	if len(e.MissingColumns) > 0 {
		details = append(details, "Missing Columns: "+strings.Join(e.MissingColumns, ", "))
	}
	return strings.Join(details, " | ")
}

// Unwrap exposes the original cause for diagnostics.
func (e *Error) Unwrap() error { return e.cause }

// missingColumnsError is the validator's failure; the transformer boundary
// converts it into an *Error carrying chart type and shape.
type missingColumnsError struct {
	columns []string
}

func (e *missingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.columns, ", ")
}

func shapeOf(t model.Table) *Shape {
	return &Shape{Rows: t.NumRows(), Cols: t.NumCols()}
}

// failure wraps any error arising during a transform into an *Error for
// the given chart type. Errors that are already *Error pass through
// untouched; validator failures keep their message and missing-column
// list; anything else gets the generic wrapper with the cause preserved.
func failure(chartType string, t model.Table, err error) *Error {
	var te *Error
	if errors.As(err, &te) {
		return te
	}
	var mc *missingColumnsError
	if errors.As(err, &mc) {
		return &Error{
			Message:        err.Error(),
			ChartType:      chartType,
			Shape:          shapeOf(t),
			MissingColumns: append([]string(nil), mc.columns...),
			cause:          err,
		}
	}
	return &Error{
		Message:   fmt.Sprintf("failed to transform %s: %v", strings.ReplaceAll(chartType, "_", " "), err),
		ChartType: chartType,
		Shape:     shapeOf(t),
		cause:     err,
	}
}

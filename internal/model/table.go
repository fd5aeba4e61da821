package model

import "fmt"

// DataType is the declared element type of a table column.
type DataType int

const (
	// TypeString represents text data.
	TypeString DataType = iota
	// TypeInt represents integer data (any size).
	TypeInt
	// TypeFloat represents floating-point data (any precision).
	TypeFloat
	// TypeBool represents boolean data.
	TypeBool
	// TypeDate represents date data (without time).
	TypeDate
	// TypeTimestamp represents timestamp data (date + time).
	TypeTimestamp
)

// IsNumeric reports whether the type is an integer or floating-point kind.
func (dt DataType) IsNumeric() bool {
	return dt == TypeInt || dt == TypeFloat
}

// String returns the string representation of a DataType.
func (dt DataType) String() string {
	switch dt {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeDate:
		return "date"
	case TypeTimestamp:
		return "timestamp"
	default:
		return fmt.Sprintf("unknown(%d)", dt)
	}
}

// ParseDataType is the inverse of DataType.String. The second return is
// false for unknown names.
func ParseDataType(s string) (DataType, bool) {
	switch s {
	case "string":
		return TypeString, true
	case "int":
		return TypeInt, true
	case "float":
		return TypeFloat, true
	case "bool":
		return TypeBool, true
	case "date":
		return TypeDate, true
	case "timestamp":
		return TypeTimestamp, true
	default:
		return TypeString, false
	}
}

// Value is a typed container for a single cell.
// Raw holds the underlying value; its Go type depends on Type.
type Value struct {
	Raw    interface{}
	Type   DataType
	IsNull bool
}

// NewValue creates a Value from a raw value and type. A nil raw value
// produces a null Value of the given type.
func NewValue(raw interface{}, dataType DataType) Value {
	if raw == nil {
		return NullValue(dataType)
	}
	return Value{Raw: raw, Type: dataType}
}

// NullValue creates a null value of the specified type.
func NullValue(dataType DataType) Value {
	return Value{Type: dataType, IsNull: true}
}

// Float extracts the cell as a float64. The second return is false for
// nulls and non-numeric types.
func (v Value) Float() (float64, bool) {
	if v.IsNull || !v.Type.IsNumeric() {
		return 0, false
	}
	switch n := v.Raw.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Table provides read-only access to tabular data. Implementations must not
// be mutated by callers; transforms never write through this interface.
type Table interface {
	// ColumnNames returns the column names in table order.
	ColumnNames() []string

	// ColumnType returns the declared type of the named column.
	// The second return is false when the column does not exist.
	ColumnType(name string) (DataType, bool)

	// NumRows returns the number of rows.
	NumRows() int

	// NumCols returns the number of columns.
	NumCols() int

	// Cell returns the value at the given row position and column name.
	// It returns an error for an out-of-range row or unknown column.
	Cell(row int, column string) (Value, error)
}

package dataset

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind is the type of value held by a Cell.
type Kind uint8

const (
	// KindEmpty is a missing value.
	KindEmpty Kind = iota
	// KindText is a string value.
	KindText
	// KindNumber is a numeric value.
	KindNumber
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "empty"
	}
}

// Cell is a single typed value in a row. The zero value is an empty cell.
type Cell struct {
	kind   Kind
	text   string
	number float64
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{kind: KindText, text: s}
}

// Number returns a numeric cell. NaN is stored as an empty cell.
func Number(f float64) Cell {
	if math.IsNaN(f) {
		return Cell{}
	}
	return Cell{kind: KindNumber, number: f}
}

// Kind reports the type of the cell.
func (c Cell) Kind() Kind {
	return c.kind
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.kind == KindEmpty
}

// Float returns the numeric value and whether the cell is a number.
func (c Cell) Float() (float64, bool) {
	return c.number, c.kind == KindNumber
}

// String renders the cell. Whole numbers have no fractional part ("12", not "12.0").
func (c Cell) String() string {
	switch c.kind {
	case KindText:
		return c.text
	case KindNumber:
		return strconv.FormatFloat(c.number, 'f', -1, 64)
	default:
		return ""
	}
}

// Value returns the cell as nil, string or float64.
func (c Cell) Value() any {
	switch c.kind {
	case KindText:
		return c.text
	case KindNumber:
		return c.number
	default:
		return nil
	}
}

// Equal reports whether two cells have the same kind and value.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// MarshalJSON encodes numbers as JSON numbers, text as strings and empty cells as null.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}

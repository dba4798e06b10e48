package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Coercion is the outcome of best-effort numeric parsing. OK is false when the
// cell holds no usable number; that is an expected result, not a failure.
type Coercion struct {
	Value float64
	OK    bool
}

// Cell returns the coerced value as a number cell, or an empty cell.
func (c Coercion) Cell() Cell {
	if !c.OK {
		return Empty()
	}
	return Number(c.Value)
}

// Coerce parses a cell as a number. Numbers pass through, text is trimmed and
// parsed as a decimal float, and everything else (empty cells, non-numeric
// text, NaN, infinities, hex literals) has no value.
func Coerce(c Cell) Coercion {
	switch c.kind {
	case KindNumber:
		return Coercion{Value: c.number, OK: true}
	case KindText:
		return parseDecimal(c.text)
	default:
		return Coercion{}
	}
}

func parseDecimal(s string) Coercion {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return Coercion{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Coercion{}
	}
	return Coercion{Value: f, OK: true}
}

// CoerceColumn returns a new dataset with column col replaced by its coerced
// values. Out-of-range columns are left alone.
func (d *Dataset) CoerceColumn(col int) *Dataset {
	return d.MapColumn(col, func(c Cell) Cell {
		return Coerce(c).Cell()
	})
}

package model

import (
	"fmt"
	"strconv"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
	KindGrid
	KindYAxis
	KindBarOpacity
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindGrid:
		return "grid"
	case KindYAxis:
		return "y-axis"
	case KindBarOpacity:
		return "bar-opacity"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is the closed set of values a meta, settings or indicator entry can
// carry. The zero Value is the empty string.
type Value struct {
	kind       ValueKind
	str        string
	i          int
	f          float64
	grid       GridConfig
	yAxis      YAxisConfig
	barOpacity BarOpacityConfig
}

// StringValue wraps a string scalar.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntValue wraps an integer scalar.
func IntValue(i int) Value { return Value{kind: KindInt, i: i} }

// FloatValue wraps a floating-point scalar.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// GridValue wraps a grid configuration.
func GridValue(c GridConfig) Value { return Value{kind: KindGrid, grid: c} }

// YAxisValue wraps a y-axis precision configuration.
func YAxisValue(c YAxisConfig) Value { return Value{kind: KindYAxis, yAxis: c} }

// BarOpacityValue wraps a bar opacity configuration.
func BarOpacityValue(c BarOpacityConfig) Value {
	return Value{kind: KindBarOpacity, barOpacity: c}
}

// Kind reports which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }
func (v Value) AsInt() (int, bool)       { return v.i, v.kind == KindInt }
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsNumber widens Int and Float values to float64.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

func (v Value) AsGrid() (GridConfig, bool)   { return v.grid, v.kind == KindGrid }
func (v Value) AsYAxis() (YAxisConfig, bool) { return v.yAxis, v.kind == KindYAxis }

func (v Value) AsBarOpacity() (BarOpacityConfig, bool) {
	return v.barOpacity, v.kind == KindBarOpacity
}

// String renders v the way it would be written in a CML document, minus quoting.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindGrid:
		return v.grid.String()
	case KindYAxis:
		return v.yAxis.String()
	case KindBarOpacity:
		return v.barOpacity.String()
	default:
		return v.str
	}
}

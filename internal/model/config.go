package model

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Names of the nested configurations, used both as settings/meta keys and as
// the function name of the inline form, e.g. grid(enabled=false).
const (
	ConfigGrid       = "grid"
	ConfigYAxis      = "y-axis-precision"
	ConfigBarOpacity = "bar-opacity"
)

// GridConfig controls the background grid.
type GridConfig struct {
	Enabled   bool
	LineWidth float64
	Color     string
	Opacity   float64
}

// DefaultGridConfig returns the grid used when a chart does not configure one.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Enabled:   true,
		LineWidth: 0.5,
		Color:     "#000000",
		Opacity:   1.0,
	}
}

func (c GridConfig) String() string {
	return fmt.Sprintf("%s(enabled=%t,line-width=%s,color=%s,opacity=%s)",
		ConfigGrid, c.Enabled, formatFloat(c.LineWidth), c.Color, formatFloat(c.Opacity))
}

// YAxisConfig controls price axis labelling.
type YAxisConfig struct {
	Precision int
}

// DefaultYAxisConfig returns two decimal places.
func DefaultYAxisConfig() YAxisConfig {
	return YAxisConfig{Precision: 2}
}

func (c YAxisConfig) String() string {
	return fmt.Sprintf("%s(precision=%d)", ConfigYAxis, c.Precision)
}

// FormatPrice renders price with exactly Precision decimal places.
// A negative precision rounds to the left of the decimal point.
func (c YAxisConfig) FormatPrice(price float64) string {
	return decimal.NewFromFloat(price).StringFixed(int32(c.Precision))
}

// BarOpacityConfig controls bar transparency.
type BarOpacityConfig struct {
	Opacity float64
}

// DefaultBarOpacityConfig returns fully opaque bars.
func DefaultBarOpacityConfig() BarOpacityConfig {
	return BarOpacityConfig{Opacity: 1.0}
}

func (c BarOpacityConfig) String() string {
	return fmt.Sprintf("%s(opacity=%s)", ConfigBarOpacity, formatFloat(c.Opacity))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package parser

import (
	"strconv"
	"strings"

	"github.com/markdicksonjr/chart-markup-language/internal/model"
)

var barTypes = map[string]bool{
	model.BarTypeCandlestick: true,
	model.BarTypeHeikinAshi:  true,
	model.BarTypeOHLC:        true,
}

// coerceMetaValue types a meta: value. Numbers become floats.
func coerceMetaValue(key, raw string) model.Value {
	if v, ok := parseConfigCall(key, raw); ok {
		return v
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return model.FloatValue(f)
	}
	return model.StringValue(stripQuotes(raw))
}

// coerceSettingsValue types a settings: value. Numbers without a decimal
// point become ints, other numbers floats. Keeping this separate from
// coerceMetaValue matters: "2" is an int here and a float in meta.
func coerceSettingsValue(key, raw string) model.Value {
	if barTypes[raw] {
		return model.StringValue(raw)
	}
	if v, ok := parseConfigCall(key, raw); ok {
		return v
	}
	if !strings.Contains(raw, ".") {
		if i, err := strconv.Atoi(raw); err == nil {
			return model.IntValue(i)
		}
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return model.FloatValue(f)
	}
	return model.StringValue(stripQuotes(raw))
}

// coerceIndicatorParam types an indicator parameter: int without a decimal
// point, float with one, otherwise the raw text with any quotes left in place.
func coerceIndicatorParam(raw string) model.Value {
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return model.FloatValue(f)
		}
		return model.StringValue(raw)
	}
	if i, err := strconv.Atoi(raw); err == nil {
		return model.IntValue(i)
	}
	return model.StringValue(raw)
}

// parseConfigCall accepts name(...) and, for a key naming a config, the
// bare form grid: (enabled=false, ...).
func parseConfigCall(key, raw string) (model.Value, bool) {
	if v, ok := parseInlineConfig(raw); ok {
		return v, true
	}
	if isConfigName(key) && strings.HasPrefix(raw, "(") {
		return parseInlineConfig(key + raw)
	}
	return model.Value{}, false
}

func stripQuotes(s string) string {
	return strings.Trim(s, `"`)
}

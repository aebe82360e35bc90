package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markdicksonjr/chart-markup-language/internal/model"
)

func TestCoerceMetaValue(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
		want model.Value
	}{
		{name: "quoted string", raw: `"Test Chart"`, want: model.StringValue("Test Chart")},
		{name: "bare string", raw: "EURUSD", want: model.StringValue("EURUSD")},
		{name: "integer is float", raw: "2", want: model.FloatValue(2)},
		{name: "decimal", raw: "1.25", want: model.FloatValue(1.25)},
		{name: "quoted number stays string", raw: `"42"`, want: model.StringValue("42")},
		{name: "grid config", raw: "grid(color=#FFF)", want: model.GridValue(model.GridConfig{Enabled: true, LineWidth: 0.5, Color: "#FFF", Opacity: 1})},
		{name: "unknown call is a string", raw: "foo(a=1)", want: model.StringValue("foo(a=1)")},
		{name: "empty", raw: "", want: model.StringValue("")},
		{name: "bare parens on grid", key: "grid", raw: "(enabled=false)", want: model.GridValue(model.GridConfig{Enabled: false, LineWidth: 0.5, Color: "#000000", Opacity: 1})},
		{name: "bare parens on other key", key: "title", raw: "(draft)", want: model.StringValue("(draft)")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceMetaValue(tt.key, tt.raw))
		})
	}
}

func TestCoerceSettingsValue(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
		want model.Value
	}{
		{name: "bar type", key: "bar-type", raw: "heikin-ashi", want: model.StringValue("heikin-ashi")},
		{name: "integer", key: "y-axis-precision", raw: "3", want: model.IntValue(3)},
		{name: "float", key: "bar-opacity", raw: "0.75", want: model.FloatValue(0.75)},
		{name: "exponent is float", key: "scale", raw: "1e3", want: model.FloatValue(1000)},
		{name: "quoted fallback", key: "theme", raw: `"dark"`, want: model.StringValue("dark")},
		{name: "y-axis call", key: "y-axis-precision", raw: "y-axis-precision(precision=6)", want: model.YAxisValue(model.YAxisConfig{Precision: 6})},
		{name: "bare parens on config key", key: "bar-opacity", raw: "(opacity=0.3)", want: model.BarOpacityValue(model.BarOpacityConfig{Opacity: 0.3})},
		{name: "bare parens on other key", key: "theme", raw: "(dark)", want: model.StringValue("(dark)")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceSettingsValue(tt.key, tt.raw))
		})
	}
}

func TestCoerceIndicatorParam(t *testing.T) {
	assert.Equal(t, model.IntValue(14), coerceIndicatorParam("14"))
	assert.Equal(t, model.FloatValue(2.5), coerceIndicatorParam("2.5"))
	assert.Equal(t, model.StringValue("close"), coerceIndicatorParam("close"))
	assert.Equal(t, model.StringValue(`"close"`), coerceIndicatorParam(`"close"`), "quotes are kept")
	assert.Equal(t, model.StringValue("1.2.3"), coerceIndicatorParam("1.2.3"))
}

func TestParseInlineConfig(t *testing.T) {
	v, ok := parseInlineConfig("grid(enabled=FALSE, line-width=2, bogus=1, opacity=oops)")
	require.True(t, ok)
	g, ok := v.AsGrid()
	require.True(t, ok)
	assert.Equal(t, model.GridConfig{Enabled: false, LineWidth: 2, Color: "#000000", Opacity: 1}, g)

	v, ok = parseInlineConfig("grid()")
	require.True(t, ok)
	g, _ = v.AsGrid()
	assert.Equal(t, model.DefaultGridConfig(), g)

	_, ok = parseInlineConfig("grid(enabled=true")
	assert.False(t, ok)
}

func TestParseConfigBlock_Empty(t *testing.T) {
	doc := newDocument("  grid:\n  bar-type: ohlc\n")
	v, last := parseConfigBlock(doc, 0, model.ConfigGrid)

	assert.Equal(t, 0, last)
	g, ok := v.AsGrid()
	require.True(t, ok)
	assert.Equal(t, model.DefaultGridConfig(), g)
}

func TestDocumentHeader(t *testing.T) {
	doc := newDocument("meta:\n  bars:\n  grid:\nmeta: x\nannotations:\n  author:\ngrid:\nkey with space:\n:\n")

	tests := []struct {
		line    int
		section section
		header  bool
	}{
		{0, sectionMeta, true},
		{1, sectionBars, true},
		{2, sectionNone, false}, // indented config key opens a block
		{3, sectionNone, false},
		{4, sectionNone, true},
		{5, sectionNone, true},
		{6, sectionNone, true},
		{7, sectionNone, false},
		{8, sectionNone, false},
	}
	for _, tt := range tests {
		s, ok := doc.header(tt.line)
		assert.Equal(t, tt.header, ok, "line %d", tt.line)
		assert.Equal(t, tt.section, s, "line %d", tt.line)
	}
	assert.Equal(t, 2, doc.indent(1))
}

func TestSectionString(t *testing.T) {
	assert.Equal(t, "none", sectionNone.String())
	assert.Equal(t, "meta", sectionMeta.String())
	assert.Equal(t, "indicators", sectionIndicators.String())
	assert.Equal(t, "none", section(99).String())
}

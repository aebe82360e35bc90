package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChart_Defaults(t *testing.T) {
	c := &Chart{}

	assert.Equal(t, "candlestick", c.BarType())
	assert.Equal(t, GridConfig{Enabled: true, LineWidth: 0.5, Color: "#000000", Opacity: 1.0}, c.GridConfig())
	assert.Equal(t, YAxisConfig{Precision: 2}, c.YAxisConfig())
	assert.Equal(t, BarOpacityConfig{Opacity: 1.0}, c.BarOpacityConfig())

	_, ok := c.MetaString("title")
	assert.False(t, ok)
}

func TestChart_GridComesFromMeta(t *testing.T) {
	custom := GridConfig{Enabled: false, LineWidth: 2, Color: "#FF0000", Opacity: 0.5}
	c := &Chart{
		Settings: []SettingsEntry{{Key: ConfigGrid, Value: GridValue(custom)}},
	}
	assert.Equal(t, DefaultGridConfig(), c.GridConfig())

	c.Meta = []MetaEntry{
		{Key: ConfigGrid, Value: StringValue("off")},
		{Key: ConfigGrid, Value: GridValue(custom)},
	}
	assert.Equal(t, custom, c.GridConfig())
}

func TestChart_YAxisConfig(t *testing.T) {
	tests := []struct {
		name     string
		settings []SettingsEntry
		want     YAxisConfig
	}{
		{
			name:     "bare integer is wrapped",
			settings: []SettingsEntry{{Key: ConfigYAxis, Value: IntValue(5)}},
			want:     YAxisConfig{Precision: 5},
		},
		{
			name:     "parsed config",
			settings: []SettingsEntry{{Key: ConfigYAxis, Value: YAxisValue(YAxisConfig{Precision: 0})}},
			want:     YAxisConfig{Precision: 0},
		},
		{
			name: "wrong kinds are passed over",
			settings: []SettingsEntry{
				{Key: ConfigYAxis, Value: StringValue("lots")},
				{Key: ConfigYAxis, Value: FloatValue(3.5)},
			},
			want: YAxisConfig{Precision: 2},
		},
		{
			name: "first match wins",
			settings: []SettingsEntry{
				{Key: ConfigYAxis, Value: IntValue(1)},
				{Key: ConfigYAxis, Value: IntValue(7)},
			},
			want: YAxisConfig{Precision: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Chart{Settings: tt.settings}
			assert.Equal(t, tt.want, c.YAxisConfig())
		})
	}
}

func TestChart_BarOpacityConfig(t *testing.T) {
	c := &Chart{Settings: []SettingsEntry{{Key: ConfigBarOpacity, Value: IntValue(1)}}}
	assert.Equal(t, BarOpacityConfig{Opacity: 1}, c.BarOpacityConfig())

	c = &Chart{Settings: []SettingsEntry{{Key: ConfigBarOpacity, Value: FloatValue(0.4)}}}
	assert.Equal(t, BarOpacityConfig{Opacity: 0.4}, c.BarOpacityConfig())

	c = &Chart{Settings: []SettingsEntry{{Key: ConfigBarOpacity, Value: BarOpacityValue(BarOpacityConfig{Opacity: 0.1})}}}
	assert.Equal(t, BarOpacityConfig{Opacity: 0.1}, c.BarOpacityConfig())
}

func TestChart_BarTypeRendersFirstValue(t *testing.T) {
	c := &Chart{Settings: []SettingsEntry{
		{Key: "bar-type", Value: StringValue("ohlc")},
		{Key: "bar-type", Value: StringValue("heikin-ashi")},
	}}
	assert.Equal(t, "ohlc", c.BarType())
}

func TestYAxisConfig_FormatPrice(t *testing.T) {
	assert.Equal(t, "101.20", YAxisConfig{Precision: 2}.FormatPrice(101.2))
	assert.Equal(t, "1.08350", YAxisConfig{Precision: 5}.FormatPrice(1.0835))
	assert.Equal(t, "102", YAxisConfig{Precision: 0}.FormatPrice(101.5))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "abc", StringValue("abc").String())
	assert.Equal(t, "3", IntValue(3).String())
	assert.Equal(t, "0.25", FloatValue(0.25).String())
	assert.Equal(t, "grid(enabled=true,line-width=0.5,color=#000000,opacity=1)", GridValue(DefaultGridConfig()).String())
	assert.Equal(t, "y-axis-precision(precision=2)", YAxisValue(DefaultYAxisConfig()).String())
	assert.Equal(t, "bar-opacity(opacity=1)", BarOpacityValue(DefaultBarOpacityConfig()).String())
	assert.Equal(t, "", Value{}.String())
}

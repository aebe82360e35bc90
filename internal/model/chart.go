package model

// MetaEntry is one key: value line of the meta: section.
type MetaEntry struct {
	Key   string
	Value Value
}

// SettingsEntry is one key: value line of the settings: section.
type SettingsEntry struct {
	Key   string
	Value Value
}

// Bar type keywords accepted by the bar-type setting.
const (
	BarTypeCandlestick = "candlestick"
	BarTypeHeikinAshi  = "heikin-ashi"
	BarTypeOHLC        = "ohlc"
)

// Chart is a parsed CML document. Entries keep document order and keys may
// repeat; the lookups below return the first match.
type Chart struct {
	Meta       []MetaEntry
	Settings   []SettingsEntry
	Bars       []Bar
	Drawings   []Drawing
	Indicators []Indicator
}

// BarType returns the first bar-type setting, or candlestick.
func (c *Chart) BarType() string {
	for _, e := range c.Settings {
		if e.Key == "bar-type" {
			return e.Value.String()
		}
	}
	return BarTypeCandlestick
}

// GridConfig returns the first grid configuration found in meta:, or the
// defaults. Unlike the other display configs, grid is read from meta and a
// grid key under settings: does not affect it.
func (c *Chart) GridConfig() GridConfig {
	for _, e := range c.Meta {
		if e.Key != ConfigGrid {
			continue
		}
		if g, ok := e.Value.AsGrid(); ok {
			return g
		}
	}
	return DefaultGridConfig()
}

// YAxisConfig returns the first y-axis-precision setting that is a bare
// integer or a y-axis-precision(...) config, or the defaults.
func (c *Chart) YAxisConfig() YAxisConfig {
	for _, e := range c.Settings {
		if e.Key != ConfigYAxis {
			continue
		}
		if p, ok := e.Value.AsInt(); ok {
			return YAxisConfig{Precision: p}
		}
		if y, ok := e.Value.AsYAxis(); ok {
			return y
		}
	}
	return DefaultYAxisConfig()
}

// BarOpacityConfig returns the first bar-opacity setting that is a number or
// a bar-opacity(...) config, or the defaults.
func (c *Chart) BarOpacityConfig() BarOpacityConfig {
	for _, e := range c.Settings {
		if e.Key != ConfigBarOpacity {
			continue
		}
		if f, ok := e.Value.AsNumber(); ok {
			return BarOpacityConfig{Opacity: f}
		}
		if b, ok := e.Value.AsBarOpacity(); ok {
			return b
		}
	}
	return DefaultBarOpacityConfig()
}

// MetaString returns the first meta value for key rendered as a string.
func (c *Chart) MetaString(key string) (string, bool) {
	for _, e := range c.Meta {
		if e.Key == key {
			return e.Value.String(), true
		}
	}
	return "", false
}

package parser

import (
	"strconv"
	"strings"

	"github.com/markdicksonjr/chart-markup-language/internal/model"
)

// configBuilder accumulates properties for grid, y-axis-precision and
// bar-opacity configs. The inline and indented forms both feed it, so the
// property rules live in one place.
type configBuilder struct {
	grid       model.GridConfig
	yAxis      model.YAxisConfig
	barOpacity model.BarOpacityConfig
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		grid:       model.DefaultGridConfig(),
		yAxis:      model.DefaultYAxisConfig(),
		barOpacity: model.DefaultBarOpacityConfig(),
	}
}

// configSetters maps a property name to its setter. Values that fail to
// parse leave the default in place.
var configSetters = map[string]func(b *configBuilder, val string){
	"enabled": func(b *configBuilder, val string) {
		b.grid.Enabled = strings.EqualFold(val, "true")
	},
	"line-width": func(b *configBuilder, val string) {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			b.grid.LineWidth = f
		}
	},
	"color": func(b *configBuilder, val string) {
		b.grid.Color = val
	},
	"opacity": func(b *configBuilder, val string) {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			b.grid.Opacity = f
			b.barOpacity.Opacity = f
		}
	},
	"precision": func(b *configBuilder, val string) {
		if n, err := strconv.Atoi(val); err == nil {
			b.yAxis.Precision = n
		}
	},
}

// set applies one property. Unknown properties are ignored.
func (b *configBuilder) set(prop, val string) {
	if fn, ok := configSetters[strings.TrimSpace(prop)]; ok {
		fn(b, strings.TrimSpace(val))
	}
}

func (b *configBuilder) value(name string) (model.Value, bool) {
	switch name {
	case model.ConfigGrid:
		return model.GridValue(b.grid), true
	case model.ConfigYAxis:
		return model.YAxisValue(b.yAxis), true
	case model.ConfigBarOpacity:
		return model.BarOpacityValue(b.barOpacity), true
	}
	return model.Value{}, false
}

func isConfigName(name string) bool {
	switch name {
	case model.ConfigGrid, model.ConfigYAxis, model.ConfigBarOpacity:
		return true
	}
	return false
}

// parseInlineConfig parses name(prop=val, prop=val). ok is false when raw
// is not a call of a known config name.
func parseInlineConfig(raw string) (model.Value, bool) {
	open := strings.Index(raw, "(")
	if open <= 0 || !strings.HasSuffix(raw, ")") {
		return model.Value{}, false
	}
	name := strings.TrimSpace(raw[:open])
	if !isConfigName(name) {
		return model.Value{}, false
	}

	b := newConfigBuilder()
	for _, prop := range strings.Split(raw[open+1:len(raw)-1], ",") {
		key, val, ok := strings.Cut(prop, "=")
		if !ok {
			continue
		}
		b.set(key, val)
	}
	return b.value(name)
}

// parseConfigBlock reads the indented "prop: val" lines under the key on
// line keyLine. It returns the config and the index of the last line it
// consumed, which is keyLine itself for an empty block.
func parseConfigBlock(doc *document, keyLine int, name string) (model.Value, int) {
	base := doc.indent(keyLine)
	b := newConfigBuilder()
	last := keyLine

	for i := keyLine + 1; i < doc.len(); i++ {
		if doc.isBlankOrComment(i) {
			continue
		}
		if _, ok := doc.header(i); ok || doc.indent(i) <= base {
			break
		}
		last = i

		line := doc.trimmed(i)
		sep := strings.IndexAny(line, ":=")
		if sep < 0 {
			continue
		}
		b.set(line[:sep], line[sep+1:])
	}

	v, _ := b.value(name)
	return v, last
}

package parser

import (
	"strings"

	"github.com/markdicksonjr/chart-markup-language/internal/model"
)

// splitEntry splits "key: value" on the first colon.
func splitEntry(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

func (p *Parser) parseMeta(doc *document, i int, chart *model.Chart) (int, lineStatus, error) {
	key, raw, ok := splitEntry(doc.trimmed(i))
	if !ok {
		return i, lineSkipped, nil
	}
	value := coerceMetaValue(key, raw)
	last := i
	if raw == "" && key == model.ConfigGrid {
		value, last = parseConfigBlock(doc, i, key)
	}
	chart.Meta = append(chart.Meta, model.MetaEntry{Key: key, Value: value})
	return last, lineParsed, nil
}

func (p *Parser) parseSettings(doc *document, i int, chart *model.Chart) (int, lineStatus, error) {
	key, raw, ok := splitEntry(doc.trimmed(i))
	if !ok {
		return i, lineSkipped, nil
	}
	chart.Settings = append(chart.Settings, model.SettingsEntry{Key: key, Value: coerceSettingsValue(key, raw)})

	// An empty config key opens an indented block; the block replaces the
	// entry just appended.
	if raw == "" && isConfigName(key) {
		value, last := parseConfigBlock(doc, i, key)
		chart.Settings[len(chart.Settings)-1].Value = value
		return last, lineParsed, nil
	}
	return i, lineParsed, nil
}

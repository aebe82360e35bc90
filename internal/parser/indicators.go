package parser

import (
	"strings"

	"github.com/markdicksonjr/chart-markup-language/internal/model"
)

// parseIndicator parses "name(key=value, ...)".
func parseIndicator(line string) (model.Indicator, lineStatus) {
	open := strings.Index(line, "(")
	if open < 0 {
		return model.Indicator{}, lineSkipped
	}
	body, _, ok := strings.Cut(line[open+1:], ")")
	if !ok {
		return model.Indicator{}, lineSkipped
	}

	ind := model.Indicator{
		Name:   strings.TrimSpace(line[:open]),
		Params: map[string]model.Value{},
	}
	for _, param := range strings.Split(body, ",") {
		key, val, ok := strings.Cut(param, "=")
		if !ok {
			continue
		}
		ind.Params[strings.TrimSpace(key)] = coerceIndicatorParam(strings.TrimSpace(val))
	}
	return ind, lineParsed
}

func (p *Parser) parseIndicators(doc *document, i int, chart *model.Chart) (int, lineStatus, error) {
	ind, status := parseIndicator(doc.trimmed(i))
	if status == lineSkipped {
		return i, status, nil
	}
	chart.Indicators = append(chart.Indicators, ind)
	return i, lineParsed, nil
}

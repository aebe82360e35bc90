package parser

import (
	"strconv"
	"strings"

	"github.com/markdicksonjr/chart-markup-language/internal/model"
)

// parseBar parses "time, open, high, low, close". Lines with any other field
// count are skipped; a bad timestamp or price in a five-field line is an error.
func parseBar(line string) (model.Bar, lineStatus, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return model.Bar{}, lineSkipped, nil
	}

	t, err := ParseDateTime(fields[0])
	if err != nil {
		return model.Bar{}, lineSkipped, err
	}

	var prices [4]float64
	for i, name := range []string{"open", "high", "low", "close"} {
		if prices[i], err = parsePrice(fields[i+1], name); err != nil {
			return model.Bar{}, lineSkipped, err
		}
	}

	return model.Bar{
		Time:  t,
		Open:  prices[0],
		High:  prices[1],
		Low:   prices[2],
		Close: prices[3],
	}, lineParsed, nil
}

func parsePrice(s, name string) (float64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, formatError(s, "invalid "+name+" price")
	}
	return f, nil
}

func (p *Parser) parseBars(doc *document, i int, chart *model.Chart) (int, lineStatus, error) {
	bar, status, err := parseBar(doc.trimmed(i))
	if err != nil || status == lineSkipped {
		return i, status, err
	}
	chart.Bars = append(chart.Bars, bar)
	return i, lineParsed, nil
}

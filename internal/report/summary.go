// Package report condenses a parsed chart into a summary suitable for
// printing or serialising.
package report

import (
	"sort"

	"github.com/markdicksonjr/chart-markup-language/internal/calculator"
	"github.com/markdicksonjr/chart-markup-language/internal/model"
	"github.com/markdicksonjr/chart-markup-language/internal/parser"
)

// Summary describes one parsed chart document. Prices are pre-formatted at
// the chart's y-axis precision.
type Summary struct {
	Path       string             `yaml:"path" json:"path"`
	Title      string             `yaml:"title,omitempty" json:"title,omitempty"`
	Symbol     string             `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Timeframe  string             `yaml:"timeframe,omitempty" json:"timeframe,omitempty"`
	BarType    string             `yaml:"bar_type" json:"bar_type"`
	Grid       string             `yaml:"grid" json:"grid"`
	Precision  int                `yaml:"precision" json:"precision"`
	BarOpacity float64            `yaml:"bar_opacity" json:"bar_opacity"`
	Bars       BarSummary         `yaml:"bars" json:"bars"`
	Drawings   map[string]int     `yaml:"drawings" json:"drawings"`
	Indicators []IndicatorSummary `yaml:"indicators" json:"indicators"`
}

// BarSummary covers the bar section.
type BarSummary struct {
	Count     int    `yaml:"count" json:"count"`
	From      string `yaml:"from,omitempty" json:"from,omitempty"`
	To        string `yaml:"to,omitempty" json:"to,omitempty"`
	High      string `yaml:"high,omitempty" json:"high,omitempty"`
	Low       string `yaml:"low,omitempty" json:"low,omitempty"`
	LastClose string `yaml:"last_close,omitempty" json:"last_close,omitempty"`
	// Position of the last close within [Low, High], 0..1.
	Position float64 `yaml:"position" json:"position"`
}

// IndicatorSummary is one indicator with its latest computed values.
// Unsupported marks names the calculator does not know; Error is set when a
// known indicator could not be computed from the chart's bars.
type IndicatorSummary struct {
	Name        string            `yaml:"name" json:"name"`
	Params      map[string]string `yaml:"params" json:"params"`
	Values      map[string]string `yaml:"values,omitempty" json:"values,omitempty"`
	Unsupported bool              `yaml:"unsupported,omitempty" json:"unsupported,omitempty"`
	Error       string            `yaml:"error,omitempty" json:"error,omitempty"`
}

// Summarize builds the Summary of chart, read from path.
func Summarize(path string, chart *model.Chart) Summary {
	yAxis := chart.YAxisConfig()
	s := Summary{
		Path:       path,
		BarType:    chart.BarType(),
		Grid:       chart.GridConfig().String(),
		Precision:  yAxis.Precision,
		BarOpacity: chart.BarOpacityConfig().Opacity,
		Drawings:   map[string]int{},
		Indicators: []IndicatorSummary{},
	}
	s.Title, _ = chart.MetaString("title")
	s.Symbol, _ = chart.MetaString("symbol")
	s.Timeframe, _ = chart.MetaString("timeframe")

	s.Bars.Count = len(chart.Bars)
	if n := len(chart.Bars); n > 0 {
		s.Bars.From = parser.FormatDateTime(chart.Bars[0].Time)
		s.Bars.To = parser.FormatDateTime(chart.Bars[n-1].Time)
		last := chart.Bars[n-1].Close
		if high, low, err := calculator.PriceRange(chart.Bars); err == nil {
			s.Bars.High = yAxis.FormatPrice(high)
			s.Bars.Low = yAxis.FormatPrice(low)
			if pos, err := calculator.Position(last, high, low); err == nil {
				s.Bars.Position = pos
			}
		}
		s.Bars.LastClose = yAxis.FormatPrice(last)
	}

	for _, d := range chart.Drawings {
		s.Drawings[string(d.Kind())]++
	}

	for _, ind := range chart.Indicators {
		is := IndicatorSummary{Name: ind.Name, Params: make(map[string]string, len(ind.Params))}
		for k, v := range ind.Params {
			is.Params[k] = v.String()
		}
		if !calculator.Supported(ind.Name) {
			is.Unsupported = true
			s.Indicators = append(s.Indicators, is)
			continue
		}
		series, err := calculator.Evaluate(ind, chart.Bars)
		if err != nil {
			is.Error = err.Error()
		} else {
			is.Values = map[string]string{}
			for label, v := range series.Last() {
				is.Values[label] = yAxis.FormatPrice(v)
			}
		}
		s.Indicators = append(s.Indicators, is)
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

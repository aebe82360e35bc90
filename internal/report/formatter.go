package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Render serialises summaries in the given format.
func Render(format string, summaries []Summary) (string, error) {
	switch format {
	case FormatText, "":
		parts := make([]string, len(summaries))
		for i, s := range summaries {
			parts[i] = Text(s)
		}
		return strings.Join(parts, "\n"), nil
	case FormatYAML:
		out, err := yaml.Marshal(summaries)
		if err != nil {
			return "", fmt.Errorf("marshal yaml: %w", err)
		}
		return string(out), nil
	case FormatJSON:
		out, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal json: %w", err)
		}
		return string(out) + "\n", nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

// Text formats a summary for the terminal.
func Text(s Summary) string {
	var b strings.Builder

	title := s.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(fmt.Sprintf("%s | %s\n", s.Path, title))
	if s.Symbol != "" || s.Timeframe != "" {
		b.WriteString(fmt.Sprintf("  symbol: %s  timeframe: %s\n", s.Symbol, s.Timeframe))
	}
	b.WriteString(fmt.Sprintf("  bar type: %s  precision: %d  bar opacity: %g\n", s.BarType, s.Precision, s.BarOpacity))
	b.WriteString(fmt.Sprintf("  %s\n", s.Grid))

	// Bars
	b.WriteString(fmt.Sprintf("  bars: %d", s.Bars.Count))
	if s.Bars.Count > 0 {
		b.WriteString(fmt.Sprintf(" (%s .. %s)\n", s.Bars.From, s.Bars.To))
		b.WriteString(fmt.Sprintf("  range: %s - %s  last close: %s (%.0f%% of range)\n",
			s.Bars.Low, s.Bars.High, s.Bars.LastClose, s.Bars.Position*100))
	} else {
		b.WriteString("\n")
	}

	// Drawings
	if len(s.Drawings) > 0 {
		b.WriteString("  drawings:")
		for _, k := range sortedKeys(s.Drawings) {
			b.WriteString(fmt.Sprintf(" %s=%d", k, s.Drawings[k]))
		}
		b.WriteString("\n")
	}

	// Indicators
	for _, ind := range s.Indicators {
		params := make([]string, 0, len(ind.Params))
		for _, k := range sortedKeys(ind.Params) {
			params = append(params, k+"="+ind.Params[k])
		}
		b.WriteString(fmt.Sprintf("  %s(%s)", ind.Name, strings.Join(params, ",")))
		if ind.Unsupported {
			b.WriteString(": not computed\n")
			continue
		}
		if ind.Error != "" {
			b.WriteString(fmt.Sprintf(": %s\n", ind.Error))
			continue
		}
		for _, k := range sortedKeys(ind.Values) {
			b.WriteString(fmt.Sprintf(" %s=%s", k, ind.Values[k]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

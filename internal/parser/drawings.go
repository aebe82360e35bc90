package parser

import (
	"strings"

	"github.com/markdicksonjr/chart-markup-language/internal/model"
)

// drawingBuilder turns the text between a drawing's parentheses into a
// Drawing. A body with the wrong shape is skipped, not an error.
type drawingBuilder func(body string, styles model.Styles) (model.Drawing, lineStatus, error)

// drawingBuilders is the set of recognised drawing keywords. Keywords not
// listed here are dropped without error.
var drawingBuilders = map[string]drawingBuilder{
	"rectangle":         buildRectangle,
	"line":              buildLine,
	"continuous-line":   buildContinuousLine,
	"uptick-triangle":   triangleBuilder(model.Uptick),
	"downtick-triangle": triangleBuilder(model.Downtick),
	"undercircle":       circleBuilder(model.Under),
	"overcircle":        circleBuilder(model.Over),
	"undernote":         noteBuilder(model.Under),
	"overnote":          noteBuilder(model.Over),
}

func (p *Parser) parseDrawings(doc *document, i int, chart *model.Chart) (int, lineStatus, error) {
	line := doc.trimmed(i)
	open := strings.Index(line, "(")
	closing := strings.LastIndex(line, ")")
	if open < 0 || closing < open {
		return i, lineSkipped, nil
	}

	styles, last := collectStyles(doc, i)

	build, ok := drawingBuilders[strings.TrimSpace(line[:open])]
	if !ok {
		return last, lineSkipped, nil
	}
	d, status, err := build(line[open+1:closing], styles)
	if err != nil || status == lineSkipped {
		return last, status, err
	}
	chart.Drawings = append(chart.Drawings, d)
	return last, lineParsed, nil
}

// collectStyles gathers the key=value lines that follow the drawing on line
// i. The run ends at a blank line, a comment, a section header or a line
// containing "(". It returns the styles and the last line consumed.
func collectStyles(doc *document, i int) (model.Styles, int) {
	styles := model.Styles{}
	last := i
	for j := i + 1; j < doc.len(); j++ {
		if doc.isBlankOrComment(j) {
			break
		}
		if _, ok := doc.header(j); ok {
			break
		}
		line := doc.trimmed(j)
		if strings.Contains(line, "(") {
			break
		}
		last = j
		if key, val, ok := strings.Cut(line, "="); ok {
			styles[strings.TrimSpace(key)] = strings.TrimSpace(val)
		}
	}
	return styles, last
}

// parsePoint parses "time,price".
func parsePoint(s string) (model.Point, lineStatus, error) {
	ts, price, ok := strings.Cut(s, ",")
	if !ok {
		return model.Point{}, lineSkipped, nil
	}
	t, err := ParseDateTime(ts)
	if err != nil {
		return model.Point{}, lineSkipped, err
	}
	f, err := parsePrice(price, "anchor")
	if err != nil {
		return model.Point{}, lineSkipped, err
	}
	return model.Point{Time: t, Price: f}, lineParsed, nil
}

// parseSpan parses "time,price;time,price".
func parseSpan(body string) (start, end model.Point, status lineStatus, err error) {
	first, second, ok := strings.Cut(body, ";")
	if !ok {
		return start, end, lineSkipped, nil
	}
	if start, status, err = parsePoint(first); err != nil || status == lineSkipped {
		return start, end, status, err
	}
	end, status, err = parsePoint(second)
	return start, end, status, err
}

func buildRectangle(body string, styles model.Styles) (model.Drawing, lineStatus, error) {
	start, end, status, err := parseSpan(body)
	if err != nil || status == lineSkipped {
		return nil, status, err
	}
	return model.Rectangle{Start: start, End: end, Styles: styles}, lineParsed, nil
}

func buildLine(body string, styles model.Styles) (model.Drawing, lineStatus, error) {
	start, end, status, err := parseSpan(body)
	if err != nil || status == lineSkipped {
		return nil, status, err
	}
	style, _ := model.ParseLineStyle(styles["style"])
	return model.Line{
		Start:     start,
		End:       end,
		Arrow:     model.ArrowFor(styles.Bool("left-arrow"), styles.Bool("right-arrow")),
		LineStyle: style,
		Styles:    styles,
	}, lineParsed, nil
}

func buildContinuousLine(body string, styles model.Styles) (model.Drawing, lineStatus, error) {
	start, end, status, err := parseSpan(body)
	if err != nil || status == lineSkipped {
		return nil, status, err
	}
	style, _ := model.ParseLineStyle(styles["style"])
	return model.ContinuousLine{Start: start, End: end, LineStyle: style, Styles: styles}, lineParsed, nil
}

func triangleBuilder(dir model.Direction) drawingBuilder {
	return func(body string, styles model.Styles) (model.Drawing, lineStatus, error) {
		t, err := ParseDateTime(body)
		if err != nil {
			return nil, lineSkipped, err
		}
		return model.Triangle{Time: t, Direction: dir, Styles: styles}, lineParsed, nil
	}
}

func circleBuilder(pos model.Position) drawingBuilder {
	return func(body string, styles model.Styles) (model.Drawing, lineStatus, error) {
		t, err := ParseDateTime(body)
		if err != nil {
			return nil, lineSkipped, err
		}
		return model.Circle{Time: t, Position: pos, Styles: styles}, lineParsed, nil
	}
}

func noteBuilder(pos model.Position) drawingBuilder {
	return func(body string, styles model.Styles) (model.Drawing, lineStatus, error) {
		ts, text, ok := strings.Cut(body, ",")
		if !ok {
			return nil, lineSkipped, nil
		}
		t, err := ParseDateTime(ts)
		if err != nil {
			return nil, lineSkipped, err
		}
		return model.Note{
			Time:     t,
			Text:     stripQuotes(strings.TrimSpace(text)),
			Position: pos,
			Styles:   styles,
		}, lineParsed, nil
	}
}

// Package parser turns Chart Markup Language text into a model.Chart.
//
// A CML document is a sequence of optional sections (meta:, settings:,
// bars:, drawings:, indicators:) in any order. Parsing is lenient about
// shape: lines that do not look like content of their section are skipped.
// It is strict about scalars the grammar requires, so a malformed timestamp
// or bar price fails the whole parse with a *FormatError.
package parser

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/markdicksonjr/chart-markup-language/internal/model"
)

// sectionParser consumes the content line at index i, possibly looking
// ahead, and returns the index of the last line it used.
type sectionParser func(doc *document, i int, chart *model.Chart) (int, lineStatus, error)

// Parser parses CML documents. It keeps no state between calls and is safe
// for concurrent use.
type Parser struct {
	log zerolog.Logger
}

// New returns a Parser that logs skipped lines to logger at debug level.
func New(logger zerolog.Logger) *Parser {
	return &Parser{log: logger}
}

// Parse parses text with a Parser that does not log.
func Parse(text string) (*model.Chart, error) {
	return New(zerolog.Nop()).Parse(text)
}

// ParseFile reads and parses the document at path with a Parser that does not log.
func ParseFile(path string) (*model.Chart, error) {
	return New(zerolog.Nop()).ParseFile(path)
}

// ParseFile reads and parses the document at path. Read failures are
// returned as *FileAccessError.
func (p *Parser) ParseFile(path string) (*model.Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	return p.Parse(string(data))
}

// Parse parses a complete CML document. On error no partial chart is returned.
func (p *Parser) Parse(text string) (*model.Chart, error) {
	doc := newDocument(text)
	chart := &model.Chart{
		Meta:       []model.MetaEntry{},
		Settings:   []model.SettingsEntry{},
		Bars:       []model.Bar{},
		Drawings:   []model.Drawing{},
		Indicators: []model.Indicator{},
	}

	parsers := map[section]sectionParser{
		sectionMeta:       p.parseMeta,
		sectionSettings:   p.parseSettings,
		sectionBars:       p.parseBars,
		sectionDrawings:   p.parseDrawings,
		sectionIndicators: p.parseIndicators,
	}

	current := sectionNone
	skipped := 0
	for i := 0; i < doc.len(); i++ {
		if doc.isBlankOrComment(i) {
			continue
		}
		if s, ok := doc.header(i); ok {
			current = s
			if s == sectionNone {
				p.log.Debug().Int("line", i+1).Str("text", doc.trimmed(i)).Msg("ignoring unknown section")
			}
			continue
		}

		parse, ok := parsers[current]
		if !ok {
			p.log.Debug().Int("line", i+1).Msg("ignoring content outside any section")
			continue
		}
		last, status, err := parse(doc, i, chart)
		if err != nil {
			return nil, fmt.Errorf("parse %s section: %w", current, atLine(err, i+1))
		}
		if status == lineSkipped {
			skipped++
			p.log.Debug().
				Int("line", i+1).
				Str("section", current.String()).
				Str("text", doc.trimmed(i)).
				Msg("skipped line")
		}
		i = last
	}

	p.log.Debug().
		Int("meta", len(chart.Meta)).
		Int("settings", len(chart.Settings)).
		Int("bars", len(chart.Bars)).
		Int("drawings", len(chart.Drawings)).
		Int("indicators", len(chart.Indicators)).
		Int("skipped", skipped).
		Msg("parsed chart")
	return chart, nil
}

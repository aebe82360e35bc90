package parser

import "strings"

type section int

const (
	sectionNone section = iota
	sectionMeta
	sectionSettings
	sectionBars
	sectionDrawings
	sectionIndicators
)

var sectionNames = map[string]section{
	"meta":       sectionMeta,
	"settings":   sectionSettings,
	"bars":       sectionBars,
	"drawings":   sectionDrawings,
	"indicators": sectionIndicators,
}

var sectionTitles = [...]string{
	sectionNone:       "none",
	sectionMeta:       "meta",
	sectionSettings:   "settings",
	sectionBars:       "bars",
	sectionDrawings:   "drawings",
	sectionIndicators: "indicators",
}

func (s section) String() string {
	if s < 0 || int(s) >= len(sectionTitles) {
		return "none"
	}
	return sectionTitles[s]
}

// lineStatus separates a line that was understood from one that was
// deliberately ignored because it did not have the expected shape.
type lineStatus int

const (
	lineParsed lineStatus = iota
	lineSkipped
)

// document is the whole input split into lines. Parsers walk it with an
// index and may look ahead past the current line.
type document struct {
	lines []string
}

func newDocument(text string) *document {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return &document{lines: strings.Split(text, "\n")}
}

func (d *document) len() int { return len(d.lines) }

func (d *document) trimmed(i int) string { return strings.TrimSpace(d.lines[i]) }

func (d *document) isBlankOrComment(i int) bool {
	line := d.trimmed(i)
	return line == "" || strings.HasPrefix(line, "#")
}

// header reports whether line i is a section header: a single word followed
// by ":" and nothing else. The five section words select their section; any
// other word is an unknown section whose content is ignored, returned as
// sectionNone. An indented config key such as "  grid:" opens an indented
// block and stays content.
func (d *document) header(i int) (section, bool) {
	word, ok := strings.CutSuffix(d.trimmed(i), ":")
	if !ok || word == "" || strings.ContainsAny(word, ": \t") {
		return sectionNone, false
	}
	if s, known := sectionNames[word]; known {
		return s, true
	}
	if isConfigName(word) && d.indent(i) > 0 {
		return sectionNone, false
	}
	return sectionNone, true
}

// indent counts leading spaces and tabs of line i.
func (d *document) indent(i int) int {
	line := d.lines[i]
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

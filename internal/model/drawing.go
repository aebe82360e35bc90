package model

import (
	"image/color"
	"strconv"
	"strings"
	"time"
)

// DrawingKind identifies the concrete type behind a Drawing.
type DrawingKind string

const (
	KindRectangle      DrawingKind = "rectangle"
	KindLine           DrawingKind = "line"
	KindContinuousLine DrawingKind = "continuous-line"
	KindTriangle       DrawingKind = "triangle"
	KindCircle         DrawingKind = "circle"
	KindNote           DrawingKind = "note"
)

// Drawing is an annotation placed on the chart. The set of implementations is
// closed: Rectangle, Line, ContinuousLine, Triangle, Circle and Note.
type Drawing interface {
	Kind() DrawingKind
	StyleMap() Styles
	drawing()
}

// ArrowKind says which ends of a Line carry an arrow head.
type ArrowKind string

const (
	ArrowNone  ArrowKind = ""
	ArrowLeft  ArrowKind = "left-arrow"
	ArrowRight ArrowKind = "right-arrow"
	ArrowBoth  ArrowKind = "both-arrows"
)

// ArrowFor combines the left-arrow and right-arrow flags.
func ArrowFor(left, right bool) ArrowKind {
	switch {
	case left && right:
		return ArrowBoth
	case left:
		return ArrowLeft
	case right:
		return ArrowRight
	}
	return ArrowNone
}

// LineStyle is the stroke pattern of a line.
type LineStyle string

const (
	LineSolid  LineStyle = "solid"
	LineDashed LineStyle = "dashed"
	LineDotted LineStyle = "dotted"
)

// ParseLineStyle maps a style keyword to a LineStyle. Empty and unknown
// keywords yield LineSolid with ok reporting whether s was recognised.
func ParseLineStyle(s string) (style LineStyle, ok bool) {
	switch LineStyle(strings.ToLower(strings.TrimSpace(s))) {
	case LineSolid:
		return LineSolid, true
	case LineDashed:
		return LineDashed, true
	case LineDotted:
		return LineDotted, true
	}
	return LineSolid, false
}

// Direction of a triangle marker.
type Direction string

const (
	Uptick   Direction = "uptick"
	Downtick Direction = "downtick"
)

// Position of a marker or note relative to its bar.
type Position string

const (
	Under Position = "under"
	Over  Position = "over"
)

// Rectangle spans the box between two anchors.
type Rectangle struct {
	Start  Point
	End    Point
	Styles Styles
}

// Line is a segment between two anchors, optionally with arrow heads.
type Line struct {
	Start     Point
	End       Point
	Arrow     ArrowKind
	LineStyle LineStyle
	Styles    Styles
}

// ContinuousLine is drawn across the whole chart by the renderer; Start and
// End keep the anchors as written.
type ContinuousLine struct {
	Start     Point
	End       Point
	LineStyle LineStyle
	Styles    Styles
}

// Triangle marks a bar with an uptick or downtick arrow.
type Triangle struct {
	Time      time.Time
	Direction Direction
	Styles    Styles
}

// Circle marks a bar from below or above.
type Circle struct {
	Time     time.Time
	Position Position
	Styles   Styles
}

// Note places a text label under or over a bar.
type Note struct {
	Time     time.Time
	Text     string
	Position Position
	Styles   Styles
}

func (Rectangle) Kind() DrawingKind      { return KindRectangle }
func (Line) Kind() DrawingKind           { return KindLine }
func (ContinuousLine) Kind() DrawingKind { return KindContinuousLine }
func (Triangle) Kind() DrawingKind       { return KindTriangle }
func (Circle) Kind() DrawingKind         { return KindCircle }
func (Note) Kind() DrawingKind           { return KindNote }

func (d Rectangle) StyleMap() Styles      { return d.Styles }
func (d Line) StyleMap() Styles           { return d.Styles }
func (d ContinuousLine) StyleMap() Styles { return d.Styles }
func (d Triangle) StyleMap() Styles       { return d.Styles }
func (d Circle) StyleMap() Styles         { return d.Styles }
func (d Note) StyleMap() Styles           { return d.Styles }

func (Rectangle) drawing()      {}
func (Line) drawing()           {}
func (ContinuousLine) drawing() {}
func (Triangle) drawing()       {}
func (Circle) drawing()         {}
func (Note) drawing()           {}

// Styles holds the raw key=value properties written under a drawing.
// Values are coerced on read.
type Styles map[string]string

// Get returns the raw value for key, or def when absent.
func (s Styles) Get(key, def string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return def
}

// Float returns key parsed as a float, or def when absent or not numeric.
func (s Styles) Float(key string, def float64) float64 {
	v, ok := s[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

// Bool reports whether key is set to "true", ignoring case.
func (s Styles) Bool(key string) bool {
	return strings.EqualFold(strings.TrimSpace(s[key]), "true")
}

// Color returns key parsed as #RGB or #RRGGBB, or def when absent or malformed.
func (s Styles) Color(key string, def color.RGBA) color.RGBA {
	v, ok := s[key]
	if !ok {
		return def
	}
	c, ok := ParseColor(v)
	if !ok {
		return def
	}
	return c
}

// ParseColor parses a #RGB or #RRGGBB hex colour. The leading # is optional.
func ParseColor(s string) (color.RGBA, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, true
}

package model

import "time"

// Bar is a single OHLC price bar. Bars are expected in non-decreasing Time
// order; nothing checks that Low <= Open/Close <= High.
type Bar struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Point anchors a drawing at a time and price.
type Point struct {
	Time  time.Time
	Price float64
}

// Closes returns the close prices of bars in order.
func Closes(bars []Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

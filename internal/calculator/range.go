package calculator

import (
	"errors"
	"math"

	"github.com/markdicksonjr/chart-markup-language/internal/model"
)

// PriceRange returns the highest high and lowest low across bars.
func PriceRange(bars []model.Bar) (high, low float64, err error) {
	if len(bars) == 0 {
		return 0, 0, errors.New("no bars provided")
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	return high, low, nil
}

// Position locates price within the [low, high] range as a fraction: 0 at
// the low, 1 at the high, clamped outside it. A flat range gives 0.5.
func Position(price, high, low float64) (float64, error) {
	switch {
	case high < low:
		return 0, errors.New("high must be >= low")
	case high == low:
		return 0.5, nil
	}
	return math.Min(1, math.Max(0, (price-low)/(high-low))), nil
}

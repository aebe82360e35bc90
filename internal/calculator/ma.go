package calculator

import (
	"errors"
	"math"
)

// CalculateSMA computes the simple moving average series of prices over the
// given period. Entries before the first full window are NaN.
func CalculateSMA(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(prices) < period {
		return nil, errors.New("not enough data for SMA calculation")
	}
	out := nanSeries(len(prices))
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out, nil
}

// CalculateEMA computes the exponential moving average series seeded with
// the first price, using alpha = 2/(period+1).
func CalculateEMA(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(prices) < period {
		return nil, errors.New("not enough data for EMA calculation")
	}
	alpha := 2.0 / float64(period+1)
	out := make([]float64, len(prices))
	out[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		out[i] = alpha*prices[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}

// CalculateBollinger returns the middle (SMA), upper and lower bands, the
// outer bands being k population standard deviations away.
func CalculateBollinger(prices []float64, period int, k float64) (middle, upper, lower []float64, err error) {
	middle, err = CalculateSMA(prices, period)
	if err != nil {
		return nil, nil, nil, err
	}
	upper = nanSeries(len(prices))
	lower = nanSeries(len(prices))
	for i := period - 1; i < len(prices); i++ {
		variance := 0.0
		for j := i - period + 1; j <= i; j++ {
			d := prices[j] - middle[i]
			variance += d * d
		}
		sd := math.Sqrt(variance / float64(period))
		upper[i] = middle[i] + k*sd
		lower[i] = middle[i] - k*sd
	}
	return middle, upper, lower, nil
}

// CalculateMACD returns the MACD line (fast EMA - slow EMA) and its signal EMA.
func CalculateMACD(prices []float64, fast, slow, signal int) (macd, signalLine []float64, err error) {
	if fast >= slow {
		return nil, nil, errors.New("fast period must be shorter than slow period")
	}
	fastEMA, err := CalculateEMA(prices, fast)
	if err != nil {
		return nil, nil, err
	}
	slowEMA, err := CalculateEMA(prices, slow)
	if err != nil {
		return nil, nil, err
	}
	macd = make([]float64, len(prices))
	for i := range prices {
		macd[i] = fastEMA[i] - slowEMA[i]
	}
	signalLine, err = CalculateEMA(macd, signal)
	if err != nil {
		return nil, nil, err
	}
	return macd, signalLine, nil
}

func nanSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

package calculator

import (
	"fmt"
	"math"

	"github.com/markdicksonjr/chart-markup-language/internal/model"
)

// Line is one named output of an indicator, aligned index-for-index with the
// bars it was computed from. Warm-up entries are NaN.
type Line struct {
	Label  string
	Values []float64
}

// Series is the computed result of an indicator.
type Series struct {
	Name  string
	Lines []Line
}

// Last returns the most recent finite value of every line, keyed by label.
func (s Series) Last() map[string]float64 {
	out := make(map[string]float64, len(s.Lines))
	for _, l := range s.Lines {
		for i := len(l.Values) - 1; i >= 0; i-- {
			if !math.IsNaN(l.Values[i]) {
				out[l.Label] = l.Values[i]
				break
			}
		}
	}
	return out
}

// Supported reports whether Evaluate knows how to compute name.
func Supported(name string) bool {
	_, ok := evaluators[name]
	return ok
}

type evaluator func(ind model.Indicator, closes []float64) ([]Line, error)

var evaluators = map[string]evaluator{
	"sma":       evalSMA,
	"ema":       evalEMA,
	"bollinger": evalBollinger,
	"rsi":       evalRSI,
	"macd":      evalMACD,
}

// Evaluate computes ind over the close prices of bars.
func Evaluate(ind model.Indicator, bars []model.Bar) (Series, error) {
	eval, ok := evaluators[ind.Name]
	if !ok {
		return Series{}, fmt.Errorf("unknown indicator %q", ind.Name)
	}
	lines, err := eval(ind, model.Closes(bars))
	if err != nil {
		return Series{}, fmt.Errorf("%s: %w", ind.Name, err)
	}
	return Series{Name: ind.Name, Lines: lines}, nil
}

func evalSMA(ind model.Indicator, closes []float64) ([]Line, error) {
	period, err := intParam(ind, "period", 0)
	if err != nil {
		return nil, err
	}
	v, err := CalculateSMA(closes, period)
	if err != nil {
		return nil, err
	}
	return []Line{{Label: "sma", Values: v}}, nil
}

func evalEMA(ind model.Indicator, closes []float64) ([]Line, error) {
	period, err := intParam(ind, "period", 0)
	if err != nil {
		return nil, err
	}
	v, err := CalculateEMA(closes, period)
	if err != nil {
		return nil, err
	}
	return []Line{{Label: "ema", Values: v}}, nil
}

func evalBollinger(ind model.Indicator, closes []float64) ([]Line, error) {
	period, err := intParam(ind, "period", 0)
	if err != nil {
		return nil, err
	}
	k, err := floatParam(ind, "stddev", 2)
	if err != nil {
		return nil, err
	}
	middle, upper, lower, err := CalculateBollinger(closes, period, k)
	if err != nil {
		return nil, err
	}
	return []Line{
		{Label: "upper", Values: upper},
		{Label: "middle", Values: middle},
		{Label: "lower", Values: lower},
	}, nil
}

func evalRSI(ind model.Indicator, closes []float64) ([]Line, error) {
	period, err := intParam(ind, "period", 14)
	if err != nil {
		return nil, err
	}
	v, err := CalculateRSI(closes, period)
	if err != nil {
		return nil, err
	}
	return []Line{{Label: "rsi", Values: v}}, nil
}

func evalMACD(ind model.Indicator, closes []float64) ([]Line, error) {
	fast, err := intParam(ind, "fast", 12)
	if err != nil {
		return nil, err
	}
	slow, err := intParam(ind, "slow", 26)
	if err != nil {
		return nil, err
	}
	signal, err := intParam(ind, "signal", 9)
	if err != nil {
		return nil, err
	}
	macd, sig, err := CalculateMACD(closes, fast, slow, signal)
	if err != nil {
		return nil, err
	}
	return []Line{
		{Label: "macd", Values: macd},
		{Label: "signal", Values: sig},
	}, nil
}

// intParam reads a positive whole-number parameter. A def of 0 marks the
// parameter as required.
func intParam(ind model.Indicator, key string, def int) (int, error) {
	v, ok := ind.Param(key)
	if !ok {
		if def == 0 {
			return 0, fmt.Errorf("missing parameter %q", key)
		}
		return def, nil
	}
	f, ok := v.AsNumber()
	if !ok || f != math.Trunc(f) || f <= 0 {
		return 0, fmt.Errorf("parameter %q must be a positive integer, got %s", key, v.String())
	}
	return int(f), nil
}

func floatParam(ind model.Indicator, key string, def float64) (float64, error) {
	v, ok := ind.Param(key)
	if !ok {
		return def, nil
	}
	f, ok := v.AsNumber()
	if !ok || f < 0 {
		return 0, fmt.Errorf("parameter %q must be a non-negative number, got %s", key, v.String())
	}
	return f, nil
}

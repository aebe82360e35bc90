package model

// Indicator is a technical indicator request such as ema(period=20).
// Params hold Int, Float or raw String values; computing the indicator is
// left to the consumer.
type Indicator struct {
	Name   string
	Params map[string]Value
}

// Param returns the named parameter.
func (i Indicator) Param(key string) (Value, bool) {
	v, ok := i.Params[key]
	return v, ok
}

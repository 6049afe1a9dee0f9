package interpreter

import "time"

// clock is the native callable pre-populated into globals (spec.md
// §4.4): arity 0, returns the current wall-clock time in seconds as a
// double.
type clock struct{}

func (clock) Arity() int { return 0 }

func (clock) Call(i *Interpreter, arguments []interface{}) (interface{}, error) {
	return float64(time.Now().UnixNano()) / 1e9, nil
}

func (clock) String() string { return "<native fn>" }

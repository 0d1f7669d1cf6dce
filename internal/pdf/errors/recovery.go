package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError is the cause attached to a strategy failure that panicked.
type PanicError struct {
	Value      interface{}
	StackTrace string
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Guard runs fn and converts both a returned error and a panic into a
// StrategyFailure for the named strategy. PDF parsing libraries panic on
// malformed input, so every strategy runs behind Guard.
func Guard(strategy string, fn func() (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = NewStrategyFailure(strategy, &PanicError{
				Value:      r,
				StackTrace: string(debug.Stack()),
			})
		}
	}()

	text, err = fn()
	if err != nil {
		return "", NewStrategyFailure(strategy, err)
	}
	return text, nil
}

package calc

import (
	"errors"
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separate errors reporting code from errors
// displaying code. The core never reports by itself, it returns errors to the
// caller which decides whether to hand them to a reporter.
type Reporter interface {
	Report(err error)
	Reset()
	HadError() bool
	HadRuntimeError() bool
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer        io.Writer
	hadErr        bool
	hadRuntimeErr bool
}

func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer, false, false}
}

func (reporter *SimpleReporter) Report(err error) {
	if IsRuntimeError(err) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

// IsRuntimeError reports whether err was raised while evaluating, as opposed
// to while reading the source.
func IsRuntimeError(err error) bool {
	var nameErr *NameError
	var arithErr *ArithmeticError
	return errors.As(err, &nameErr) || errors.As(err, &arithErr)
}

// Package errors holds the error kinds raised by the translation pipeline.
package errors

import (
	goerrors "errors"
	"fmt"
)

// Inconceivable is panicked with when an invariant the code relies on is
// broken. It never reaches callers of a correctly paired parser/translator.
var Inconceivable = goerrors.New("inconceivable")

// GrammarMismatchError is returned when canonical text matches no grammar
// production.
type GrammarMismatchError struct {
	Text   string
	Offset int
	Cause  error
}

func (e GrammarMismatchError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("phrase not recognized: %q", e.Text)
	}
	return fmt.Sprintf("phrase not recognized: %q: %v", e.Text, e.Cause)
}

func (e GrammarMismatchError) Unwrap() error { return e.Cause }

// UnhandledNodeError reports a syntax tree node the translator has no rule
// for.
type UnhandledNodeError struct {
	Kind string
}

func (e UnhandledNodeError) Error() string {
	return fmt.Sprintf("no translation rule for node %s", e.Kind)
}

// InvalidRegexError reports a final regex rejected by the validator.
type InvalidRegexError struct {
	Regex string
	Cause error
}

func (e InvalidRegexError) Error() string {
	return fmt.Sprintf("generated regex %q is invalid: %v", e.Regex, e.Cause)
}

func (e InvalidRegexError) Unwrap() error { return e.Cause }

// NumeralOverflowError reports a repetition count too large for the regex
// engine.
type NumeralOverflowError struct {
	Numeral string
	Limit   int
}

func (e NumeralOverflowError) Error() string {
	return fmt.Sprintf("count %s exceeds the largest supported count %d", e.Numeral, e.Limit)
}

// InvalidRangeError reports a character range whose bounds are reversed.
type InvalidRangeError struct {
	Lo, Hi string
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("range %q to %q is in reverse order", e.Lo, e.Hi)
}

// UnsupportedNegationError reports an except clause whose excluded part can
// not be written as a negated character class.
type UnsupportedNegationError struct {
	Fragment string
}

func (e UnsupportedNegationError) Error() string {
	return fmt.Sprintf("cannot negate %q as a character class", e.Fragment)
}

func IsGrammarMismatch(err error) bool {
	var target GrammarMismatchError
	return goerrors.As(err, &target)
}

func IsUnhandledNode(err error) bool {
	var target UnhandledNodeError
	return goerrors.As(err, &target)
}

func IsInvalidRegex(err error) bool {
	var target InvalidRegexError
	return goerrors.As(err, &target)
}

func IsNumeralOverflow(err error) bool {
	var target NumeralOverflowError
	return goerrors.As(err, &target)
}

func IsInvalidRange(err error) bool {
	var target InvalidRangeError
	return goerrors.As(err, &target)
}

func IsUnsupportedNegation(err error) bool {
	var target UnsupportedNegationError
	return goerrors.As(err, &target)
}

package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/arr-ai/regexphrase/errors"
)

func mismatch(text string, cause error) error {
	offset := -1
	if perr, ok := cause.(participle.Error); ok {
		offset = perr.Position().Offset
	}
	return errors.GrammarMismatchError{Text: text, Offset: offset, Cause: cause}
}

func mismatchf(text string, format string, args ...interface{}) error {
	return mismatch(text, fmt.Errorf(format, args...))
}

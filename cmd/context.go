package cmd

import (
	goerrors "errors"
	"strings"
	"unicode"

	"github.com/arr-ai/regexphrase/errors"
)

// context returns the text of a grammar mismatch with the word the parser
// stopped at shown in red.
func context(err error) (string, bool) {
	var mismatch errors.GrammarMismatchError
	if !goerrors.As(err, &mismatch) || mismatch.Offset < 0 || mismatch.Offset > len(mismatch.Text) {
		return "", false
	}
	text, at := mismatch.Text, mismatch.Offset
	end := at + strings.IndexFunc(text[at:], unicode.IsSpace)
	if end < at {
		end = len(text)
	}
	word := text[at:end]
	if word == "" {
		word = "<end>"
	}
	return text[:at] + failure(word) + text[end:], true
}

package pipeline

import (
	"github.com/dlclark/regexp2"

	"github.com/arr-ai/regexphrase/errors"
)

func compile(regex string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(regex, regexp2.None)
	if err != nil {
		return nil, errors.InvalidRegexError{Regex: regex, Cause: err}
	}
	return re, nil
}

// Validate reports whether regex compiles. The engine allows backreferences
// and counts up to the parser's limit, which Go's regexp package does not.
func Validate(regex string) error {
	_, err := compile(regex)
	return err
}

// FullMatch reports whether regex matches all of text.
func FullMatch(regex, text string) (bool, error) {
	if err := Validate(regex); err != nil {
		return false, err
	}
	re, err := compile(`\A(?:` + regex + `)\z`)
	if err != nil {
		return false, err
	}
	return re.MatchString(text)
}

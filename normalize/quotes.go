package normalize

import (
	"strings"
	"unicode/utf8"
)

// placeholderBase starts a private-use range that never occurs in phrases.
// Placeholders are single non-word runes so that word-bounded rewrites can
// not see into them.
const placeholderBase = 0xE000

type segment struct {
	text   string
	quoted bool
}

// splitQuoted cuts s into alternating unquoted and quoted segments. A quoted
// segment keeps its quote characters. Either quote character opens a span
// that only the same, unescaped, character closes. An unterminated span runs
// to the end of s.
func splitQuoted(s string) []segment {
	var segments []segment
	var open rune
	start := 0
	escaped := false

	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case open == 0 && (r == '\'' || r == '"'):
			if i > start {
				segments = append(segments, segment{s[start:i], false})
			}
			open = r
			start = i
		case r == open:
			end := i + utf8.RuneLen(r)
			segments = append(segments, segment{s[start:end], true})
			open = 0
			start = end
		}
	}
	if start < len(s) {
		segments = append(segments, segment{s[start:], open != 0})
	}
	return segments
}

func lowerOutsideQuotes(s string) string {
	var sb strings.Builder
	for _, seg := range splitQuoted(s) {
		if seg.quoted {
			sb.WriteString(seg.text)
		} else {
			sb.WriteString(strings.ToLower(seg.text))
		}
	}
	return sb.String()
}

// shieldQuotes swaps every quoted span for a placeholder rune and returns the
// spans in placeholder order. Each placeholder is padded with spaces so a
// literal always stands as its own token.
func shieldQuotes(s string) (string, []string) {
	var sb strings.Builder
	var quoted []string
	for _, seg := range splitQuoted(s) {
		if !seg.quoted {
			sb.WriteString(seg.text)
			continue
		}
		sb.WriteString(" ")
		sb.WriteRune(rune(placeholderBase + len(quoted)))
		sb.WriteString(" ")
		quoted = append(quoted, seg.text)
	}
	return sb.String(), quoted
}

func restoreQuotes(s string, quoted []string) string {
	if len(quoted) == 0 {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		if i := int(r - placeholderBase); i >= 0 && i < len(quoted) {
			sb.WriteString(quoted[i])
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Package envexpr expands ${env.KEY} references in configuration text.
package envexpr

import (
	"strings"
	"unicode"
)

const prefix = "${env."

// Expand replaces every ${env.KEY} in value with lookup(KEY); unknown keys
// expand to "". A reference without a closing brace is kept verbatim, and a
// key with characters other than letters, digits or '_' leaves the prefix as
// literal text.
func Expand(value string, lookup func(key string) (string, bool)) string {
	if !strings.Contains(value, prefix) {
		return value
	}
	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(value[i:], prefix)
		if idx < 0 {
			b.WriteString(value[i:])
			break
		}
		b.WriteString(value[i : i+idx])
		startKey := i + idx + len(prefix)
		endKey := strings.IndexByte(value[startKey:], '}')
		if endKey < 0 {
			b.WriteString(value[i+idx:])
			break
		}
		key := value[startKey : startKey+endKey]
		if !validKey(key) {
			b.WriteString(prefix)
			i = startKey
			continue
		}
		if resolved, ok := lookup(key); ok {
			b.WriteString(resolved)
		}
		i = startKey + endKey + 1
	}
	return b.String()
}

func validKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}

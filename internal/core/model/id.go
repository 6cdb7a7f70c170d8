package model

import (
	"strconv"
	"strings"
)

// ParseID coerces a textual id the lenient way browsers parse integers:
// surrounding whitespace and trailing non-digits are ignored, so "7", " 7"
// and "7th" all yield 7. It reports false when no leading digits exist.
func ParseID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	id, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return id, true
}

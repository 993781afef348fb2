package tally

import "strings"

// DefaultSentinel is the word that ends ingestion when no other is configured.
const DefaultSentinel = "end"

// FirstField returns the first whitespace-delimited field of line, or "" if
// the line is blank. Everything after the first field is ignored.
func FirstField(line string) string {
	line = strings.TrimLeft(line, " \t\v\f\r\n")
	if i := strings.IndexAny(line, " \t\v\f\r\n"); i >= 0 {
		return line[:i]
	}
	return line
}

// IsWord reports whether s is non-empty and made only of ASCII letters.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

// ExtractToken returns the candidate token of line and whether it is a word.
// The candidate is returned even when rejected so callers can log it.
func ExtractToken(line string) (string, bool) {
	field := FirstField(line)
	return field, IsWord(field)
}

package cmd

import "strings"

// shellQuote minimally quotes an argument for POSIX shells: common safe
// characters pass through untouched, anything else gets single-quoted with
// the standard `'\''` escape for embedded single quotes. CQL statements
// handed to cqlsh -e travel through here, so their string literals survive
// the remote shell intact.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, unsafeShellRune) == -1 {
		return s
	}
	// Single-quote, escaping embedded single quotes: ' -> '\''
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// unsafeShellRune reports runes outside the quote-free set: alnum plus a
// short list of punctuation no common shell treats specially.
func unsafeShellRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	switch r {
	case '-', '_', '.', '/', '@', ':', ',', '+', '=':
		return false
	}
	return true
}

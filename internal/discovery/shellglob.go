package discovery

import "strings"

// ShellToRegex converts a shell glob pattern to an equivalent regexp
// pattern, grounded on original_source/src/shell_to_regex.rs: `*` becomes
// `.*`, `?` becomes `.`, a literal `.` is escaped to `\.`, `[...]` bracket
// expressions pass through untouched, and a backslash escapes whatever
// character follows it.
func ShellToRegex(pattern string) string {
	var out strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '*':
			out.WriteString(".*")
		case '?':
			out.WriteByte('.')
		case '.':
			out.WriteString(`\.`)
		case '[':
			out.WriteByte('[')
			for i+1 < len(runes) && runes[i+1] != ']' {
				i++
				out.WriteRune(runes[i])
			}
		case '\\':
			if i+1 < len(runes) {
				out.WriteByte('\\')
				i++
				out.WriteRune(runes[i])
			}
		default:
			out.WriteRune(c)
		}
	}
	return out.String()
}

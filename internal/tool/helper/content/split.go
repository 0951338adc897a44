package content

// SplitLines splits content into lines, handling both \n and \r\n line endings.
// It returns a slice of strings, each representing a line without its line ending.
// If the content ends with a newline sequence, it does NOT return a trailing empty string.
func SplitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		} else if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 2
			i++ // Skip the \n
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// LineEnding returns "\r\n" when content uses CRLF line endings and "\n" otherwise.
func LineEnding(content string) string {
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			if i > 0 && content[i-1] == '\r' {
				return "\r\n"
			}
			return "\n"
		}
	}
	return "\n"
}

// HasTrailingNewline reports whether content ends with a line terminator.
func HasTrailingNewline(content string) bool {
	return len(content) > 0 && content[len(content)-1] == '\n'
}

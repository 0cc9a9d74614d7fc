package bump

import "strings"

// rawLine is one content line with its original terminator. Keeping the
// terminator per line lets rewritten content preserve the source file's
// line ending convention, including a missing final newline.
type rawLine struct {
	text string
	eol  string
}

func splitKeepEnds(content string) []rawLine {
	var lines []rawLine
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		end := i
		eol := "\n"
		if end > start && content[end-1] == '\r' {
			end--
			eol = "\r\n"
		}
		lines = append(lines, rawLine{text: content[start:end], eol: eol})
		start = i + 1
	}
	if start < len(content) {
		lines = append(lines, rawLine{text: content[start:]})
	}
	return lines
}

func joinLines(lines []rawLine) string {
	var b strings.Builder
	for _, ln := range lines {
		b.WriteString(ln.text)
		b.WriteString(ln.eol)
	}
	return b.String()
}

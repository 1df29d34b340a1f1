package entities

import "bytes"

// StripTrailingWhitespace removes spaces and tabs found right before every
// line terminator and at the end of the final unterminated line. A "\r\n"
// terminator keeps its "\r". It returns the rewritten content and the number
// of lines that changed; content is returned as-is when nothing changed.
func StripTrailingWhitespace(content []byte) ([]byte, int) {
	var out bytes.Buffer
	out.Grow(len(content))

	changed := 0
	for remaining := content; len(remaining) > 0; {
		line, rest, terminated := bytes.Cut(remaining, []byte{'\n'})
		remaining = rest

		eol := ""
		if terminated {
			eol = "\n"
			if trimmed, ok := bytes.CutSuffix(line, []byte{'\r'}); ok {
				line = trimmed
				eol = "\r\n"
			}
		}

		stripped := bytes.TrimRight(line, " \t")
		if len(stripped) != len(line) {
			changed++
		}
		out.Write(stripped)
		out.WriteString(eol)
	}

	if changed == 0 {
		return content, 0
	}
	return out.Bytes(), changed
}

// StripResult describes what happened to a single file.
type StripResult struct {
	Path         string
	LinesChanged int
}

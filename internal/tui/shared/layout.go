package shared

import "strings"

// PinHints renders content from the top of the available height with hints
// on the last line(s). Content that does not fit is cut from the bottom so
// the hints stay visible.
func PinHints(content, hints string, height int) string {
	content = strings.TrimRight(content, "\n")
	hints = strings.TrimRight(hints, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	var hintLines []string
	if hints != "" {
		hintLines = strings.Split(hints, "\n")
	}

	room := height - len(hintLines)
	if room < 0 {
		room = 0
	}
	if len(contentLines) > room {
		contentLines = contentLines[:room]
	}

	lines := make([]string, 0, height)
	lines = append(lines, contentLines...)
	for len(lines) < room {
		lines = append(lines, "")
	}
	lines = append(lines, hintLines...)

	return strings.Join(lines, "\n")
}

// Window returns the [start, end) range of a list of n rows that keeps
// cursor visible inside height rows.
func Window(n, cursor, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}

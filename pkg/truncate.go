package pkg

const shortenMarker = ".."

// shortenText shortens text to at most max characters while keeping both ends,
// so a long command string still identifies itself. The tail gets half of the
// remaining budget rounded down, the head gets the rest. Widths of 2 or less
// degrade to just the marker instead of panicking.
func shortenText(text string, max int) string {
	runes := []rune(text)
	if text == "" || len(runes) <= max {
		return text
	}
	budget := max - len(shortenMarker)
	tail := budget / 2
	if tail < 0 {
		tail = 0
	}
	head := budget - tail
	if head < 0 {
		head = 0
	}
	return string(runes[:head]) + shortenMarker + string(runes[len(runes)-tail:])
}

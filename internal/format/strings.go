package format

// Clip truncates a string to at most width display cells, counting runes.
// It is the renderer's last defense against writing past the terminal
// edge, so it must be applied before any styling escapes are added.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

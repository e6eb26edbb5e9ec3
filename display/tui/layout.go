package tui

// Geometry derivations, recomputed from the current terminal size every
// frame so a resize takes effect on the next tick without special cases.

// graphWidth is the cell width available to sparklines.
func graphWidth(termWidth int) int {
	return max(10, termWidth-18)
}

// barWidth is the total cell width of a proportion bar, brackets included.
func barWidth(termWidth int) int {
	return max(10, termWidth-22)
}

// historyLength is the rolling window bound: roughly six screens of
// redraws worth of samples, with a floor of 60 even on narrow terminals.
func historyLength(graphWidth int) int {
	return max(60, graphWidth*6)
}

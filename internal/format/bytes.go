// Package format holds small display formatting helpers shared by the TUI
// and report output.
package format

import "fmt"

const mib = 1024 * 1024

// MB renders a byte count as whole mebibytes, the unit the dashboard uses
// throughout.
func MB(bytes uint64) string {
	return fmt.Sprintf("%.0f", float64(bytes)/mib)
}

// MBf renders a fractional byte count (model projections) as whole
// mebibytes.
func MBf(bytes float64) string {
	return fmt.Sprintf("%.0f", bytes/mib)
}

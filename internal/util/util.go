// Package util holds small helpers shared by the delivery and usecase layers.
package util

import "github.com/dustin/go-humanize"

// FormatBytes renders a size in binary units, e.g. "5.0 MiB".
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}

	return humanize.IBytes(uint64(bytes))
}

// Package viz holds the terminal side of animgen: lipgloss themes and
// styles for command output, asciigraph plots of per-frame metrics, and a
// Bubble Tea progress view that renders generators one at a time.
package viz

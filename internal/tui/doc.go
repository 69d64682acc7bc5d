// Package tui renders sync results and replica state for the terminal.
//
// Output is styled with lipgloss; colours degrade to plain text when stdout
// is not a terminal.
package tui

package tui

// Message types for Bubble Tea update loop.

// dismissWarningsMsg hides the config-substitution notice after its display
// window elapses.
type dismissWarningsMsg struct{}

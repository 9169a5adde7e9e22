// Package tui provides a terminal display surface built on Bubble Tea.
// The framebuffer is downsampled into half-block cells; key presses and
// mouse events from the terminal are turned into held input state.
package tui

// FrameMsg carries a rendered frame from the game loop to the program.
type FrameMsg string

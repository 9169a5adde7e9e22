package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlock shows the top sample as foreground and the bottom one as
// background, giving two pixels per cell vertically.
const halfBlock = "▀"

// cellColors is the pair of samples rendered in one cell.
type cellColors struct {
	top, bottom uint32
}

// Renderer converts framebuffers into styled terminal text. It caches one
// lipgloss style per color pair.
type Renderer struct {
	styles map[cellColors]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[cellColors]lipgloss.Style)}
}

// Render downsamples a width×height buffer into cols×rows cells.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(buf []uint32, width, height, cols, rows int) string {
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 || len(buf) < width*height {
		return ""
	}

	var sb strings.Builder
	sb.Grow(cols*rows*len(halfBlock) + rows)

	for cy := 0; cy < rows; cy++ {
		if cy > 0 {
			sb.WriteByte('\n')
		}
		topRow := buf[sample(2*cy, 2*rows, height)*width:]
		bottomRow := buf[sample(2*cy+1, 2*rows, height)*width:]

		cellAt := func(cx int) cellColors {
			px := sample(cx, cols, width)
			return cellColors{top: topRow[px], bottom: bottomRow[px]}
		}

		cx := 0
		for cx < cols {
			start := cellAt(cx)
			n := 0
			for cx < cols && cellAt(cx) == start {
				n++
				cx++
			}
			sb.WriteString(r.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func (r *Renderer) style(c cellColors) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(hexColor(c.top)).
		Background(hexColor(c.bottom))
	r.styles[c] = st
	return st
}

func hexColor(p uint32) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", p&0xFFFFFF))
}

// sample maps bucket i of n onto the center pixel of a size-pixel axis.
func sample(i, n, size int) int {
	p := (2*i + 1) * size / (2 * n)
	if p >= size {
		p = size - 1
	}
	return p
}

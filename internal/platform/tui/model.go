package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/square-shooter/internal/core"
	"github.com/vovakirdan/square-shooter/internal/shooter"
)

// Model is the Bubble Tea model for the terminal surface. It forwards
// input to the Surface and shows the most recent presented frame.
type Model struct {
	surface *Surface
	keys    KeyMap
	help    help.Model
	title   string
	frame   string
}

// NewModel creates a model bound to a surface.
func NewModel(s *Surface, title string) Model {
	return Model{
		surface: s,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		title:   title,
	}
}

// Init sets the terminal title. Frames arrive from the game loop.
func (m Model) Init() tea.Cmd {
	if m.title == "" {
		return nil
	}
	return tea.SetWindowTitle(m.title)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		// Last row is the help footer.
		m.surface.resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.frame = string(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.surface.requestQuit()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Fire):
		m.surface.pressFire()
		return m, nil
	}

	if k := m.keys.MapKey(msg); k != core.KeyNone {
		m.surface.press(k)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	m.surface.moveMouse(msg.X, msg.Y)
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.surface.setMouseDown(true)
	case tea.MouseActionRelease:
		m.surface.setMouseDown(false)
	}
}

// View renders the latest frame with the key help below it.
func (m Model) View() string {
	return m.frame + "\n" + m.help.View(m.keys)
}

// Config describes the terminal surface.
type Config struct {
	Title     string
	Width     int // Framebuffer width in pixels
	Height    int // Framebuffer height in pixels
	Cols      int // Initial terminal columns
	Rows      int // Initial terminal rows, footer included
	HoldTicks int
	TickRate  int
}

// Run starts the Bubble Tea program and the game loop side by side and
// blocks until either stops. Quitting the program closes the surface,
// which ends the loop; the loop ending quits the program.
func Run(ctx context.Context, cfg Config, newLoop func(shooter.Surface) *shooter.Loop) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("tui: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	s := NewSurface(cfg.Width, cfg.Height, cfg.Cols, cfg.Rows-1, cfg.HoldTicks)
	p := tea.NewProgram(NewModel(s, cfg.Title), tea.WithAltScreen(), tea.WithMouseAllMotion())
	s.attach(p.Send)
	loop := newLoop(s)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer s.markClosed()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("tui: cannot run display: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		defer p.Quit()
		return loop.Run(gctx, cfg.TickRate)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

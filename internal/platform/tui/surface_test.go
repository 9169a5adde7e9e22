package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-shooter/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Key
	}{
		{runeKey('w'), core.KeyW},
		{runeKey('a'), core.KeyA},
		{runeKey('s'), core.KeyS},
		{runeKey('d'), core.KeyD},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape},
		{runeKey('x'), core.KeyNone},
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyNone},
	}

	for _, tt := range tests {
		if got := keys.MapKey(tt.msg); got != tt.expected {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestHeldKeyDecays(t *testing.T) {
	s := NewSurface(4, 4, 4, 2, 3)
	m := NewModel(s, "")
	m.Update(runeKey('d'))

	buf := make([]uint32, 16)
	for i := 0; i < 3; i++ {
		if !s.KeyDown(core.KeyD) {
			t.Fatalf("KeyDown(D) = false after %d frames, expected true", i)
		}
		if err := s.Present(buf, 4, 4); err != nil {
			t.Fatalf("Present() error = %v", err)
		}
	}
	if s.KeyDown(core.KeyD) {
		t.Error("KeyDown(D) = true after hold window, expected false")
	}
}

func TestRepeatRefreshesHold(t *testing.T) {
	s := NewSurface(4, 4, 4, 2, 2)
	m := NewModel(s, "")
	buf := make([]uint32, 16)

	m.Update(runeKey('w'))
	_ = s.Present(buf, 4, 4)
	m.Update(runeKey('w'))
	_ = s.Present(buf, 4, 4)
	if !s.KeyDown(core.KeyW) {
		t.Error("KeyDown(W) = false, expected repeat to extend the hold")
	}
}

func TestSpaceFires(t *testing.T) {
	s := NewSurface(4, 4, 4, 2, 1)
	m := NewModel(s, "")
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if !s.MouseButtonDown(core.MouseButtonLeft) {
		t.Fatal("MouseButtonDown(Left) = false after space, expected true")
	}
	if s.MouseButtonDown(core.MouseButtonRight) {
		t.Error("MouseButtonDown(Right) = true, expected false")
	}
	_ = s.Present(make([]uint32, 16), 4, 4)
	if s.MouseButtonDown(core.MouseButtonLeft) {
		t.Error("MouseButtonDown(Left) = true after hold window, expected false")
	}
}

func TestMouseMapsCellsToPixels(t *testing.T) {
	s := NewSurface(800, 600, 80, 24, 0)
	m := NewModel(s, "")

	if _, _, ok := s.MousePosition(); ok {
		t.Fatal("MousePosition() ok before any mouse event, expected false")
	}

	m.Update(tea.MouseMsg{X: 40, Y: 12, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if !s.MouseButtonDown(core.MouseButtonLeft) {
		t.Error("MouseButtonDown(Left) = false after press, expected true")
	}
	x, y, ok := s.MousePosition()
	if !ok || x != 405 || y != 312 {
		t.Errorf("MousePosition() = (%v, %v, %v), expected (405, 312, true)", x, y, ok)
	}

	// The help row lies below the frame.
	m.Update(tea.MouseMsg{X: 200, Y: 30, Action: tea.MouseActionMotion})
	x, y, _ = s.MousePosition()
	if x != 795 || y != 587 {
		t.Errorf("MousePosition() = (%v, %v), expected clamp to (795, 587)", x, y)
	}

	m.Update(tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if s.MouseButtonDown(core.MouseButtonLeft) {
		t.Error("MouseButtonDown(Left) = true after release, expected false")
	}
}

func TestResizeKeepsFooterRow(t *testing.T) {
	s := NewSurface(8, 8, 4, 4, 0)
	m := NewModel(s, "")
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 6})

	var got string
	s.attach(func(msg tea.Msg) { got = string(msg.(FrameMsg)) })
	if err := s.Present(make([]uint32, 64), 8, 8); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if lines := len(strings.Split(got, "\n")); lines != 5 {
		t.Errorf("frame has %d lines, expected 5", lines)
	}
}

func TestQuitKeys(t *testing.T) {
	s := NewSurface(4, 4, 4, 2, 0)
	m := NewModel(s, "")

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Update(q) returned no command, expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Update(q) command is not tea.Quit")
	}
	if !s.ShouldQuit() {
		t.Error("ShouldQuit() = false after q, expected true")
	}

	s2 := NewSurface(4, 4, 4, 2, 0)
	NewModel(s2, "").Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !s2.KeyDown(core.KeyEscape) {
		t.Error("KeyDown(Escape) = false after esc, expected true")
	}
}

func TestPresentRejectsMismatch(t *testing.T) {
	s := NewSurface(4, 4, 4, 2, 0)
	if err := s.Present(make([]uint32, 16), 8, 2); !errors.Is(err, core.ErrBufferSize) {
		t.Errorf("Present(wrong size) error = %v, expected ErrBufferSize", err)
	}
	if err := s.Present(make([]uint32, 15), 4, 4); !errors.Is(err, core.ErrBufferSize) {
		t.Errorf("Present(short buffer) error = %v, expected ErrBufferSize", err)
	}
}

func TestFrameMsgUpdatesView(t *testing.T) {
	m := NewModel(NewSurface(4, 4, 4, 2, 0), "")
	next, _ := m.Update(FrameMsg("frame"))
	view := next.(Model).View()
	if len(view) < 5 || view[:5] != "frame" {
		t.Errorf("View() = %q, expected it to start with the frame", view)
	}
}

func TestIsOpenUntilClosed(t *testing.T) {
	s := NewSurface(4, 4, 4, 2, 0)
	if !s.IsOpen() {
		t.Fatal("IsOpen() = false on a new surface")
	}
	s.markClosed()
	if s.IsOpen() {
		t.Error("IsOpen() = true after close")
	}
}

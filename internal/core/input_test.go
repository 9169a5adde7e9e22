package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Press(KeyW)
	f.Press(KeyD)
	f.Aim(12.5, 40)

	if !f.Down(KeyW) || !f.Down(KeyD) {
		t.Error("pressed keys should be down")
	}
	if f.Down(KeyS) {
		t.Error("KeyS was never pressed")
	}

	clone := f.Clone()
	f.Clear()

	if f.Down(KeyW) || f.Fire || f.CursorX != 0 {
		t.Error("Clear should reset keys, fire and cursor")
	}
	if !clone.Down(KeyW) || !clone.Fire || clone.CursorX != 12.5 || clone.CursorY != 40 {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Down(KeyEscape) {
		t.Error("zero frame should report nothing held")
	}
	f.Press(KeyEscape)
	if !f.Down(KeyEscape) {
		t.Error("Press on zero frame should allocate")
	}
}

func TestKeyString(t *testing.T) {
	if KeyLeft.String() != "Left" {
		t.Errorf("KeyLeft.String() = %q", KeyLeft.String())
	}
	if Key(99).String() != "None" {
		t.Errorf("unknown key should stringify to None")
	}
}

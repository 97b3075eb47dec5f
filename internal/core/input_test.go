package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionShoot)
	if !f.Has(ActionLeft) || !f.Has(ActionShoot) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestFrameOf(t *testing.T) {
	f := FrameOf(ActionUp, ActionRight)
	if !f.Has(ActionUp) || !f.Has(ActionRight) || f.Has(ActionDown) {
		t.Errorf("FrameOf produced %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	if ActionFullscreen.String() != "Fullscreen" {
		t.Errorf("String() = %q", ActionFullscreen.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}

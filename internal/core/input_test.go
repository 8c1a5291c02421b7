package core

import "testing"

func TestKeyAliases(t *testing.T) {
	tests := []struct {
		key         string
		left, right bool
	}{
		{KeyLeft, true, false},
		{KeyArrowLeft, true, false},
		{KeyRight, false, true},
		{KeyArrowRight, false, true},
		{"a", false, false},
		{"", false, false},
		{"arrowright", false, false},
	}

	for _, tc := range tests {
		if got := IsLeftKey(tc.key); got != tc.left {
			t.Errorf("IsLeftKey(%q) = %v, expected %v", tc.key, got, tc.left)
		}
		if got := IsRightKey(tc.key); got != tc.right {
			t.Errorf("IsRightKey(%q) = %v, expected %v", tc.key, got, tc.right)
		}
	}
}

func TestEventConstructors(t *testing.T) {
	if ev := Tick(); ev.Kind != EventTick {
		t.Errorf("Tick().Kind = %v", ev.Kind)
	}
	if ev := KeyDown(KeyArrowLeft); ev.Kind != EventKeyDown || ev.Key != KeyArrowLeft {
		t.Errorf("KeyDown() = %+v", ev)
	}
	if ev := KeyUp(KeyRight); ev.Kind != EventKeyUp || ev.Key != KeyRight {
		t.Errorf("KeyUp() = %+v", ev)
	}
	if ev := PointerMove(-12.5); ev.Kind != EventPointerMove || ev.X != -12.5 {
		t.Errorf("PointerMove() = %+v", ev)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev       Event
		expected string
	}{
		{Tick(), "Tick"},
		{KeyDown("ArrowRight"), "KeyDown(ArrowRight)"},
		{KeyUp("Left"), "KeyUp(Left)"},
		{PointerMove(100), "PointerMove(100.0)"},
		{Event{Kind: EventKind(42)}, "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.ev.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

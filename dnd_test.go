package dnd

import (
	"errors"
	"strings"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"top-right corner", 110, 20, true},
		{"bottom-left corner", 10, 70, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9.999, 40, false},
		{"outside right", 110.001, 40, false},
		{"outside top", 50, 19.5, false},
		{"outside bottom", 50, 70.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if got := r.ContainsPoint(Vec2{tt.x, tt.y}); got != tt.want {
				t.Errorf("Rect.ContainsPoint(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectContains_ZeroSize(t *testing.T) {
	r := Rect{X: 5, Y: 5}
	if !r.Contains(5, 5) {
		t.Error("zero-size rect should contain its origin")
	}
	if r.Contains(5, 6) {
		t.Error("zero-size rect should contain nothing but its origin")
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		r    Rect
		want Vec2
	}{
		{Rect{0, 0, 10, 10}, Vec2{5, 5}},
		{Rect{10, 20, 5, 3}, Vec2{13, 22}},
		{Rect{-10, -10, 4, 4}, Vec2{-8, -8}},
	}
	for _, tt := range tests {
		if got := tt.r.Center(); got != tt.want {
			t.Errorf("%v.Center() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRectLegacyCenter(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if got := r.legacyCenter(); got != (Vec2{-5, -5}) {
		t.Errorf("legacyCenter = %v, want (-5, -5)", got)
	}
	r = Rect{X: 100, Y: 50, Width: 5, Height: 7}
	if got := r.legacyCenter(); got != (Vec2{97, 46}) {
		t.Errorf("legacyCenter = %v, want (97, 46)", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.5, 3},
		{1.5, 2},
		{-1.5, -1},
		{-2.5, -2},
		{-0.4, 0},
		{4, 4},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// Negative odd sizes round toward +Inf.
	r := Rect{X: 0, Y: 0, Width: -3, Height: -3}
	if got := r.legacyCenter(); got != (Vec2{1, 1}) {
		t.Errorf("legacyCenter = %v, want (1, 1)", got)
	}
	if got := r.Center(); got != (Vec2{-1, -1}) {
		t.Errorf("Center = %v, want (-1, -1)", got)
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{1, 2, 3, 4}.Translate(Vec2{10, 20})
	if r != (Rect{11, 22, 3, 4}) {
		t.Errorf("Translate = %v", r)
	}
}

func TestAnchorMode(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if got := AnchorCenter.anchor(r); got != (Vec2{5, 5}) {
		t.Errorf("AnchorCenter = %v, want (5, 5)", got)
	}
	if got := AnchorLegacy.anchor(r); got != (Vec2{-5, -5}) {
		t.Errorf("AnchorLegacy = %v, want (-5, -5)", got)
	}
}

func TestEnumStrings(t *testing.T) {
	checks := map[string]string{
		KindDraggable.String():  "draggable",
		KindDroppable.String():  "droppable",
		HoverSymmetric.String(): "symmetric",
		HoverLegacy.String():    "legacy",
		AnchorCenter.String():   "center",
		AnchorLegacy.String():   "legacy",
		EventDragStart.String(): "dragstart",
		EventEnter.String():     "enter",
		EventLeave.String():     "leave",
		EventDrop.String():      "drop",
		EventDragEnd.String():   "dragend",
	}
	for got, want := range checks {
		if got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestSequenceIDs(t *testing.T) {
	var g SequenceIDs
	if id := g.NewID(KindDraggable); id != "draggable-1" {
		t.Errorf("first draggable id = %q", id)
	}
	if id := g.NewID(KindDraggable); id != "draggable-2" {
		t.Errorf("second draggable id = %q", id)
	}
	if id := g.NewID(KindDroppable); id != "droppable-1" {
		t.Errorf("first droppable id = %q", id)
	}
}

func TestUUIDs(t *testing.T) {
	var g UUIDs
	a := g.NewID(KindDroppable)
	b := g.NewID(KindDroppable)
	if a == b {
		t.Errorf("UUIDs produced duplicate %q", a)
	}
	if !strings.HasPrefix(string(a), "droppable-") {
		t.Errorf("id %q missing kind prefix", a)
	}
}

func TestDuplicateIDError(t *testing.T) {
	var err error = &DuplicateIDError{Kind: KindDroppable, ID: "bin"}
	if !errors.Is(err, ErrDuplicateID) {
		t.Error("DuplicateIDError should match ErrDuplicateID")
	}
	var dup *DuplicateIDError
	if !errors.As(err, &dup) || dup.ID != "bin" || dup.Kind != KindDroppable {
		t.Errorf("errors.As = %+v", dup)
	}
	if !strings.Contains(err.Error(), `droppable "bin"`) {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		e    Event
		want string
	}{
		{Event{Type: EventEnter, Draggable: "d1", Droppable: "drop1"}, "enter d1 drop1"},
		{Event{Type: EventDragStart, Draggable: "d1"}, "dragstart d1 -"},
		{Event{Type: EventDragEnd, Draggable: "d1"}, "dragend d1 -"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phanxgames/dnd"
)

const frame = float32(1.0 / 60)

type fakePointer struct {
	x, y    float64
	pressed bool
}

func (p *fakePointer) Pointer() (float64, float64, bool) {
	return p.x, p.y, p.pressed
}

// newTestBoard returns a board with card "d1" at (0,0,20,20) and bin "drop1"
// at (100,0,50,50), recording surface events.
func newTestBoard(t *testing.T, bounceBack bool) (*Board, *DragView, *DropView, *dnd.EventRecorder) {
	t.Helper()
	rec := &dnd.EventRecorder{}
	b := NewBoard(dnd.NewSurface(dnd.Config{Sink: rec}), nil)
	drop, err := b.AddDropView(DropViewConfig{
		ID:     "drop1",
		Rect:   dnd.Rect{X: 100, Y: 0, Width: 50, Height: 50},
		OnDrop: func(dnd.Draggable, dnd.Vec2) {},
	})
	if err != nil {
		t.Fatalf("AddDropView: %v", err)
	}
	card, err := b.AddDragView(DragViewConfig{
		ID:         "d1",
		Rect:       dnd.Rect{X: 0, Y: 0, Width: 20, Height: 20},
		BounceBack: bounceBack,
	})
	if err != nil {
		t.Fatalf("AddDragView: %v", err)
	}
	return b, card, drop, rec
}

func drain(b *Board) {
	for b.Pending() > 0 {
		b.step(frame)
	}
}

func assertEvents(t *testing.T, rec *dnd.EventRecorder, want []string) {
	t.Helper()
	if diff := cmp.Diff(want, rec.Strings()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestBoard_DragOntoDropView(t *testing.T) {
	b, card, _, rec := newTestBoard(t, false)

	b.InjectPress(10, 10)
	b.InjectMove(60, 10)
	b.InjectMove(120, 10)
	b.InjectRelease(120, 10)
	drain(b)

	assertEvents(t, rec, []string{
		"dragstart d1 -",
		"enter d1 drop1",
		"drop d1 drop1",
		"dragend d1 drop1",
	})

	want := dnd.Rect{X: 110, Y: 0, Width: 20, Height: 20}
	if card.Home != want {
		t.Errorf("Home = %v, want %v", card.Home, want)
	}
	if card.PanX != 0 || card.PanY != 0 {
		t.Errorf("pan = (%v, %v), want (0, 0)", card.PanX, card.PanY)
	}
	d, _ := b.Surface().Draggable("d1")
	if d.Rect != want {
		t.Errorf("registered rect = %v, want %v", d.Rect, want)
	}
	if d.Dragging {
		t.Error("draggable should not be dragging after release")
	}
}

func TestBoard_PanFollowsPointer(t *testing.T) {
	b, card, drop, _ := newTestBoard(t, false)

	b.InjectPress(5, 5)
	b.InjectMove(125, 15)
	b.step(frame)
	b.step(frame)

	if !card.Dragging() {
		t.Fatal("card should be dragging")
	}
	if card.PanX != 120 || card.PanY != 10 {
		t.Errorf("pan = (%v, %v), want (120, 10)", card.PanX, card.PanY)
	}
	// Grabbed 5px up-left of center, so the hit point is the card's center.
	if !drop.Hovered() {
		t.Error("drop view should be hovered")
	}
	if card.Home != (dnd.Rect{X: 0, Y: 0, Width: 20, Height: 20}) {
		t.Errorf("Home changed during drag: %v", card.Home)
	}
}

func TestBoard_DeadZone(t *testing.T) {
	b, card, _, rec := newTestBoard(t, false)

	b.InjectPress(10, 10)
	b.InjectMove(12, 11)
	b.InjectRelease(12, 11)
	drain(b)

	if len(rec.Events) != 0 {
		t.Errorf("events = %v, want none", rec.Strings())
	}
	if card.PanX != 0 || card.PanY != 0 {
		t.Errorf("pan = (%v, %v), want (0, 0)", card.PanX, card.PanY)
	}
}

func TestBoard_SetDragDeadZone(t *testing.T) {
	b, _, _, rec := newTestBoard(t, false)
	b.SetDragDeadZone(0)

	b.InjectPress(10, 10)
	b.InjectMove(11, 10)
	drain(b)

	assertEvents(t, rec, []string{"dragstart d1 -"})
}

func TestBoard_PressOnEmptySpace(t *testing.T) {
	b, _, _, rec := newTestBoard(t, false)

	b.InjectDrag(60, 60, 120, 10, 5)
	drain(b)

	if len(rec.Events) != 0 {
		t.Errorf("events = %v, want none", rec.Strings())
	}
	if b.Surface().IsDragging() {
		t.Error("surface should be idle")
	}
}

func TestBoard_TopmostViewWins(t *testing.T) {
	b, _, _, rec := newTestBoard(t, false)
	if _, err := b.AddDragView(DragViewConfig{
		ID:   "d2",
		Rect: dnd.Rect{X: 10, Y: 10, Width: 20, Height: 20},
	}); err != nil {
		t.Fatalf("AddDragView: %v", err)
	}

	b.InjectPress(15, 15)
	b.InjectMove(40, 40)
	drain(b)

	assertEvents(t, rec, []string{"dragstart d2 -"})
}

func TestBoard_BounceBack(t *testing.T) {
	b, card, _, rec := newTestBoard(t, true)

	b.InjectPress(10, 10)
	b.InjectMove(60, 30)
	b.InjectRelease(60, 30)
	drain(b)

	assertEvents(t, rec, []string{"dragstart d1 -", "dragend d1 -"})
	if !b.Bouncing(card) {
		t.Fatal("card should be bouncing after release")
	}

	for i := 0; i < 60; i++ {
		b.step(frame)
	}
	if b.Bouncing(card) {
		t.Error("bounce should have finished")
	}
	home := dnd.Rect{X: 0, Y: 0, Width: 20, Height: 20}
	if card.Home != home {
		t.Errorf("Home = %v, want %v", card.Home, home)
	}
	if card.PanX != 0 || card.PanY != 0 {
		t.Errorf("pan = (%v, %v), want (0, 0)", card.PanX, card.PanY)
	}
	if d, _ := b.Surface().Draggable("d1"); d.Rect != home {
		t.Errorf("registered rect = %v, want %v", d.Rect, home)
	}
}

func TestBoard_GrabStopsBounce(t *testing.T) {
	b, card, _, _ := newTestBoard(t, true)

	b.InjectPress(10, 10)
	b.InjectMove(60, 10)
	b.InjectRelease(60, 10)
	drain(b)
	b.step(frame)

	// Grab the card mid-flight.
	r := card.Rect()
	c := r.Center()
	b.InjectPress(c.X, c.Y)
	b.step(frame)
	if b.Bouncing(card) {
		t.Error("grabbing the card should stop its bounce")
	}
}

func TestBoard_RemoveMidDrag(t *testing.T) {
	b, card, _, rec := newTestBoard(t, false)

	b.InjectPress(10, 10)
	b.InjectMove(120, 10)
	drain(b)

	card.Remove()
	assertEvents(t, rec, []string{
		"dragstart d1 -",
		"enter d1 drop1",
		"drop d1 drop1",
		"dragend d1 drop1",
	})
	if b.Surface().IsDragging() {
		t.Error("surface should be idle after removing the dragged view")
	}
	if _, ok := b.Surface().Draggable("d1"); ok {
		t.Error("d1 should be unregistered")
	}
	if len(b.DragViews()) != 0 {
		t.Errorf("DragViews len = %d, want 0", len(b.DragViews()))
	}

	rec.Reset()
	b.InjectMove(130, 10)
	b.InjectRelease(130, 10)
	drain(b)
	if len(rec.Events) != 0 {
		t.Errorf("events after remove = %v, want none", rec.Strings())
	}

	// Idempotent.
	card.Remove()
}

func TestBoard_RemoveFromDragEnd(t *testing.T) {
	b, card, _, _ := newTestBoard(t, false)
	card.Set(dnd.OnDragEnd(func(target *dnd.Droppable) {
		if target != nil {
			card.Remove()
		}
	}))

	b.InjectDrag(10, 10, 120, 10, 4)
	drain(b)

	if len(b.DragViews()) != 0 {
		t.Errorf("DragViews len = %d, want 0", len(b.DragViews()))
	}
	if _, ok := b.Surface().Draggable("d1"); ok {
		t.Error("d1 should be unregistered")
	}
}

func TestBoard_DropViewSetRect(t *testing.T) {
	b, _, drop, rec := newTestBoard(t, false)
	drop.SetRect(dnd.Rect{X: 0, Y: 100, Width: 50, Height: 50})

	b.InjectDrag(10, 10, 10, 120, 4)
	drain(b)

	assertEvents(t, rec, []string{
		"dragstart d1 -",
		"drop d1 drop1",
		"dragend d1 drop1",
	})
}

func TestBoard_DropViewRemove(t *testing.T) {
	b, _, drop, rec := newTestBoard(t, false)

	b.InjectPress(10, 10)
	b.InjectMove(120, 10)
	drain(b)
	drop.Remove()
	if drop.Hovered() {
		t.Error("removed drop view should not be hovered")
	}
	b.InjectRelease(120, 10)
	drain(b)

	assertEvents(t, rec, []string{
		"dragstart d1 -",
		"enter d1 drop1",
		"dragend d1 -",
	})
	if len(b.DropViews()) != 0 {
		t.Errorf("DropViews len = %d, want 0", len(b.DropViews()))
	}
}

func TestBoard_GeneratedIDs(t *testing.T) {
	b := NewBoard(dnd.NewSurface(dnd.Config{}), nil)
	v, err := b.AddDragView(DragViewConfig{Rect: dnd.Rect{Width: 10, Height: 10}})
	if err != nil {
		t.Fatalf("AddDragView: %v", err)
	}
	if v.ID() == dnd.None {
		t.Error("expected a generated id")
	}
	if _, err := b.AddDragView(DragViewConfig{ID: v.ID()}); err == nil {
		t.Error("expected duplicate id error")
	}
	if len(b.DragViews()) != 1 {
		t.Errorf("DragViews len = %d, want 1", len(b.DragViews()))
	}
}

func TestBoard_PointerSource(t *testing.T) {
	rec := &dnd.EventRecorder{}
	p := &fakePointer{}
	b := NewBoard(dnd.NewSurface(dnd.Config{Sink: rec}), p)
	if _, err := b.AddDragView(DragViewConfig{ID: "d1", Rect: dnd.Rect{Width: 20, Height: 20}}); err != nil {
		t.Fatalf("AddDragView: %v", err)
	}

	*p = fakePointer{x: 10, y: 10, pressed: true}
	b.step(frame)
	*p = fakePointer{x: 30, y: 10, pressed: true}
	b.step(frame)
	*p = fakePointer{x: 30, y: 10}
	b.step(frame)

	assertEvents(t, rec, []string{"dragstart d1 -", "dragend d1 -"})
}

func TestBoard_InjectedInputTakesPrecedence(t *testing.T) {
	rec := &dnd.EventRecorder{}
	p := &fakePointer{x: 500, y: 500}
	b := NewBoard(dnd.NewSurface(dnd.Config{Sink: rec}), p)
	if _, err := b.AddDragView(DragViewConfig{ID: "d1", Rect: dnd.Rect{Width: 20, Height: 20}}); err != nil {
		t.Fatalf("AddDragView: %v", err)
	}

	b.InjectPress(10, 10)
	b.InjectMove(30, 10)
	b.step(frame)
	b.step(frame)

	assertEvents(t, rec, []string{"dragstart d1 -"})
}

func TestInjectDragQueue(t *testing.T) {
	b := NewBoard(dnd.NewSurface(dnd.Config{}), nil)

	b.InjectDrag(10, 10, 200, 200, 5)
	if b.Pending() != 5 {
		t.Fatalf("Pending = %d, want 5", b.Pending())
	}
	want := []syntheticPointerEvent{
		{x: 10, y: 10, pressed: true},
		{x: 57.5, y: 57.5, pressed: true},
		{x: 105, y: 105, pressed: true},
		{x: 152.5, y: 152.5, pressed: true},
		{x: 200, y: 200},
	}
	if diff := cmp.Diff(want, b.injectQueue, cmp.AllowUnexported(syntheticPointerEvent{})); diff != "" {
		t.Errorf("queue mismatch (-want +got):\n%s", diff)
	}

	drain(b)
	if b.Pending() != 0 {
		t.Errorf("Pending = %d after drain, want 0", b.Pending())
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	b := NewBoard(dnd.NewSurface(dnd.Config{}), nil)
	b.InjectDrag(0, 0, 10, 10, 0)
	if b.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", b.Pending())
	}
}

func TestInjectClick(t *testing.T) {
	b, _, _, rec := newTestBoard(t, false)
	b.InjectClick(10, 10)
	if b.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", b.Pending())
	}
	drain(b)
	if len(rec.Events) != 0 {
		t.Errorf("a click should not drag, got %v", rec.Strings())
	}
}

func TestInjectSingleEvents(t *testing.T) {
	b := NewBoard(dnd.NewSurface(dnd.Config{}), nil)
	b.InjectPress(1, 2)
	b.InjectMove(3, 4)
	b.InjectRelease(5, 6)
	b.InjectDrag(0, 0, 8, 8, 2)

	want := []syntheticPointerEvent{
		{x: 1, y: 2, pressed: true},
		{x: 3, y: 4, pressed: true},
		{x: 5, y: 6},
		{x: 0, y: 0, pressed: true},
		{x: 8, y: 8},
	}
	if diff := cmp.Diff(want, b.injectQueue, cmp.AllowUnexported(syntheticPointerEvent{})); diff != "" {
		t.Errorf("queue mismatch (-want +got):\n%s", diff)
	}
}

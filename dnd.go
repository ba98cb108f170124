package dnd

import "math"

// Vec2 is a 2D vector used for pointer positions and drag offsets.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Rect is an axis-aligned rectangle in the surface's coordinate space. The
// origin is the top-left corner, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// Center returns the geometric center, with the half size rounded half away
// from zero.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + roundHalfUp(r.Width/2), r.Y + roundHalfUp(r.Height/2)}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{r.X + d.X, r.Y + d.Y, r.Width, r.Height}
}

// legacyCenter is the anchor used by older adapters: the origin moved up and
// left by half the size.
func (r Rect) legacyCenter() Vec2 {
	return Vec2{r.X - roundHalfUp(r.Width/2), r.Y - roundHalfUp(r.Height/2)}
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf,
// so -1.5 rounds to -1 where math.Round gives -2.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Kind identifies an entity namespace.
type Kind uint8

const (
	KindDraggable Kind = iota // entities that can be dragged
	KindDroppable             // entities that can receive a drop
)

func (k Kind) String() string {
	switch k {
	case KindDraggable:
		return "draggable"
	case KindDroppable:
		return "droppable"
	default:
		return "unknown"
	}
}

// HoverPolicy selects how a drag moving directly from one droppable to
// another is reported.
type HoverPolicy uint8

const (
	// HoverSymmetric fires OnLeave for the old target, then OnEnter for the
	// new one.
	HoverSymmetric HoverPolicy = iota
	// HoverLegacy fires only OnEnter for the new target. OnLeave fires only
	// when the drag leaves every droppable.
	HoverLegacy
)

func (p HoverPolicy) String() string {
	switch p {
	case HoverSymmetric:
		return "symmetric"
	case HoverLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// AnchorMode selects the point of the draggable's rect that the drag offset
// is measured from.
type AnchorMode uint8

const (
	AnchorCenter AnchorMode = iota // origin + size/2
	AnchorLegacy                   // origin - size/2
)

func (m AnchorMode) String() string {
	switch m {
	case AnchorCenter:
		return "center"
	case AnchorLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// anchor returns the reference point of r under mode m.
func (m AnchorMode) anchor(r Rect) Vec2 {
	if m == AnchorLegacy {
		return r.legacyCenter()
	}
	return r.Center()
}

// EventType identifies a drag lifecycle transition.
type EventType uint8

const (
	EventDragStart EventType = iota // a draggable became the drag subject
	EventEnter                      // the drag entered a droppable
	EventLeave                      // the drag left a droppable
	EventDrop                       // the drag ended over a droppable with OnDrop
	EventDragEnd                    // the drag ended
)

func (t EventType) String() string {
	switch t {
	case EventDragStart:
		return "dragstart"
	case EventEnter:
		return "enter"
	case EventLeave:
		return "leave"
	case EventDrop:
		return "drop"
	case EventDragEnd:
		return "dragend"
	default:
		return "unknown"
	}
}

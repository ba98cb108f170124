package scenario

import "github.com/phanxgames/dnd"

// Phase is the gesture phase of a PathPoint.
type Phase uint8

const (
	PhaseStart Phase = iota // pointer pressed
	PhaseMove               // pointer moved while pressed
	PhaseEnd                // pointer released
)

// PathPoint is one frame of a scripted gesture.
type PathPoint struct {
	Phase Phase
	Pos   dnd.Vec2
}

// DragPath returns a full drag gesture: start at (fromX, fromY), frames-2
// linearly interpolated moves, and end at (toX, toY). The gesture spans
// frames frames; fewer than 2 is treated as 2.
func DragPath(fromX, fromY, toX, toY float64, frames int) []PathPoint {
	if frames < 2 {
		frames = 2
	}
	out := make([]PathPoint, 0, frames)
	out = append(out, PathPoint{Phase: PhaseStart, Pos: dnd.Vec2{X: fromX, Y: fromY}})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		out = append(out, PathPoint{Phase: PhaseMove, Pos: dnd.Vec2{
			X: fromX + (toX-fromX)*t,
			Y: fromY + (toY-fromY)*t,
		}})
	}
	return append(out, PathPoint{Phase: PhaseEnd, Pos: dnd.Vec2{X: toX, Y: toY}})
}

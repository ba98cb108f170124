package scenario

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"

	"github.com/phanxgames/dnd"
)

// RunOptions overrides parts of a scenario when running it. Empty strings
// keep the scenario's own options.
type RunOptions struct {
	Hover  string
	Anchor string
	Debug  bool
	Logger logr.Logger
}

// Result is the outcome of a run.
type Result struct {
	// Events is every transition the surface emitted, in order.
	Events []dnd.Event
	// Checked is true when the scenario had an expect list.
	Checked bool
	// Diff is empty when the trace matched the expect list, otherwise a
	// (-want +got) diff.
	Diff string
	// Surface is left in its final state for inspection.
	Surface *dnd.Surface
}

// Passed reports whether the run matched its expectations. Unchecked runs
// always pass.
func (r *Result) Passed() bool {
	return r.Diff == ""
}

// Trace returns the String form of every event.
func (r *Result) Trace() []string {
	out := make([]string, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.String()
	}
	return out
}

// Run replays sc against a fresh surface. Step failures (a duplicate
// registration) stop the run and are returned with the partial result.
func Run(sc *Scenario, opts RunOptions) (*Result, error) {
	hoverName, anchorName := sc.Options.Hover, sc.Options.Anchor
	if opts.Hover != "" {
		hoverName = opts.Hover
	}
	if opts.Anchor != "" {
		anchorName = opts.Anchor
	}
	hover, err := ParseHoverPolicy(hoverName)
	if err != nil {
		return nil, err
	}
	anchor, err := ParseAnchorMode(anchorName)
	if err != nil {
		return nil, err
	}

	rec := &dnd.EventRecorder{}
	s := dnd.NewSurface(dnd.Config{
		Hover:  hover,
		Anchor: anchor,
		Sink:   rec,
		Logger: opts.Logger,
		Debug:  opts.Debug,
	})
	res := &Result{Surface: s}

	for i, e := range sc.Draggables {
		if _, err := s.RegisterDraggable(dnd.ID(e.ID), dnd.DragRect(e.Rect.dnd()), dnd.DragPayload(e.Payload)); err != nil {
			return res, fmt.Errorf("draggables[%d]: %w", i, err)
		}
	}
	for i, e := range sc.Droppables {
		// A no-op OnDrop marks every scripted droppable as a drop target.
		if _, err := s.RegisterDroppable(dnd.ID(e.ID), dnd.DropRect(e.Rect.dnd()), dnd.DropPayload(e.Payload),
			dnd.OnDrop(func(dnd.Draggable, dnd.Vec2) {})); err != nil {
			return res, fmt.Errorf("droppables[%d]: %w", i, err)
		}
	}

	for i, st := range sc.Steps {
		if err := runStep(s, st); err != nil {
			res.Events = rec.Events
			return res, fmt.Errorf("step %d (%s): %w", i, st.Action, err)
		}
	}

	res.Events = rec.Events
	if sc.Expect != nil {
		res.Checked = true
		res.Diff = cmp.Diff(sc.Expect, res.Trace())
	}
	return res, nil
}

func runStep(s *dnd.Surface, st Step) error {
	id := dnd.ID(st.ID)
	switch st.Action {
	case ActionStart:
		s.DragStart(id, dnd.Vec2{X: st.X, Y: st.Y})
	case ActionMove:
		s.DragMove(id, dnd.Vec2{X: st.X, Y: st.Y})
	case ActionEnd:
		s.DragEnd(id, dnd.Vec2{X: st.X, Y: st.Y})
	case ActionDrag:
		for _, p := range DragPath(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames) {
			switch p.Phase {
			case PhaseStart:
				s.DragStart(id, p.Pos)
			case PhaseMove:
				s.DragMove(id, p.Pos)
			case PhaseEnd:
				s.DragMove(id, p.Pos)
				s.DragEnd(id, p.Pos)
			}
		}
	case ActionRegister:
		return register(s, st)
	case ActionUpdate:
		update(s, st)
	case ActionUnregister:
		if kind, _ := parseKind(st.Kind); kind == dnd.KindDroppable {
			s.UnregisterDroppable(id)
		} else {
			s.UnregisterDraggable(id)
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func register(s *dnd.Surface, st Step) error {
	var r dnd.Rect
	if st.Rect != nil {
		r = st.Rect.dnd()
	}
	kind, _ := parseKind(st.Kind)
	var err error
	if kind == dnd.KindDroppable {
		_, err = s.RegisterDroppable(dnd.ID(st.ID), dnd.DropRect(r), dnd.DropPayload(st.Payload),
			dnd.OnDrop(func(dnd.Draggable, dnd.Vec2) {}))
	} else {
		_, err = s.RegisterDraggable(dnd.ID(st.ID), dnd.DragRect(r), dnd.DragPayload(st.Payload))
	}
	return err
}

func update(s *dnd.Surface, st Step) {
	kind, _ := parseKind(st.Kind)
	id := dnd.ID(st.ID)
	if kind == dnd.KindDroppable {
		var opts []dnd.DroppableOption
		if st.Rect != nil {
			opts = append(opts, dnd.DropRect(st.Rect.dnd()))
		}
		if st.Payload != nil {
			opts = append(opts, dnd.DropPayload(st.Payload))
		}
		s.UpdateDroppable(id, opts...)
		return
	}
	var opts []dnd.DraggableOption
	if st.Rect != nil {
		opts = append(opts, dnd.DragRect(st.Rect.dnd()))
	}
	if st.Payload != nil {
		opts = append(opts, dnd.DragPayload(st.Payload))
	}
	s.UpdateDraggable(id, opts...)
}

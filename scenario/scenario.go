// Package scenario loads drag-and-drop scripts from YAML (or JSON) and
// replays them against a headless dnd.Surface, recording every transition.
//
// A script looks like:
//
//	options:
//	  hover: symmetric
//	draggables:
//	  - id: d1
//	    rect: {x: 0, y: 0, width: 10, height: 10}
//	droppables:
//	  - id: drop1
//	    rect: {x: 0, y: 0, width: 20, height: 20}
//	steps:
//	  - {action: start, id: d1, x: 5, y: 5}
//	  - {action: move, id: d1, x: 8, y: 8}
//	  - {action: end, id: d1, x: 8, y: 8}
//	expect:
//	  - dragstart d1 -
//	  - enter d1 drop1
//	  - drop d1 drop1
//	  - dragend d1 drop1
package scenario

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/dnd"
)

// Step actions.
const (
	ActionStart      = "start"
	ActionMove       = "move"
	ActionEnd        = "end"
	ActionDrag       = "drag"
	ActionRegister   = "register"
	ActionUpdate     = "update"
	ActionUnregister = "unregister"
)

// Rect is the file form of dnd.Rect.
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r Rect) dnd() dnd.Rect {
	return dnd.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Entity declares a draggable or droppable.
type Entity struct {
	ID      string `yaml:"id"`
	Rect    Rect   `yaml:"rect"`
	Payload any    `yaml:"payload,omitempty"`
}

// Options configures the surface a scenario runs on.
type Options struct {
	Hover  string `yaml:"hover,omitempty"`
	Anchor string `yaml:"anchor,omitempty"`
}

// Step is one scripted action.
type Step struct {
	Action string `yaml:"action"`
	// Kind selects the namespace for register, update and unregister:
	// "draggable" (default) or "droppable".
	Kind string  `yaml:"kind,omitempty"`
	ID   string  `yaml:"id,omitempty"`
	X    float64 `yaml:"x,omitempty"`
	Y    float64 `yaml:"y,omitempty"`
	// Drag fields.
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	// Register and update fields.
	Rect    *Rect `yaml:"rect,omitempty"`
	Payload any   `yaml:"payload,omitempty"`
}

// Scenario is a parsed script.
type Scenario struct {
	Options    Options  `yaml:"options"`
	Draggables []Entity `yaml:"draggables"`
	Droppables []Entity `yaml:"droppables"`
	Steps      []Step   `yaml:"steps"`
	// Expect lists the expected event strings (see dnd.Event.String). When
	// nil, Run does not check the trace.
	Expect []string `yaml:"expect,omitempty"`
}

// Load parses and validates a script. Every problem found is reported.
func Load(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &sc, nil
}

// ErrNoSteps is returned by Validate for a script without steps.
var ErrNoSteps = errors.New("no steps")

// Validate checks options, entity declarations and steps.
func (sc *Scenario) Validate() error {
	var err error
	if _, e := ParseHoverPolicy(sc.Options.Hover); e != nil {
		err = multierr.Append(err, fmt.Errorf("options.hover: %w", e))
	}
	if _, e := ParseAnchorMode(sc.Options.Anchor); e != nil {
		err = multierr.Append(err, fmt.Errorf("options.anchor: %w", e))
	}
	err = multierr.Append(err, validateEntities("draggables", sc.Draggables))
	err = multierr.Append(err, validateEntities("droppables", sc.Droppables))

	if len(sc.Steps) == 0 {
		err = multierr.Append(err, ErrNoSteps)
	}
	for i, st := range sc.Steps {
		if e := st.validate(); e != nil {
			err = multierr.Append(err, fmt.Errorf("step %d (%s): %w", i, st.Action, e))
		}
	}
	return err
}

func validateEntities(field string, es []Entity) error {
	var err error
	seen := make(map[string]bool, len(es))
	for i, e := range es {
		switch {
		case e.ID == "":
			err = multierr.Append(err, fmt.Errorf("%s[%d]: missing id", field, i))
		case seen[e.ID]:
			err = multierr.Append(err, fmt.Errorf("%s[%d]: duplicate id %q", field, i, e.ID))
		}
		if e.Rect.Width < 0 || e.Rect.Height < 0 {
			err = multierr.Append(err, fmt.Errorf("%s[%d]: negative size", field, i))
		}
		seen[e.ID] = true
	}
	return err
}

func (st Step) validate() error {
	switch st.Action {
	case ActionStart, ActionMove, ActionEnd, ActionDrag:
		if st.ID == "" {
			return errors.New("missing id")
		}
		if st.Action == ActionDrag && st.Frames != 0 && st.Frames < 2 {
			return fmt.Errorf("frames must be at least 2, got %d", st.Frames)
		}
	case ActionRegister, ActionUpdate, ActionUnregister:
		if _, err := parseKind(st.Kind); err != nil {
			return err
		}
		if st.ID == "" && st.Action != ActionRegister {
			return errors.New("missing id")
		}
		if st.Action == ActionUpdate && st.Rect == nil && st.Payload == nil {
			return errors.New("update needs rect or payload")
		}
	case "":
		return errors.New("missing action")
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func parseKind(s string) (dnd.Kind, error) {
	switch s {
	case "", "draggable":
		return dnd.KindDraggable, nil
	case "droppable":
		return dnd.KindDroppable, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", s)
	}
}

// ParseHoverPolicy parses "symmetric" or "legacy". The empty string selects
// the default, symmetric.
func ParseHoverPolicy(s string) (dnd.HoverPolicy, error) {
	switch s {
	case "", "symmetric":
		return dnd.HoverSymmetric, nil
	case "legacy":
		return dnd.HoverLegacy, nil
	default:
		return 0, fmt.Errorf("unknown hover policy %q", s)
	}
}

// ParseAnchorMode parses "center" or "legacy". The empty string selects the
// default, center.
func ParseAnchorMode(s string) (dnd.AnchorMode, error) {
	switch s {
	case "", "center":
		return dnd.AnchorCenter, nil
	case "legacy":
		return dnd.AnchorLegacy, nil
	default:
		return 0, fmt.Errorf("unknown anchor mode %q", s)
	}
}

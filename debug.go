package dnd

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Log verbosity levels used by Surface.
const (
	logTransitions = 1 // session transitions and fired callbacks
	logIgnored     = 2 // calls ignored because of unknown or mismatched ids
)

// newDebugLogger returns a logger that prints "[dnd]" prefixed lines to
// stderr at every verbosity.
func newDebugLogger() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(os.Stderr, "[dnd] %s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "[dnd] %s\n", args)
	}, funcr.Options{Verbosity: logIgnored})
}

// debugCheckSession logs a warning when the session references ids that are
// no longer registered. Only called in debug mode.
func (s *Surface) debugCheckSession(op string) {
	if s.session.DraggingID != None && s.reg.draggable(s.session.DraggingID) == nil {
		s.log.Info("warning: drag subject is not registered", "op", op, "draggable", s.session.DraggingID)
	}
	if s.session.HoveredID != None && s.reg.droppable(s.session.HoveredID) == nil {
		s.log.Info("warning: hover target is not registered", "op", op, "droppable", s.session.HoveredID)
	}
}

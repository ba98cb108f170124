package dnd

import (
	"strconv"

	"github.com/google/uuid"
)

// ID identifies a draggable or droppable. Draggable and droppable ids live in
// separate namespaces. The empty ID means "no id" and never matches an entity.
type ID string

// None is the empty ID.
const None ID = ""

// IDGenerator produces ids for entities registered without one.
type IDGenerator interface {
	NewID(kind Kind) ID
}

// SequenceIDs is the default generator: a plain per-kind counter producing
// "draggable-1", "droppable-1", ... No atomics; a Surface is single-threaded.
type SequenceIDs struct {
	next [2]uint64
}

// NewID returns the next id for kind.
func (g *SequenceIDs) NewID(kind Kind) ID {
	i := int(kind) & 1
	g.next[i]++
	return ID(kind.String() + "-" + strconv.FormatUint(g.next[i], 10))
}

// UUIDs generates random, globally unique ids of the form "draggable-<uuid>".
type UUIDs struct{}

// NewID returns a fresh random id for kind.
func (UUIDs) NewID(kind Kind) ID {
	return ID(kind.String() + "-" + uuid.NewString())
}

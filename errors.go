package dnd

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is matched by errors.Is for every *DuplicateIDError.
var ErrDuplicateID = errors.New("dnd: id already registered")

// DuplicateIDError is returned when registering an id that already exists in
// its namespace. It is a programming error in the adapter and is not retried.
type DuplicateIDError struct {
	Kind Kind
	ID   ID
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("dnd: %s %q has already been registered", e.Kind, e.ID)
}

// Is reports whether target is ErrDuplicateID.
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// ErrNoID is returned by Registry when asked to register the empty ID.
// Surface generates an id instead.
var ErrNoID = errors.New("dnd: empty id")

package dnd

import (
	"testing"

	"go.uber.org/goleak"
)

// Surfaces never start goroutines; callbacks run on the caller's.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

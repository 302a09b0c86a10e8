package ops

import (
	"fmt"

	"github.com/Aspecky/better-parenting/internal/scene"
)

// DeleteRecursive removes every selected object together with all of its
// descendants. A child selected alongside its ancestor is removed once.
type DeleteRecursive struct{}

func (DeleteRecursive) ID() string    { return IDDeleteRecursive }
func (DeleteRecursive) Label() string { return "Delete Recursive" }

func (DeleteRecursive) Poll(s *scene.Scene) bool { return hasSelection(s) }

func (op DeleteRecursive) Execute(s *scene.Scene) error {
	doomed := CollectWithDescendants(s.Selected())
	if len(doomed) == 0 {
		return fmt.Errorf("%s: nothing selected", op.ID())
	}
	s.Snapshot(op.Label())
	// Leaves first, so Scene.Remove never has to orphan a child that is
	// itself about to be removed.
	for i := len(doomed) - 1; i >= 0; i-- {
		s.Remove(doomed[i])
	}
	return nil
}

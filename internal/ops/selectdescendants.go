package ops

import (
	"fmt"

	"github.com/Aspecky/better-parenting/internal/scene"
)

// SelectDescendants extends the selection with every descendant of every
// selected object. The originally selected objects stay selected; a leaf
// selection adds nothing.
type SelectDescendants struct{}

func (SelectDescendants) ID() string    { return IDSelectDescendants }
func (SelectDescendants) Label() string { return "Select Descendants" }

func (SelectDescendants) Poll(s *scene.Scene) bool { return hasSelection(s) }

func (op SelectDescendants) Execute(s *scene.Scene) error {
	roots := s.Selected()
	if len(roots) == 0 {
		return fmt.Errorf("%s: nothing selected", op.ID())
	}
	s.Snapshot(op.Label())
	for _, root := range roots {
		for _, d := range Descendants(root) {
			s.Select(d)
		}
	}
	return nil
}

package ops

import (
	"github.com/Aspecky/better-parenting/internal/scene"
)

// Namespace prefixes every operator id so the addon's operators cannot
// collide with host or other-addon operators.
const Namespace = "better_parenting."

// Stable operator ids.
const (
	IDDeleteRecursive   = Namespace + "delete_recursive"
	IDSelectDescendants = Namespace + "select_descendants"
	IDParentToEmpty     = Namespace + "parent_to_empty"
)

// Operator is a single editing action over the scene. Poll reports whether
// the operator can run right now (menus gray out and keymaps skip when it is
// false); Execute performs the action. Execute still validates its own
// preconditions and returns an error when they do not hold, since the
// registry and the console can call it directly.
type Operator interface {
	ID() string
	Label() string
	Poll(s *scene.Scene) bool
	Execute(s *scene.Scene) error
}

// hasSelection is the shared Poll condition: at least one selected object.
func hasSelection(s *scene.Scene) bool {
	return len(s.Selected()) != 0
}

package ops

import (
	"github.com/Aspecky/better-parenting/internal/scene"
)

// CollectWithDescendants returns every root plus all of its transitive
// descendants, deduplicated: an object explicitly selected alongside one of
// its ancestors appears once. Order is first-visit order (roots in input
// order, each followed depth-first by its subtree), so callers get the same
// result for the same input. Empty input returns nil.
func CollectWithDescendants(roots []*scene.Object) []*scene.Object {
	seen := make(map[*scene.Object]bool, len(roots))
	var out []*scene.Object
	var walk func(o *scene.Object)
	walk = func(o *scene.Object) {
		if seen[o] {
			return
		}
		seen[o] = true
		out = append(out, o)
		for _, c := range o.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return out
}

// Descendants returns all transitive descendants of root, excluding root
// itself, in depth-first order.
func Descendants(root *scene.Object) []*scene.Object {
	var out []*scene.Object
	var walk func(o *scene.Object)
	walk = func(o *scene.Object) {
		for _, c := range o.Children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(root)
	return out
}

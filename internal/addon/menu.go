package addon

// Menu names the addon registers into. These mirror the host's context
// menus: MenuObject is the object right-click menu, MenuAdd the add menu.
const (
	MenuObject = "object"
	MenuAdd    = "add"
)

// Menus holds named menus, each an ordered list of operator ids. Append and
// Remove are symmetric so an addon can tear down exactly what it set up.
type Menus struct {
	entries map[string][]string
}

// NewMenus returns an empty menu set.
func NewMenus() *Menus {
	return &Menus{entries: make(map[string][]string)}
}

// Append adds the operator id to the end of the named menu.
func (m *Menus) Append(menu, opID string) {
	m.entries[menu] = append(m.entries[menu], opID)
}

// Remove deletes the first occurrence of the operator id from the named
// menu. Removing an id that is not present is a no-op.
func (m *Menus) Remove(menu, opID string) {
	items := m.entries[menu]
	for i, id := range items {
		if id == opID {
			m.entries[menu] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// Items returns the operator ids of the named menu in order. The returned
// slice is a copy.
func (m *Menus) Items(menu string) []string {
	items := m.entries[menu]
	out := make([]string, len(items))
	copy(out, items)
	return out
}

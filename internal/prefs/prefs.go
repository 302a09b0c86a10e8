package prefs

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path is the addon preferences file, relative to the process working
// directory.
const Path = "config/better_parenting.yaml"

// Prefs holds the addon's persisted preferences: operator defaults and
// shortcut overrides. Scene content is never persisted here; that is the
// host's scene file.
type Prefs struct {
	// Placement is the default parent-to-empty placement:
	// "top", "center", or "bottom".
	Placement string `yaml:"placement"`
	// Display flag defaults for the created empty.
	ShowName    bool `yaml:"show_name"`
	ShowAxes    bool `yaml:"show_axes"`
	ShowInFront bool `yaml:"show_in_front"`
	// Shortcut overrides, chord strings like "ctrl+x". Empty = default.
	DeleteChord string `yaml:"delete_chord,omitempty"`
	SelectChord string `yaml:"select_chord,omitempty"`
	// Editor overlay toggles.
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	GridVisible  bool `yaml:"grid_visible"`
}

// Default returns the addon defaults: centered placement, name label and
// in-front drawing on, axes off, grid on, debug overlays off.
func Default() Prefs {
	return Prefs{
		Placement:   "center",
		ShowName:    true,
		ShowAxes:    false,
		ShowInFront: true,
		GridVisible: true,
	}
}

// Load reads preferences from Path. A missing or invalid file returns
// Default() without error, so a broken config never blocks the editor.
func Load() (Prefs, error) {
	return LoadFile(Path)
}

// LoadFile is Load from an explicit path.
func LoadFile(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to Path, creating the config directory if needed.
func Save(p Prefs) error {
	return SaveFile(Path, p)
}

// SaveFile is Save to an explicit path.
func SaveFile(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Package presets stores named option records as TOML files, one per
// preset, so teams can share export and import configurations.
package presets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"mayafbx/internal/core/options"
)

// Store reads and writes presets under one directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on the
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Summary names one stored preset.
type Summary struct {
	Name      string
	Direction options.Direction
}

// presetFile is the on-disk shape. Fields holds only the keys the preset
// pins; anything absent keeps its default, scene-derived values included.
type presetFile struct {
	Direction string         `toml:"direction"`
	Fields    map[string]any `toml:"fields"`
}

// Path returns where a preset lives.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".toml")
}

// Save validates and writes a record under the given name.
func (s *Store) Save(name string, r options.Record) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := options.Validate(r); err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}

	fields := make(map[string]any)
	for _, f := range r.Fields() {
		if v := f.Get(); v != nil {
			fields[f.Name] = v
		}
	}
	pf := presetFile{Direction: r.Direction().String(), Fields: fields}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create preset directory: %w", err)
	}
	f, err := os.OpenFile(s.Path(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write preset %q: %w", name, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(pf); err != nil {
		return fmt.Errorf("failed to encode preset %q: %w", name, err)
	}
	return nil
}

// Load reads a preset back into a fresh record.
func (s *Store) Load(name string) (options.Record, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	var pf presetFile
	if _, err := toml.DecodeFile(s.Path(name), &pf); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("preset %q not found", name)
		}
		return nil, fmt.Errorf("failed to read preset %q: %w", name, err)
	}

	var r options.Record
	switch options.Direction(pf.Direction) {
	case options.DirectionExport:
		r = options.NewExportOptions()
	case options.DirectionImport:
		r = options.NewImportOptions()
	default:
		return nil, fmt.Errorf("preset %q: unknown direction %q", name, pf.Direction)
	}

	keys := make([]string, 0, len(pf.Fields))
	for k := range pf.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := options.SetField(r, k, pf.Fields[k]); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return r, nil
}

// List returns the stored presets sorted by name. A file that does not
// decode keeps its slot with an empty direction, so it can still be
// deleted by name.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	var out []Summary
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".toml")
		sum := Summary{Name: name}
		var pf presetFile
		if _, err := toml.DecodeFile(filepath.Join(s.dir, e.Name()), &pf); err == nil {
			sum.Direction = options.Direction(pf.Direction)
		}
		out = append(out, sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes a preset.
func (s *Store) Delete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.Remove(s.Path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("preset %q not found", name)
		}
		return fmt.Errorf("failed to delete preset %q: %w", name, err)
	}
	return nil
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("preset name required")
	}
	if name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("preset name %q must be a plain file name", name)
	}
	return nil
}

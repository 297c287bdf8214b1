package preset

import (
	"fmt"
	"log"
	"slices"
	"sort"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/tween/pkg/errors"
)

// Storage layout inside the gdata application directory.
const (
	presetsObject = "presets"
	indexProperty = "_index"
)

// Store persists named presets through gdata. A Store without a gdata
// manager runs in degraded mode: presets live in memory only.
type Store struct {
	manager *gdata.Manager
	memory  map[string][]byte
	names   []string
}

// OpenStore opens the gdata storage of app. When storage is unavailable the
// store falls back to memory and the failure is logged.
func OpenStore(app string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		log.Printf("[preset] storage unavailable, presets will not persist: %v", err)
		return NewStore(nil)
	}
	return NewStore(m)
}

// NewStore wraps m, which may be nil.
func NewStore(m *gdata.Manager) *Store {
	s := &Store{manager: m, memory: make(map[string][]byte)}
	if err := s.loadIndex(); err != nil {
		log.Printf("[preset] %v (starting with an empty index)", err)
	}
	return s
}

// Persistent reports whether presets survive the process.
func (s *Store) Persistent() bool { return s.manager != nil }

// Names returns the stored preset names in sorted order.
func (s *Store) Names() []string {
	return slices.Clone(s.names)
}

// Save stores p under name, replacing any previous preset of that name.
func (s *Store) Save(name string, p *Preset) error {
	if err := validName(name); err != nil {
		return storeError("preset.Save", name, err)
	}
	out := *p
	out.Name = name
	data, err := Marshal(&out)
	if err != nil {
		return err
	}
	if err := s.write(name, data); err != nil {
		return storeError("preset.Save", name, err)
	}
	if !slices.Contains(s.names, name) {
		s.names = append(s.names, name)
		sort.Strings(s.names)
		if err := s.saveIndex(); err != nil {
			return storeError("preset.Save", name, err)
		}
	}
	return nil
}

// Get loads the preset stored under name.
func (s *Store) Get(name string) (*Preset, error) {
	if !slices.Contains(s.names, name) {
		return nil, storeError("preset.Get", name, fmt.Errorf("no preset named %q", name))
	}
	data, err := s.read(name)
	if err != nil {
		return nil, storeError("preset.Get", name, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, err
	}
	p.Name = name
	return p, nil
}

// Delete forgets the preset stored under name. It reports whether the
// preset existed.
func (s *Store) Delete(name string) (bool, error) {
	i := slices.Index(s.names, name)
	if i < 0 {
		return false, nil
	}
	s.names = slices.Delete(s.names, i, i+1)
	delete(s.memory, name)
	if err := s.saveIndex(); err != nil {
		return true, storeError("preset.Delete", name, err)
	}
	return true, nil
}

func (s *Store) write(name string, data []byte) error {
	if s.manager == nil {
		s.memory[name] = data
		return nil
	}
	return s.manager.SaveObjectProp(presetsObject, name, data)
}

func (s *Store) read(name string) ([]byte, error) {
	if s.manager == nil {
		data, ok := s.memory[name]
		if !ok {
			return nil, fmt.Errorf("no preset named %q", name)
		}
		return data, nil
	}
	return s.manager.LoadObjectProp(presetsObject, name)
}

func (s *Store) loadIndex() error {
	if s.manager == nil || !s.manager.ObjectPropExists(presetsObject, indexProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(presetsObject, indexProperty)
	if err != nil {
		return fmt.Errorf("failed to load preset index: %w", err)
	}
	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("failed to parse preset index: %w", err)
	}
	sort.Strings(names)
	s.names = slices.Compact(names)
	return nil
}

func (s *Store) saveIndex() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.names)
	if err != nil {
		return err
	}
	return s.manager.SaveObjectProp(presetsObject, indexProperty, data)
}

func validName(name string) error {
	if name == "" || name == indexProperty {
		return fmt.Errorf("invalid preset name %q", name)
	}
	for _, r := range name {
		if !(r == '-' || r == '_' || r == '.' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return fmt.Errorf("preset name %q contains %q", name, r)
		}
	}
	return nil
}

func storeError(op, name string, err error) error {
	return &errors.TweenError{Op: op, Kind: errors.KindStore, Tag: name, Err: err}
}

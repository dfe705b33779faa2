package regstore

import (
	"strings"
)

// Memory is an in-process Hive. Like the registry, key paths and value
// names are case-insensitive and either slash may separate path segments.
type Memory struct {
	// keys maps the canonical (lower case) path to the key.
	keys map[string]*memoryKey

	// onChange, if set, is called after every mutation.
	onChange func() error
}

type memoryKey struct {
	// path is the path as it was first written.
	path   string
	values map[string]memoryValue
}

type memoryValue struct {
	name  string
	value string
}

func NewMemory() *Memory {
	return &Memory{keys: map[string]*memoryKey{}}
}

func cleanPath(path string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '\\' || r == '/' })
	return strings.Join(parts, `\`)
}

func canonical(s string) string {
	return strings.ToLower(s)
}

func (m *Memory) changed() error {
	if m.onChange == nil {
		return nil
	}
	return m.onChange()
}

func (m *Memory) Open(path string) (Key, error) {
	path = cleanPath(path)
	if _, ok := m.keys[canonical(path)]; !ok {
		return nil, ErrNotExist
	}
	return &memoryHandle{m: m, path: path}, nil
}

func (m *Memory) OpenOrCreate(path string) (Key, error) {
	path = cleanPath(path)
	if path == "" {
		return &memoryHandle{m: m, path: path}, nil
	}

	created := false
	parts := strings.Split(path, `\`)
	for i := range parts {
		p := strings.Join(parts[:i+1], `\`)
		if _, ok := m.keys[canonical(p)]; ok {
			continue
		}
		m.keys[canonical(p)] = &memoryKey{path: p, values: map[string]memoryValue{}}
		created = true
	}
	if created {
		if err := m.changed(); err != nil {
			return nil, err
		}
	}
	return &memoryHandle{m: m, path: path}, nil
}

func (m *Memory) DeleteTree(path string) error {
	c := canonical(cleanPath(path))
	removed := false
	for k := range m.keys {
		if k == c || strings.HasPrefix(k, c+`\`) {
			delete(m.keys, k)
			removed = true
		}
	}
	if !removed {
		return nil
	}
	return m.changed()
}

func (m *Memory) DeleteValue(path, name string) error {
	k, ok := m.keys[canonical(cleanPath(path))]
	if !ok {
		return nil
	}
	if _, ok := k.values[canonical(name)]; !ok {
		return nil
	}
	delete(k.values, canonical(name))
	return m.changed()
}

// Snapshot returns a copy of every key and its values, keyed by path.
func (m *Memory) Snapshot() map[string]map[string]string {
	out := make(map[string]map[string]string, len(m.keys))
	for _, k := range m.keys {
		values := make(map[string]string, len(k.values))
		for _, v := range k.values {
			values[v.name] = v.value
		}
		out[k.path] = values
	}
	return out
}

// restore replaces the contents of the hive with a snapshot.
func (m *Memory) restore(snapshot map[string]map[string]string) {
	m.keys = map[string]*memoryKey{}
	for path, values := range snapshot {
		path = cleanPath(path)
		k := &memoryKey{path: path, values: map[string]memoryValue{}}
		for name, value := range values {
			k.values[canonical(name)] = memoryValue{name: name, value: value}
		}
		m.keys[canonical(path)] = k
	}
}

type memoryHandle struct {
	m    *Memory
	path string
}

func (h *memoryHandle) key() (*memoryKey, error) {
	k, ok := h.m.keys[canonical(h.path)]
	if !ok {
		return nil, ErrNotExist
	}
	return k, nil
}

func (h *memoryHandle) GetValue(name string) (string, error) {
	k, err := h.key()
	if err != nil {
		return "", err
	}
	v, ok := k.values[canonical(name)]
	if !ok {
		return "", ErrValueNotFound
	}
	return v.value, nil
}

func (h *memoryHandle) SetValue(name, value string) error {
	k, err := h.key()
	if err != nil {
		return err
	}
	k.values[canonical(name)] = memoryValue{name: name, value: value}
	return h.m.changed()
}

func (h *memoryHandle) OpenOrCreate(path string) (Key, error) {
	return h.m.OpenOrCreate(h.path + `\` + path)
}

func (h *memoryHandle) Close() error { return nil }

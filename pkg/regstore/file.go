package regstore

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// File emulates the registry in a single TOML document, so that
// registration can be exercised on hosts without a registry.
// Every mutation is written through to disk.
//
// The file looks like this:
//
//	[HKEY_CURRENT_USER."SOFTWARE\\Clients\\EdgeUriDeflector"]
//	SearchEngine = "Google"
type File struct {
	Path  string
	hives map[string]*Memory
}

// OpenFile loads the emulated registry at path. A missing file is an empty registry.
func OpenFile(path string) (*File, error) {
	f := &File{Path: path, hives: map[string]*Memory{}}

	var doc map[string]map[string]map[string]string
	_, err := toml.DecodeFile(path, &doc)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}

	for name, snapshot := range doc {
		f.Hive(name).restore(snapshot)
	}
	return f, nil
}

// Hive returns the named hive, creating it if it doesn't exist.
func (f *File) Hive(name string) *Memory {
	h, ok := f.hives[name]
	if !ok {
		h = NewMemory()
		h.onChange = f.save
		f.hives[name] = h
	}
	return h
}

// Hives returns the three hives used by registration.
func (f *File) Hives() Hives {
	return Hives{
		ClassesRoot:  f.Hive(ClassesRootName),
		LocalMachine: f.Hive(LocalMachineName),
		CurrentUser:  f.Hive(CurrentUserName),
	}
}

func (f *File) save() error {
	doc := make(map[string]map[string]map[string]string, len(f.hives))
	for name, h := range f.hives {
		doc[name] = h.Snapshot()
	}

	file, err := os.OpenFile(f.Path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrapf(err, "opening %s", f.Path)
	}
	defer file.Close()

	err = toml.NewEncoder(file).Encode(doc)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", f.Path)
	}
	return nil
}

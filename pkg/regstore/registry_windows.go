//go:build windows

package regstore

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows/registry"
)

// Registry is a Hive backed by a root key of the Windows registry.
type Registry struct {
	Root registry.Key
}

// System returns the real registry hives.
func System() (Hives, error) {
	return Hives{
		ClassesRoot:  Registry{Root: registry.CLASSES_ROOT},
		LocalMachine: Registry{Root: registry.LOCAL_MACHINE},
		CurrentUser:  Registry{Root: registry.CURRENT_USER},
	}, nil
}

func (r Registry) Open(path string) (Key, error) {
	k, err := registry.OpenKey(r.Root, cleanPath(path), registry.QUERY_VALUE|registry.SET_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening key %s", path)
	}
	return registryKey{k: k}, nil
}

func (r Registry) OpenOrCreate(path string) (Key, error) {
	return createKey(r.Root, path)
}

func (r Registry) DeleteTree(path string) error {
	return deleteTree(r.Root, cleanPath(path))
}

func (r Registry) DeleteValue(path, name string) error {
	k, err := registry.OpenKey(r.Root, cleanPath(path), registry.SET_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "opening key %s", path)
	}
	defer k.Close()

	err = k.DeleteValue(name)
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return errors.Wrapf(err, "deleting value %s", name)
	}
	return nil
}

// createKey opens the key if it exists and creates it otherwise.
func createKey(parent registry.Key, path string) (Key, error) {
	k, _, err := registry.CreateKey(parent, cleanPath(path), registry.QUERY_VALUE|registry.SET_VALUE|registry.CREATE_SUB_KEY)
	if err != nil {
		return nil, errors.Wrapf(err, "creating key %s", path)
	}
	return registryKey{k: k}, nil
}

// deleteTree removes subkeys depth first, as DeleteKey only removes empty keys.
func deleteTree(parent registry.Key, path string) error {
	k, err := registry.OpenKey(parent, path, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "opening key %s", path)
	}

	names, err := k.ReadSubKeyNames(0)
	if err != nil {
		k.Close()
		return errors.Wrapf(err, "listing subkeys of %s", path)
	}
	for _, name := range names {
		if err := deleteTree(k, name); err != nil {
			k.Close()
			return err
		}
	}
	k.Close()

	err = registry.DeleteKey(parent, path)
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return errors.Wrapf(err, "deleting key %s", path)
	}
	return nil
}

type registryKey struct {
	k registry.Key
}

func (r registryKey) GetValue(name string) (string, error) {
	v, _, err := r.k.GetStringValue(name)
	if errors.Is(err, registry.ErrNotExist) {
		return "", ErrValueNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading value %s", name)
	}
	return v, nil
}

func (r registryKey) SetValue(name, value string) error {
	return r.k.SetStringValue(name, value)
}

func (r registryKey) OpenOrCreate(path string) (Key, error) {
	return createKey(r.k, path)
}

func (r registryKey) Close() error {
	return r.k.Close()
}

// Package regstore is the narrow slice of the Windows registry that deflector needs.
//
// Registration writes to three hives (HKEY_CLASSES_ROOT, HKEY_LOCAL_MACHINE and
// HKEY_CURRENT_USER) and dispatch reads a single value from HKEY_CURRENT_USER.
// Callers only ever open-or-create keys and get/set string values, so the
// same code runs against the real registry on Windows, a TOML file elsewhere,
// and an in-memory hive in tests.
package regstore

import "errors"

var (
	ErrNotExist      = errors.New("registry key does not exist")
	ErrValueNotFound = errors.New("registry value not found")
)

// Key is an open registry key. Callers must Close it.
type Key interface {
	// GetValue returns a string value. The empty name is the key's default value.
	GetValue(name string) (string, error)
	// SetValue writes a string value, replacing any existing one.
	SetValue(name, value string) error
	// OpenOrCreate opens the subkey at path relative to this key, creating
	// any missing keys along the way.
	OpenOrCreate(path string) (Key, error)
	Close() error
}

// Hive is a registry root such as HKEY_CURRENT_USER.
type Hive interface {
	// Open opens an existing key. It returns ErrNotExist if the key is absent.
	Open(path string) (Key, error)
	OpenOrCreate(path string) (Key, error)
	// DeleteTree removes a key and all of its subkeys.
	// Removing an absent key is not an error.
	DeleteTree(path string) error
	// DeleteValue removes a value from a key.
	// Removing an absent value or a value on an absent key is not an error.
	DeleteValue(path, name string) error
}

// Hives groups the roots touched by registration.
type Hives struct {
	ClassesRoot  Hive
	LocalMachine Hive
	CurrentUser  Hive
}

// Hive names used when the registry is emulated on disk.
const (
	ClassesRootName  = "HKEY_CLASSES_ROOT"
	LocalMachineName = "HKEY_LOCAL_MACHINE"
	CurrentUserName  = "HKEY_CURRENT_USER"
)

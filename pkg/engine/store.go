package engine

import (
	"github.com/common-fate/clio"
	"github.com/common-fate/deflector/internal/build"
	"github.com/common-fate/deflector/pkg/regstore"
	"github.com/pkg/errors"
)

// KeyPath is the per-user key holding the preference.
const KeyPath = `SOFTWARE\Clients\` + build.ProgID

// ValueName is the value under KeyPath holding the preference.
const ValueName = "SearchEngine"

// Store reads and writes the preference in the current user's hive.
type Store struct {
	Hive regstore.Hive
}

// Get returns the stored preference.
// If registration has not been performed, or the hive can't be read,
// Default is returned.
func (s Store) Get() Preference {
	key, err := s.Hive.Open(KeyPath)
	if err != nil {
		clio.Debugw("search engine key not readable, using default", "error", err)
		return Default
	}
	defer key.Close()

	v, err := key.GetValue(ValueName)
	if err != nil {
		clio.Debugw("search engine value not readable, using default", "error", err)
		return Default
	}
	return Parse(v)
}

// Set writes the preference, creating the key if it doesn't exist.
func (s Store) Set(p Preference) error {
	key, err := s.Hive.OpenOrCreate(KeyPath)
	if err != nil {
		return errors.Wrapf(err, "opening %s", KeyPath)
	}
	defer key.Close()

	err = key.SetValue(ValueName, p.String())
	if err != nil {
		return errors.Wrapf(err, "writing %s", ValueName)
	}
	return nil
}

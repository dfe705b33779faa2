//go:build !windows

package regstore

import (
	"path/filepath"

	"github.com/common-fate/deflector/pkg/config"
)

// System returns hives emulated in registry.toml inside the deflector
// config folder, as there is no registry on this platform.
func System() (Hives, error) {
	folder, err := config.DeflectorConfigFolder()
	if err != nil {
		return Hives{}, err
	}
	f, err := OpenFile(filepath.Join(folder, "registry.toml"))
	if err != nil {
		return Hives{}, err
	}
	return f.Hives(), nil
}

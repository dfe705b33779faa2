// package config stores deflector's optional settings,
// such as a custom command used to launch the browser
// instead of the system default.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/common-fate/deflector/internal/build"
)

const (
	// permission for user to read/write.
	USER_READ_WRITE_PERM = 0644
)

const (
	// permission for user to read/write/execute.
	USER_READ_WRITE_EXECUTE_PERM = 0700
)

type BrowserLaunchTemplate struct {
	// UseForkProcess specifies whether to use forkprocess to launch the browser.
	UseForkProcess bool `toml:",omitempty"`

	// Template to use for launching a browser.
	//
	// For example: '"C:\Program Files\Mozilla Firefox\firefox.exe" --new-tab {{.URL}}'
	Command string
}

type Config struct {
	// BrowserLaunchTemplate is an optional launch template used to open
	// rewritten links. If unset, links open in the system default browser.
	BrowserLaunchTemplate *BrowserLaunchTemplate `toml:",omitempty"`
}

// checks and or creates the config folder
func SetupConfigFolder() error {
	folder, err := DeflectorConfigFolder()
	if err != nil {
		return err
	}
	if _, err := os.Stat(folder); os.IsNotExist(err) {
		err := os.MkdirAll(folder, USER_READ_WRITE_EXECUTE_PERM)
		if err != nil {
			return err
		}
	}
	return nil
}

func DeflectorConfigFolder() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(home, build.ConfigFolderName)
	if xdgConfigDir := os.Getenv("XDG_CONFIG_HOME"); !pathExists(configDir) && xdgConfigDir != "" {
		configDir = filepath.Join(xdgConfigDir, "deflector")
	}

	return configDir, nil
}

func DeflectorConfigFilePath() (string, error) {
	folder, err := DeflectorConfigFolder()
	if err != nil {
		return "", err
	}
	return filepath.Join(folder, "config"), nil
}

// pathExists checks if a given file exists and returns true or false
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads the config file. A missing or invalid file results
// in an empty config rather than an error, as links must still open.
func Load() (*Config, error) {
	configFilePath, err := DeflectorConfigFilePath()
	if err != nil {
		return nil, err
	}
	return LoadFile(configFilePath)
}

func LoadFile(path string) (*Config, error) {
	var c Config

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	_, err = toml.NewDecoder(file).Decode(&c)
	if err != nil {
		return &Config{}, nil
	}
	return &c, nil
}

func (c *Config) SaveFile(path string) error {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, USER_READ_WRITE_PERM)
	if err != nil {
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(c)
}

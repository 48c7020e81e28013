package store

import (
	"log"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the persistence settings resolved from the environment
// and the optional .notepad config file.
type Config interface {
	BasePath() string
	SecretPath() string
	DebounceWindow() time.Duration
}

// LoadConfig resolves configuration: defaults, then a .notepad config
// file found in the working directory or NOTEPAD_CONFIG_PATH, then
// NOTEPAD_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.notepad.db")
	viper.SetDefault("secret", "~/.notepad.key")
	viper.SetDefault("debounce", "500ms")
	viper.SetConfigName(".notepad") // .yaml is implicit
	viper.SetEnvPrefix("NOTEPAD")
	viper.AutomaticEnv()

	if override := os.Getenv("NOTEPAD_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{
		Path:     expand(viper.GetString("path")),
		Secret:   expand(viper.GetString("secret")),
		Debounce: viper.GetDuration("debounce"),
	}, nil
}

func expand(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

type fileConfig struct {
	Path     string        `json:"path"`
	Secret   string        `json:"secret"`
	Debounce time.Duration `json:"debounce"`
}

func (f *fileConfig) BasePath() string   { return f.Path }
func (f *fileConfig) SecretPath() string { return f.Secret }

func (f *fileConfig) DebounceWindow() time.Duration {
	if f.Debounce <= 0 {
		return 500 * time.Millisecond
	}
	return f.Debounce
}

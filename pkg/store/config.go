package store

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the persistence backing.
type Config interface {
	BasePath() string
	RemoteURL() string
}

// LoadConfig reads .gridform config (yaml implicit) from the current
// directory, with GRIDFORM_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.gridform.db")
	viper.SetConfigName(".gridform")
	viper.SetEnvPrefix("GRIDFORM")
	viper.AutomaticEnv()

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path, Remote: viper.GetString("remote")}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Remote string `json:"remote"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) RemoteURL() string {
	return f.Remote
}

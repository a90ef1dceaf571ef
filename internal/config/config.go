package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"shithead-server/internal/util"
)

// Config provides configuration for the Shithead server
type Config struct {
	loaded bool

	// Port is the listen port. Override with SHITHEAD_PORT.
	Port int `yaml:"port" envconfig:"port"`

	// StaticDir optionally serves a directory of client assets at /
	StaticDir string `yaml:"staticDir" envconfig:"static_dir"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	Game struct {
		HandSize     int `yaml:"handSize" envconfig:"hand_size"`
		FaceDownSize int `yaml:"faceDownSize" envconfig:"face_down_size"`
		FaceUpSize   int `yaml:"faceUpSize" envconfig:"face_up_size"`
		RefillSize   int `yaml:"refillSize" envconfig:"refill_size"`
	} `yaml:"game"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var c Config
	c.Port = 3000
	c.Game.HandSize = 6
	c.Game.FaceDownSize = 3
	c.Game.FaceUpSize = 3
	c.Game.RefillSize = 3

	return c
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// The config file is optional; a missing file just means defaults plus
// environment overrides.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("SHITHEAD_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("shithead", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

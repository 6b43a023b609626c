// Package config carga la configuración del proceso: defaults, después un
// config.yaml opcional, después overrides por env (el env gana, para que el
// handoff por variables siga funcionando como siempre).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr string `yaml:"addr"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // text | json
	} `yaml:"log"`

	Storage struct {
		Driver string `yaml:"driver"` // sqlite | postgres | memory
		DSN    string `yaml:"dsn"`    // path del archivo sqlite o dsn postgres
	} `yaml:"storage"`

	// Seed carga las fixtures de desarrollo al arrancar.
	Seed bool `yaml:"seed"`
}

func Default() Config {
	var c Config
	c.Addr = ":8080"
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Storage.Driver = "sqlite"
	c.Storage.DSN = "horse-registry.db"
	return c
}

// Load lee el archivo si existe (path vacío = "config.yaml") y aplica env.
// Un archivo ausente no es error; uno malformado sí.
func Load(path string) (Config, error) {
	c := Default()

	if path == "" {
		path = "config.yaml"
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// sin archivo: defaults + env
	default:
		return Config{}, err
	}

	c.applyEnv()

	switch c.Storage.Driver {
	case "sqlite", "postgres", "memory":
	default:
		return Config{}, fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return c, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		c.Addr = ":" + v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_DRIVER")); v != "" {
		c.Storage.Driver = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_DSN")); v != "" {
		c.Storage.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("SEED")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Seed = b
		}
	}
}

package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvAppBasePath overrides the URL prefix the console is mounted at.
const EnvAppBasePath = "APP_BASE_PATH"

// AppConfig contains settings for the web console module.
type AppConfig struct {
	BasePath string `toml:"base_path"`
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
}

func (c *AppConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") || len(c.BasePath) < 2 {
		return fmt.Errorf("invalid base_path %q: must be /<segment>", c.BasePath)
	}
	if strings.Contains(c.BasePath[1:], "/") {
		return fmt.Errorf("invalid base_path %q: must be a single segment", c.BasePath)
	}
	return nil
}

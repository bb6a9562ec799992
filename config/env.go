package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime settings.
type Config struct {
	Addr        string
	Floorplan   string
	StaticDir   string
	AllowOrigin string
}

// FromEnv loads settings from the environment, with .env support. Missing
// variables fall back to defaults; a missing .env file is not an error.
func FromEnv() Config {
	_ = godotenv.Load()

	c := Config{
		Addr:        ":8080",
		Floorplan:   "floorplan.json",
		AllowOrigin: "*",
	}
	if v := os.Getenv("LOCATOR_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("LOCATOR_FLOORPLAN"); v != "" {
		c.Floorplan = v
	}
	if v := os.Getenv("LOCATOR_STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv("LOCATOR_ALLOW_ORIGIN"); v != "" {
		c.AllowOrigin = v
	}
	return c
}

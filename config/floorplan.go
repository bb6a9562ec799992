package config

import (
	"encoding/json"
	"fmt"
	"os"

	"locator-go/locate"
	"locator-go/store"
)

// Floorplan is the on-disk catalog document loaded once at process start.
type Floorplan struct {
	Levels       []store.Level        `json:"levels"`
	AccessPoints []locate.AccessPoint `json:"accessPoints"`
	Rooms        []locate.Room        `json:"rooms"`
}

// LoadFloorplan reads a floorplan JSON file and builds the validated catalog.
func LoadFloorplan(path string) (*store.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open floorplan: %w", err)
	}
	defer f.Close()

	var fp Floorplan
	if err := json.NewDecoder(f).Decode(&fp); err != nil {
		return nil, fmt.Errorf("parse floorplan %s: %w", path, err)
	}
	if len(fp.Levels) == 0 {
		return nil, fmt.Errorf("floorplan %s declares no levels", path)
	}
	cat, err := store.NewCatalog(fp.Levels, fp.AccessPoints, fp.Rooms)
	if err != nil {
		return nil, fmt.Errorf("floorplan %s: %w", path, err)
	}
	return cat, nil
}

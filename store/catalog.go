package store

import (
	"fmt"

	"locator-go/locate"
)

// Level is one independently addressed floor plan.
type Level struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FloorNumber int    `json:"floorNumber"`
}

// Catalog is the immutable reference data for a deployment: the levels and
// the anchors and rooms placed on them. Built once at startup and injected
// into whatever needs it; read-only thereafter.
type Catalog struct {
	Levels       []Level
	AccessPoints []locate.AccessPoint
	Rooms        []locate.Room

	levelIDs map[string]bool
}

// NewCatalog builds a catalog and enforces referential integrity: every
// access point and room must sit on a declared level.
func NewCatalog(levels []Level, accessPoints []locate.AccessPoint, rooms []locate.Room) (*Catalog, error) {
	ids := make(map[string]bool, len(levels))
	for _, l := range levels {
		ids[l.ID] = true
	}
	for _, ap := range accessPoints {
		if !ids[ap.LevelID] {
			return nil, fmt.Errorf("access point %s references unknown level %q", ap.ID, ap.LevelID)
		}
	}
	for _, r := range rooms {
		if !ids[r.LevelID] {
			return nil, fmt.Errorf("room %s references unknown level %q", r.ID, r.LevelID)
		}
	}
	return &Catalog{
		Levels:       levels,
		AccessPoints: accessPoints,
		Rooms:        rooms,
		levelIDs:     ids,
	}, nil
}

// HasLevel reports whether the catalog declares the level.
func (c *Catalog) HasLevel(id string) bool {
	return c.levelIDs[id]
}

// AccessPointsByLevel returns the anchors on one level, in catalog order.
func (c *Catalog) AccessPointsByLevel(levelID string) []locate.AccessPoint {
	out := []locate.AccessPoint{}
	for _, ap := range c.AccessPoints {
		if ap.LevelID == levelID {
			out = append(out, ap)
		}
	}
	return out
}

// RoomsByLevel returns the rooms on one level, in catalog order. Room order
// matters: containment lookups resolve overlaps to the earlier room.
func (c *Catalog) RoomsByLevel(levelID string) []locate.Room {
	out := []locate.Room{}
	for _, r := range c.Rooms {
		if r.LevelID == levelID {
			out = append(out, r)
		}
	}
	return out
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleFloorplan = `{
  "levels": [
    {"id": "L1", "name": "Ground", "floorNumber": 0}
  ],
  "accessPoints": [
    {"id": "ap1", "x": 0, "y": 0, "levelId": "L1"},
    {"id": "ap2", "x": 100, "y": 0, "levelId": "L1"},
    {"id": "ap3", "x": 0, "y": 100, "levelId": "L1"}
  ],
  "rooms": [
    {"id": "r1", "name": "Lobby", "x": 0, "y": 0, "width": 100, "height": 100, "levelId": "L1"}
  ]
}`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "floorplan.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFloorplan(t *testing.T) {
	cat, err := LoadFloorplan(writePlan(t, sampleFloorplan))
	if err != nil {
		t.Fatal(err)
	}
	if len(cat.Levels) != 1 || len(cat.AccessPoints) != 3 || len(cat.Rooms) != 1 {
		t.Fatalf("catalog = %d levels, %d aps, %d rooms", len(cat.Levels), len(cat.AccessPoints), len(cat.Rooms))
	}
	if cat.Rooms[0].Name != "Lobby" || cat.Rooms[0].Width != 100 {
		t.Errorf("room = %+v", cat.Rooms[0])
	}
}

func TestLoadFloorplanMissingFile(t *testing.T) {
	if _, err := LoadFloorplan(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing file must error")
	}
}

func TestLoadFloorplanMalformedJSON(t *testing.T) {
	if _, err := LoadFloorplan(writePlan(t, "{not json")); err == nil {
		t.Fatal("malformed JSON must error")
	}
}

func TestLoadFloorplanNoLevels(t *testing.T) {
	if _, err := LoadFloorplan(writePlan(t, `{"levels": []}`)); err == nil {
		t.Fatal("a floorplan without levels must error")
	}
}

func TestLoadFloorplanOrphanReference(t *testing.T) {
	plan := `{
  "levels": [{"id": "L1", "name": "Ground", "floorNumber": 0}],
  "accessPoints": [{"id": "ap1", "x": 0, "y": 0, "levelId": "L2"}]
}`
	if _, err := LoadFloorplan(writePlan(t, plan)); err == nil {
		t.Fatal("orphan levelId must error")
	}
}

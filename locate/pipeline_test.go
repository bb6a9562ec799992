package locate

import (
	"math"
	"testing"
)

var testAnchors = []AccessPoint{
	{ID: "A", X: 0, Y: 0, LevelID: "L1"},
	{ID: "B", X: 100, Y: 0, LevelID: "L1"},
	{ID: "C", X: 0, Y: 100, LevelID: "L1"},
}

var testRooms = []Room{
	{ID: "r1", Name: "R", X: 0, Y: 0, Width: 100, Height: 100, LevelID: "L1"},
}

// Equal RSSI against the three corner anchors means equal estimated ranges,
// which solves to the centroid-symmetric point (50,50) regardless of the
// common range value.
var centerSignals = []Signal{
	{APID: "A", RSSI: -48},
	{APID: "B", RSSI: -48},
	{APID: "C", RSSI: -48},
}

func TestResolveCenterOfRoom(t *testing.T) {
	p := NewPipeline(NewSignalModel())
	res := p.Resolve(centerSignals, testAnchors, testRooms)
	if res.Unlocalizable() {
		t.Fatalf("Resolve = %s, want resolved", res.Outcome)
	}
	if math.Abs(res.Position.X-50) > 1e-6 || math.Abs(res.Position.Y-50) > 1e-6 {
		t.Errorf("Resolve position = %+v, want (50,50)", res.Position)
	}
	if res.Room != "R" {
		t.Errorf("Resolve room = %q, want R", res.Room)
	}
}

func TestResolveIgnoresUnknownAnchors(t *testing.T) {
	p := NewPipeline(NewSignalModel())
	signals := []Signal{
		{APID: "ghost-1", RSSI: -30},
		{APID: "A", RSSI: -48},
		{APID: "B", RSSI: -48},
		{APID: "ghost-2", RSSI: -30},
		{APID: "C", RSSI: -48},
	}
	res := p.Resolve(signals, testAnchors, testRooms)
	if res.Unlocalizable() {
		t.Fatalf("Resolve = %s, want resolved", res.Outcome)
	}
	if math.Abs(res.Position.X-50) > 1e-6 || math.Abs(res.Position.Y-50) > 1e-6 {
		t.Errorf("Resolve position = %+v, want (50,50)", res.Position)
	}
}

func TestResolveFirstThreePolicy(t *testing.T) {
	anchors := append([]AccessPoint{}, testAnchors...)
	anchors = append(anchors, AccessPoint{ID: "D", X: 200, Y: 200, LevelID: "L1"})
	signals := append([]Signal{}, centerSignals...)
	// A fourth matching signal that would drag the fix away if it were used.
	signals = append(signals, Signal{APID: "D", RSSI: -30})

	p := NewPipeline(NewSignalModel())
	res := p.Resolve(signals, anchors, testRooms)
	if res.Unlocalizable() {
		t.Fatalf("Resolve = %s, want resolved", res.Outcome)
	}
	if math.Abs(res.Position.X-50) > 1e-6 || math.Abs(res.Position.Y-50) > 1e-6 {
		t.Errorf("fourth signal leaked into the solve: %+v", res.Position)
	}
}

func TestResolveInsufficientAnchors(t *testing.T) {
	p := NewPipeline(NewSignalModel())
	signals := []Signal{
		{APID: "A", RSSI: -48},
		{APID: "B", RSSI: -48},
		{APID: "nope-1", RSSI: -48},
		{APID: "nope-2", RSSI: -48},
		{APID: "nope-3", RSSI: -48},
	}
	res := p.Resolve(signals, testAnchors, testRooms)
	if res.Outcome != InsufficientAnchors {
		t.Fatalf("Resolve = %s, want insufficient-anchors", res.Outcome)
	}
}

func TestResolveDegenerateGeometry(t *testing.T) {
	collinear := []AccessPoint{
		{ID: "A", X: 0, Y: 0, LevelID: "L1"},
		{ID: "B", X: 50, Y: 0, LevelID: "L1"},
		{ID: "C", X: 100, Y: 0, LevelID: "L1"},
	}
	p := NewPipeline(NewSignalModel())
	res := p.Resolve(centerSignals, collinear, testRooms)
	if res.Outcome != DegenerateGeometry {
		t.Fatalf("Resolve = %s, want degenerate-geometry", res.Outcome)
	}
	if !math.IsInf(res.Condition, 1) {
		t.Errorf("collinear geometry should report infinite condition, got %v", res.Condition)
	}
}

func TestResolveOutOfBounds(t *testing.T) {
	smallRoom := []Room{
		{ID: "r1", Name: "R", X: 0, Y: 0, Width: 40, Height: 40, LevelID: "L1"},
	}
	p := NewPipeline(NewSignalModel())
	res := p.Resolve(centerSignals, testAnchors, smallRoom)
	if res.Outcome != OutOfBounds {
		t.Fatalf("Resolve = %s, want out-of-bounds", res.Outcome)
	}
}

func TestResolveNoSignals(t *testing.T) {
	p := NewPipeline(NewSignalModel())
	if res := p.Resolve(nil, testAnchors, testRooms); res.Outcome != InsufficientAnchors {
		t.Fatalf("Resolve = %s, want insufficient-anchors", res.Outcome)
	}
}

// Command simulate feeds a running locator with synthetic device readings.
// Each simulated device walks randomly across a level; per-anchor RSSI is
// produced by inverting the engine's path loss model plus Gaussian noise.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat/distuv"

	"locator-go/config"
	"locator-go/locate"
	"locator-go/store"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "Locator base URL")
	floorplan := flag.String("floorplan", "floorplan.json", "Floorplan JSON (same file the server loads)")
	levelID := flag.String("level", "", "Level id to simulate on (default: first level)")
	devices := flag.Int("devices", 3, "Number of simulated devices")
	steps := flag.Int("steps", 0, "Number of rounds to send, 0 for unlimited")
	interval := flag.Duration("interval", 2*time.Second, "Delay between rounds")
	noiseDb := flag.Float64("noise-db", 1.5, "RSSI noise sigma in dB")
	appendMode := flag.Bool("append", false, "POST new records each round instead of PUT upserts")
	flag.Parse()

	catalog, err := config.LoadFloorplan(*floorplan)
	if err != nil {
		log.Fatalf("load floorplan: %v", err)
	}
	lvl := *levelID
	if lvl == "" {
		lvl = catalog.Levels[0].ID
	}
	anchors := catalog.AccessPointsByLevel(lvl)
	if len(anchors) < 3 {
		log.Fatalf("level %s has %d access points, need at least 3", lvl, len(anchors))
	}
	minX, minY, maxX, maxY := levelBounds(anchors, catalog.RoomsByLevel(lvl))

	model := locate.NewSignalModel()
	noise := distuv.Normal{Mu: 0, Sigma: *noiseDb}
	client := resty.New().SetBaseURL(*server).SetHeader("Content-Type", "application/json")

	type walker struct {
		id   string
		name string
		x, y float64
	}
	ws := make([]*walker, *devices)
	for i := range ws {
		ws[i] = &walker{
			id:   uuid.NewString(),
			name: fmt.Sprintf("sim-%02d", i+1),
			x:    minX + rand.Float64()*(maxX-minX),
			y:    minY + rand.Float64()*(maxY-minY),
		}
	}

	stepSize := math.Max(maxX-minX, maxY-minY) / 20

	for round := 0; *steps == 0 || round < *steps; round++ {
		for _, wk := range ws {
			wk.x = clamp(wk.x+(rand.Float64()*2-1)*stepSize, minX, maxX)
			wk.y = clamp(wk.y+(rand.Float64()*2-1)*stepSize, minY, maxY)

			signals := make([]locate.Signal, 0, len(anchors))
			for _, a := range anchors {
				d := math.Hypot(a.X-wk.x, a.Y-wk.y)
				rssi := int(math.Round(model.RSSIAt(d) + noise.Rand()))
				signals = append(signals, locate.Signal{APID: a.ID, RSSI: rssi})
			}
			reading := store.DeviceReading{
				ID:      wk.id,
				Name:    wk.name,
				Signals: signals,
				Date:    time.Now().UTC().Format(time.RFC3339),
				LevelID: lvl,
			}

			req := client.R().SetBody(reading)
			var resp *resty.Response
			if *appendMode {
				resp, err = req.Post("/device-readings")
			} else {
				resp, err = req.Put("/device-readings")
			}
			if err != nil {
				log.Printf("%s: send failed: %v", wk.name, err)
				continue
			}
			if resp.IsError() {
				log.Printf("%s: server said %s: %s", wk.name, resp.Status(), resp.String())
				continue
			}
			log.Printf("%s at (%.1f, %.1f) -> %s", wk.name, wk.x, wk.y, resp.Status())
		}
		time.Sleep(*interval)
	}
}

// levelBounds derives the walkable area from the room extents, falling back
// to the anchor bounding box when the level has no rooms.
func levelBounds(anchors []locate.AccessPoint, rooms []locate.Room) (minX, minY, maxX, maxY float64) {
	if len(rooms) > 0 {
		minX, minY = rooms[0].X, rooms[0].Y
		maxX, maxY = rooms[0].X+rooms[0].Width, rooms[0].Y+rooms[0].Height
		for _, r := range rooms[1:] {
			minX = math.Min(minX, r.X)
			minY = math.Min(minY, r.Y)
			maxX = math.Max(maxX, r.X+r.Width)
			maxY = math.Max(maxY, r.Y+r.Height)
		}
		return minX, minY, maxX, maxY
	}
	minX, minY = anchors[0].X, anchors[0].Y
	maxX, maxY = minX, minY
	for _, a := range anchors[1:] {
		minX = math.Min(minX, a.X)
		minY = math.Min(minY, a.Y)
		maxX = math.Max(maxX, a.X)
		maxY = math.Max(maxY, a.Y)
	}
	return minX, minY, maxX, maxY
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

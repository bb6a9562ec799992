package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"

	"locator-go/locate"
	"locator-go/store"
	"locator-go/web"
)

// Server bundles the catalog, reading log, pipeline and live feed behind the
// HTTP surface. Hub may be nil when no websocket feed is wired.
type Server struct {
	Catalog  *store.Catalog
	Readings *store.Store
	Pipeline *locate.Pipeline
	Hub      *web.Hub
}

// DevicePosition is the query/display shape for one device's latest state.
// Position is null when the reading could not be localized; Outcome names the
// cause either way.
type DevicePosition struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	LevelID  string           `json:"levelId"`
	Date     string           `json:"date"`
	Position *locate.Position `json:"position"`
	Room     string           `json:"room,omitempty"`
	Outcome  string           `json:"outcome"`
}

// ParseReading decodes and validates a submitted reading body. Presence of
// id, signals, date and levelId is required and the date must parse as
// ISO-8601; malformed input never reaches the store or the math core.
func ParseReading(body io.Reader) (store.DeviceReading, error) {
	var r store.DeviceReading
	if err := json.NewDecoder(body).Decode(&r); err != nil {
		return r, fmt.Errorf("decode reading: %w", err)
	}
	if err := r.Validate(); err != nil {
		return r, err
	}
	if _, err := r.Time(); err != nil {
		return r, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	return r, nil
}

// Levels serves the full level catalog.
func (s *Server) Levels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Catalog.Levels)
}

// AccessPoints serves the anchor catalog, optionally filtered by levelId.
func (s *Server) AccessPoints(w http.ResponseWriter, r *http.Request) {
	if levelID := r.URL.Query().Get("levelId"); levelID != "" {
		writeJSON(w, http.StatusOK, s.Catalog.AccessPointsByLevel(levelID))
		return
	}
	writeJSON(w, http.StatusOK, s.Catalog.AccessPoints)
}

// Rooms serves the room catalog, optionally filtered by levelId.
func (s *Server) Rooms(w http.ResponseWriter, r *http.Request) {
	if levelID := r.URL.Query().Get("levelId"); levelID != "" {
		writeJSON(w, http.StatusOK, s.Catalog.RoomsByLevel(levelID))
		return
	}
	writeJSON(w, http.StatusOK, s.Catalog.Rooms)
}

// ListReadings serves the reading log, optionally filtered by levelId.
func (s *Server) ListReadings(w http.ResponseWriter, r *http.Request) {
	if levelID := r.URL.Query().Get("levelId"); levelID != "" {
		writeJSON(w, http.StatusOK, s.Readings.FilterByLevel(levelID))
		return
	}
	writeJSON(w, http.StatusOK, s.Readings.All())
}

// AppendReading handles POST /device-readings: validate, append, broadcast.
func (s *Server) AppendReading(w http.ResponseWriter, r *http.Request) {
	reading, err := s.acceptReading(w, r)
	if err != nil {
		return
	}
	if err := s.Readings.Append(reading); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.broadcast(reading)
	writeJSON(w, http.StatusCreated, reading)
}

// UpsertReading handles PUT /device-readings: validate, replace-or-append,
// broadcast. Responds 201 when no prior record with the id existed, 200 with
// a confirmation payload otherwise.
func (s *Server) UpsertReading(w http.ResponseWriter, r *http.Request) {
	reading, err := s.acceptReading(w, r)
	if err != nil {
		return
	}
	res, err := s.Readings.Upsert(reading)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.broadcast(reading)
	status := http.StatusOK
	if res == store.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{
		"status":  res.String(),
		"reading": reading,
	})
}

// Positions serves the latest reading per device, resolved through the
// pipeline, optionally restricted to one level. Output is sorted by device
// id for stable display.
func (s *Server) Positions(w http.ResponseWriter, r *http.Request) {
	readings := s.Readings.All()
	if levelID := r.URL.Query().Get("levelId"); levelID != "" {
		readings = s.Readings.FilterByLevel(levelID)
	}
	latest := store.LatestPerDevice(readings)

	out := make([]DevicePosition, 0, len(latest))
	for _, reading := range latest {
		out = append(out, s.resolve(reading))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, out)
}

// acceptReading parses the body and checks the levelId against the catalog,
// writing the 400 itself on failure.
func (s *Server) acceptReading(w http.ResponseWriter, r *http.Request) (store.DeviceReading, error) {
	reading, err := ParseReading(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return reading, err
	}
	if !s.Catalog.HasLevel(reading.LevelID) {
		err = fmt.Errorf("unknown level %q", reading.LevelID)
		writeError(w, http.StatusBadRequest, err)
		return reading, err
	}
	return reading, nil
}

func (s *Server) resolve(reading store.DeviceReading) DevicePosition {
	res := s.Pipeline.Resolve(
		reading.Signals,
		s.Catalog.AccessPointsByLevel(reading.LevelID),
		s.Catalog.RoomsByLevel(reading.LevelID),
	)
	dp := DevicePosition{
		ID:      reading.ID,
		Name:    reading.Name,
		LevelID: reading.LevelID,
		Date:    reading.Date,
		Outcome: res.Outcome.String(),
	}
	if res.Outcome == locate.DegenerateGeometry {
		log.Printf("degenerate anchor geometry for device %s (condition %.3g)", reading.ID, res.Condition)
	}
	if !res.Unlocalizable() {
		pos := res.Position
		dp.Position = &pos
		dp.Room = res.Room
	}
	return dp
}

// broadcast pushes the freshly written device's re-resolved position to the
// live feed.
func (s *Server) broadcast(reading store.DeviceReading) {
	if s.Hub == nil {
		return
	}
	b, err := json.Marshal(s.resolve(reading))
	if err != nil {
		return
	}
	s.Hub.Broadcast(b)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

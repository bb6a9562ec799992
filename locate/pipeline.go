package locate

// AccessPoint is a fixed anchor placed on exactly one level.
type AccessPoint struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	LevelID string  `json:"levelId"`
}

// Signal is one RSSI observation against a named anchor.
type Signal struct {
	APID string `json:"apId"`
	RSSI int    `json:"rssi"`
}

// Outcome classifies a resolution attempt. Everything except Resolved is a
// "no position" result to the outside; the enum exists so callers and logs
// can tell the causes apart.
type Outcome int

const (
	Resolved Outcome = iota
	InsufficientAnchors
	DegenerateGeometry
	OutOfBounds
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case InsufficientAnchors:
		return "insufficient-anchors"
	case DegenerateGeometry:
		return "degenerate-geometry"
	case OutOfBounds:
		return "out-of-bounds"
	}
	return "unknown"
}

// Resolution carries either an accepted position with its room, or the cause
// that made the reading unlocalizable. Condition is only set for degenerate
// geometry.
type Resolution struct {
	Outcome   Outcome
	Position  Position
	Room      string
	Condition float64
}

// Unlocalizable reports whether the attempt produced no position.
func (r Resolution) Unlocalizable() bool { return r.Outcome != Resolved }

// Pipeline turns a reading's signals into a validated position against one
// level's anchor and room catalogs. Stateless; safe for concurrent use.
type Pipeline struct {
	model SignalModel
}

// NewPipeline returns a pipeline backed by the given signal model.
func NewPipeline(model SignalModel) *Pipeline {
	return &Pipeline{model: model}
}

// Resolve filters signals to anchors present in accessPoints, estimates a
// range for each and trilaterates from the first three matches in signal
// order. The solver is fixed-triple by policy: extra matching signals are
// silently ignored, there is no least-squares fit over the full set. A
// candidate that lands outside every room is discarded as OutOfBounds.
func (p *Pipeline) Resolve(signals []Signal, accessPoints []AccessPoint, rooms []Room) Resolution {
	byID := make(map[string]AccessPoint, len(accessPoints))
	for _, ap := range accessPoints {
		byID[ap.ID] = ap
	}

	spheres := make([]Sphere, 0, 3)
	for _, s := range signals {
		ap, ok := byID[s.APID]
		if !ok {
			continue
		}
		spheres = append(spheres, Sphere{X: ap.X, Y: ap.Y, Distance: p.model.EstimateDistance(s.RSSI)})
		if len(spheres) == 3 {
			break
		}
	}
	if len(spheres) < 3 {
		return Resolution{Outcome: InsufficientAnchors}
	}

	pos, ok := Trilaterate(spheres[0], spheres[1], spheres[2])
	if !ok {
		return Resolution{
			Outcome:   DegenerateGeometry,
			Condition: ConditionNumber(spheres[0], spheres[1], spheres[2]),
		}
	}

	room := LocateRoom(pos, rooms)
	if room == Outside {
		return Resolution{Outcome: OutOfBounds}
	}
	return Resolution{Outcome: Resolved, Position: pos, Room: room}
}

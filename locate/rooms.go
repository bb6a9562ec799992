package locate

// Room is an axis-aligned rectangle in its level's coordinate space.
type Room struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	LevelID string  `json:"levelId"`
}

// Outside is the sentinel room name returned when no room contains a point.
const Outside = "Outside"

// Contains reports whether p lies within the room, boundary inclusive on all
// four edges.
func (r Room) Contains(p Position) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// LocateRoom returns the name of the first room in list order that contains
// p, or Outside. Overlapping rooms resolve to the earlier entry; there is no
// tie-break beyond list order. Rooms must already be filtered to the active
// level, the locator does no level filtering itself.
func LocateRoom(p Position, rooms []Room) string {
	for _, r := range rooms {
		if r.Contains(p) {
			return r.Name
		}
	}
	return Outside
}

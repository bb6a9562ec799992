package store

import "time"

// LatestPerDevice collapses a reading sequence to the most recent record per
// device id. Replacement uses a strictly later-than comparison on the parsed
// date, so records with exactly equal timestamps keep the one encountered
// first in input order. Map iteration order carries no meaning; callers
// wanting a display order sort separately.
//
// Records whose date fails to parse are skipped; the ingest parser rejects
// those before they reach the log.
func LatestPerDevice(readings []DeviceReading) map[string]DeviceReading {
	latest := make(map[string]DeviceReading)
	seen := make(map[string]time.Time)
	for _, r := range readings {
		t, err := r.Time()
		if err != nil {
			continue
		}
		prev, ok := seen[r.ID]
		if !ok || t.After(prev) {
			latest[r.ID] = r
			seen[r.ID] = t
		}
	}
	return latest
}

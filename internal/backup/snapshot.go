// Package backup implements the interchange contract (a single JSON document
// with three named arrays mirroring the stored collections) and a managed
// local snapshot archive built on it.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/julianstephens/liftlog/internal/logger"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage"
)

// Export reads all three collections in full.
func Export(store storage.Provider) (models.Snapshot, error) {
	var snap models.Snapshot
	var err error

	if snap.Workouts, err = store.GetAllWorkouts(); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read workouts: %w", err)
	}
	if snap.Logs, err = store.GetAllLogs(); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read logs: %w", err)
	}
	if snap.Bodyweight, err = store.GetAllBodyweight(); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read bodyweight: %w", err)
	}

	if snap.Workouts == nil {
		snap.Workouts = []models.Workout{}
	}
	if snap.Logs == nil {
		snap.Logs = []models.Log{}
	}
	if snap.Bodyweight == nil {
		snap.Bodyweight = []models.Bodyweight{}
	}
	return snap, nil
}

// WriteSnapshot serializes a snapshot as indented JSON.
func WriteSnapshot(w io.Writer, snap models.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// ReadSnapshot parses an interchange document.
func ReadSnapshot(r io.Reader) (models.Snapshot, error) {
	var snap models.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return snap, nil
}

// Import replays a snapshot into the store. Ids are reassigned by the store;
// the log→workout relationship is preserved through a remap table, and
// relative id order is preserved so creation-order listings survive the
// round trip. Bodyweight entries go through the upsert path, keeping the
// one-entry-per-date invariant even against a dirty store.
//
// When replace is true the store is wiped first.
func Import(store storage.Provider, snap models.Snapshot, replace bool) error {
	if replace {
		if err := store.Wipe(); err != nil {
			return fmt.Errorf("failed to wipe store: %w", err)
		}
	}

	workouts := make([]models.Workout, len(snap.Workouts))
	copy(workouts, snap.Workouts)
	sort.Slice(workouts, func(i, j int) bool { return workouts[i].ID < workouts[j].ID })

	idMap := make(map[int64]int64, len(workouts))
	for _, w := range workouts {
		newID, err := store.AddWorkout(w)
		if err != nil {
			return fmt.Errorf("failed to import workout %d: %w", w.ID, err)
		}
		idMap[w.ID] = newID
	}

	logs := make([]models.Log, len(snap.Logs))
	copy(logs, snap.Logs)
	sort.Slice(logs, func(i, j int) bool { return logs[i].ID < logs[j].ID })

	for _, l := range logs {
		newWorkoutID, ok := idMap[l.WorkoutID]
		if !ok {
			// A log whose workout is absent from the document cannot be
			// remapped; importing it would fabricate a relationship.
			logger.Warn("skipping log with unknown workout", "log", l.ID, "workout", l.WorkoutID)
			continue
		}
		l.WorkoutID = newWorkoutID
		if _, err := store.AddLog(l); err != nil {
			return fmt.Errorf("failed to import log %d: %w", l.ID, err)
		}
	}

	for _, b := range snap.Bodyweight {
		if _, err := store.UpsertBodyweight(b); err != nil {
			return fmt.Errorf("failed to import bodyweight for %s: %w", b.Date, err)
		}
	}
	return nil
}

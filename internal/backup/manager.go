package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/liftlog/internal/storage"
)

const (
	// MaxBackups is the maximum number of snapshots to keep
	MaxBackups = 14
	// BackupDirName is the name of the snapshot directory
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for snapshot files
	BackupFilePrefix = "liftlog-"
	// BackupFileSuffix is the suffix for snapshot files
	BackupFileSuffix = ".json"
	// manifestName is the manifest file listing kept snapshots
	manifestName = "manifest.json"
)

// Info describes one kept snapshot.
type Info struct {
	ID         string    `json:"id"`
	File       string    `json:"file"`
	CreatedAt  time.Time `json:"created_at"`
	Workouts   int       `json:"workouts"`
	Logs       int       `json:"logs"`
	Bodyweight int       `json:"bodyweight"`
}

// Manager keeps rotated snapshot files next to the database, tracked by a
// manifest.
type Manager struct {
	store     storage.Provider
	backupDir string
}

// NewManager creates a manager storing snapshots alongside the given config
// path.
func NewManager(store storage.Provider, configPath string) *Manager {
	return &Manager{
		store:     store,
		backupDir: filepath.Join(filepath.Dir(configPath), BackupDirName),
	}
}

// GetBackupDir returns the snapshot directory path.
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// Create exports the store to a new timestamped snapshot file, records it in
// the manifest, and rotates out the oldest snapshots beyond MaxBackups.
func (m *Manager) Create() (Info, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return Info{}, fmt.Errorf("failed to create backup directory: %w", err)
	}

	snap, err := Export(m.store)
	if err != nil {
		return Info{}, err
	}

	now := time.Now()
	name := fmt.Sprintf("%s%s%s", BackupFilePrefix, now.Format("20060102-150405"), BackupFileSuffix)
	path := filepath.Join(m.backupDir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return Info{}, fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if err := WriteSnapshot(f, snap); err != nil {
		f.Close()
		return Info{}, fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return Info{}, err
	}

	info := Info{
		ID:         uuid.NewString(),
		File:       name,
		CreatedAt:  now,
		Workouts:   len(snap.Workouts),
		Logs:       len(snap.Logs),
		Bodyweight: len(snap.Bodyweight),
	}

	manifest, err := m.List()
	if err != nil {
		return Info{}, err
	}
	manifest = append(manifest, info)
	if manifest, err = m.rotate(manifest); err != nil {
		return Info{}, err
	}
	if err := m.writeManifest(manifest); err != nil {
		return Info{}, err
	}
	return info, nil
}

// List returns the kept snapshots ordered oldest first.
func (m *Manager) List() ([]Info, error) {
	data, err := os.ReadFile(filepath.Join(m.backupDir, manifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup manifest: %w", err)
	}

	var manifest []Info
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse backup manifest: %w", err)
	}
	sort.Slice(manifest, func(i, j int) bool { return manifest[i].CreatedAt.Before(manifest[j].CreatedAt) })
	return manifest, nil
}

// Restore wipes the store and replays the snapshot with the given manifest
// id.
func (m *Manager) Restore(id string) error {
	manifest, err := m.List()
	if err != nil {
		return err
	}

	var target *Info
	for i := range manifest {
		if manifest[i].ID == id {
			target = &manifest[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no snapshot with id %s", id)
	}

	f, err := os.Open(filepath.Join(m.backupDir, target.File))
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	snap, err := ReadSnapshot(f)
	if err != nil {
		return err
	}
	return Import(m.store, snap, true)
}

// rotate drops the oldest snapshots beyond MaxBackups, removing their files.
func (m *Manager) rotate(manifest []Info) ([]Info, error) {
	sort.Slice(manifest, func(i, j int) bool { return manifest[i].CreatedAt.Before(manifest[j].CreatedAt) })
	for len(manifest) > MaxBackups {
		oldest := manifest[0]
		if err := os.Remove(filepath.Join(m.backupDir, oldest.File)); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove old snapshot %s: %w", oldest.File, err)
		}
		manifest = manifest[1:]
	}
	return manifest, nil
}

func (m *Manager) writeManifest(manifest []Info) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(m.backupDir, manifestName), data, 0600)
}

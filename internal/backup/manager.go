package backup

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/spotit/spotit/internal/database"
	"github.com/spotit/spotit/internal/database/settings"
	"github.com/spotit/spotit/internal/ident"
)

const (
	settingBackupHistory  = "backup_history"
	settingLastBackupTime = "last_backup_time"
	settingBackupEnabled  = "backup_enabled"
)

// Record describes one backup file kept on disk.
type Record struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Size      int64  `json:"size"`
	ItemCount int    `json:"itemCount"`
}

// Manager creates backup files in a directory, keeps a bounded record
// history in settings, and restores from any kept file.
type Manager struct {
	db        *database.Database
	settings  *settings.Repository
	dir       string
	retention int
	mu        sync.Mutex
}

func NewManager(db *database.Database, dir string, retention int) *Manager {
	if retention <= 0 {
		retention = 7
	}
	return &Manager{
		db:        db,
		settings:  settings.NewRepository(db.DB),
		dir:       dir,
		retention: retention,
	}
}

func (m *Manager) fileName(ts int64) string {
	return fmt.Sprintf("spotit_backup_%d.json", ts)
}

func (m *Manager) filePath(rec Record) string {
	return filepath.Join(m.dir, m.fileName(rec.Timestamp))
}

// Create exports a snapshot, writes it to a new file, and prunes old
// backups past the retention limit.
func (m *Manager) Create() (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	snap, err := Export(m.db.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to export snapshot: %w", err)
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	ts := ident.Now()
	path := filepath.Join(m.dir, m.fileName(ts))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write backup file: %w", err)
	}

	rec := Record{
		ID:        ident.NewID(),
		Timestamp: ts,
		Size:      int64(len(payload)),
		ItemCount: len(snap.Data.Items),
	}

	records, err := m.loadRecords()
	if err != nil {
		return nil, err
	}
	records = append(records, rec)
	records = m.prune(records)

	if err := m.saveRecords(records); err != nil {
		return nil, err
	}
	if err := m.settings.Set(settingLastBackupTime, strconv.FormatInt(ts, 10)); err != nil {
		return nil, err
	}

	log.Printf("Created backup %s (%d items, %d bytes)", rec.ID, rec.ItemCount, rec.Size)
	return &rec, nil
}

// List returns known backup records, newest first.
func (m *Manager) List() ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records, err := m.loadRecords()
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	return records, nil
}

// RestoreFrom replaces the store's contents with the named backup.
func (m *Manager) RestoreFrom(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.findRecord(id)
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(m.filePath(*rec))
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return fmt.Errorf("failed to decode backup file: %w", err)
	}

	if err := Restore(m.db.DB, &snap); err != nil {
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}
	log.Printf("Restored backup %s", id)
	return nil
}

// Delete removes a backup record and its file.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.loadRecords()
	if err != nil {
		return err
	}

	kept := records[:0]
	var removed *Record
	for _, rec := range records {
		if rec.ID == id {
			r := rec
			removed = &r
			continue
		}
		kept = append(kept, rec)
	}
	if removed == nil {
		return fmt.Errorf("backup %s not found", id)
	}

	if err := os.Remove(m.filePath(*removed)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove backup file: %w", err)
	}
	return m.saveRecords(kept)
}

// SetEnabled toggles the automatic backup flag.
func (m *Manager) SetEnabled(enabled bool) error {
	return m.settings.Set(settingBackupEnabled, strconv.FormatBool(enabled))
}

// Enabled reports whether automatic backups are on. Defaults to true when
// the flag has never been set.
func (m *Manager) Enabled() (bool, error) {
	value, err := m.settings.Get(settingBackupEnabled)
	if err != nil {
		return false, err
	}
	if value == "" {
		return true, nil
	}
	return value == "true", nil
}

// ShouldAutoBackup reports whether no backup has been taken yet today.
// The comparison is by calendar day, not a 24-hour window.
func (m *Manager) ShouldAutoBackup() (bool, error) {
	enabled, err := m.Enabled()
	if err != nil {
		return false, err
	}
	if !enabled {
		return false, nil
	}

	value, err := m.settings.Get(settingLastBackupTime)
	if err != nil {
		return false, err
	}
	if value == "" {
		return true, nil
	}
	last, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return true, nil
	}

	lastDay := time.UnixMilli(last).Local()
	now := time.Now()
	sameDay := lastDay.Year() == now.Year() && lastDay.YearDay() == now.YearDay()
	return !sameDay, nil
}

// RunIfDue creates a backup when one is due today. Called by the
// scheduler and at startup.
func (m *Manager) RunIfDue() error {
	due, err := m.ShouldAutoBackup()
	if err != nil {
		return err
	}
	if !due {
		return nil
	}
	_, err = m.Create()
	return err
}

func (m *Manager) prune(records []Record) []Record {
	if len(records) <= m.retention {
		return records
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	for _, old := range records[m.retention:] {
		if err := os.Remove(m.filePath(old)); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove old backup %s: %v", old.ID, err)
		}
	}
	return records[:m.retention]
}

func (m *Manager) findRecord(id string) (*Record, error) {
	records, err := m.loadRecords()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			r := rec
			return &r, nil
		}
	}
	return nil, fmt.Errorf("backup %s not found", id)
}

func (m *Manager) loadRecords() ([]Record, error) {
	value, err := m.settings.Get(settingBackupHistory)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	var records []Record
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("failed to decode backup history: %w", err)
	}
	return records, nil
}

func (m *Manager) saveRecords(records []Record) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return m.settings.Set(settingBackupHistory, string(payload))
}

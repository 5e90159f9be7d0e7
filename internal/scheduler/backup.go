package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/spotit/spotit/internal/backup"
)

// BackupScheduler runs the daily backup check on a cron schedule.
type BackupScheduler struct {
	manager  *backup.Manager
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	isBackingUp bool
	cancelFunc context.CancelFunc
}

// NewBackupScheduler creates a scheduler around the backup manager.
func NewBackupScheduler(manager *backup.Manager, schedule string) *BackupScheduler {
	return &BackupScheduler{
		manager:  manager,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler and runs a catch-up check immediately, so a
// machine that was off at the scheduled time still gets its daily backup.
func (s *BackupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runBackup()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule backup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Backup scheduler: started with schedule '%s'", s.schedule)

	go s.runBackup()

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *BackupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Backup scheduler: stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *BackupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next backup check will occur.
func (s *BackupScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *BackupScheduler) runBackup() {
	s.mu.Lock()
	if s.isBackingUp {
		s.mu.Unlock()
		log.Printf("Backup: skipped (already in progress)")
		return
	}
	s.isBackingUp = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isBackingUp = false
		s.mu.Unlock()
	}()

	if err := s.manager.RunIfDue(); err != nil {
		log.Printf("Backup: failed: %v", err)
	}
}

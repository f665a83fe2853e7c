package scheduler

import (
	"fmt"
	"log"

	"kos-manager/internal/config"
	"kos-manager/internal/repository"
	"kos-manager/internal/search"

	"github.com/robfig/cron/v3"
)

// Scheduler rebuilds the search index on a nightly cron. The index can
// drift if Meilisearch was unreachable during a write; the nightly
// rebuild reconciles it with the database.
type Scheduler struct {
	cron      *cron.Cron
	kosanRepo *repository.KosanRepository
	search    *search.SearchClient
	config    *config.Config
	isRunning bool
}

// NewScheduler creates a new scheduler
func NewScheduler(kosanRepo *repository.KosanRepository, searchClient *search.SearchClient, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		kosanRepo: kosanRepo,
		search:    searchClient,
		config:    cfg,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Scheduler.ReindexEnabled {
		log.Println("Scheduler: Nightly reindex is disabled in configuration")
		return nil
	}

	cronSpec := s.parseDailyRunTime(s.config.Scheduler.ReindexTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		log.Println("Scheduler: Starting reindex job...")
		if err := s.runReindex(); err != nil {
			log.Printf("Scheduler: Reindex failed: %v", err)
		} else {
			log.Println("Scheduler: Reindex completed successfully")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: Started with nightly reindex at %s (cron: %s)", s.config.Scheduler.ReindexTime, cronSpec)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler: Stopped")
	}
}

// runReindex pushes every property into the search index
func (s *Scheduler) runReindex() error {
	kosan, err := s.kosanRepo.List()
	if err != nil {
		return err
	}

	log.Printf("Scheduler: Reindexing %d kosan", len(kosan))
	return s.search.IndexAllKosan(kosan)
}

// RunNow immediately executes the reindex job (for manual trigger)
func (s *Scheduler) RunNow() error {
	log.Println("Scheduler: Manual trigger - starting reindex job...")
	return s.runReindex()
}

// parseDailyRunTime converts HH:MM format to cron specification
// Example: "02:00" -> "0 2 * * *" (run at 2:00 AM every day)
func (s *Scheduler) parseDailyRunTime(timeStr string) string {
	var hour, minute int
	n, _ := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute)
	if n == 2 && hour >= 0 && hour < 24 && minute >= 0 && minute < 60 {
		return fmt.Sprintf("%d %d * * *", minute, hour)
	}

	log.Printf("Scheduler: Failed to parse time '%s', using default 02:00", timeStr)
	return "0 2 * * *"
}

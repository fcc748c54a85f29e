package services

import (
	"context"
	"log"

	"onboard-api/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// SessionReaper periodically deactivates session rows past their expiry.
// Login already filters on expiry when counting, so the reaper only keeps
// the table tidy.
type SessionReaper struct {
	sessionRepo repositories.SessionRepository
	cron        *cron.Cron
}

// NewSessionReaper creates a new session reaper
func NewSessionReaper(sessionRepo repositories.SessionRepository) *SessionReaper {
	return &SessionReaper{
		sessionRepo: sessionRepo,
		cron:        cron.New(),
	}
}

// Start schedules the hourly reap
func (r *SessionReaper) Start() {
	if _, err := r.cron.AddFunc("@hourly", r.reap); err != nil {
		log.Printf("❌ Failed to schedule session reaper: %v", err)
		return
	}
	r.cron.Start()
	log.Println("🚀 Session reaper started (hourly)")
}

// Stop stops the scheduler
func (r *SessionReaper) Stop() {
	r.cron.Stop()
	log.Println("🛑 Session reaper stopped")
}

func (r *SessionReaper) reap() {
	n, err := r.sessionRepo.DeactivateExpired(context.Background())
	if err != nil {
		log.Printf("❌ Session reaper error: %v", err)
		return
	}
	if n > 0 {
		log.Printf("🗑️ Deactivated %d expired sessions", n)
	}
}

package workers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lms_backend/internal/logger"
	"lms_backend/internal/models"
	"lms_backend/internal/repositories"
	"lms_backend/internal/services"
)

// InactivityWorker periodically blocks accounts that have not logged in for
// the configured threshold and mails the admins one summary per sweep.
type InactivityWorker struct {
	userRepo      repositories.UserRepository
	notifications services.NotificationService
	threshold     time.Duration
	interval      time.Duration
}

func NewInactivityWorker(
	userRepo repositories.UserRepository,
	notifications services.NotificationService,
	threshold, interval time.Duration,
) *InactivityWorker {
	return &InactivityWorker{
		userRepo:      userRepo,
		notifications: notifications,
		threshold:     threshold,
		interval:      interval,
	}
}

// Start runs sweeps until the context is cancelled. The first sweep runs
// immediately.
func (w *InactivityWorker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.runSweep()
		for {
			select {
			case <-ctx.Done():
				logger.Info("inactivity worker stopped")
				return
			case <-ticker.C:
				w.runSweep()
			}
		}
	}()
}

func (w *InactivityWorker) runSweep() {
	blocked, err := w.Sweep()
	logger.WorkerLog("inactivity", "sweep", err)
	if len(blocked) > 0 {
		logger.Info("inactive accounts blocked", "count", len(blocked))
	}
}

// Sweep examines every active account and blocks the stale ones. One
// account failing to update does not stop the rest; the summary mail is
// only sent when at least one account was blocked.
func (w *InactivityWorker) Sweep() ([]string, error) {
	users, err := w.userRepo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("load active users: %w", err)
	}

	cutoff := time.Now().Add(-w.threshold)

	var blocked []string
	for i := range users {
		user := &users[i]
		// Accounts that never logged in are left alone.
		if user.LastLoginAt == nil || !user.LastLoginAt.Before(cutoff) {
			continue
		}

		if err := w.userRepo.UpdateStatus(user.ID, models.UserStatusBlocked); err != nil {
			logger.Error("failed to block inactive user",
				"user_id", user.ID, "error", err.Error())
			continue
		}
		blocked = append(blocked, user.Email)
	}

	if len(blocked) == 0 {
		return nil, nil
	}

	subject := "Inactive accounts blocked"
	body := fmt.Sprintf("The following accounts were blocked after %d days of inactivity:\n%s",
		int(w.threshold.Hours()/24), strings.Join(blocked, "\n"))
	if err := w.notifications.NotifyAdmins(subject, body); err != nil {
		return blocked, fmt.Errorf("notify admins: %w", err)
	}
	return blocked, nil
}

// internal/app/system/workers/notificationcleanup.go
package workers

import (
	"context"
	"sync"
	"time"

	notificationstore "github.com/volunhub/volunhub/internal/app/store/notifications"
	"go.uber.org/zap"
)

// NotificationCleanup is a background worker that deletes read
// notifications once they are older than the retention threshold.
// Unread notifications are never touched.
type NotificationCleanup struct {
	notifications *notificationstore.Store
	log           *zap.Logger
	interval      time.Duration
	retention     time.Duration
	stopCh        chan struct{}
	wg            sync.WaitGroup
}

// NewNotificationCleanup creates a cleanup worker.
//
// Parameters:
//   - store: the notifications store
//   - logger: zap logger for logging
//   - interval: how often to run cleanup (e.g., 1 hour)
//   - retention: how long read notifications are kept (e.g., 30 days)
func NewNotificationCleanup(store *notificationstore.Store, logger *zap.Logger, interval, retention time.Duration) *NotificationCleanup {
	return &NotificationCleanup{
		notifications: store,
		log:           logger,
		interval:      interval,
		retention:     retention,
		stopCh:        make(chan struct{}),
	}
}

// Start begins the background cleanup loop.
func (w *NotificationCleanup) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("notification cleanup worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("retention", w.retention))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *NotificationCleanup) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("notification cleanup worker stopped")
}

func (w *NotificationCleanup) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.cleanup()
		}
	}
}

func (w *NotificationCleanup) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := w.notifications.DeleteReadBefore(ctx, time.Now().Add(-w.retention))
	if err != nil {
		w.log.Error("failed to delete old notifications", zap.Error(err))
		return
	}

	if count > 0 {
		w.log.Info("deleted old read notifications", zap.Int64("count", count))
	}
}

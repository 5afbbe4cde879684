package workers

import (
	"context"
	"time"

	"brandlink_backend/internal/logger"
	"brandlink_backend/internal/services"

	"gorm.io/gorm"
)

// NotificationWorker - диспетчер outbox-а: периодически забирает партию
// pending-уведомлений и доставляет их.
type NotificationWorker struct {
	db        *gorm.DB
	service   services.NotificationService
	interval  time.Duration
	batchSize int
}

func NewNotificationWorker(db *gorm.DB, service services.NotificationService, interval time.Duration, batchSize int) *NotificationWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	return &NotificationWorker{
		db:        db,
		service:   service,
		interval:  interval,
		batchSize: batchSize,
	}
}

// Start запускает цикл доставки до отмены контекста.
func (w *NotificationWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *NotificationWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("notification worker stopped")
			return
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep processes one batch. Exposed so a delivery pass can be run on demand.
func (w *NotificationWorker) Sweep() {
	delivered, err := w.service.DeliverPending(w.db, w.batchSize)
	if err != nil {
		logger.WorkerLog("notification", "deliver batch", err)
		return
	}
	if delivered > 0 {
		logger.Info("notifications delivered", "count", delivered)
	}
}

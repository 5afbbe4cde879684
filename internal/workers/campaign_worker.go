package workers

import (
	"context"
	"time"

	"brandlink_backend/internal/logger"
	"brandlink_backend/internal/services"

	"gorm.io/gorm"
)

// CampaignWorker ведет две фоновые задачи: AI-триаж очереди ревью и
// автозавершение кампаний с прошедшей датой окончания.
type CampaignWorker struct {
	db         *gorm.DB
	compliance services.ComplianceService
	interval   time.Duration
}

func NewCampaignWorker(db *gorm.DB, compliance services.ComplianceService, interval time.Duration) *CampaignWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &CampaignWorker{
		db:         db,
		compliance: compliance,
		interval:   interval,
	}
}

func (w *CampaignWorker) Start(ctx context.Context) {
	go w.runTriage(ctx)
	go w.runAutoComplete(ctx)
}

func (w *CampaignWorker) runTriage(ctx context.Context) {
	// Очередь триажа опрашивается чаще, чем хозяйственные задачи - бренды
	// ждут вердикта.
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("campaign triage worker stopped")
			return
		case <-ticker.C:
			processed, err := w.compliance.TriagePending(ctx, w.db, 20)
			if err != nil {
				logger.WorkerLog("campaign", "triage pending", err)
				continue
			}
			if processed > 0 {
				logger.Info("campaigns triaged", "count", processed)
			}
		}
	}
}

func (w *CampaignWorker) runAutoComplete(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("campaign worker stopped")
			return
		case <-ticker.C:
			result := w.db.Exec(`
				UPDATE campaigns
				SET status = 'completed', updated_at = NOW()
				WHERE status IN ('active', 'live')
				AND end_date IS NOT NULL
				AND end_date < NOW()
			`)
			if result.Error != nil {
				logger.WorkerLog("campaign", "auto-complete expired", result.Error)
			} else if result.RowsAffected > 0 {
				logger.Info("auto-completed expired campaigns", "count", result.RowsAffected)
			}
		}
	}
}

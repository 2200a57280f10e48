package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"hustlehapa-server/services"
)

// ReputationJob periodically recomputes cached worker reputation from
// the rating ledger so a missed cache refresh never persists.
type ReputationJob struct {
	cron     *cron.Cron
	ratings  *services.RatingService
	schedule string
}

func NewReputationJob(ratings *services.RatingService, schedule string) *ReputationJob {
	return &ReputationJob{
		cron:     cron.New(),
		ratings:  ratings,
		schedule: schedule,
	}
}

func (j *ReputationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}
	j.cron.Start()
	log.Printf("🚀 Reputation reconciliation job started (schedule %s)", j.schedule)
	return nil
}

func (j *ReputationJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Reputation reconciliation job stopped")
}

func (j *ReputationJob) run() {
	updated, err := j.ratings.ReconcileAll(context.Background())
	if err != nil {
		log.Printf("❌ Reputation reconciliation failed: %v", err)
		return
	}
	if updated > 0 {
		log.Printf("✅ Reconciled cached ratings for %d workers", updated)
	}
}

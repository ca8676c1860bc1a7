package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/wushufed/tournament-backend/internal/domain"
)

type TournamentRepository interface {
	FindOverdueOngoing(ctx context.Context, before time.Time) ([]domain.Tournament, error)
}

// TournamentAuditor periodically flags tournaments whose end date has passed
// without results being recorded. It only reports; finalization stays a
// deliberate, one-way operation through the API.
type TournamentAuditor struct {
	sched gocron.Scheduler
	repo  TournamentRepository
}

func NewTournamentAuditor(interval time.Duration, repo TournamentRepository) (*TournamentAuditor, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	a := &TournamentAuditor{
		sched: sched,
		repo:  repo,
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(a.audit),
	)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (a *TournamentAuditor) Start() {
	a.sched.Start()
}

func (a *TournamentAuditor) Stop() error {
	return a.sched.Shutdown()
}

func (a *TournamentAuditor) audit() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	overdue, err := a.repo.FindOverdueOngoing(ctx, time.Now())
	if err != nil {
		zap.L().Error("tournament audit failed", zap.Error(err))
		return
	}

	for _, t := range overdue {
		zap.L().Warn("tournament past end date without recorded results",
			zap.String("tournament_id", t.ID.String()),
			zap.String("name", t.Name),
			zap.Time("end_date", t.EndDate),
		)
	}
}

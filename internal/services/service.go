package services

import (
	"context"

	"github.com/undercity-labs/faction-economy/internal/config"
	"github.com/undercity-labs/faction-economy/internal/db"
	"github.com/undercity-labs/faction-economy/internal/economy"
	"github.com/undercity-labs/faction-economy/internal/queue"
)

type Service struct {
	cfg          *config.Config
	db           db.DbInterface
	queueManager *queue.QueueManager
	params       economy.Params
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	qm *queue.QueueManager,
) *Service {
	return &Service{
		cfg:          cfg,
		db:           db,
		queueManager: qm,
		params:       cfg.Economy.Params(),
	}
}

// StartEconomyService starts the three pollers and blocks until the context
// is cancelled.
func (s *Service) StartEconomyService(ctx context.Context) {
	s.StartControlPoller(ctx)
	s.StartValuationPoller(ctx)
	s.StartRevenuePoller(ctx)

	<-ctx.Done()
}

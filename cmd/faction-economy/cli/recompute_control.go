package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/undercity-labs/faction-economy/internal/config"
	"github.com/undercity-labs/faction-economy/internal/db"
	"github.com/undercity-labs/faction-economy/internal/observability/metrics"
	"github.com/undercity-labs/faction-economy/internal/observability/tracing"
	"github.com/undercity-labs/faction-economy/internal/queue"
	"github.com/undercity-labs/faction-economy/internal/services"
)

// RecomputeControlCmd re-resolves control for every territory once.
// Usage: ./faction-economy recompute-control --config config.yml
func RecomputeControlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recompute-control",
		Short: "Re-resolve territory control from the current stake ledger",
		Args:  cobra.ExactArgs(0),
		Run:   recomputeControl,
	}

	return cmd
}

func recomputeControl(cmd *cobra.Command, _ []string) {
	ctx := tracing.InjectTraceID(cmd.Context())

	service, qm, err := newOneShotService(ctx)
	if err != nil {
		log.Err(err).Msg("Failed to set up service")
		os.Exit(1)
	}
	defer qm.Shutdown()

	if err := service.ResolveTerritoryControl(ctx); err != nil {
		log.Err(err).Msg("Failed to recompute territory control")
		os.Exit(1)
	}

	log.Ctx(ctx).Info().Msg("Territory control recomputed")
	os.Exit(0)
}

// newOneShotService wires a Service for a single maintenance run. Metrics are
// initialized because the db decorator and poller wrappers record into them.
func newOneShotService(ctx context.Context) (*services.Service, *queue.QueueManager, error) {
	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return nil, nil, err
	}

	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		return nil, nil, err
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	qm, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		return nil, nil, err
	}

	metrics.Init(cfg.Metrics.GetMetricsPort())

	return services.NewService(cfg, dbClient, qm), qm, nil
}

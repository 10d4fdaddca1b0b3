package cli

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/undercity-labs/faction-economy/internal/observability/tracing"
)

// SettleEpochCmd runs a single revenue epoch settlement.
// Usage: ./faction-economy settle-epoch --config config.yml
func SettleEpochCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle-epoch",
		Short: "Settle one revenue epoch from the current territory state",
		Args:  cobra.ExactArgs(0),
		Run:   settleEpoch,
	}

	return cmd
}

func settleEpoch(cmd *cobra.Command, _ []string) {
	ctx := tracing.InjectTraceID(cmd.Context())

	service, qm, err := newOneShotService(ctx)
	if err != nil {
		log.Err(err).Msg("Failed to set up service")
		os.Exit(1)
	}
	defer qm.Shutdown()

	if err := service.SettleRevenueEpoch(ctx); err != nil {
		log.Err(err).Msg("Failed to settle revenue epoch")
		os.Exit(1)
	}

	log.Ctx(ctx).Info().Msg("Revenue epoch settled")
	os.Exit(0)
}

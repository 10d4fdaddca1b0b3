package services

import (
	"context"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/undercity-labs/faction-economy/internal/db/model"
	"github.com/undercity-labs/faction-economy/internal/economy"
	"github.com/undercity-labs/faction-economy/internal/observability/metrics"
	"github.com/undercity-labs/faction-economy/internal/queue"
	"github.com/undercity-labs/faction-economy/internal/types"
	"github.com/undercity-labs/faction-economy/internal/utils/poller"
)

// StartRevenuePoller starts the periodic revenue epoch settlement service
func (s *Service) StartRevenuePoller(ctx context.Context) {
	revenuePoller := poller.NewPoller(
		s.cfg.Poller.EpochSettlementInterval,
		metrics.RecordPollerDuration("revenue", s.SettleRevenueEpoch),
	)
	go revenuePoller.Start(ctx)
}

// SettleRevenueEpoch runs one full revenue settlement: derive influence from
// the current territory state, split the epoch revenue across factions, DAO
// and burn, apply the anti-monopoly cap, credit treasuries, and persist the
// epoch record. Also invoked directly by the settle-epoch command.
func (s *Service) SettleRevenueEpoch(ctx context.Context) error {
	startTime := time.Now()

	territories, err := s.loadAllTerritories(ctx)
	if err != nil {
		return err
	}
	if len(territories) == 0 {
		log.Ctx(ctx).Debug().Msg("No territories found - skipping epoch settlement")
		return nil
	}

	now := time.Now().Unix()
	influence := DeriveFactionInfluence(territories, now)
	totalRevenue := EpochRevenue(territories, now)
	if totalRevenue.IsZero() {
		log.Ctx(ctx).Debug().Msg("No revenue this epoch - skipping settlement")
		return nil
	}

	dist := economy.CalculateRevenueDistribution(
		s.params,
		totalRevenue,
		influence,
		s.cfg.Economy.RevenueDAOBps,
		s.cfg.Economy.RevenueBurnBps,
	)

	if target := s.cfg.Economy.AntiMonopolyTargetBps; target > 0 {
		dist.PerFaction = economy.CalculateAntiMonopolyAdjustment(
			dist.PerFaction,
			dominanceFactorBps(influence),
			target,
		)
	}

	epochDoc := &model.RevenueEpochDocument{
		ID:             uuid.New().String(),
		SettledAt:      now,
		TotalRevenue:   totalRevenue.Uint64(),
		DAOAmount:      dist.DAO.Uint64(),
		BurnAmount:     dist.Burn.Uint64(),
		FactionAmounts: make([]uint64, len(dist.PerFaction)),
	}
	for i, share := range dist.PerFaction {
		epochDoc.FactionAmounts[i] = share.Uint64()
	}

	weights := s.cfg.Economy.TreasuryWeights()
	alloc, err := economy.CalculateTreasuryAllocation(dist.DAO, weights)
	if err != nil {
		// All-zero weights: credit the DAO headline balance only.
		if err := s.db.CreditTreasury(ctx, model.DAOTreasuryID, dist.DAO.Uint64()); err != nil {
			return fmt.Errorf("failed to credit DAO treasury: %w", err)
		}
	} else {
		epochDoc.Operational = alloc.Operational.Uint64()
		epochDoc.Development = alloc.Development.Uint64()
		epochDoc.Marketing = alloc.Marketing.Uint64()
		epochDoc.Community = alloc.Community.Uint64()
		epochDoc.Reserve = alloc.Reserve.Uint64()
		if err := s.db.CreditTreasuryBuckets(
			ctx,
			model.DAOTreasuryID,
			epochDoc.Operational,
			epochDoc.Development,
			epochDoc.Marketing,
			epochDoc.Community,
			epochDoc.Reserve,
		); err != nil {
			return fmt.Errorf("failed to credit DAO treasury buckets: %w", err)
		}
	}
	metrics.RecordRevenueDistributed("dao", epochDoc.DAOAmount)
	metrics.RecordRevenueDistributed("burn", epochDoc.BurnAmount)

	for f := 1; f < len(epochDoc.FactionAmounts); f++ {
		amount := epochDoc.FactionAmounts[f]
		if amount == 0 {
			continue
		}
		faction := types.FactionID(f)
		treasuryID := fmt.Sprintf("%s-%d", model.FactionTreasuryID, f)
		if err := s.db.CreditTreasury(ctx, treasuryID, amount); err != nil {
			return fmt.Errorf("failed to credit treasury for faction %s: %w", faction, err)
		}
		metrics.RecordRevenueDistributed(faction.String(), amount)
	}

	if err := s.db.SaveRevenueEpoch(ctx, epochDoc); err != nil {
		return fmt.Errorf("failed to save revenue epoch: %w", err)
	}

	event := queue.EpochSettledEvent{
		EpochID:        epochDoc.ID,
		TotalRevenue:   epochDoc.TotalRevenue,
		DAOAmount:      epochDoc.DAOAmount,
		BurnAmount:     epochDoc.BurnAmount,
		FactionAmounts: epochDoc.FactionAmounts,
		SettledAt:      epochDoc.SettledAt,
	}
	if err := s.queueManager.Publish(ctx, queue.RouteEpochSettled, event); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("epoch_id", epochDoc.ID).
			Msg("failed to publish epoch settled event")
	}

	log.Ctx(ctx).Info().
		Str("epoch_id", epochDoc.ID).
		Uint64("total_revenue", epochDoc.TotalRevenue).
		Uint64("dao_amount", epochDoc.DAOAmount).
		Uint64("burn_amount", epochDoc.BurnAmount).
		Msg("Settled revenue epoch")

	metrics.RecordEpochSettlementDuration(time.Since(startTime))
	return nil
}

// dominanceFactorBps is the top faction's share of total influence in bps.
func dominanceFactorBps(influence []sdkmath.Int) uint64 {
	total := sdkmath.ZeroInt()
	top := sdkmath.ZeroInt()
	for _, inf := range influence {
		total = total.Add(inf)
		if inf.GT(top) {
			top = inf
		}
	}
	if total.IsZero() {
		return 0
	}
	return top.MulRaw(economy.BpsDenominator).Quo(total).Uint64()
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/undercity-labs/faction-economy/internal/db/model"
	"github.com/undercity-labs/faction-economy/internal/economy"
	"github.com/undercity-labs/faction-economy/internal/observability/metrics"
	"github.com/undercity-labs/faction-economy/internal/queue"
	"github.com/undercity-labs/faction-economy/internal/types"
	"github.com/undercity-labs/faction-economy/internal/utils/poller"
)

// StartControlPoller starts the territory control resolution service
func (s *Service) StartControlPoller(ctx context.Context) {
	controlPoller := poller.NewPoller(
		s.cfg.Poller.ControlPollingInterval,
		metrics.RecordPollerDuration("control", s.ResolveTerritoryControl),
	)
	go controlPoller.Start(ctx)
}

// ResolveTerritoryControl recomputes control for every territory from a fresh
// stake snapshot. Control is never updated incrementally; a full recomputation
// per cycle is what keeps the stored state consistent with the ledger.
func (s *Service) ResolveTerritoryControl(ctx context.Context) error {
	lastID := ""
	for {
		territories, err := s.db.GetTerritories(ctx, lastID, s.cfg.Poller.TerritoryBatchLimit)
		if err != nil {
			return fmt.Errorf("failed to load territories: %w", err)
		}
		if len(territories) == 0 {
			break
		}

		for i := range territories {
			if err := s.resolveControl(ctx, &territories[i]); err != nil {
				return err
			}
		}

		if uint64(len(territories)) < s.cfg.Poller.TerritoryBatchLimit {
			break
		}
		lastID = territories[len(territories)-1].ID
	}

	totalStaked, err := s.db.GetTotalActiveStake(ctx)
	if err != nil {
		return fmt.Errorf("failed to get total active stake: %w", err)
	}
	metrics.RecordTotalActiveStake(totalStaked)

	contestedCount, err := s.db.CountContestedTerritories(ctx)
	if err != nil {
		return fmt.Errorf("failed to count contested territories: %w", err)
	}
	metrics.RecordContestedTerritoriesCount(contestedCount)

	return nil
}

func (s *Service) resolveControl(ctx context.Context, territory *model.TerritoryDocument) error {
	snapshot, err := s.db.GetStakeSnapshot(ctx, territory.ID)
	if err != nil {
		return fmt.Errorf("failed to get stake snapshot for territory %s: %w", territory.ID, err)
	}

	amounts := snapshot.Amounts()
	total := snapshot.Total()

	result := economy.CalculateControllingFaction(amounts, total, s.cfg.Economy.ControlThresholdPct)
	status := economy.EvaluateContestedStatus(amounts, total, s.cfg.Economy.ContestThresholdPct)

	newFaction := uint8(result.Faction)
	if territory.ControllingFaction == newFaction &&
		territory.ControlSharePct == result.SharePct &&
		territory.Contested == status.Contested {
		return nil
	}

	resolvedAt := time.Now().Unix()
	if err := s.db.UpdateTerritoryControl(
		ctx,
		territory.ID,
		newFaction,
		result.SharePct,
		status.Contested,
		resolvedAt,
	); err != nil {
		return fmt.Errorf("failed to update control for territory %s: %w", territory.ID, err)
	}

	factionChanged := territory.ControllingFaction != newFaction
	if factionChanged {
		metrics.IncTerritoryControlChange(result.Faction.String())
	}

	log.Ctx(ctx).Info().
		Str("territory_id", territory.ID).
		Stringer("previous_faction", types.FactionID(territory.ControllingFaction)).
		Stringer("new_faction", result.Faction).
		Uint64("control_share_pct", result.SharePct).
		Bool("contested", status.Contested).
		Msg("territory control resolved")

	if !factionChanged && territory.Contested == status.Contested {
		// Only the share moved; no event needed.
		return nil
	}

	event := queue.ControlChangedEvent{
		TerritoryID:     territory.ID,
		PreviousFaction: types.FactionID(territory.ControllingFaction).String(),
		NewFaction:      result.Faction.String(),
		ControlSharePct: result.SharePct,
		Contested:       status.Contested,
		ResolvedAt:      resolvedAt,
	}
	if err := s.queueManager.Publish(ctx, queue.RouteControlChanged, event); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("territory_id", territory.ID).
			Msg("failed to publish control changed event")
	}

	return nil
}

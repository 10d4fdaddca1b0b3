package services

import (
	"context"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/undercity-labs/faction-economy/internal/db/model"
	"github.com/undercity-labs/faction-economy/internal/economy"
	"github.com/undercity-labs/faction-economy/internal/observability/metrics"
	"github.com/undercity-labs/faction-economy/internal/queue"
	"github.com/undercity-labs/faction-economy/internal/types"
	"github.com/undercity-labs/faction-economy/internal/utils/poller"
)

// gridDistanceScale converts one grid cell of manhattan distance into
// connection distance points. At 10 points per cell, territories more than
// ten cells apart have no connection.
const gridDistanceScale = 10

// StartValuationPoller starts the territory valuation service
func (s *Service) StartValuationPoller(ctx context.Context) {
	valuationPoller := poller.NewPoller(
		s.cfg.Poller.ValuationPollingInterval,
		metrics.RecordPollerDuration("valuation", s.refreshTerritoryValuations),
	)
	go valuationPoller.Start(ctx)
}

// refreshTerritoryValuations recomputes every territory's value and its net
// resource flow across the connection graph, then persists both. The world
// advances one block per second, so the wall clock doubles as the block clock.
func (s *Service) refreshTerritoryValuations(ctx context.Context) error {
	territories, err := s.loadAllTerritories(ctx)
	if err != nil {
		return err
	}
	if len(territories) == 0 {
		log.Ctx(ctx).Debug().Msg("No territories found - skipping valuation update")
		return nil
	}

	currentBlock := uint64(time.Now().Unix())

	values := make([]sdkmath.Int, len(territories))
	rates := make([]sdkmath.Int, len(territories))
	for i := range territories {
		t := &territories[i]
		zone, err := types.ParseZoneType(t.ZoneType)
		if err != nil {
			return fmt.Errorf("territory %s: %w", t.ID, err)
		}
		rates[i] = sdkmath.NewIntFromUint64(t.ResourceRate)
		values[i] = economy.CalculateTerritoryValue(
			s.params,
			sdkmath.NewIntFromUint64(t.BaseValue),
			zone,
			rates[i],
			t.Contested,
			t.LastUpdateBlock,
			currentBlock,
		)
	}

	graph := economy.MapTerritoryConnections(
		connectionStrengthMatrix(territories),
		s.cfg.Economy.MinConnectionStr,
	)
	flows := economy.CalculateResourceFlow(rates, graph, s.cfg.Economy.FlowBps)

	for i := range territories {
		t := &territories[i]
		if err := s.db.UpdateTerritoryValuation(
			ctx,
			t.ID,
			values[i].Uint64(),
			flows[i].Int64(),
			currentBlock,
		); err != nil {
			return fmt.Errorf("failed to update valuation for territory %s: %w", t.ID, err)
		}

		event := queue.TerritoryValuedEvent{
			TerritoryID:     t.ID,
			Value:           values[i].Uint64(),
			NetResourceFlow: flows[i].Int64(),
			UpdateBlock:     currentBlock,
		}
		if err := s.queueManager.Publish(ctx, queue.RouteTerritoryValued, event); err != nil {
			log.Ctx(ctx).Error().Err(err).
				Str("territory_id", t.ID).
				Msg("failed to publish territory valued event")
		}
	}

	log.Ctx(ctx).Info().
		Int("territory_count", len(territories)).
		Uint64("update_block", currentBlock).
		Msg("Updated territory valuations")

	return nil
}

// connectionStrengthMatrix scores every territory pair from grid positions
// and zone compatibility. Adjacent cells count as bordering.
func connectionStrengthMatrix(territories []model.TerritoryDocument) [][]uint64 {
	n := len(territories)
	matrix := make([][]uint64, n)
	for i := range matrix {
		matrix[i] = make([]uint64, n)
	}

	for a := 0; a < n; a++ {
		zoneA := types.ZoneType(territories[a].ZoneType)
		for b := a + 1; b < n; b++ {
			dist := manhattanDistance(&territories[a], &territories[b])
			strength := economy.CalculateTerritoryConnection(
				dist*gridDistanceScale,
				dist == 1,
				zoneA,
				types.ZoneType(territories[b].ZoneType),
			)
			matrix[a][b] = strength
			matrix[b][a] = strength
		}
	}
	return matrix
}

func manhattanDistance(a, b *model.TerritoryDocument) uint64 {
	dx := a.GridX - b.GridX
	if dx < 0 {
		dx = -dx
	}
	dy := a.GridY - b.GridY
	if dy < 0 {
		dy = -dy
	}
	return uint64(dx + dy)
}

func (s *Service) loadAllTerritories(ctx context.Context) ([]model.TerritoryDocument, error) {
	var territories []model.TerritoryDocument
	lastID := ""
	for {
		batch, err := s.db.GetTerritories(ctx, lastID, s.cfg.Poller.TerritoryBatchLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to load territories: %w", err)
		}
		territories = append(territories, batch...)
		if uint64(len(batch)) < s.cfg.Poller.TerritoryBatchLimit {
			break
		}
		lastID = batch[len(batch)-1].ID
	}
	return territories, nil
}

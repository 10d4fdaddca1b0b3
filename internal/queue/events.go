package queue

// Routing keys for published events.
const (
	RouteControlChanged  = "territory.control.changed"
	RouteTerritoryValued = "territory.valuation.updated"
	RouteEpochSettled    = "revenue.epoch.settled"
)

// ControlChangedEvent is emitted when a territory's controlling faction or
// contested status changes.
type ControlChangedEvent struct {
	TerritoryID     string `json:"territory_id"`
	PreviousFaction string `json:"previous_faction"`
	NewFaction      string `json:"new_faction"`
	ControlSharePct uint64 `json:"control_share_pct"`
	Contested       bool   `json:"contested"`
	ResolvedAt      int64  `json:"resolved_at"`
}

// TerritoryValuedEvent is emitted when the valuation poller writes a new
// territory value.
type TerritoryValuedEvent struct {
	TerritoryID     string `json:"territory_id"`
	Value           uint64 `json:"value"`
	NetResourceFlow int64  `json:"net_resource_flow"`
	UpdateBlock     uint64 `json:"update_block"`
}

// EpochSettledEvent is emitted once per settled revenue epoch.
type EpochSettledEvent struct {
	EpochID        string   `json:"epoch_id"`
	TotalRevenue   uint64   `json:"total_revenue"`
	DAOAmount      uint64   `json:"dao_amount"`
	BurnAmount     uint64   `json:"burn_amount"`
	FactionAmounts []uint64 `json:"faction_amounts"`
	SettledAt      int64    `json:"settled_at"`
}

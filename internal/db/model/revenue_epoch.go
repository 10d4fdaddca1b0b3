package model

const RevenueEpochCollection = "revenue_epochs"

// RevenueEpochDocument records one settled revenue epoch: the input revenue
// and the exact split that was credited. Kept append-only for auditability.
type RevenueEpochDocument struct {
	ID             string   `bson:"_id"`
	SettledAt      int64    `bson:"settled_at"`
	TotalRevenue   uint64   `bson:"total_revenue"`
	DAOAmount      uint64   `bson:"dao_amount"`
	BurnAmount     uint64   `bson:"burn_amount"`
	FactionAmounts []uint64 `bson:"faction_amounts"`

	Operational uint64 `bson:"operational"`
	Development uint64 `bson:"development"`
	Marketing   uint64 `bson:"marketing"`
	Community   uint64 `bson:"community"`
	Reserve     uint64 `bson:"reserve"`
}

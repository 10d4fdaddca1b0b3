package model

const TerritoryCollection = "territories"

// TerritoryDocument holds both the static territory definition and the last
// resolved control/valuation state. Control fields are only ever written by
// the control poller from a full stake snapshot.
type TerritoryDocument struct {
	ID                 string `bson:"_id"`
	Name               string `bson:"name"`
	ZoneType           string `bson:"zone_type"`
	GridX              int64  `bson:"grid_x"`
	GridY              int64  `bson:"grid_y"`
	BaseValue          uint64 `bson:"base_value"`
	ResourceRate       uint64 `bson:"resource_rate"`
	LastUpdateBlock    uint64 `bson:"last_update_block"`
	Contested          bool   `bson:"contested"`
	ControllingFaction uint8  `bson:"controlling_faction"`
	ControlSharePct    uint64 `bson:"control_share_pct"`
	ControlChangedAt   int64  `bson:"control_changed_at"`
	EconomicActivity   uint64 `bson:"economic_activity"`
	Value              uint64 `bson:"value"`
	NetResourceFlow    int64  `bson:"net_resource_flow"`
}

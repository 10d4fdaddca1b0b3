package model

const StakeCollection = "stakes"

// StakeDocument is the persisted record of a single stake. Stakes are never
// physically deleted: a full unstake flips Active to false so the audit trail
// survives. Amounts are stored in uint64 base units; the calculation core
// widens them to arbitrary precision before doing arithmetic.
type StakeDocument struct {
	ID                 string `bson:"_id"`
	Owner              string `bson:"owner"`
	TerritoryID        string `bson:"territory_id"`
	FactionID          uint8  `bson:"faction_id"`
	Amount             uint64 `bson:"amount"`
	StartTime          int64  `bson:"start_time"`
	LastClaimTime      int64  `bson:"last_claim_time"`
	Active             bool   `bson:"active"`
	OriginalLockPeriod uint64 `bson:"original_lock_period"`
}

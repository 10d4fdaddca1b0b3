package model

const TreasuryCollection = "treasuries"

// Treasury document ids. Faction treasuries use the faction id as a suffix.
const (
	DAOTreasuryID     = "dao"
	FactionTreasuryID = "faction"
)

type TreasuryDocument struct {
	ID      string `bson:"_id"`
	Balance uint64 `bson:"balance"`

	// Bucket balances for the DAO treasury allocation; zero for faction
	// treasuries.
	Operational uint64 `bson:"operational"`
	Development uint64 `bson:"development"`
	Marketing   uint64 `bson:"marketing"`
	Community   uint64 `bson:"community"`
	Reserve     uint64 `bson:"reserve"`
}

package constants

// Point amounts the platform hands out. Redemption prices are set per item
// by the seller; these cover everything else.
const (
	WelcomeBonusPoints  int64 = 100
	ListingRewardPoints int64 = 50
	SwapBonusPoints     int64 = 25
)

package progression

// RewardedRanks is the deepest rank of a monthly ranking that still earns a reward.
const RewardedRanks = 100

type rewardBracket struct {
	maxRank int
	amount  int64
}

var rewardTable = []rewardBracket{
	{maxRank: 1, amount: 500},
	{maxRank: 10, amount: 250},
	{maxRank: RewardedRanks, amount: 100},
}

// RewardForRank returns the monthly reward for a 1-based rank.
func RewardForRank(rank int) int64 {
	if rank < 1 {
		return 0
	}
	for _, b := range rewardTable {
		if rank <= b.maxRank {
			return b.amount
		}
	}
	return 0
}

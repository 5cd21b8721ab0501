package analytics

type BlockTransactions struct {
	BlockID      int64 `json:"blockId"`
	Transactions int   `json:"transactions"`
}

type MonthlyOccupancy struct {
	Month   int64   `json:"month"`
	Average float64 `json:"average"`
}

type BlockOccupancy struct {
	PerBlock       []BlockTransactions `json:"perBlock"`
	Distribution   []Frequency[int]    `json:"distribution"`
	MonthlyAverage []MonthlyOccupancy  `json:"monthlyAverage"`
}

// blockOccupancy only counts blocks holding at least one transaction.
func (a *Analyzer) blockOccupancy(relations Relations) BlockOccupancy {
	perBlock := make(map[int64]int)
	for _, tx := range relations.Transactions() {
		perBlock[tx.BlockID]++
	}

	blockIDs := sortedKeys(perBlock)

	occupancy := BlockOccupancy{
		PerBlock:       make([]BlockTransactions, 0, len(blockIDs)),
		MonthlyAverage: make([]MonthlyOccupancy, 0),
	}

	counts := make([]int, 0, len(blockIDs))
	months := make(map[int64][]int)

	for _, blockID := range blockIDs {
		n := perBlock[blockID]

		occupancy.PerBlock = append(occupancy.PerBlock, BlockTransactions{BlockID: blockID, Transactions: n})
		counts = append(counts, n)

		month := blockID / a.blocksPerMonth
		months[month] = append(months[month], n)
	}

	occupancy.Distribution = distribution(counts)

	monthIDs := sortedKeys(months)

	for _, month := range monthIDs {
		blocks := months[month]
		occupancy.MonthlyAverage = append(occupancy.MonthlyAverage, MonthlyOccupancy{
			Month:   month,
			Average: float64(sum(blocks)) / float64(len(blocks)),
		})
	}

	return occupancy
}

package domain

// BinaryOutcomes is the conventional outcome pair for a YES/NO market. The
// YES outcome is always first; quoting and inventory both key off it.
var BinaryOutcomes = []string{"YES", "NO"}

// Market describes a tradable prediction market. Immutable after creation;
// the session store owns the registry of markets.
type Market struct {
	ID       string
	Symbol   string
	Outcomes []string // ordered; length 2 for binary, generalizable to N
	TickSize float64  // minimum price increment, > 0
	LotSize  float64
	Venue    string
}

// NewBinaryMarket creates a two-outcome market with the given tick size.
func NewBinaryMarket(id, symbol string, tickSize float64) Market {
	return Market{
		ID:       id,
		Symbol:   symbol,
		Outcomes: append([]string(nil), BinaryOutcomes...),
		TickSize: tickSize,
		LotSize:  1,
	}
}

// IsBinary reports whether the market has exactly two outcomes.
func (m Market) IsBinary() bool {
	return len(m.Outcomes) == 2
}

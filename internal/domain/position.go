package domain

// Position is a signed net quantity in one outcome of one market. Positive
// means net long that outcome.
type Position struct {
	MarketID string
	Outcome  string
	Size     float64
}

// Inventory is the ledger of positions keyed by (market, outcome). It is
// created empty at session start and mutated only by folding trades in;
// zero-sized positions are kept rather than removed. Replaying the same trade
// twice double-counts: the ledger does not deduplicate.
type Inventory struct {
	positions map[string]*Position
}

// NewInventory creates an empty ledger.
func NewInventory() *Inventory {
	return &Inventory{positions: make(map[string]*Position)}
}

func positionKey(marketID, outcome string) string {
	return marketID + ":" + outcome
}

// Update folds a trade into the ledger, creating the position if absent.
func (inv *Inventory) Update(t Trade) {
	key := positionKey(t.MarketID, t.Outcome)
	pos, ok := inv.positions[key]
	if !ok {
		pos = &Position{MarketID: t.MarketID, Outcome: t.Outcome}
		inv.positions[key] = pos
	}
	pos.Size += t.SignedQty()
}

// Net returns the current signed size for (marketID, outcome), or 0 if no
// position exists.
func (inv *Inventory) Net(marketID, outcome string) float64 {
	if pos, ok := inv.positions[positionKey(marketID, outcome)]; ok {
		return pos.Size
	}
	return 0
}

// NetYes returns the signed YES exposure for a binary market.
func (inv *Inventory) NetYes(marketID string) float64 {
	return inv.Net(marketID, "YES")
}

// Positions returns a copy of all positions, including zero-sized ones.
func (inv *Inventory) Positions() []Position {
	out := make([]Position, 0, len(inv.positions))
	for _, pos := range inv.positions {
		out = append(out, *pos)
	}
	return out
}

package state

import (
	"time"

	"github.com/quantbay/binarymm/internal/domain"
)

const defaultBookWindow = 100

// RollingBook keeps a bounded history of timestamped book snapshots for one
// market.
type RollingBook struct {
	marketID string
	window   int
	history  []domain.MarketDataEvent
}

// NewRollingBook creates a rolling window for marketID. A non-positive
// window takes the default of 100 snapshots.
func NewRollingBook(marketID string, window int) *RollingBook {
	if window <= 0 {
		window = defaultBookWindow
	}
	return &RollingBook{marketID: marketID, window: window}
}

// MarketID returns the market this window tracks.
func (b *RollingBook) MarketID() string { return b.marketID }

// Push appends a snapshot stamped with the arrival time, evicting the oldest
// when the window is full.
func (b *RollingBook) Push(snap domain.OrderBookSnapshot) {
	b.history = append(b.history, domain.MarketDataEvent{Book: snap, At: time.Now()})
	if len(b.history) > b.window {
		b.history = b.history[1:]
	}
}

// Len returns the number of retained snapshots.
func (b *RollingBook) Len() int { return len(b.history) }

// Last returns the most recent snapshot, if any.
func (b *RollingBook) Last() (domain.OrderBookSnapshot, bool) {
	ev, ok := b.LastEvent()
	return ev.Book, ok
}

// LastEvent returns the most recent snapshot with its arrival time.
func (b *RollingBook) LastEvent() (domain.MarketDataEvent, bool) {
	if len(b.history) == 0 {
		return domain.MarketDataEvent{}, false
	}
	return b.history[len(b.history)-1], true
}

// LastMid returns the mid of the most recent snapshot. The second return is
// false when there is no history or the last snapshot is one-sided.
func (b *RollingBook) LastMid() (float64, bool) {
	last, ok := b.Last()
	if !ok {
		return 0, false
	}
	return last.Mid()
}

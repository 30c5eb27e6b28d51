package bookws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantbay/binarymm/internal/domain"
)

func TestDecodeSnapshotDropsInvalidLevels(t *testing.T) {
	snap := DecodeSnapshot("EVT-1",
		[]levelEntry{{Price: 0.49, Qty: 100}, {Price: -0.1, Qty: 5}, {Price: 0.4, Qty: -1}},
		[]levelEntry{{Price: 0.51, Qty: 100}, {Price: 1.2, Qty: 5}},
	)
	assert.Len(t, snap.Bids, 1)
	assert.Len(t, snap.Asks, 1)
	assert.False(t, snap.Crossed())

	mid, ok := snap.Mid()
	require.True(t, ok)
	assert.InDelta(t, 0.5, mid, 1e-12)
}

func TestDispatchIgnoresCrossedAndForeignMessages(t *testing.T) {
	c := NewClient("ws://example")
	var got []domain.OrderBookSnapshot
	c.OnSnapshot(func(s domain.OrderBookSnapshot) { got = append(got, s) })

	c.dispatch([]byte(`{"type":"trade","market_id":"EVT-1"}`))
	c.dispatch([]byte(`{"type":"book","market_id":""}`))
	c.dispatch([]byte(`not json`))
	// Crossed book: best bid at or above best ask is a feed defect.
	c.dispatch([]byte(`{"type":"book","market_id":"EVT-1","bids":[{"price":0.52,"qty":1}],"asks":[{"price":0.51,"qty":1}]}`))
	assert.Empty(t, got)

	c.dispatch([]byte(`{"type":"book","market_id":"EVT-1","bids":[{"price":0.49,"qty":1}],"asks":[{"price":0.51,"qty":1}]}`))
	require.Len(t, got, 1)
	assert.Equal(t, "EVT-1", got[0].MarketID)
}

func TestSnapshotMessageRoundTrip(t *testing.T) {
	raw := []byte(`{"type":"book","market_id":"EVT-1","bids":[{"price":0.49,"qty":100}],"asks":[{"price":0.51,"qty":100}]}`)
	var msg snapshotMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "book", msg.Type)
	assert.Equal(t, "EVT-1", msg.MarketID)
	require.Len(t, msg.Bids, 1)
	assert.Equal(t, 0.49, msg.Bids[0].Price)
}

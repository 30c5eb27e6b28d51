package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPMMImpliedBinary(t *testing.T) {
	assert.Equal(t, 0.5, CPMMImpliedBinary(100, 100))
	assert.InDelta(t, 0.25, CPMMImpliedBinary(300, 100), 1e-12)
	// Degenerate reserves fall back to even odds.
	assert.Equal(t, 0.5, CPMMImpliedBinary(0, 0))
	assert.Equal(t, 0.5, CPMMImpliedBinary(-1, 1))
}

func TestCPMMTradeFloorsAtZero(t *testing.T) {
	yes, no := CPMMTrade(100, 100, 150)
	assert.Equal(t, 250.0, yes)
	assert.Equal(t, 0.0, no)
}

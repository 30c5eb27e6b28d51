package risk

import "math"

// KillSwitch latches when unrealized PnL breaches a max loss. Once triggered
// it stays triggered for the rest of the session.
type KillSwitch struct {
	maxLoss   float64
	triggered bool
}

// NewKillSwitch creates a switch that trips at -|maxLoss|.
func NewKillSwitch(maxLoss float64) *KillSwitch {
	return &KillSwitch{maxLoss: math.Abs(maxLoss)}
}

// Check records the current unrealized PnL and returns the triggered state.
func (k *KillSwitch) Check(unrealizedPnL float64) bool {
	if unrealizedPnL <= -k.maxLoss {
		k.triggered = true
	}
	return k.triggered
}

// Triggered reports whether the switch has tripped.
func (k *KillSwitch) Triggered() bool { return k.triggered }

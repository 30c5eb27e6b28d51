package domain

import "errors"

var (
	ErrMarketNotFound = errors.New("market not found")
	ErrInvalidOrder   = errors.New("invalid order parameters")
	ErrCrossedBook    = errors.New("crossed book snapshot")
	ErrWSDisconnect   = errors.New("websocket disconnected")
	ErrKillSwitch     = errors.New("kill switch triggered")
)

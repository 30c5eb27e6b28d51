// Package bookws implements the book-streaming half of the venue contract
// over a WebSocket feed of JSON snapshot messages. It is venue-agnostic: any
// endpoint that emits the snapshot shape can back it, and the client does no
// authentication or order entry.
package bookws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/quantbay/binarymm/internal/domain"
)

const (
	// writeWait is the time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// pongWait is the time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// pingPeriod sends pings to the peer at this interval. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// SnapshotHandler is called for each decoded book snapshot.
type SnapshotHandler func(domain.OrderBookSnapshot)

// snapshotMessage is the wire shape of one book snapshot.
type snapshotMessage struct {
	Type     string       `json:"type"`
	MarketID string       `json:"market_id"`
	Bids     []levelEntry `json:"bids"`
	Asks     []levelEntry `json:"asks"`
}

type levelEntry struct {
	Price float64 `json:"price"`
	Qty   float64 `json:"qty"`
}

// subscribeCommand requests snapshots for a set of markets.
type subscribeCommand struct {
	Type    string   `json:"type"`
	Markets []string `json:"markets"`
}

// Client manages one WebSocket connection to a snapshot feed and dispatches
// decoded snapshots to registered handlers.
type Client struct {
	wsURL string
	conn  *websocket.Conn

	mu     sync.Mutex
	closed bool

	// Subscriptions to restore on reconnect.
	subscriptions []subscribeCommand

	handlerMu sync.RWMutex
	handlers  []SnapshotHandler

	done chan struct{}
	lost chan struct{}
}

// NewClient creates a client for the given WebSocket endpoint. A client is
// used for one connection; reconnecting callers create a fresh client.
func NewClient(wsURL string) *Client {
	return &Client{
		wsURL: wsURL,
		done:  make(chan struct{}),
		lost:  make(chan struct{}),
	}
}

// Lost is closed when the read loop exits, i.e. the connection died.
func (c *Client) Lost() <-chan struct{} { return c.lost }

// OnSnapshot registers a handler for decoded snapshots.
func (c *Client) OnSnapshot(h SnapshotHandler) {
	c.handlerMu.Lock()
	defer c.handlerMu.Unlock()
	c.handlers = append(c.handlers, h)
}

// Connect establishes the WebSocket connection and starts the read and ping
// loops. Previous subscriptions are restored after a reconnect.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("bookws: connect: %w", domain.ErrWSDisconnect)
	}

	dialer := websocket.Dialer{HandshakeTimeout: 15 * time.Second}
	conn, _, err := dialer.DialContext(ctx, c.wsURL, nil)
	if err != nil {
		return fmt.Errorf("bookws: connect: %w", err)
	}
	c.conn = conn

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go c.readLoop(conn)
	go c.pingLoop(conn)

	for _, cmd := range c.subscriptions {
		if err := c.sendCommand(conn, cmd); err != nil {
			return fmt.Errorf("bookws: restore subscription: %w", err)
		}
	}
	return nil
}

// Subscribe requests snapshots for the given market IDs.
func (c *Client) Subscribe(_ context.Context, marketIDs []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("bookws: subscribe: %w", domain.ErrWSDisconnect)
	}
	cmd := subscribeCommand{Type: "subscribe", Markets: marketIDs}
	if err := c.sendCommand(c.conn, cmd); err != nil {
		return fmt.Errorf("bookws: subscribe: %w", err)
	}
	c.subscriptions = append(c.subscriptions, cmd)
	return nil
}

func (c *Client) sendCommand(conn *websocket.Conn, cmd subscribeCommand) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func (c *Client) readLoop(conn *websocket.Conn) {
	defer close(c.lost)
	defer conn.Close()
	for {
		select {
		case <-c.done:
			return
		default:
		}
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		c.dispatch(raw)
	}
}

func (c *Client) dispatch(raw []byte) {
	var msg snapshotMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return
	}
	if msg.Type != "book" || msg.MarketID == "" {
		return
	}
	snap := DecodeSnapshot(msg.MarketID, msg.Bids, msg.Asks)
	if snap.Validate() != nil {
		// A crossed book is a feed defect; drop it rather than quote off it.
		return
	}
	c.handlerMu.RLock()
	handlers := c.handlers
	c.handlerMu.RUnlock()
	for _, h := range handlers {
		h(snap)
	}
}

func (c *Client) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close shuts the client down. Safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.done)
	if c.conn != nil {
		c.conn.Close()
	}
}

package component

import (
	"context"

	"github.com/makeroftools/nautilus-trader/clock"
)

// Trader is the thin orchestration façade that owns a Clock, a Portfolio,
// and named data/execution connections. It contains no strategy logic;
// registration and teardown plumbing only.
type Trader struct {
	clock           clock.Clock
	portfolio       *Portfolio
	dataClients     map[string]*DataClient
	executionClient *ExecutionClient
}

// NewTrader wires a Trader around the given Clock.
func NewTrader(c clock.Clock) *Trader {
	return &Trader{
		clock:       c,
		portfolio:   NewPortfolio(),
		dataClients: make(map[string]*DataClient),
	}
}

// Clock returns the Trader's Clock.
func (t *Trader) Clock() clock.Clock { return t.clock }

// Portfolio returns the Trader's Portfolio.
func (t *Trader) Portfolio() *Portfolio { return t.portfolio }

// RegisterDefaultHandler passes a platform-wide default handler through to
// the underlying Clock, so strategies that omit a per-timer handler on
// SetTimeAlert/SetTimer fall back to one Trader-level handler.
func (t *Trader) RegisterDefaultHandler(h clock.Handler) error {
	return t.clock.RegisterDefaultHandler(h)
}

// AddDataClient registers a named data connection.
func (t *Trader) AddDataClient(c *DataClient) {
	t.dataClients[c.Name()] = c
}

// SetExecutionClient attaches the single execution connection.
func (t *Trader) SetExecutionClient(c *ExecutionClient) {
	t.executionClient = c
}

// Start connects every registered data client and the execution client, if
// any. On the first failure it stops attempting further connections and
// returns the error; already-connected clients are left connected.
func (t *Trader) Start(ctx context.Context) error {
	for _, c := range t.dataClients {
		if err := c.Connect(ctx); err != nil {
			return err
		}
	}
	if t.executionClient != nil {
		if err := t.executionClient.Connect(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stop tears down the Clock (cancelling every registered timer) and
// disconnects every client, continuing past individual disconnect errors.
func (t *Trader) Stop(ctx context.Context) {
	t.clock.CancelAllTimers()

	for _, c := range t.dataClients {
		_ = c.Disconnect(ctx)
	}
	if t.executionClient != nil {
		_ = t.executionClient.Disconnect(ctx)
	}
}

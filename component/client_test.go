package component

import (
	"context"
	"testing"
)

func TestDataClientConnectDisconnect(t *testing.T) {
	c := NewDataClient("binance")
	if c.IsConnected() {
		t.Fatal("expected new client to be disconnected")
	}

	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsConnected() {
		t.Fatal("expected client to be connected")
	}

	if err := c.Connect(context.Background()); err != ErrAlreadyConnected {
		t.Fatalf("got %v, want ErrAlreadyConnected", err)
	}

	if err := c.Disconnect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.IsConnected() {
		t.Fatal("expected client to be disconnected")
	}
}

func TestExecutionClientConnectDisconnect(t *testing.T) {
	c := NewExecutionClient("oms")
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsConnected() {
		t.Fatal("expected client to be connected")
	}
	if err := c.Disconnect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

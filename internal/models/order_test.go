package models

import (
	"testing"
	"time"
)

func TestCalculateTotal(t *testing.T) {
	t.Parallel()

	order := Order{
		BaseFee: 75,
		OrderItems: []OrderItem{
			{TotalPrice: 50},
			{TotalPrice: 25.5},
		},
	}
	order.CalculateTotal()

	if order.Subtotal != 75.5 {
		t.Fatalf("Subtotal = %v, want 75.5", order.Subtotal)
	}
	if order.TotalAmount != 150.5 {
		t.Fatalf("TotalAmount = %v, want 150.5", order.TotalAmount)
	}
}

func TestCalculateTotalNoItems(t *testing.T) {
	t.Parallel()

	order := Order{BaseFee: 75}
	order.CalculateTotal()

	if order.TotalAmount != 75 {
		t.Fatalf("TotalAmount = %v, want base fee only", order.TotalAmount)
	}
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderInProgress, OrderConfirmedReceived, true},
		{OrderConfirmedReceived, OrderProcessing, true},
		{OrderProcessing, OrderFinished, true},
		{OrderFinished, OrderQualityCheck, true},
		{OrderQualityCheck, OrderReadyDispatch, true},
		{OrderReadyDispatch, OrderDispatched, true},
		{OrderDispatched, OrderAwaitingPayment, true},
		{OrderDispatched, OrderCompleted, true},
		{OrderAwaitingPayment, OrderCompleted, true},

		// No skipping ahead or moving backwards.
		{OrderInProgress, OrderFinished, false},
		{OrderProcessing, OrderQualityCheck, false},
		{OrderFinished, OrderProcessing, false},
		{OrderCompleted, OrderDispatched, false},

		// The accept edge is not vendor-driven.
		{OrderPending, OrderInProgress, false},
		{OrderAwaitingQuotes, OrderInProgress, false},
		{OrderQuoted, OrderInProgress, false},

		// Terminal.
		{OrderCompleted, OrderInProgress, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestInBiddingPhase(t *testing.T) {
	t.Parallel()

	for _, s := range []OrderStatus{OrderPending, OrderAwaitingQuotes, OrderQuoted} {
		if !s.InBiddingPhase() {
			t.Errorf("%s should be in the bidding phase", s)
		}
	}
	for _, s := range []OrderStatus{OrderInProgress, OrderDispatched, OrderCompleted} {
		if s.InBiddingPhase() {
			t.Errorf("%s should not be in the bidding phase", s)
		}
	}
}

func TestQuotesOpen(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)
	vendorID := uint(3)

	tests := []struct {
		name  string
		order Order
		want  bool
	}{
		{"open pending order", Order{Status: OrderPending, QuoteDeadline: &future}, true},
		{"open awaiting quotes", Order{Status: OrderAwaitingQuotes, QuoteDeadline: &future}, true},
		{"legacy quoted status still open", Order{Status: OrderQuoted, QuoteDeadline: &future}, true},
		{"no deadline set", Order{Status: OrderAwaitingQuotes}, true},
		{"vendor assigned", Order{Status: OrderAwaitingQuotes, VendorID: &vendorID, QuoteDeadline: &future}, false},
		{"deadline passed", Order{Status: OrderAwaitingQuotes, QuoteDeadline: &past}, false},
		{"left bidding phase", Order{Status: OrderInProgress, QuoteDeadline: &future}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.order.QuotesOpen(now); got != tt.want {
				t.Fatalf("QuotesOpen() = %v, want %v", got, tt.want)
			}
		})
	}
}

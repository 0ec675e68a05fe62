package service

import (
	"testing"

	"flydreamair/internal/domain"
)

var (
	outboundFixture = domain.Flight{
		ID:          "syd-dad-1",
		Origin:      "Sydney",
		Destination: "Danang",
		Price:       850,
	}
	returnFixture = domain.Flight{
		ID:          "dad-syd-1",
		Origin:      "Danang",
		Destination: "Sydney",
		Price:       920,
	}
)

func TestLegSequencer_OneWayCompletesOnFirstPick(t *testing.T) {
	seq := NewLegSequencer(domain.TripTypeOneWay)

	status, err := seq.SelectLeg(outboundFixture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.State != SelectionComplete {
		t.Fatalf("expected complete, got %s", status.State)
	}
	if status.Selection.Kind != domain.SelectionOneWay {
		t.Errorf("expected one-way selection, got %s", status.Selection.Kind)
	}
	if status.Selection.Outbound.ID != outboundFixture.ID {
		t.Errorf("expected outbound %s, got %s", outboundFixture.ID, status.Selection.Outbound.ID)
	}
}

func TestLegSequencer_RoundTripTwoSteps(t *testing.T) {
	seq := NewLegSequencer(domain.TripTypeRoundTrip)

	if seq.CurrentLeg() != LegOutbound {
		t.Fatalf("expected outbound leg first, got %s", seq.CurrentLeg())
	}

	status, err := seq.SelectLeg(outboundFixture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.State != SelectionIncomplete {
		t.Fatalf("expected incomplete after outbound pick, got %s", status.State)
	}
	if seq.CurrentLeg() != LegReturn {
		t.Errorf("expected return leg after outbound pick, got %s", seq.CurrentLeg())
	}

	pending, ok := seq.PendingOutbound()
	if !ok {
		t.Fatal("expected a pending outbound pick")
	}
	if pending.ID != outboundFixture.ID {
		t.Errorf("expected pending outbound %s, got %s", outboundFixture.ID, pending.ID)
	}

	status, err = seq.SelectLeg(returnFixture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.State != SelectionComplete {
		t.Fatalf("expected complete after return pick, got %s", status.State)
	}
	if status.Selection.Kind != domain.SelectionRoundTrip {
		t.Errorf("expected round-trip selection, got %s", status.Selection.Kind)
	}
	if status.Selection.Outbound.ID != outboundFixture.ID {
		t.Errorf("expected outbound %s, got %s", outboundFixture.ID, status.Selection.Outbound.ID)
	}
	if status.Selection.Return.ID != returnFixture.ID {
		t.Errorf("expected return %s, got %s", returnFixture.ID, status.Selection.Return.ID)
	}
}

func TestLegSequencer_ResetToOutboundLeavesNoLeakage(t *testing.T) {
	seq := NewLegSequencer(domain.TripTypeRoundTrip)

	if _, err := seq.SelectLeg(outboundFixture); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := seq.ResetToOutbound(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if seq.CurrentLeg() != LegOutbound {
		t.Errorf("expected outbound leg after reset, got %s", seq.CurrentLeg())
	}
	if _, ok := seq.PendingOutbound(); ok {
		t.Error("expected no pending outbound after reset")
	}

	// A fresh pick after reset behaves like a new sequence.
	replacement := domain.Flight{ID: "syd-dad-2", Origin: "Sydney", Destination: "Danang", Price: 650}
	status, err := seq.SelectLeg(replacement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.State != SelectionIncomplete {
		t.Fatalf("expected incomplete, got %s", status.State)
	}

	status, err = seq.SelectLeg(returnFixture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Selection.Outbound.ID != replacement.ID {
		t.Errorf("expected outbound %s after reset, got %s", replacement.ID, status.Selection.Outbound.ID)
	}
}

func TestLegSequencer_ResetRejectedForOneWay(t *testing.T) {
	seq := NewLegSequencer(domain.TripTypeOneWay)
	if err := seq.ResetToOutbound(); err != ErrNotRoundTrip {
		t.Errorf("expected ErrNotRoundTrip, got %v", err)
	}
}

func TestLegSequencer_ReturnLegWithoutPendingOutboundIsRefused(t *testing.T) {
	// The flow never produces this shape, but the type is exported and a
	// caller could hold the return leg with nothing parked.
	seq := &LegSequencer{tripType: domain.TripTypeRoundTrip, currentLeg: LegReturn}

	if _, err := seq.SelectLeg(returnFixture); err != ErrInvalidPhase {
		t.Errorf("expected ErrInvalidPhase, got %v", err)
	}
}

func TestLegSequencer_RejectsMismatchedLegs(t *testing.T) {
	seq := NewLegSequencer(domain.TripTypeRoundTrip)

	if _, err := seq.SelectLeg(outboundFixture); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wrongReturn := domain.Flight{ID: "mel-syd-1", Origin: "Melbourne", Destination: "Sydney"}
	if _, err := seq.SelectLeg(wrongReturn); err != domain.ErrMismatchedLegs {
		t.Errorf("expected ErrMismatchedLegs, got %v", err)
	}
}

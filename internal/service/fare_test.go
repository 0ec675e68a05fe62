package service

import (
	"testing"

	"flydreamair/internal/domain"
)

func TestComputeFare_OneWay(t *testing.T) {
	selection := domain.NewOneWaySelection(domain.Flight{
		Origin:      "Sydney",
		Destination: "Danang",
		Price:       650,
	})

	fare := ComputeFare(selection, 1)

	if fare.Subtotal != 650 {
		t.Errorf("expected subtotal 650, got %d", fare.Subtotal)
	}
	if fare.Tax != 98 { // 650 * 0.15 = 97.5, rounds half-up to 98
		t.Errorf("expected tax 98, got %d", fare.Tax)
	}
	if fare.Fee != 29 {
		t.Errorf("expected fee 29, got %d", fare.Fee)
	}
	if fare.Total != 650+98+29 {
		t.Errorf("expected total %d, got %d", 650+98+29, fare.Total)
	}
}

func TestComputeFare_RoundTripTwoPassengers(t *testing.T) {
	selection, err := domain.NewRoundTripSelection(
		domain.Flight{Origin: "Sydney", Destination: "Danang", Price: 850},
		domain.Flight{Origin: "Danang", Destination: "Sydney", Price: 920},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fare := ComputeFare(selection, 2)

	// (850 + 920) * 2 = 3540; 3540 * 0.15 = 531 exactly.
	if fare.Subtotal != 3540 {
		t.Errorf("expected subtotal 3540, got %d", fare.Subtotal)
	}
	if fare.Tax != 531 {
		t.Errorf("expected tax 531, got %d", fare.Tax)
	}
	if fare.Fee != 29 {
		t.Errorf("expected fee 29, got %d", fare.Fee)
	}
	if fare.Total != 4100 {
		t.Errorf("expected total 4100, got %d", fare.Total)
	}
}

func TestComputeFare_TotalIdentity(t *testing.T) {
	prices := []int64{1, 7, 29, 100, 333, 650, 850, 999, 12345}
	for _, price := range prices {
		for passengers := 1; passengers <= 9; passengers++ {
			selection := domain.NewOneWaySelection(domain.Flight{
				Origin:      "A",
				Destination: "B",
				Price:       price,
			})
			fare := ComputeFare(selection, passengers)

			if fare.Total != fare.Subtotal+fare.Tax+fare.Fee {
				t.Errorf("price=%d passengers=%d: total %d != subtotal %d + tax %d + fee %d",
					price, passengers, fare.Total, fare.Subtotal, fare.Tax, fare.Fee)
			}
			if fare.Subtotal != price*int64(passengers) {
				t.Errorf("price=%d passengers=%d: expected subtotal %d, got %d",
					price, passengers, price*int64(passengers), fare.Subtotal)
			}
		}
	}
}

func TestComputeFare_Deterministic(t *testing.T) {
	selection, err := domain.NewRoundTripSelection(
		domain.Flight{Origin: "Sydney", Destination: "Danang", Price: 650},
		domain.Flight{Origin: "Danang", Destination: "Sydney", Price: 720},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := ComputeFare(selection, 3)
	for i := 0; i < 10; i++ {
		if got := ComputeFare(selection, 3); got != first {
			t.Fatalf("expected deterministic fare, got %+v then %+v", first, got)
		}
	}
}

func TestComputeFare_RoundsHalfUp(t *testing.T) {
	cases := []struct {
		price   int64
		wantTax int64
	}{
		{10, 2},   // 1.5 -> 2
		{30, 5},   // 4.5 -> 5
		{100, 15}, // exact
		{9, 1},    // 1.35 -> 1
		{11, 2},   // 1.65 -> 2
	}
	for _, tc := range cases {
		selection := domain.NewOneWaySelection(domain.Flight{Origin: "A", Destination: "B", Price: tc.price})
		fare := ComputeFare(selection, 1)
		if fare.Tax != tc.wantTax {
			t.Errorf("price=%d: expected tax %d, got %d", tc.price, tc.wantTax, fare.Tax)
		}
	}
}

package service

import (
	"errors"
	"testing"

	"flydreamair/internal/directory"
)

func TestLookup_FindsTripByReferenceAndLastName(t *testing.T) {
	svc := NewLookupService(directory.NewStatic())

	record, err := svc.Lookup("VJ123", "Luu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != "SKY001" {
		t.Errorf("expected trip SKY001, got %s", record.ID)
	}
	if record.Flight.Origin != "Sydney" || record.Flight.Destination != "Danang" {
		t.Errorf("unexpected route %s->%s", record.Flight.Origin, record.Flight.Destination)
	}
}

func TestLookup_NormalizesInputs(t *testing.T) {
	svc := NewLookupService(directory.NewStatic())

	record, err := svc.Lookup("  vj123 ", " luu ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != "SKY001" {
		t.Errorf("expected trip SKY001, got %s", record.ID)
	}

	record, err = svc.Lookup("va123", "LUU")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != "SKY002" {
		t.Errorf("expected trip SKY002, got %s", record.ID)
	}
}

func TestLookup_WrongLastNameIsNotFound(t *testing.T) {
	svc := NewLookupService(directory.NewStatic())

	if _, err := svc.Lookup("VJ123", "Smith"); !errors.Is(err, ErrTripNotFound) {
		t.Errorf("expected ErrTripNotFound, got %v", err)
	}
	if _, err := svc.Lookup("ZZ999", "Luu"); !errors.Is(err, ErrTripNotFound) {
		t.Errorf("expected ErrTripNotFound, got %v", err)
	}
}

func TestLookup_EmptyInputsAreRejectedBeforeLookup(t *testing.T) {
	svc := NewLookupService(directory.NewStatic())

	cases := []struct{ reference, lastName string }{
		{"", ""},
		{"VJ123", ""},
		{"", "Luu"},
		{"   ", "Luu"},
		{"VJ123", "   "},
	}
	for _, tc := range cases {
		if _, err := svc.Lookup(tc.reference, tc.lastName); !errors.Is(err, ErrLookupInvalidInput) {
			t.Errorf("Lookup(%q, %q): expected ErrLookupInvalidInput, got %v", tc.reference, tc.lastName, err)
		}
	}
}

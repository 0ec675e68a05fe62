package service

import (
	"strings"

	"flydreamair/internal/domain"
)

// TripDirectory is the read-only store of booked trips consulted by the
// lookup validator.
type TripDirectory interface {
	Match(reference, lastName string) (domain.TripRecord, bool)
}

// LookupService validates trip lookups against the directory.
type LookupService struct {
	directory TripDirectory
}

// NewLookupService creates a new LookupService.
func NewLookupService(directory TripDirectory) *LookupService {
	return &LookupService{directory: directory}
}

// Lookup finds the trip booked under the given reference and last name.
// The reference is trimmed and uppercased; the last name is trimmed and
// compared case-insensitively. Empty inputs are rejected before the lookup
// so "you typed nothing" and "no such booking" stay distinct signals.
func (s *LookupService) Lookup(reference, lastName string) (domain.TripRecord, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	lastName = strings.TrimSpace(lastName)

	if reference == "" || lastName == "" {
		return domain.TripRecord{}, ErrLookupInvalidInput
	}

	record, ok := s.directory.Match(reference, lastName)
	if !ok {
		return domain.TripRecord{}, ErrTripNotFound
	}
	return record, nil
}

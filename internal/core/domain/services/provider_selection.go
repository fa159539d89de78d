package services

import (
	"errors"

	"shield/internal/core/domain/model/business"
)

var (
	// ErrNoCompaniesAvailable is returned when an empty candidate set is offered.
	ErrNoCompaniesAvailable = errors.New("no catering companies available")

	// ErrNoCompanyReachable is returned when every candidate's distance lookup failed.
	ErrNoCompanyReachable = errors.New("no catering company reachable")
)

// DistanceFunc resolves the distance between two postcodes.
// A non-nil error marks the distance as unknown for that candidate.
type DistanceFunc func(origin string, destination string) (float64, error)

// ProviderSelector is a domain service that picks the catering company an
// individual should order from: the one with the minimum distance from the
// individual's postcode.
//
// Selection rules:
//   - Candidates are evaluated in the order they appear; ties keep the first
//   - A candidate whose distance lookup fails is skipped rather than treated
//     as distance -1, so a lookup failure can never win the selection
//   - An empty candidate set is an error, not an empty winner
type ProviderSelector struct{}

// NewProviderSelector creates a new ProviderSelector instance.
func NewProviderSelector() ProviderSelector {
	return ProviderSelector{}
}

// Nearest returns the candidate closest to the origin postcode.
//
// Returns ErrNoCompaniesAvailable when candidates is empty and
// ErrNoCompanyReachable when no candidate's distance could be resolved.
func (ProviderSelector) Nearest(
	origin string,
	candidates []business.Company,
	distance DistanceFunc,
) (business.Company, error) {
	if len(candidates) == 0 {
		return business.Company{}, ErrNoCompaniesAvailable
	}

	var (
		best     business.Company
		bestDist float64
		found    bool
	)

	for _, candidate := range candidates {
		dist, err := distance(origin, candidate.Postcode())
		if err != nil {
			continue
		}

		if !found || dist < bestDist {
			best = candidate
			bestDist = dist
			found = true
		}
	}

	if !found {
		return business.Company{}, ErrNoCompanyReachable
	}

	return best, nil
}

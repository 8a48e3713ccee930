// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aircraftuc

import (
	"sort"

	"github.com/aerovista/avweb/pkg/core/model"
)

// DefaultSimilarLimit is the default number of recommendations which
// the Similar use case returns when no explicit limit is configured.
const DefaultSimilarLimit = 3

// Similarity scoring weights. Points are additive and a higher total
// marks a more similar listing. The year and price contributions
// stack, e.g., a listing within two years of the reference collects
// both the five-year and the two-year points.
const (
	sameCategoryPoints     = 10
	sameManufacturerPoints = 5
	yearWithin5Points      = 3
	yearWithin2Points      = 2
	priceWithin20Points    = 4
	priceWithin10Points    = 2
	capacityWithin2Points  = 2
)

// SimilarTo returns up to n records from the all collection, ranked
// by descending similarity to the ref record. It is a pure function
// of its arguments; the all argument is never mutated.
//
// The eligibility filter precedes scoring: the reference itself
// (matched by identifier), draft records, and sold records are
// excluded. Ties in score preserve the relative order of the input
// collection. The output length is min(n, eligible records) and an
// empty output is valid.
func SimilarTo(ref model.Aircraft, all []model.Aircraft, n int) []model.Aircraft {
	type scored struct {
		aircraft model.Aircraft
		score    int
	}
	eligible := make([]scored, 0, len(all))
	for _, a := range all {
		if a.ID == ref.ID ||
			a.Status == model.StatusDraft ||
			a.Status == model.StatusSold {
			continue
		}
		eligible = append(eligible, scored{a, similarityScore(ref, a)})
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].score > eligible[j].score
	})
	if n > len(eligible) {
		n = len(eligible)
	}
	if n < 0 {
		n = 0
	}
	similar := make([]model.Aircraft, n)
	for i := range similar {
		similar[i] = eligible[i].aircraft
	}
	return similar
}

// similarityScore computes the additive similarity of the a record
// against the ref record.
func similarityScore(ref, a model.Aircraft) int {
	score := 0
	if a.Category == ref.Category {
		score += sameCategoryPoints
	}
	if a.Manufacturer == ref.Manufacturer {
		score += sameManufacturerPoints
	}
	yearDiff := a.YearManufactured - ref.YearManufactured
	if yearDiff < 0 {
		yearDiff = -yearDiff
	}
	if yearDiff <= 5 {
		score += yearWithin5Points
	}
	if yearDiff <= 2 {
		score += yearWithin2Points
	}
	if a.Price != nil && ref.Price != nil && *ref.Price > 0 {
		priceDiff := *a.Price - *ref.Price
		if priceDiff < 0 {
			priceDiff = -priceDiff
		}
		percent := priceDiff / *ref.Price * 100
		if percent <= 20 {
			score += priceWithin20Points
		}
		if percent <= 10 {
			score += priceWithin10Points
		}
	}
	if a.PassengersCapacity != nil && ref.PassengersCapacity != nil {
		capDiff := *a.PassengersCapacity - *ref.PassengersCapacity
		if capDiff < 0 {
			capDiff = -capDiff
		}
		if capDiff <= 2 {
			score += capacityWithin2Points
		}
	}
	return score
}

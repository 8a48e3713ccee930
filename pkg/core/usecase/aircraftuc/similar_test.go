// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aircraftuc_test

import (
	"testing"

	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/aerovista/avweb/pkg/core/usecase/aircraftuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarToRanksByScore(t *testing.T) {
	// A is the reference. B shares category, manufacturer, a year
	// within two, and a price within ten percent, collecting
	// 10+5+3+2+4+2 = 26 points. C only shares the year and the
	// (equal) price, collecting 3+2+4+2 = 11 points.
	a := rec("a", 0, priced(1000000), func(r *model.Aircraft) {
		r.Category = model.CategoryJet
		r.Manufacturer = "Cessna"
		r.YearManufactured = 2020
	})
	b := rec("b", 1, priced(1050000), func(r *model.Aircraft) {
		r.Category = model.CategoryJet
		r.Manufacturer = "Cessna"
		r.YearManufactured = 2021
	})
	c := rec("c", 2, priced(1000000), func(r *model.Aircraft) {
		r.Category = model.CategoryHelicopter
		r.Manufacturer = "Bell"
		r.YearManufactured = 2020
	})
	similar := aircraftuc.SimilarTo(
		a, []model.Aircraft{c, a, b}, 2,
	)
	assert.Equal(t, []string{"b", "c"}, slugs(similar))
}

func TestSimilarToEligibility(t *testing.T) {
	ref := rec("ref", 0)
	all := []model.Aircraft{
		ref,
		rec("draft", 1, withStatus(model.StatusDraft)),
		rec("sold", 2, withStatus(model.StatusSold)),
		rec("pending", 3, withStatus(model.StatusPending)),
		rec("available", 4),
	}
	similar := aircraftuc.SimilarTo(ref, all, 10)
	require.Len(t, similar, 2)
	for _, a := range similar {
		assert.NotEqual(t, ref.ID, a.ID, "reference must be excluded")
		assert.NotEqual(t, model.StatusDraft, a.Status)
		assert.NotEqual(t, model.StatusSold, a.Status)
	}
}

func TestSimilarToTiesPreserveInputOrder(t *testing.T) {
	ref := rec("ref", 0)
	all := []model.Aircraft{
		rec("first", 1),
		rec("second", 2),
		rec("third", 3),
		ref,
	}
	similar := aircraftuc.SimilarTo(ref, all, 3)
	assert.Equal(t, []string{"first", "second", "third"}, slugs(similar),
		"equally scored records must keep the collection order")
}

func TestSimilarToOutputLength(t *testing.T) {
	ref := rec("ref", 0)
	all := []model.Aircraft{ref, rec("only", 1)}

	similar := aircraftuc.SimilarTo(ref, all, 3)
	assert.Len(t, similar, 1, "output is capped by the eligible count")

	similar = aircraftuc.SimilarTo(ref, all, 0)
	assert.Empty(t, similar)

	similar = aircraftuc.SimilarTo(ref, []model.Aircraft{ref}, 3)
	assert.Empty(t, similar,
		"no recommendations is a valid output, not an error")
}

func TestSimilarToPriceStacking(t *testing.T) {
	ref := rec("ref", 0, priced(1000000))
	within20 := rec("within-20", 1, priced(1190000))
	within10 := rec("within-10", 2, priced(1090000))
	unpriced := rec("unpriced", 3)

	// Scores differ only through the price bonus: 4 points for the
	// twenty percent band plus 2 more within ten percent.
	similar := aircraftuc.SimilarTo(
		ref,
		[]model.Aircraft{unpriced, within20, within10},
		3,
	)
	assert.Equal(
		t, []string{"within-10", "within-20", "unpriced"},
		slugs(similar),
	)
}

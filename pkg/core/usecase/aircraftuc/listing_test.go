// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aircraftuc_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/aerovista/avweb/pkg/core/usecase/aircraftuc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// rec builds an available jet listing with the given slug, applying
// the opts mutators afterwards. The creation timestamp advances with
// the age argument, so age 0 is the newest record.
func rec(slug string, age int, opts ...func(*model.Aircraft)) model.Aircraft {
	a := model.Aircraft{
		ID:               uuid.New(),
		Slug:             slug,
		Title:            slug,
		Status:           model.StatusAvailable,
		Category:         model.CategoryJet,
		Manufacturer:     "Cessna",
		Model:            "Citation CJ3",
		YearManufactured: 2020,
		PriceCurrency:    "USD",
		CreatedAt:        testEpoch.Add(-time.Duration(age) * time.Hour),
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func priced(p float64) func(*model.Aircraft) {
	return func(a *model.Aircraft) { a.Price = &p }
}

func withStatus(s model.Status) func(*model.Aircraft) {
	return func(a *model.Aircraft) { a.Status = s }
}

func slugs(items []model.Aircraft) []string {
	ss := make([]string, len(items))
	for i, a := range items {
		ss[i] = a.Slug
	}
	return ss
}

func TestEmptyFilterKeepsNonDraftRecords(t *testing.T) {
	all := []model.Aircraft{
		rec("a", 0),
		rec("b", 1, withStatus(model.StatusDraft)),
		rec("c", 2),
		rec("d", 3, withStatus(model.StatusSold)),
	}
	p := aircraftuc.Paginate(all, model.FilterState{}, 1)
	assert.Equal(t, 3, p.Total, "drafts must not be counted")
	assert.Equal(t, []string{"a", "c", "d"}, slugs(p.Items))
	for _, a := range p.Items {
		assert.NotEqual(t, model.StatusDraft, a.Status)
	}
}

func TestPaginateIsPure(t *testing.T) {
	all := []model.Aircraft{
		rec("a", 2, priced(900000)),
		rec("b", 0),
		rec("c", 1, priced(450000)),
	}
	f := model.FilterState{Sort: model.SortPriceAsc}
	first := aircraftuc.Paginate(all, f, 1)
	second := aircraftuc.Paginate(all, f, 1)
	assert.Equal(t, first, second, "same input must give same output")
	// input order is only borrowed, never changed
	assert.Equal(t, []string{"a", "b", "c"}, slugs(all))
}

func TestSearchMatchesKnownFieldsCaseInsensitively(t *testing.T) {
	desc := "Fresh Pratt & Whitney overhaul"
	all := []model.Aircraft{
		rec("king-air", 0, func(a *model.Aircraft) {
			a.Title = "1998 King Air 350"
			a.Manufacturer = "Beechcraft"
			a.Model = "King Air 350"
		}),
		rec("bell-407", 1, func(a *model.Aircraft) {
			a.Title = "Bell 407GX"
			a.Manufacturer = "Bell"
			a.Model = "407GX"
			a.Description = &desc
		}),
		rec("no-desc", 2, func(a *model.Aircraft) {
			a.Title = "Citation M2"
			a.Manufacturer = "Cessna"
			a.Model = "M2"
			a.Description = nil
		}),
	}
	for _, tc := range []struct {
		search string
		want   []string
	}{
		{"king AIR", []string{"king-air"}},
		{"beechcraft", []string{"king-air"}},
		{"pratt", []string{"bell-407"}},
		{"407gx", []string{"bell-407"}},
		{"", []string{"king-air", "bell-407", "no-desc"}},
		{"turboshaft", nil},
	} {
		t.Run(fmt.Sprintf("search=%q", tc.search), func(t *testing.T) {
			p := aircraftuc.Paginate(
				all, model.FilterState{Search: tc.search}, 1,
			)
			if tc.want == nil {
				assert.Empty(t, p.Items)
				assert.Equal(t, 0, p.Total)
				return
			}
			assert.Equal(t, tc.want, slugs(p.Items))
		})
	}
}

func TestCategoryAndStatusSetsArePermissiveWhenEmpty(t *testing.T) {
	all := []model.Aircraft{
		rec("jet", 0),
		rec("heli", 1, func(a *model.Aircraft) {
			a.Category = model.CategoryHelicopter
		}),
		rec("sold-jet", 2, withStatus(model.StatusSold)),
	}
	p := aircraftuc.Paginate(all, model.FilterState{}, 1)
	assert.Equal(t, 3, p.Total)

	p = aircraftuc.Paginate(all, model.FilterState{
		Categories: []model.Category{model.CategoryHelicopter},
	}, 1)
	assert.Equal(t, []string{"heli"}, slugs(p.Items))

	p = aircraftuc.Paginate(all, model.FilterState{
		Statuses: []model.Status{model.StatusSold},
	}, 1)
	assert.Equal(t, []string{"sold-jet"}, slugs(p.Items))
}

func TestActivePriceBoundExcludesUnpricedRecords(t *testing.T) {
	all := []model.Aircraft{
		rec("priced", 0, priced(750000)),
		rec("contact-for-price", 1),
	}
	min := 500000.0
	p := aircraftuc.Paginate(all, model.FilterState{MinPrice: &min}, 1)
	assert.Equal(t, []string{"priced"}, slugs(p.Items),
		"a record with no price must fail an active bound")

	max := 800000.0
	p = aircraftuc.Paginate(all, model.FilterState{MaxPrice: &max}, 1)
	assert.Equal(t, []string{"priced"}, slugs(p.Items))

	p = aircraftuc.Paginate(all, model.FilterState{}, 1)
	assert.Equal(t, 2, p.Total,
		"unset bounds must not exclude unpriced records")
}

func TestYearBounds(t *testing.T) {
	all := []model.Aircraft{
		rec("y2010", 0, func(a *model.Aircraft) { a.YearManufactured = 2010 }),
		rec("y2018", 1, func(a *model.Aircraft) { a.YearManufactured = 2018 }),
		rec("y2024", 2, func(a *model.Aircraft) { a.YearManufactured = 2024 }),
	}
	min, max := 2015, 2020
	p := aircraftuc.Paginate(
		all, model.FilterState{MinYear: &min, MaxYear: &max}, 1,
	)
	assert.Equal(t, []string{"y2018"}, slugs(p.Items))
}

func TestPriceSortsOrderUnpricedRecordsLast(t *testing.T) {
	all := []model.Aircraft{
		rec("no-price-1", 0),
		rec("mid", 1, priced(500000)),
		rec("no-price-2", 2),
		rec("low", 3, priced(100000)),
		rec("high", 4, priced(900000)),
	}
	p := aircraftuc.Paginate(
		all, model.FilterState{Sort: model.SortPriceAsc}, 1,
	)
	assert.Equal(
		t,
		[]string{"low", "mid", "high", "no-price-1", "no-price-2"},
		slugs(p.Items),
	)

	p = aircraftuc.Paginate(
		all, model.FilterState{Sort: model.SortPriceDesc}, 1,
	)
	assert.Equal(
		t,
		[]string{"high", "mid", "low", "no-price-1", "no-price-2"},
		slugs(p.Items),
	)
}

func TestYearSorts(t *testing.T) {
	all := []model.Aircraft{
		rec("y2018", 0, func(a *model.Aircraft) { a.YearManufactured = 2018 }),
		rec("y2024", 1, func(a *model.Aircraft) { a.YearManufactured = 2024 }),
		rec("y2010", 2, func(a *model.Aircraft) { a.YearManufactured = 2010 }),
	}
	p := aircraftuc.Paginate(
		all, model.FilterState{Sort: model.SortYearDesc}, 1,
	)
	assert.Equal(t, []string{"y2024", "y2018", "y2010"}, slugs(p.Items))

	p = aircraftuc.Paginate(
		all, model.FilterState{Sort: model.SortYearAsc}, 1,
	)
	assert.Equal(t, []string{"y2010", "y2018", "y2024"}, slugs(p.Items))
}

func TestRepartitionOverridesRequestedSortAcrossGroups(t *testing.T) {
	// Both featured records were created before the non-featured one,
	// so the "newest" sort alone would place them last.
	featured := func(a *model.Aircraft) { a.Featured = true }
	all := []model.Aircraft{
		rec("plain-available", 0),
		rec("sold", 1, withStatus(model.StatusSold)),
		rec("pending", 2, withStatus(model.StatusPending)),
		rec("featured-old", 5, featured),
		rec("featured-older", 6, featured),
	}
	p := aircraftuc.Paginate(
		all, model.FilterState{Sort: model.SortNewest}, 1,
	)
	assert.Equal(
		t,
		[]string{
			"featured-old", "featured-older", "plain-available",
			"pending", "sold",
		},
		slugs(p.Items),
		"available first, then featured within the group, "+
			"then pending before sold",
	)
}

func TestPaginationSlicing(t *testing.T) {
	all := make([]model.Aircraft, 0, 25)
	for i := 0; i < 25; i++ {
		all = append(all, rec(fmt.Sprintf("r%02d", i), i))
	}
	p1 := aircraftuc.Paginate(all, model.FilterState{}, 1)
	require.Len(t, p1.Items, aircraftuc.PageSize)
	assert.Equal(t, 25, p1.Total)
	assert.Equal(t, 3, p1.Pages)

	p3 := aircraftuc.Paginate(all, model.FilterState{}, 3)
	require.Len(t, p3.Items, 1)
	assert.Equal(t, "r24", p3.Items[0].Slug)

	p9 := aircraftuc.Paginate(all, model.FilterState{}, 9)
	assert.Empty(t, p9.Items, "past-the-end page is empty, not an error")
	assert.Equal(t, 25, p9.Total)
}

func TestEmptyCollection(t *testing.T) {
	p := aircraftuc.Paginate(nil, model.FilterState{}, 1)
	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.Pages)
}

// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aircraftuc

import (
	"sort"
	"strings"

	"github.com/aerovista/avweb/pkg/core/model"
)

// PageSize is the fixed number of listings per page.
const PageSize = 12

// ListingPage is the output of the listing pipeline: one visible page
// of the filtered and sorted collection, together with the total
// filtered count and the derived page count. An empty page with a
// zero total is a valid, well-defined output.
type ListingPage struct {
	Items []model.Aircraft
	Total int
	Page  int
	Pages int
}

// Paginate deterministically transforms the complete in-memory
// collection, a filter state, and a 1-based page index into the
// visible page of records. It is a pure function; the all argument
// is only borrowed for the duration of the computation and is never
// mutated.
//
// Draft records are removed first, unconditionally, before any
// user-controlled filter runs. Then the filter state predicates and
// the requested sort are applied, and finally a stable re-partition
// enforces the display ordering business rules:
//  1. available records precede any other status,
//  2. featured records precede non-featured ones within the same
//     status group,
//  3. pending records precede sold ones.
//
// The re-partition is stable, so the requested sort still decides
// the relative order within each group.
func Paginate(all []model.Aircraft, f model.FilterState, page int) ListingPage {
	visible := filterRecords(all, f)
	sortRecords(visible, f.SortOrDefault())
	repartition(visible)

	total := len(visible)
	pages := (total + PageSize - 1) / PageSize
	if page < 1 {
		page = 1
	}
	lo := (page - 1) * PageSize
	hi := lo + PageSize
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}
	return ListingPage{
		Items: visible[lo:hi],
		Total: total,
		Page:  page,
		Pages: pages,
	}
}

// filterRecords returns a new slice holding the non-draft records
// which satisfy every active predicate of the f filter state.
func filterRecords(all []model.Aircraft, f model.FilterState) []model.Aircraft {
	search := strings.ToLower(f.Search)
	visible := make([]model.Aircraft, 0, len(all))
	for _, a := range all {
		switch {
		case a.Status == model.StatusDraft:
		case !matchesSearch(a, search):
		case !f.HasCategory(a.Category):
		case !f.HasStatus(a.Status):
		// A record with no price cannot satisfy an active price
		// bound; "contact for price" listings only show up while
		// both bounds are unset.
		case f.MinPrice != nil && (a.Price == nil || *a.Price < *f.MinPrice):
		case f.MaxPrice != nil && (a.Price == nil || *a.Price > *f.MaxPrice):
		case f.MinYear != nil && a.YearManufactured < *f.MinYear:
		case f.MaxYear != nil && a.YearManufactured > *f.MaxYear:
		default:
			visible = append(visible, a)
		}
	}
	return visible
}

// matchesSearch reports whether the lowercased search query is a
// substring of the title, manufacturer, model, or description of the
// a record. An empty query matches everything and an absent
// description never matches.
func matchesSearch(a model.Aircraft, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), search) ||
		strings.Contains(strings.ToLower(a.Manufacturer), search) ||
		strings.Contains(strings.ToLower(a.Model), search) {
		return true
	}
	return a.Description != nil &&
		strings.Contains(strings.ToLower(*a.Description), search)
}

// sortRecords sorts the records in place by the requested sort key.
// The price sorts order records with no price after every record
// with a price, regardless of the sort direction, so "contact for
// price" listings end up at the tail of both orderings.
func sortRecords(records []model.Aircraft, key model.SortBy) {
	var less func(a, b model.Aircraft) bool
	switch key {
	case model.SortNewest:
		less = func(a, b model.Aircraft) bool {
			return a.CreatedAt.After(b.CreatedAt)
		}
	case model.SortPriceAsc:
		less = func(a, b model.Aircraft) bool {
			if a.Price == nil {
				return false
			}
			if b.Price == nil {
				return true
			}
			return *a.Price < *b.Price
		}
	case model.SortPriceDesc:
		less = func(a, b model.Aircraft) bool {
			if a.Price == nil {
				return false
			}
			if b.Price == nil {
				return true
			}
			return *a.Price > *b.Price
		}
	case model.SortYearDesc:
		less = func(a, b model.Aircraft) bool {
			return a.YearManufactured > b.YearManufactured
		}
	case model.SortYearAsc:
		less = func(a, b model.Aircraft) bool {
			return a.YearManufactured < b.YearManufactured
		}
	default:
		panic(model.SortByError(key))
	}
	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j])
	})
}

// repartition stably reorders the records by the display ordering
// business rules, overriding the user-requested sort across groups
// while preserving it within each group.
func repartition(records []model.Aircraft) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		switch {
		case a.Status == model.StatusAvailable && b.Status != model.StatusAvailable:
			return true
		case a.Status != model.StatusAvailable && b.Status == model.StatusAvailable:
			return false
		case a.Featured && !b.Featured:
			return true
		case !a.Featured && b.Featured:
			return false
		case a.Status == model.StatusPending && b.Status == model.StatusSold:
			return true
		default:
			return false
		}
	})
}

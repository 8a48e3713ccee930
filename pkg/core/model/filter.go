// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// SortBy specifies the listing sort key enum.
type SortBy int

// Valid values for the SortBy enum. SortNewest is the default and
// orders by the creation timestamp, descending.
const (
	SortInvalid SortBy = iota // zero value is invalid

	SortNewest
	SortPriceAsc
	SortPriceDesc
	SortYearDesc
	SortYearAsc
)

// ErrUnknownSortBy indicates that a given string may not be parsed
// as a valid/known sort key.
var ErrUnknownSortBy = errors.New("unknown sort key")

// SortByError indicates an invalid sort key value, containing the
// invalid value as an integer.
type SortByError int

// Error implements the error interface, returning a string
// representation of the SortByError.
func (e SortByError) Error() string {
	return fmt.Sprintf("invalid sort key: %d", e)
}

// Validate returns nil if SortBy value is valid. For invalid values,
// an instance of the SortByError will be returned.
func (s SortBy) Validate() error {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc,
		SortYearDesc, SortYearAsc:
		return nil
	default:
		return SortByError(s)
	}
}

// String converts the SortBy enum to a string. Invalid sort key
// causes a panic.
func (s SortBy) String() string {
	switch s {
	case SortNewest:
		return "newest"
	case SortPriceAsc:
		return "price-asc"
	case SortPriceDesc:
		return "price-desc"
	case SortYearDesc:
		return "year-desc"
	case SortYearAsc:
		return "year-asc"
	default:
		panic(SortByError(s))
	}
}

// ParseSortBy parses the given string and returns a SortBy. For
// invalid strings, SortInvalid and ErrUnknownSortBy will be returned.
func ParseSortBy(s string) (SortBy, error) {
	switch s {
	case "newest":
		return SortNewest, nil
	case "price-asc":
		return SortPriceAsc, nil
	case "price-desc":
		return SortPriceDesc, nil
	case "year-desc":
		return SortYearDesc, nil
	case "year-asc":
		return SortYearAsc, nil
	default:
		return SortInvalid, ErrUnknownSortBy
	}
}

// FilterState is the value object holding the user-chosen predicates
// and sort key of one listing view. It is supplied entirely by the
// client and revalidated at the system boundary on every change;
// nothing in it is persisted.
//
// An empty Categories or Statuses set is permissive and filters
// nothing on that dimension. Nil bounds are inactive. An active
// MinPrice or MaxPrice bound excludes records with no price (a record
// offered as "contact for price" cannot satisfy a numeric bound).
type FilterState struct {
	Search     string
	Categories []Category
	Statuses   []Status
	MinPrice   *float64
	MaxPrice   *float64
	MinYear    *int
	MaxYear    *int
	Sort       SortBy
}

// SortOrDefault returns the chosen sort key, falling back to
// SortNewest when the field was left at its zero value.
func (f FilterState) SortOrDefault() SortBy {
	if f.Sort == SortInvalid {
		return SortNewest
	}
	return f.Sort
}

// HasCategory reports whether c belongs to the selected categories
// set, treating an empty set as all-inclusive.
func (f FilterState) HasCategory(c Category) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, fc := range f.Categories {
		if fc == c {
			return true
		}
	}
	return false
}

// HasStatus reports whether s belongs to the selected statuses set,
// treating an empty set as all-inclusive.
func (f FilterState) HasStatus(s Status) bool {
	if len(f.Statuses) == 0 {
		return true
	}
	for _, fs := range f.Statuses {
		if fs == s {
			return true
		}
	}
	return false
}

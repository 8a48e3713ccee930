// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// Category specifies the aircraft category enum.
type Category int

// Valid values for the Category enum.
const (
	CategoryInvalid Category = iota // zero value is invalid

	CategoryJet
	CategoryTurboprop
	CategoryHelicopter
	CategoryPiston
	CategoryTrailer
)

// ErrUnknownCategory indicates that a given string may not be parsed
// as a valid/known aircraft category.
var ErrUnknownCategory = errors.New("unknown aircraft category")

// CategoryError indicates an invalid category value, containing the
// invalid value as an integer.
type CategoryError int

// Error implements the error interface, returning a string
// representation of the CategoryError.
func (e CategoryError) Error() string {
	return fmt.Sprintf("invalid aircraft category: %d", e)
}

// Validate returns nil if Category value is valid. For invalid
// values, an instance of the CategoryError will be returned.
func (c Category) Validate() error {
	switch c {
	case CategoryJet, CategoryTurboprop, CategoryHelicopter,
		CategoryPiston, CategoryTrailer:
		return nil
	default:
		return CategoryError(c)
	}
}

// String converts the Category enum to a string. Invalid category
// causes a panic.
func (c Category) String() string {
	switch c {
	case CategoryJet:
		return "jet"
	case CategoryTurboprop:
		return "turboprop"
	case CategoryHelicopter:
		return "helicopter"
	case CategoryPiston:
		return "piston"
	case CategoryTrailer:
		return "trailer"
	default:
		panic(CategoryError(c))
	}
}

// MarshalText implements encoding.TextMarshaler, so a Category is
// serialized as its string representation in JSON responses.
func (c Category) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// ParseCategory parses the given string and returns a Category.
// For invalid strings, CategoryInvalid and ErrUnknownCategory will
// be returned.
func ParseCategory(c string) (Category, error) {
	switch c {
	case "jet":
		return CategoryJet, nil
	case "turboprop":
		return CategoryTurboprop, nil
	case "helicopter":
		return CategoryHelicopter, nil
	case "piston":
		return CategoryPiston, nil
	case "trailer":
		return CategoryTrailer, nil
	default:
		return CategoryInvalid, ErrUnknownCategory
	}
}

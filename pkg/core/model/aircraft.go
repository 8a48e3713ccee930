// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// The aircraft inventory and customer inquiry entities live here,
// together with the value objects which the listing use cases operate
// on (such as the FilterState). The corresponding structs which carry
// the ORM specific tags are managed by the adapter layer, see the
// unexported gAircraft and gInquiry structs in the
// pkg/adapter/db/postgres/aircraftrp and inquiriesrp packages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Aircraft models one inventory listing of the brokerage.
//
// Optional attributes are modeled as pointers. A nil Price means
// "contact for price"; it is displayed without a price tag and it
// never satisfies an active price bound filter (see FilterState).
// A non-nil DeletedAt marks a soft-deleted record which is excluded
// by the repository fetch operations.
type Aircraft struct {
	ID   uuid.UUID
	Slug string // unique, lowercase letters, digits, and hyphens

	Title        string
	Status       Status
	Category     Category
	Manufacturer string
	Model        string

	YearManufactured   int
	RegistrationNumber *string
	SerialNumber       *string
	AircraftType       *string

	TotalTimeHours     *float64
	Engines            *int
	PassengersCapacity *int
	MaxRangeNM         *int
	MaxSpeedKts        *int
	CruiseSpeedKts     *int
	MaxAltitudeFt      *int

	Price             *float64 // non-negative when present
	PriceCurrency     string
	IsPriceNegotiable bool

	Description     *string
	Features        []string
	PrimaryImageURL *string

	MetaTitle       *string
	MetaDescription *string

	Featured  bool
	ViewCount int

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// AircraftPatch describes a partial update of an Aircraft record.
// Nil fields are left unchanged by the update operation, so a PATCH
// request only has to mention the fields which it intends to change.
// Optional attributes which should be cleared (e.g., removing a price
// in order to switch a listing to "contact for price") are modeled
// with a double pointer, where a non-nil outer pointer with a nil
// inner pointer clears the attribute.
type AircraftPatch struct {
	Title        *string
	Slug         *string
	Status       *Status
	Category     *Category
	Manufacturer *string
	Model        *string

	YearManufactured   *int
	RegistrationNumber **string
	SerialNumber       **string
	AircraftType       **string

	TotalTimeHours     **float64
	Engines            **int
	PassengersCapacity **int
	MaxRangeNM         **int
	MaxSpeedKts        **int
	CruiseSpeedKts     **int
	MaxAltitudeFt      **int

	Price             **float64
	PriceCurrency     *string
	IsPriceNegotiable *bool

	Description     **string
	Features        *[]string
	PrimaryImageURL **string

	MetaTitle       **string
	MetaDescription **string

	Featured *bool
}

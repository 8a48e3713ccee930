// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// Status specifies the sale status enum of an aircraft listing.
// Although this enum is numeric, it is (de)serialized as a string
// for readability in the adapter layer.
type Status int

// Valid values for the Status enum.
const (
	StatusInvalid Status = iota // zero value is invalid

	StatusAvailable // listed and open for inquiries
	StatusPending   // a sale is in progress
	StatusSold      // sold, kept for the track record
	StatusDraft     // not published; never shown publicly
)

// ErrUnknownStatus indicates that a given string may not be parsed
// as a valid/known listing status. This error does not communicate
// the invalid status string itself because the caller of Parse
// already knows about it and can wrap this error with the extra
// context which makes it complete at its own level.
var ErrUnknownStatus = errors.New("unknown listing status")

// StatusError indicates an invalid status value, containing the
// invalid value as an integer.
type StatusError int

// Error implements the error interface, returning a string
// representation of the StatusError.
func (e StatusError) Error() string {
	return fmt.Sprintf("invalid listing status: %d", e)
}

// Validate returns nil if Status value is valid. For invalid values,
// an instance of the StatusError will be returned.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusPending, StatusSold, StatusDraft:
		return nil
	default:
		return StatusError(s)
	}
}

// String converts the Status enum to a string, helping to serialize
// it for transmission to web clients and storage in the database.
// Invalid status causes a panic.
func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusPending:
		return "pending"
	case StatusSold:
		return "sold"
	case StatusDraft:
		return "draft"
	default:
		panic(StatusError(s))
	}
}

// MarshalText implements encoding.TextMarshaler, so a Status is
// serialized as its string representation in JSON responses.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// ParseStatus parses the given string and returns a Status, helping
// to deserialize it when reading a REST API request or a database
// row. For invalid strings, StatusInvalid and ErrUnknownStatus will
// be returned.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "available":
		return StatusAvailable, nil
	case "pending":
		return StatusPending, nil
	case "sold":
		return StatusSold, nil
	case "draft":
		return StatusDraft, nil
	default:
		return StatusInvalid, ErrUnknownStatus
	}
}

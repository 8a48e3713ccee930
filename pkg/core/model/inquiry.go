// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Inquiry models a customer inquiry which is submitted through the
// public contact or aircraft inquiry forms and managed by the admin
// dashboard afterwards.
type Inquiry struct {
	ID uuid.UUID

	FullName    string
	Email       string
	Phone       *string
	CompanyName *string

	Type       InquiryType
	AircraftID *uuid.UUID // set when the inquiry concerns one listing
	Subject    string
	Message    string

	Status   InquiryStatus
	Priority Priority

	Source     *string
	IPAddress  *string
	UserAgent  *string
	AdminNotes *string

	RespondedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InquiryPatch describes a partial update of an Inquiry record as
// performed by the admin dashboard. Nil fields are left unchanged.
type InquiryPatch struct {
	Status     *InquiryStatus
	Priority   *Priority
	AdminNotes *string
}

// InquiryType specifies the inquiry subject matter enum.
type InquiryType int

const (
	InquiryTypeInvalid InquiryType = iota

	InquiryTypeAircraft
	InquiryTypeFinancing
	InquiryTypeGeneral
	InquiryTypePartnership
)

var ErrUnknownInquiryType = errors.New("unknown inquiry type")

func (t InquiryType) Validate() error {
	switch t {
	case InquiryTypeAircraft, InquiryTypeFinancing,
		InquiryTypeGeneral, InquiryTypePartnership:
		return nil
	default:
		return fmt.Errorf("invalid inquiry type: %d", t)
	}
}

func (t InquiryType) String() string {
	switch t {
	case InquiryTypeAircraft:
		return "aircraft"
	case InquiryTypeFinancing:
		return "financing"
	case InquiryTypeGeneral:
		return "general"
	case InquiryTypePartnership:
		return "partnership"
	default:
		panic(fmt.Sprintf("invalid inquiry type: %d", t))
	}
}

func (t InquiryType) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

func ParseInquiryType(t string) (InquiryType, error) {
	switch t {
	case "aircraft":
		return InquiryTypeAircraft, nil
	case "financing":
		return InquiryTypeFinancing, nil
	case "general":
		return InquiryTypeGeneral, nil
	case "partnership":
		return InquiryTypePartnership, nil
	default:
		return InquiryTypeInvalid, ErrUnknownInquiryType
	}
}

// InquiryStatus specifies the inquiry handling state enum. New
// inquiries start at InquiryStatusNew and are moved along by the
// admin dashboard.
type InquiryStatus int

const (
	InquiryStatusInvalid InquiryStatus = iota

	InquiryStatusNew
	InquiryStatusInProgress
	InquiryStatusResponded
	InquiryStatusClosed
	InquiryStatusSpam
)

var ErrUnknownInquiryStatus = errors.New("unknown inquiry status")

func (s InquiryStatus) Validate() error {
	switch s {
	case InquiryStatusNew, InquiryStatusInProgress,
		InquiryStatusResponded, InquiryStatusClosed,
		InquiryStatusSpam:
		return nil
	default:
		return fmt.Errorf("invalid inquiry status: %d", s)
	}
}

func (s InquiryStatus) String() string {
	switch s {
	case InquiryStatusNew:
		return "new"
	case InquiryStatusInProgress:
		return "in_progress"
	case InquiryStatusResponded:
		return "responded"
	case InquiryStatusClosed:
		return "closed"
	case InquiryStatusSpam:
		return "spam"
	default:
		panic(fmt.Sprintf("invalid inquiry status: %d", s))
	}
}

func (s InquiryStatus) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func ParseInquiryStatus(s string) (InquiryStatus, error) {
	switch s {
	case "new":
		return InquiryStatusNew, nil
	case "in_progress":
		return InquiryStatusInProgress, nil
	case "responded":
		return InquiryStatusResponded, nil
	case "closed":
		return InquiryStatusClosed, nil
	case "spam":
		return InquiryStatusSpam, nil
	default:
		return InquiryStatusInvalid, ErrUnknownInquiryStatus
	}
}

// Priority specifies the inquiry priority enum. New inquiries start
// at PriorityMedium.
type Priority int

const (
	PriorityInvalid Priority = iota

	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

var ErrUnknownPriority = errors.New("unknown priority")

func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return fmt.Errorf("invalid priority: %d", p)
	}
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		panic(fmt.Sprintf("invalid priority: %d", p))
	}
}

func (p Priority) MarshalText() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []byte(p.String()), nil
}

func ParsePriority(p string) (Priority, error) {
	switch p {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	case "urgent":
		return PriorityUrgent, nil
	default:
		return PriorityInvalid, ErrUnknownPriority
	}
}

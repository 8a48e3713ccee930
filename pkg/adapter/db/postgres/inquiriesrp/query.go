// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package inquiriesrp

import (
	"context"
	"fmt"
	"time"

	"github.com/aerovista/avweb/pkg/adapter/db/postgres"
	"github.com/aerovista/avweb/pkg/core/cerr"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// gInquiry is the GORM-specific counterpart of the model.Inquiry
// struct. The enum attributes are persisted with their string names.
type gInquiry struct {
	IID uuid.UUID `gorm:"primaryKey;type:uuid;column:iid"`

	FullName    string  `gorm:"column:full_name"`
	Email       string  `gorm:"column:email"`
	Phone       *string `gorm:"column:phone"`
	CompanyName *string `gorm:"column:company_name"`

	InquiryType string     `gorm:"column:inquiry_type"`
	AircraftID  *uuid.UUID `gorm:"column:aircraft_id;type:uuid"`
	Subject     string     `gorm:"column:subject"`
	Message     string     `gorm:"column:message"`

	Status   string `gorm:"column:status"`
	Priority string `gorm:"column:priority"`

	Source     *string `gorm:"column:source"`
	IPAddress  *string `gorm:"column:ip_address"`
	UserAgent  *string `gorm:"column:user_agent"`
	AdminNotes *string `gorm:"column:admin_notes"`

	RespondedAt *time.Time `gorm:"column:responded_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (gi *gInquiry) TableName() string {
	return "inquiries"
}

// Model converts a fetched row into its business-level counterpart,
// parsing the persisted enum names.
func (gi *gInquiry) Model() (*model.Inquiry, error) {
	itype, err := model.ParseInquiryType(gi.InquiryType)
	if err != nil {
		return nil, fmt.Errorf(
			"parsing inquiry type %q: %w", gi.InquiryType, err,
		)
	}
	status, err := model.ParseInquiryStatus(gi.Status)
	if err != nil {
		return nil, fmt.Errorf(
			"parsing inquiry status %q: %w", gi.Status, err,
		)
	}
	priority, err := model.ParsePriority(gi.Priority)
	if err != nil {
		return nil, fmt.Errorf(
			"parsing priority %q: %w", gi.Priority, err,
		)
	}
	return &model.Inquiry{
		ID:          gi.IID,
		FullName:    gi.FullName,
		Email:       gi.Email,
		Phone:       gi.Phone,
		CompanyName: gi.CompanyName,
		Type:        itype,
		AircraftID:  gi.AircraftID,
		Subject:     gi.Subject,
		Message:     gi.Message,
		Status:      status,
		Priority:    priority,
		Source:      gi.Source,
		IPAddress:   gi.IPAddress,
		UserAgent:   gi.UserAgent,
		AdminNotes:  gi.AdminNotes,
		RespondedAt: gi.RespondedAt,
		CreatedAt:   gi.CreatedAt,
		UpdatedAt:   gi.UpdatedAt,
	}, nil
}

// fromModel converts a business-level record into its GORM-specific
// counterpart. The record enums must be valid; the use cases layer
// validates them before reaching the repository.
func fromModel(i *model.Inquiry) *gInquiry {
	return &gInquiry{
		IID:         i.ID,
		FullName:    i.FullName,
		Email:       i.Email,
		Phone:       i.Phone,
		CompanyName: i.CompanyName,
		InquiryType: i.Type.String(),
		AircraftID:  i.AircraftID,
		Subject:     i.Subject,
		Message:     i.Message,
		Status:      i.Status.String(),
		Priority:    i.Priority.String(),
		Source:      i.Source,
		IPAddress:   i.IPAddress,
		UserAgent:   i.UserAgent,
		AdminNotes:  i.AdminNotes,
		RespondedAt: i.RespondedAt,
	}
}

// Create persists the i inquiry and returns the stored version.
func Create[Q postgres.Queryer](ctx context.Context, q Q, i *model.Inquiry) (*model.Inquiry, error) {
	gdb := q.GORM(ctx)
	gi := fromModel(i)
	now := time.Now()
	gi.CreatedAt = now
	gi.UpdatedAt = now
	gdb.Create(gi)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return gi.Model()
}

// ListAll fetches all inquiries, newest first.
func ListAll[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Inquiry, error) {
	gdb := q.GORM(ctx)
	var gis []gInquiry
	gdb.Order("created_at DESC").Find(&gis)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	all := make([]model.Inquiry, len(gis))
	for n := range gis {
		i, err := gis[n].Model()
		if err != nil {
			return nil, err
		}
		all[n] = *i
	}
	return all, nil
}

// Update applies the non-nil patch fields to the iid inquiry and
// returns the updated version. Moving an inquiry to the responded
// status stamps its responded_at time once.
func Update[Q postgres.Queryer](ctx context.Context, q Q, iid uuid.UUID, patch *model.InquiryPatch) (*model.Inquiry, error) {
	now := time.Now()
	cols := map[string]any{
		"updated_at": now,
	}
	if patch.Status != nil {
		cols["status"] = patch.Status.String()
		if *patch.Status == model.InquiryStatusResponded {
			cols["responded_at"] = now
		}
	}
	if patch.Priority != nil {
		cols["priority"] = patch.Priority.String()
	}
	if patch.AdminNotes != nil {
		cols["admin_notes"] = *patch.AdminNotes
	}
	gdb := q.GORM(ctx)
	var gis []gInquiry
	gdb.Model(&gis).Clauses(clause.Returning{}).Where(
		"iid=?", iid,
	).Updates(cols)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gis); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gis[0].Model()
}

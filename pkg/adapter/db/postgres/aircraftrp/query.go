// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aircraftrp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aerovista/avweb/pkg/adapter/db/postgres"
	"github.com/aerovista/avweb/pkg/core/cerr"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint
// violation, reported when a duplicate slug is inserted.
const uniqueViolation = "23505"

// gAircraft is the GORM-specific counterpart of the model.Aircraft
// struct. The enum attributes are persisted with their string names
// and the features list is persisted as a jsonb array.
type gAircraft struct {
	AID  uuid.UUID `gorm:"primaryKey;type:uuid;column:aid"`
	Slug string    `gorm:"column:slug"`

	Title        string `gorm:"column:title"`
	Status       string `gorm:"column:status"`
	Category     string `gorm:"column:category"`
	Manufacturer string `gorm:"column:manufacturer"`
	Model        string `gorm:"column:model"`

	YearManufactured   int     `gorm:"column:year_manufactured"`
	RegistrationNumber *string `gorm:"column:registration_number"`
	SerialNumber       *string `gorm:"column:serial_number"`
	AircraftType       *string `gorm:"column:aircraft_type"`

	TotalTimeHours     *float64 `gorm:"column:total_time_hours"`
	Engines            *int     `gorm:"column:engines"`
	PassengersCapacity *int     `gorm:"column:passengers_capacity"`
	MaxRangeNM         *int     `gorm:"column:max_range_nm"`
	MaxSpeedKts        *int     `gorm:"column:max_speed_kts"`
	CruiseSpeedKts     *int     `gorm:"column:cruise_speed_kts"`
	MaxAltitudeFt      *int     `gorm:"column:max_altitude_ft"`

	Price             *float64 `gorm:"column:price"`
	PriceCurrency     string   `gorm:"column:price_currency"`
	IsPriceNegotiable bool     `gorm:"column:is_price_negotiable"`

	Description     *string  `gorm:"column:description"`
	Features        []string `gorm:"column:features;serializer:json"`
	PrimaryImageURL *string  `gorm:"column:primary_image_url"`

	MetaTitle       *string `gorm:"column:meta_title"`
	MetaDescription *string `gorm:"column:meta_description"`

	Featured  bool `gorm:"column:featured"`
	ViewCount int  `gorm:"column:view_count"`

	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
	DeletedAt *time.Time `gorm:"column:deleted_at"`
}

func (ga *gAircraft) TableName() string {
	return "aircraft"
}

// toModel converts a fetched row into its business-level counterpart,
// parsing the persisted enum names.
func (ga *gAircraft) toModel() (*model.Aircraft, error) {
	status, err := model.ParseStatus(ga.Status)
	if err != nil {
		return nil, fmt.Errorf("parsing status %q: %w", ga.Status, err)
	}
	category, err := model.ParseCategory(ga.Category)
	if err != nil {
		return nil, fmt.Errorf(
			"parsing category %q: %w", ga.Category, err,
		)
	}
	return &model.Aircraft{
		ID:                 ga.AID,
		Slug:               ga.Slug,
		Title:              ga.Title,
		Status:             status,
		Category:           category,
		Manufacturer:       ga.Manufacturer,
		Model:              ga.Model,
		YearManufactured:   ga.YearManufactured,
		RegistrationNumber: ga.RegistrationNumber,
		SerialNumber:       ga.SerialNumber,
		AircraftType:       ga.AircraftType,
		TotalTimeHours:     ga.TotalTimeHours,
		Engines:            ga.Engines,
		PassengersCapacity: ga.PassengersCapacity,
		MaxRangeNM:         ga.MaxRangeNM,
		MaxSpeedKts:        ga.MaxSpeedKts,
		CruiseSpeedKts:     ga.CruiseSpeedKts,
		MaxAltitudeFt:      ga.MaxAltitudeFt,
		Price:              ga.Price,
		PriceCurrency:      ga.PriceCurrency,
		IsPriceNegotiable:  ga.IsPriceNegotiable,
		Description:        ga.Description,
		Features:           ga.Features,
		PrimaryImageURL:    ga.PrimaryImageURL,
		MetaTitle:          ga.MetaTitle,
		MetaDescription:    ga.MetaDescription,
		Featured:           ga.Featured,
		ViewCount:          ga.ViewCount,
		CreatedAt:          ga.CreatedAt,
		UpdatedAt:          ga.UpdatedAt,
		DeletedAt:          ga.DeletedAt,
	}, nil
}

// fromModel converts a business-level record into its GORM-specific
// counterpart. The record enums must be valid; the use cases layer
// validates them before reaching the repository.
func fromModel(a *model.Aircraft) *gAircraft {
	return &gAircraft{
		AID:                a.ID,
		Slug:               a.Slug,
		Title:              a.Title,
		Status:             a.Status.String(),
		Category:           a.Category.String(),
		Manufacturer:       a.Manufacturer,
		Model:              a.Model,
		YearManufactured:   a.YearManufactured,
		RegistrationNumber: a.RegistrationNumber,
		SerialNumber:       a.SerialNumber,
		AircraftType:       a.AircraftType,
		TotalTimeHours:     a.TotalTimeHours,
		Engines:            a.Engines,
		PassengersCapacity: a.PassengersCapacity,
		MaxRangeNM:         a.MaxRangeNM,
		MaxSpeedKts:        a.MaxSpeedKts,
		CruiseSpeedKts:     a.CruiseSpeedKts,
		MaxAltitudeFt:      a.MaxAltitudeFt,
		Price:              a.Price,
		PriceCurrency:      a.PriceCurrency,
		IsPriceNegotiable:  a.IsPriceNegotiable,
		Description:        a.Description,
		Features:           a.Features,
		PrimaryImageURL:    a.PrimaryImageURL,
		MetaTitle:          a.MetaTitle,
		MetaDescription:    a.MetaDescription,
		Featured:           a.Featured,
		ViewCount:          a.ViewCount,
	}
}

func models(gas []gAircraft) ([]model.Aircraft, error) {
	all := make([]model.Aircraft, len(gas))
	for n := range gas {
		a, err := gas[n].toModel()
		if err != nil {
			return nil, err
		}
		all[n] = *a
	}
	return all, nil
}

// ListAll fetches all non-deleted records, newest first.
func ListAll[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Aircraft, error) {
	gdb := q.GORM(ctx)
	var gas []gAircraft
	gdb.Where("deleted_at IS NULL").Order("created_at DESC").Find(&gas)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return models(gas)
}

// BySlug fetches one non-deleted record by its unique slug.
func BySlug[Q postgres.Queryer](ctx context.Context, q Q, slug string) (*model.Aircraft, error) {
	gdb := q.GORM(ctx)
	var gas []gAircraft
	gdb.Where("slug=? AND deleted_at IS NULL", slug).Limit(1).Find(&gas)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(gas) == 0 {
		return nil, cerr.NotFound(
			fmt.Errorf("no aircraft with slug %q", slug),
		)
	}
	return gas[0].toModel()
}

// IncrementViewCount increments the view counter of the aid record.
// A missing record is tolerated since the counter is a best-effort
// statistic.
func IncrementViewCount[Q postgres.Queryer](ctx context.Context, q Q, aid uuid.UUID) error {
	gdb := q.GORM(ctx)
	gdb.Model(&gAircraft{}).Where(
		"aid=? AND deleted_at IS NULL", aid,
	).UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if err := gdb.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

// Create persists the a record and returns the stored version.
func Create[Q postgres.Queryer](ctx context.Context, q Q, a *model.Aircraft) (*model.Aircraft, error) {
	gdb := q.GORM(ctx)
	ga := fromModel(a)
	now := time.Now()
	ga.CreatedAt = now
	ga.UpdatedAt = now
	gdb.Create(ga)
	if err := gdb.Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, cerr.Conflict(
				fmt.Errorf("duplicate slug %q", a.Slug),
			)
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	return ga.toModel()
}

// Update applies the non-nil patch fields to the aid record and
// returns the updated version.
func Update[Q postgres.Queryer](ctx context.Context, q Q, aid uuid.UUID, patch *model.AircraftPatch) (*model.Aircraft, error) {
	cols, err := patchColumns(patch)
	if err != nil {
		return nil, err
	}
	gdb := q.GORM(ctx)
	var gas []gAircraft
	gdb.Model(&gas).Clauses(clause.Returning{}).Where(
		"aid=? AND deleted_at IS NULL", aid,
	).Updates(cols)
	if err := gdb.Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, cerr.Conflict(fmt.Errorf("duplicate slug"))
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gas); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gas[0].toModel()
}

// patchColumns maps the non-nil patch fields onto their column
// values. Double-pointer fields may carry a nil inner pointer which
// clears the column.
func patchColumns(patch *model.AircraftPatch) (map[string]any, error) {
	cols := map[string]any{
		"updated_at": time.Now(),
	}
	if patch.Title != nil {
		cols["title"] = *patch.Title
	}
	if patch.Slug != nil {
		cols["slug"] = *patch.Slug
	}
	if patch.Status != nil {
		cols["status"] = patch.Status.String()
	}
	if patch.Category != nil {
		cols["category"] = patch.Category.String()
	}
	if patch.Manufacturer != nil {
		cols["manufacturer"] = *patch.Manufacturer
	}
	if patch.Model != nil {
		cols["model"] = *patch.Model
	}
	if patch.YearManufactured != nil {
		cols["year_manufactured"] = *patch.YearManufactured
	}
	if patch.RegistrationNumber != nil {
		cols["registration_number"] = *patch.RegistrationNumber
	}
	if patch.SerialNumber != nil {
		cols["serial_number"] = *patch.SerialNumber
	}
	if patch.AircraftType != nil {
		cols["aircraft_type"] = *patch.AircraftType
	}
	if patch.TotalTimeHours != nil {
		cols["total_time_hours"] = *patch.TotalTimeHours
	}
	if patch.Engines != nil {
		cols["engines"] = *patch.Engines
	}
	if patch.PassengersCapacity != nil {
		cols["passengers_capacity"] = *patch.PassengersCapacity
	}
	if patch.MaxRangeNM != nil {
		cols["max_range_nm"] = *patch.MaxRangeNM
	}
	if patch.MaxSpeedKts != nil {
		cols["max_speed_kts"] = *patch.MaxSpeedKts
	}
	if patch.CruiseSpeedKts != nil {
		cols["cruise_speed_kts"] = *patch.CruiseSpeedKts
	}
	if patch.MaxAltitudeFt != nil {
		cols["max_altitude_ft"] = *patch.MaxAltitudeFt
	}
	if patch.Price != nil {
		cols["price"] = *patch.Price
	}
	if patch.PriceCurrency != nil {
		cols["price_currency"] = *patch.PriceCurrency
	}
	if patch.IsPriceNegotiable != nil {
		cols["is_price_negotiable"] = *patch.IsPriceNegotiable
	}
	if patch.Description != nil {
		cols["description"] = *patch.Description
	}
	if patch.Features != nil {
		features, err := json.Marshal(*patch.Features)
		if err != nil {
			return nil, fmt.Errorf("marshaling features: %w", err)
		}
		cols["features"] = string(features)
	}
	if patch.PrimaryImageURL != nil {
		cols["primary_image_url"] = *patch.PrimaryImageURL
	}
	if patch.MetaTitle != nil {
		cols["meta_title"] = *patch.MetaTitle
	}
	if patch.MetaDescription != nil {
		cols["meta_description"] = *patch.MetaDescription
	}
	if patch.Featured != nil {
		cols["featured"] = *patch.Featured
	}
	return cols, nil
}

// Delete soft-deletes the aid record by default, or removes its row
// permanently when hard is true.
func Delete[Q postgres.Queryer](ctx context.Context, q Q, aid uuid.UUID, hard bool) error {
	gdb := q.GORM(ctx)
	var affected int64
	if hard {
		gdb = gdb.Where("aid=?", aid).Delete(&gAircraft{})
		affected = gdb.RowsAffected
	} else {
		now := time.Now()
		gdb = gdb.Model(&gAircraft{}).Where(
			"aid=? AND deleted_at IS NULL", aid,
		).Updates(map[string]any{
			"deleted_at": now,
			"updated_at": now,
		})
		affected = gdb.RowsAffected
	}
	if err := gdb.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if affected != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", affected),
		)
	}
	return nil
}

// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/aerovista/avweb/pkg/adapter/config"
	"github.com/aerovista/avweb/pkg/adapter/db/postgres/aircraftrp"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import /path/of/listings.json",
	Short: "Bulk-load an inventory snapshot into the database",
	Long: `Bulk-load an inventory snapshot into the database.
The given file must contain a json array of listing objects, using the
same field names as the admin listing creation REST API. Listings are
created one by one and the first invalid or conflicting listing (e.g.,
with a duplicate slug) stops the import, reporting its index.`,
	RunE: importListings,
	Args: cobra.ExactArgs(1),
}

// listingRecord is the json shape of one imported listing.
type listingRecord struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`

	Status       string `json:"status"`
	Category     string `json:"category"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`

	YearManufactured   int     `json:"year_manufactured"`
	RegistrationNumber *string `json:"registration_number"`
	SerialNumber       *string `json:"serial_number"`
	AircraftType       *string `json:"aircraft_type"`

	TotalTimeHours     *float64 `json:"total_time_hours"`
	Engines            *int     `json:"engines"`
	PassengersCapacity *int     `json:"passengers_capacity"`
	MaxRangeNM         *int     `json:"max_range_nm"`
	MaxSpeedKts        *int     `json:"max_speed_kts"`
	CruiseSpeedKts     *int     `json:"cruise_speed_kts"`
	MaxAltitudeFt      *int     `json:"max_altitude_ft"`

	Price             *float64 `json:"price"`
	PriceCurrency     string   `json:"price_currency"`
	IsPriceNegotiable bool     `json:"is_price_negotiable"`

	Description     *string  `json:"description"`
	Features        []string `json:"features"`
	PrimaryImageURL *string  `json:"primary_image_url"`

	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`

	Featured bool `json:"featured"`
}

// aircraft converts the r record to its model instance, parsing the
// enum fields and applying the same defaults as the admin creation
// REST API.
func (r *listingRecord) aircraft() (*model.Aircraft, error) {
	status, err := model.ParseStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("parsing status: %w", err)
	}
	category, err := model.ParseCategory(r.Category)
	if err != nil {
		return nil, fmt.Errorf("parsing category: %w", err)
	}
	currency := r.PriceCurrency
	if currency == "" {
		currency = "USD"
	}
	features := r.Features
	if features == nil {
		features = []string{}
	}
	return &model.Aircraft{
		Slug:               r.Slug,
		Title:              r.Title,
		Status:             status,
		Category:           category,
		Manufacturer:       r.Manufacturer,
		Model:              r.Model,
		YearManufactured:   r.YearManufactured,
		RegistrationNumber: r.RegistrationNumber,
		SerialNumber:       r.SerialNumber,
		AircraftType:       r.AircraftType,
		TotalTimeHours:     r.TotalTimeHours,
		Engines:            r.Engines,
		PassengersCapacity: r.PassengersCapacity,
		MaxRangeNM:         r.MaxRangeNM,
		MaxSpeedKts:        r.MaxSpeedKts,
		CruiseSpeedKts:     r.CruiseSpeedKts,
		MaxAltitudeFt:      r.MaxAltitudeFt,
		Price:              r.Price,
		PriceCurrency:      currency,
		IsPriceNegotiable:  r.IsPriceNegotiable,
		Description:        r.Description,
		Features:           features,
		PrimaryImageURL:    r.PrimaryImageURL,
		MetaTitle:          r.MetaTitle,
		MetaDescription:    r.MetaDescription,
		Featured:           r.Featured,
	}, nil
}

func importListings(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading listings file: %w", err)
	}
	var records []listingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("unmarshalling listings json: %w", err)
	}
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	uc, err := c.NewAircraftUseCase(p, aircraftrp.New())
	if err != nil {
		return fmt.Errorf("creating aircraft use case: %w", err)
	}
	for i := range records {
		a, err := records[i].aircraft()
		if err != nil {
			return fmt.Errorf("listing at index %d: %w", i, err)
		}
		if _, err := uc.Create(ctx, a); err != nil {
			return fmt.Errorf("creating listing at index %d: %w", i, err)
		}
	}
	fmt.Printf("imported %d listings\n", len(records))
	return nil
}

func init() {
	dbCmd.AddCommand(importCmd)
}

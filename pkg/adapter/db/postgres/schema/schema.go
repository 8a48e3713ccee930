// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schema provides the Initializer type for the database
// schema major version 1. It creates the aircraft and inquiries
// tables and fills them with development or production suitable
// initial data, backing the `avweb db init-dev` and `db init-prod`
// commands and the integration test suites.
package schema

import (
	"context"
	"fmt"

	"github.com/aerovista/avweb/pkg/core/repo"
)

// These constants indicate the major, minor, and patch components of
// the database schema implementation. Each major version gets its own
// initializer implementation and the Minor is the latest supported
// minor version within the Major series.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Initializer struct provides the database schema creation and
// seeding logic for the major version 1.
//
// Each instance wraps a single transaction of the target database and
// the caller is responsible to commit that transaction in order to
// finalize the initialization results.
type Initializer struct {
	tx repo.Tx
}

// New creates an Initializer instance, wrapping the given tx database
// transaction.
func New(tx repo.Tx) *Initializer {
	return &Initializer{
		tx: tx,
	}
}

// MajorVersion returns the major semantic version of this Initializer
// instance, matching the Major constant of this package.
func (init *Initializer) MajorVersion() uint {
	return Major
}

// InitDevSchema creates the major version 1 tables and fills them
// with the development suitable sample inventory.
func (init *Initializer) InitDevSchema(ctx context.Context) error {
	if err := init.createTables(ctx); err != nil {
		return err
	}
	if _, err := init.tx.Exec(ctx, devAircraftSeed); err != nil {
		return fmt.Errorf("seeding aircraft table: %w", err)
	}
	return nil
}

// InitProdSchema creates the major version 1 tables. A production
// database starts with an empty inventory which is filled through the
// admin endpoints afterwards.
func (init *Initializer) InitProdSchema(ctx context.Context) error {
	return init.createTables(ctx)
}

func (init *Initializer) createTables(ctx context.Context) error {
	if _, err := init.tx.Exec(ctx, createAircraftTable); err != nil {
		return fmt.Errorf("creating aircraft table: %w", err)
	}
	if _, err := init.tx.Exec(ctx, createInquiriesTable); err != nil {
		return fmt.Errorf("creating inquiries table: %w", err)
	}
	return nil
}

const createAircraftTable = `
CREATE TABLE IF NOT EXISTS aircraft (
    aid UUID PRIMARY KEY,
    slug VARCHAR(160) UNIQUE NOT NULL,
    title VARCHAR(200) NOT NULL,
    status VARCHAR(16) NOT NULL DEFAULT 'draft',
    category VARCHAR(16) NOT NULL,
    manufacturer VARCHAR(100) NOT NULL,
    model VARCHAR(100) NOT NULL,
    year_manufactured INTEGER NOT NULL,
    registration_number VARCHAR(20),
    serial_number VARCHAR(50),
    aircraft_type VARCHAR(50),
    total_time_hours NUMERIC(10, 1),
    engines INTEGER,
    passengers_capacity INTEGER,
    max_range_nm INTEGER,
    max_speed_kts INTEGER,
    cruise_speed_kts INTEGER,
    max_altitude_ft INTEGER,
    price NUMERIC(14, 2),
    price_currency VARCHAR(3) NOT NULL DEFAULT 'USD',
    is_price_negotiable BOOLEAN NOT NULL DEFAULT FALSE,
    description TEXT,
    features JSONB NOT NULL DEFAULT '[]'::jsonb,
    primary_image_url TEXT,
    meta_title VARCHAR(200),
    meta_description VARCHAR(300),
    featured BOOLEAN NOT NULL DEFAULT FALSE,
    view_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    deleted_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS aircraft_status_idx
    ON aircraft (status) WHERE deleted_at IS NULL;
CREATE INDEX IF NOT EXISTS aircraft_category_idx
    ON aircraft (category) WHERE deleted_at IS NULL;
CREATE INDEX IF NOT EXISTS aircraft_created_at_idx
    ON aircraft (created_at DESC);
`

const createInquiriesTable = `
CREATE TABLE IF NOT EXISTS inquiries (
    iid UUID PRIMARY KEY,
    full_name VARCHAR(100) NOT NULL,
    email VARCHAR(254) NOT NULL,
    phone VARCHAR(32),
    company_name VARCHAR(100),
    inquiry_type VARCHAR(16) NOT NULL,
    aircraft_id UUID REFERENCES aircraft (aid),
    subject VARCHAR(200) NOT NULL,
    message TEXT NOT NULL,
    status VARCHAR(16) NOT NULL DEFAULT 'new',
    priority VARCHAR(8) NOT NULL DEFAULT 'medium',
    source VARCHAR(100),
    ip_address VARCHAR(45),
    user_agent TEXT,
    admin_notes TEXT,
    responded_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS inquiries_status_idx ON inquiries (status);
CREATE INDEX IF NOT EXISTS inquiries_created_at_idx
    ON inquiries (created_at DESC);
`

const devAircraftSeed = `
INSERT INTO aircraft (
    aid, slug, title, status, category, manufacturer, model,
    year_manufactured, passengers_capacity, price, features, featured
) VALUES (
    gen_random_uuid(), '2019-cessna-citation-cj3-plus',
    '2019 Cessna Citation CJ3+', 'available', 'jet',
    'Cessna', 'Citation CJ3+',
    2019, 9, 8450000, '["ProLine Fusion", "WAAS/LPV"]'::jsonb, TRUE
), (
    gen_random_uuid(), '2016-beechcraft-king-air-350i',
    '2016 Beechcraft King Air 350i', 'available', 'turboprop',
    'Beechcraft', 'King Air 350i',
    2016, 11, 6950000, '["Fusion avionics", "Air conditioning"]'::jsonb,
    FALSE
), (
    gen_random_uuid(), '2018-bell-407gxp',
    '2018 Bell 407GXP', 'pending', 'helicopter',
    'Bell', '407GXP',
    2018, 6, 2890000, '["Garmin G1000H", "Cargo hook"]'::jsonb, FALSE
), (
    gen_random_uuid(), '1979-piper-seneca-ii',
    '1979 Piper Seneca II', 'sold', 'piston',
    'Piper', 'Seneca II',
    1979, 6, NULL, '[]'::jsonb, FALSE
), (
    gen_random_uuid(), 'draft-gulfstream-g280',
    '2021 Gulfstream G280', 'draft', 'jet',
    'Gulfstream', 'G280',
    2021, 10, 21500000, '[]'::jsonb, FALSE
);
`

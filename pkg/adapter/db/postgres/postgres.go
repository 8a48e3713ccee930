// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres provides the PostgreSQL adaptation of the
// connection pool, connection, and transaction interfaces which are
// defined by the pkg/core/repo package, using the GORM framework.
// The table-specific repository implementations live in the nested
// aircraftrp and inquiriesrp packages and the schema creation logic
// lives in the nested schema package.
package postgres

import (
	"github.com/aerovista/avweb/pkg/adapter/db/postgres/schema"
	"github.com/aerovista/avweb/pkg/core/model"
)

// These constants represent the major, minor, and patch components of
// the current database schema semantic version, taken from the
// schema package which implements that version.
const (
	Major = schema.Major
	Minor = schema.Minor
	Patch = schema.Patch
)

// Version is the supported database schema semantic version.
var Version = model.SemVer{Major, Minor, Patch}

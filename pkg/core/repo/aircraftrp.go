// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/google/uuid"
)

// AircraftConnQueryer interface lists the aircraft repository
// methods which may run on a connection.
type AircraftConnQueryer interface {
	AircraftQueryer
}

// AircraftTxQueryer interface lists the aircraft repository methods
// which may run on a transaction.
type AircraftTxQueryer interface {
	AircraftQueryer
}

// AircraftQueryer is the common interface of the aircraft repository
// methods, usable over a connection or a transaction.
//
// Fetch operations never return soft-deleted records. The draft
// status exclusion, in contrast, is a use cases layer concern (the
// admin dashboard must see drafts while the public listing pipeline
// must not), so ListAll and BySlug do return drafts.
type AircraftQueryer interface {
	// ListAll fetches the complete aircraft collection, ordered by
	// the creation timestamp, descending. The listing and
	// recommendation computations run over this in-memory snapshot.
	ListAll(ctx context.Context) ([]model.Aircraft, error)

	// BySlug fetches one record by its unique slug, returning a
	// cerr.NotFound error when no such record exists.
	BySlug(ctx context.Context, slug string) (*model.Aircraft, error)

	// IncrementViewCount increments the view counter of the aircraft
	// record which is identified by aid. A missing record is not an
	// error because the counter is a best-effort statistic.
	IncrementViewCount(ctx context.Context, aid uuid.UUID) error

	// Create persists the given record, which must carry a valid ID,
	// and returns the stored version with its timestamps filled.
	// Violating the slug uniqueness causes a cerr.Conflict error.
	Create(ctx context.Context, a *model.Aircraft) (*model.Aircraft, error)

	// Update applies the non-nil fields of patch to the aid record
	// and returns the updated version. A missing record causes a
	// cerr.NotFound error.
	Update(ctx context.Context, aid uuid.UUID, patch *model.AircraftPatch) (*model.Aircraft, error)

	// Delete removes the aid record, marking it as soft-deleted by
	// default or removing the row permanently when hard is true.
	// A missing record causes a cerr.NotFound error.
	Delete(ctx context.Context, aid uuid.UUID, hard bool) error
}

// Aircraft interface represents the aircraft repository. It can be
// guided with a connection or a transaction in order to obtain a
// relevant queryer instance.
type Aircraft interface {
	Conn(Conn) AircraftConnQueryer
	Tx(Tx) AircraftTxQueryer
}

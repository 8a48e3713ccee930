// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package aircraftuc contains the aircraft UseCase which supports the
// public listing use cases:
//  1. Browsing the paginated, filtered, and sorted inventory,
//  2. Viewing one listing by its slug,
//  3. Fetching similarity-ranked recommendations for one listing,
//
// and the admin inventory management use cases (create, update, and
// delete). The listing pipeline and the similarity recommender are
// pure functions over an in-memory snapshot of the collection, see
// the listing.go and similar.go files.
package aircraftuc

import (
	"context"
	"fmt"

	"github.com/aerovista/avweb/pkg/core/cerr"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/aerovista/avweb/pkg/core/repo"
	"github.com/google/uuid"
)

// UseCase represents an aircraft use case. It holds a database
// connection pool and the aircraft repository instance (to be guided
// with the DB pool), in addition to the use case specific settings.
type UseCase struct {
	pool       repo.Pool
	aircraftrp repo.Aircraft

	similarLimit int
}

// New instantiates an aircraft use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(p repo.Pool, a repo.Aircraft, opts ...Option) (*UseCase, error) {
	uc := &UseCase{pool: p, aircraftrp: a}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.similarLimit == 0 {
		uc.similarLimit = DefaultSimilarLimit
	}
	return uc, nil
}

// List use case fetches a snapshot of the inventory and runs the
// listing pipeline over it, returning the page-th page of the
// collection as filtered and sorted by the f filter state.
func (aircraft *UseCase) List(ctx context.Context, f model.FilterState, page int) (lp *ListingPage, err error) {
	err = aircraft.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := aircraft.aircraftrp.Conn(c)
		all, err := q.ListAll(ctx)
		if err != nil {
			return err
		}
		p := Paginate(all, f, page)
		lp = &p
		return nil
	})
	if err != nil {
		lp = nil
	}
	return
}

// BySlug use case fetches one listing by its unique slug and
// increments its view counter. Draft records are returned too, so
// the admin dashboard can preview them; the resources layer decides
// what is exposed publicly.
func (aircraft *UseCase) BySlug(ctx context.Context, slug string) (a *model.Aircraft, err error) {
	err = aircraft.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := aircraft.aircraftrp.Conn(c)
		a, err = q.BySlug(ctx, slug)
		if err != nil {
			return err
		}
		return q.IncrementViewCount(ctx, a.ID)
	})
	if err != nil {
		a = nil
	}
	return
}

// Similar use case fetches the listing with the given slug and
// returns up to limit other listings ranked by similarity to it.
// A non-positive limit selects the configured default. An empty
// result is valid and the caller should omit the recommendations
// section instead of reporting an error.
func (aircraft *UseCase) Similar(ctx context.Context, slug string, limit int) (similar []model.Aircraft, err error) {
	if limit <= 0 {
		limit = aircraft.similarLimit
	}
	err = aircraft.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := aircraft.aircraftrp.Conn(c)
		ref, err := q.BySlug(ctx, slug)
		if err != nil {
			return err
		}
		all, err := q.ListAll(ctx)
		if err != nil {
			return err
		}
		similar = SimilarTo(*ref, all, limit)
		return nil
	})
	if err != nil {
		similar = nil
	}
	return
}

// Create use case validates and persists a new listing, assigning
// its ID. Validation of the field formats belongs to the system
// boundary; only the cross-field business rules are checked here.
func (aircraft *UseCase) Create(ctx context.Context, a *model.Aircraft) (created *model.Aircraft, err error) {
	if err = validateRecord(a); err != nil {
		return nil, cerr.BadRequest(err)
	}
	a.ID = uuid.New()
	err = aircraft.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := aircraft.aircraftrp.Conn(c)
		created, err = q.Create(ctx, a)
		return err
	})
	if err != nil {
		created = nil
	}
	return
}

// Update use case applies a partial update to the aid listing and
// returns the updated record.
func (aircraft *UseCase) Update(ctx context.Context, aid uuid.UUID, patch *model.AircraftPatch) (updated *model.Aircraft, err error) {
	if err = validatePatch(patch); err != nil {
		return nil, cerr.BadRequest(err)
	}
	err = aircraft.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := aircraft.aircraftrp.Conn(c)
		updated, err = q.Update(ctx, aid, patch)
		return err
	})
	if err != nil {
		updated = nil
	}
	return
}

// Delete use case removes the aid listing, softly by default so the
// record can be restored from the database, or permanently when hard
// is true.
func (aircraft *UseCase) Delete(ctx context.Context, aid uuid.UUID, hard bool) error {
	return aircraft.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := aircraft.aircraftrp.Conn(c)
		return q.Delete(ctx, aid, hard)
	})
}

// validateRecord checks the business-level invariants of a complete
// record: valid enum values and a non-negative price when present.
func validateRecord(a *model.Aircraft) error {
	if err := a.Status.Validate(); err != nil {
		return err
	}
	if err := a.Category.Validate(); err != nil {
		return err
	}
	if a.Price != nil && *a.Price < 0 {
		return fmt.Errorf("negative price: %v", *a.Price)
	}
	return nil
}

// validatePatch checks the same invariants over the fields which a
// partial update intends to change.
func validatePatch(p *model.AircraftPatch) error {
	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			return err
		}
	}
	if p.Category != nil {
		if err := p.Category.Validate(); err != nil {
			return err
		}
	}
	if p.Price != nil && *p.Price != nil && **p.Price < 0 {
		return fmt.Errorf("negative price: %v", **p.Price)
	}
	return nil
}

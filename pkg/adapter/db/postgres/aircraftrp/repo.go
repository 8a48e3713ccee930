// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package aircraftrp provides the aircraft repository implementation
// over a PostgreSQL database, accepting connections or transactions
// and running the relevant queries on them.
package aircraftrp

import (
	"context"

	"github.com/aerovista/avweb/pkg/adapter/db/postgres"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/aerovista/avweb/pkg/core/repo"
	"github.com/google/uuid"
)

// Repo is the aircraft repository.
type Repo struct {
}

// New instantiates an aircraft Repo.
func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

// Conn takes a Conn connection and guides this repository to run its
// queries on it.
func (aircraft *Repo) Conn(c repo.Conn) repo.AircraftConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) ListAll(ctx context.Context) ([]model.Aircraft, error) {
	return ListAll(ctx, cq.Conn)
}

func (cq connQueryer) BySlug(ctx context.Context, slug string) (*model.Aircraft, error) {
	return BySlug(ctx, cq.Conn, slug)
}

func (cq connQueryer) IncrementViewCount(ctx context.Context, aid uuid.UUID) error {
	return IncrementViewCount(ctx, cq.Conn, aid)
}

func (cq connQueryer) Create(ctx context.Context, a *model.Aircraft) (*model.Aircraft, error) {
	return Create(ctx, cq.Conn, a)
}

func (cq connQueryer) Update(ctx context.Context, aid uuid.UUID, patch *model.AircraftPatch) (*model.Aircraft, error) {
	return Update(ctx, cq.Conn, aid, patch)
}

func (cq connQueryer) Delete(ctx context.Context, aid uuid.UUID, hard bool) error {
	return Delete(ctx, cq.Conn, aid, hard)
}

type txQueryer struct {
	*postgres.Tx
}

// Tx takes a Tx transaction and guides this repository to run its
// queries on it.
func (aircraft *Repo) Tx(tx repo.Tx) repo.AircraftTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) ListAll(ctx context.Context) ([]model.Aircraft, error) {
	return ListAll(ctx, tq.Tx)
}

func (tq txQueryer) BySlug(ctx context.Context, slug string) (*model.Aircraft, error) {
	return BySlug(ctx, tq.Tx, slug)
}

func (tq txQueryer) IncrementViewCount(ctx context.Context, aid uuid.UUID) error {
	return IncrementViewCount(ctx, tq.Tx, aid)
}

func (tq txQueryer) Create(ctx context.Context, a *model.Aircraft) (*model.Aircraft, error) {
	return Create(ctx, tq.Tx, a)
}

func (tq txQueryer) Update(ctx context.Context, aid uuid.UUID, patch *model.AircraftPatch) (*model.Aircraft, error) {
	return Update(ctx, tq.Tx, aid, patch)
}

func (tq txQueryer) Delete(ctx context.Context, aid uuid.UUID, hard bool) error {
	return Delete(ctx, tq.Tx, aid, hard)
}

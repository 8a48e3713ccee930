// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package inquiriesrp provides the inquiries repository
// implementation over a PostgreSQL database, accepting connections or
// transactions and running the relevant queries on them.
package inquiriesrp

import (
	"context"

	"github.com/aerovista/avweb/pkg/adapter/db/postgres"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/aerovista/avweb/pkg/core/repo"
	"github.com/google/uuid"
)

// Repo is the inquiries repository.
type Repo struct {
}

// New instantiates an inquiries Repo.
func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

// Conn takes a Conn connection and guides this repository to run its
// queries on it.
func (inquiries *Repo) Conn(c repo.Conn) repo.InquiriesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, i *model.Inquiry) (*model.Inquiry, error) {
	return Create(ctx, cq.Conn, i)
}

func (cq connQueryer) ListAll(ctx context.Context) ([]model.Inquiry, error) {
	return ListAll(ctx, cq.Conn)
}

func (cq connQueryer) Update(ctx context.Context, iid uuid.UUID, patch *model.InquiryPatch) (*model.Inquiry, error) {
	return Update(ctx, cq.Conn, iid, patch)
}

type txQueryer struct {
	*postgres.Tx
}

// Tx takes a Tx transaction and guides this repository to run its
// queries on it.
func (inquiries *Repo) Tx(tx repo.Tx) repo.InquiriesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, i *model.Inquiry) (*model.Inquiry, error) {
	return Create(ctx, tq.Tx, i)
}

func (tq txQueryer) ListAll(ctx context.Context) ([]model.Inquiry, error) {
	return ListAll(ctx, tq.Tx)
}

func (tq txQueryer) Update(ctx context.Context, iid uuid.UUID, patch *model.InquiryPatch) (*model.Inquiry, error) {
	return Update(ctx, tq.Tx, iid, patch)
}

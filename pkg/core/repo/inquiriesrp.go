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

// InquiriesConnQueryer interface lists the inquiries repository
// methods which may run on a connection.
type InquiriesConnQueryer interface {
	InquiriesQueryer
}

// InquiriesTxQueryer interface lists the inquiries repository
// methods which may run on a transaction.
type InquiriesTxQueryer interface {
	InquiriesQueryer
}

// InquiriesQueryer is the common interface of the inquiries
// repository methods, usable over a connection or a transaction.
type InquiriesQueryer interface {
	// Create persists the given inquiry, which must carry a valid ID,
	// and returns the stored version with its timestamps filled.
	Create(ctx context.Context, i *model.Inquiry) (*model.Inquiry, error)

	// ListAll fetches all inquiries for the admin dashboard, ordered
	// by the creation timestamp, descending.
	ListAll(ctx context.Context) ([]model.Inquiry, error)

	// Update applies the non-nil fields of patch to the iid inquiry
	// and returns the updated version. Moving an inquiry to the
	// responded status stamps its RespondedAt time. A missing record
	// causes a cerr.NotFound error.
	Update(ctx context.Context, iid uuid.UUID, patch *model.InquiryPatch) (*model.Inquiry, error)
}

// Inquiries interface represents the inquiries repository. It can be
// guided with a connection or a transaction in order to obtain a
// relevant queryer instance.
type Inquiries interface {
	Conn(Conn) InquiriesConnQueryer
	Tx(Tx) InquiriesTxQueryer
}

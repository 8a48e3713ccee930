// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package inquiryuc contains the inquiries UseCase which supports:
//  1. Submitting an inquiry through the public forms, guarded by a
//     per-client rate limit,
//  2. Listing all inquiries for the admin dashboard,
//  3. Updating the handling status, priority, and notes of an
//     inquiry from the admin dashboard.
package inquiryuc

import (
	"context"
	"fmt"
	"time"

	"github.com/aerovista/avweb/pkg/core/cerr"
	"github.com/aerovista/avweb/pkg/core/limiter"
	"github.com/aerovista/avweb/pkg/core/log"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/aerovista/avweb/pkg/core/repo"
	"github.com/google/uuid"
)

// limitEndpoint tags the rate limit keys of this use case, so one
// shared Store can serve several limited endpoints without their
// counters interfering.
const limitEndpoint = "inquiries"

// Notifier is the outgoing notification port. The Submit use case
// fires both notifications after a successful submission without
// waiting for them; failures are logged and never surfaced to the
// submitting client.
type Notifier interface {
	// NotifyAdmin announces a freshly submitted inquiry to the
	// brokerage staff.
	NotifyAdmin(ctx context.Context, i *model.Inquiry) error

	// ConfirmSubmission acknowledges the submission towards the
	// submitting customer.
	ConfirmSubmission(ctx context.Context, i *model.Inquiry) error
}

// Submission carries the client-supplied fields of one inquiry
// submission, already validated at the system boundary, plus the
// client identification fields which the resources layer extracts
// from the request itself.
type Submission struct {
	FullName    string
	Email       string
	Phone       *string
	CompanyName *string
	Type        model.InquiryType
	AircraftID  *uuid.UUID
	Subject     string
	Message     string

	Source    *string
	IPAddress string
	UserAgent *string
}

// UseCase represents an inquiries use case. It holds a database
// connection pool, the inquiries repository instance (to be guided
// with the DB pool), the submission rate limiter, and the notifier.
type UseCase struct {
	pool        repo.Pool
	inquiriesrp repo.Inquiries
	limiter     *limiter.Limiter
	notifier    Notifier
}

// New instantiates an inquiries use case. All collaborators are
// mandatory; the rate limiter policy itself is configured by the
// caller while constructing the limiter instance.
func New(
	p repo.Pool,
	i repo.Inquiries,
	l *limiter.Limiter,
	n Notifier,
) (*UseCase, error) {
	switch {
	case l == nil:
		return nil, fmt.Errorf("nil rate limiter")
	case n == nil:
		return nil, fmt.Errorf("nil notifier")
	}
	return &UseCase{
		pool:        p,
		inquiriesrp: i,
		limiter:     l,
		notifier:    n,
	}, nil
}

// Submit use case counts the submission against the client rate
// limit and, within the limit, persists the inquiry with the new
// status and medium priority before firing the notifications.
// The rate limit metadata is returned in both outcomes, so the
// resources layer can always expose the X-RateLimit-* headers; an
// exhausted limit is reported as a cerr error with the 429 status.
func (inq *UseCase) Submit(ctx context.Context, sub Submission) (
	created *model.Inquiry, rl limiter.Result, err error,
) {
	rl = inq.limiter.Allow(sub.IPAddress + ":" + limitEndpoint)
	if !rl.Allowed {
		return nil, rl, cerr.TooManyRequests(fmt.Errorf(
			"rate limit exceeded, retry after %s",
			rl.Reset.Format(time.RFC3339),
		))
	}
	i := &model.Inquiry{
		ID:          uuid.New(),
		FullName:    sub.FullName,
		Email:       sub.Email,
		Phone:       sub.Phone,
		CompanyName: sub.CompanyName,
		Type:        sub.Type,
		AircraftID:  sub.AircraftID,
		Subject:     sub.Subject,
		Message:     sub.Message,
		Status:      model.InquiryStatusNew,
		Priority:    model.PriorityMedium,
		Source:      sub.Source,
		UserAgent:   sub.UserAgent,
	}
	if sub.IPAddress != "" {
		ip := sub.IPAddress
		i.IPAddress = &ip
	}
	err = inq.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := inq.inquiriesrp.Conn(c)
		created, err = q.Create(ctx, i)
		return err
	})
	if err != nil {
		return nil, rl, err
	}
	go inq.notify(created)
	return created, rl, nil
}

// notify fires both notifications with a fresh context, so they are
// not cancelled when the submission request finishes first.
func (inq *UseCase) notify(i *model.Inquiry) {
	ctx, cancel := context.WithTimeout(
		context.Background(), 30*time.Second,
	)
	defer cancel()
	if err := inq.notifier.NotifyAdmin(ctx, i); err != nil {
		log.Error(
			ctx, "failed to notify admin about inquiry",
			log.ID("inquiry", i.ID), log.Err("error", err),
		)
	}
	if err := inq.notifier.ConfirmSubmission(ctx, i); err != nil {
		log.Error(
			ctx, "failed to confirm inquiry submission",
			log.ID("inquiry", i.ID), log.Err("error", err),
		)
	}
}

// List use case fetches all inquiries for the admin dashboard,
// ordered by the creation timestamp, descending.
func (inq *UseCase) List(ctx context.Context) (all []model.Inquiry, err error) {
	err = inq.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := inq.inquiriesrp.Conn(c)
		all, err = q.ListAll(ctx)
		return err
	})
	if err != nil {
		all = nil
	}
	return
}

// Update use case applies a partial admin update to the iid inquiry
// and returns the updated record.
func (inq *UseCase) Update(ctx context.Context, iid uuid.UUID, patch *model.InquiryPatch) (updated *model.Inquiry, err error) {
	if patch.Status != nil {
		if err = patch.Status.Validate(); err != nil {
			return nil, cerr.BadRequest(err)
		}
	}
	if patch.Priority != nil {
		if err = patch.Priority.Validate(); err != nil {
			return nil, cerr.BadRequest(err)
		}
	}
	err = inq.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := inq.inquiriesrp.Conn(c)
		updated, err = q.Update(ctx, iid, patch)
		return err
	})
	if err != nil {
		updated = nil
	}
	return
}

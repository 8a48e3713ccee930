// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package notify provides the log-backed implementation of the
// inquiries Notifier port. Deployments front the service with an
// operations stack which picks the structured records up; a mail
// provider integration is out of scope.
package notify

import (
	"context"
	"log/slog"

	"github.com/aerovista/avweb/pkg/core/log"
	"github.com/aerovista/avweb/pkg/core/model"
)

// Logger announces inquiry events as structured log records. It
// implements the inquiryuc.Notifier interface.
type Logger struct {
}

// New instantiates a Logger notifier.
func New() *Logger {
	return &Logger{}
}

// NotifyAdmin announces a freshly submitted inquiry to the brokerage
// staff.
func (nl *Logger) NotifyAdmin(ctx context.Context, i *model.Inquiry) error {
	log.Info(
		ctx, "new inquiry submitted",
		log.ID("inquiry", i.ID),
		slog.String("type", i.Type.String()),
		slog.String("subject", i.Subject),
		slog.String("email", i.Email),
	)
	return nil
}

// ConfirmSubmission acknowledges the submission towards the
// submitting customer.
func (nl *Logger) ConfirmSubmission(ctx context.Context, i *model.Inquiry) error {
	log.Info(
		ctx, "inquiry submission confirmed",
		log.ID("inquiry", i.ID),
		slog.String("email", i.Email),
	)
	return nil
}
